package schema

import "fmt"

// Intent is a replayable description of one user-issued operation. It is plain
// data rather than a closure so it can be stored on the re-auth challenge,
// logged, inspected in tests, and replayed verbatim after re-authentication.
type Intent struct {
	Kind        IntentKind `json:"kind"`
	Name        string     `json:"name,omitempty"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	ID          string     `json:"id,omitempty"`
}

// NewListAllIntent describes fetching the full contact list.
func NewListAllIntent() Intent {
	return Intent{Kind: IntentListAll}
}

// NewAddIntent describes creating a contact with the given fields.
func NewAddIntent(name, phoneNumber string) Intent {
	return Intent{Kind: IntentAdd, Name: name, PhoneNumber: phoneNumber}
}

// NewDeleteIntent describes removing the contact with the given opaque id.
func NewDeleteIntent(id string) Intent {
	return Intent{Kind: IntentDelete, ID: id}
}

// Descriptor is the wire-level description of one remote call. The gateway
// executes descriptors; it never inspects intents directly.
type Descriptor struct {
	Method string
	Path   string
	Body   any
}

// Descriptor maps the intent onto the remote contacts API. The mapping is
// total over the intent kinds, which keeps replay after re-auth deterministic.
func (i Intent) Descriptor() Descriptor {
	switch i.Kind {
	case IntentAdd:
		return Descriptor{
			Method: "POST",
			Path:   "/contacts",
			Body:   ContactRequest{Name: i.Name, PhoneNumber: i.PhoneNumber},
		}
	case IntentDelete:
		return Descriptor{Method: "DELETE", Path: "/contacts/" + i.ID}
	default: // IntentListAll
		return Descriptor{Method: "GET", Path: "/contacts"}
	}
}

// String renders the intent for logs and error messages.
func (i Intent) String() string {
	switch i.Kind {
	case IntentAdd:
		return fmt.Sprintf("add(%s, %s)", i.Name, i.PhoneNumber)
	case IntentDelete:
		return fmt.Sprintf("delete(%s)", i.ID)
	default:
		return "list_all"
	}
}
