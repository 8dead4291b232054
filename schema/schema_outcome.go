package schema

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Generic user-facing failure messages.
const (
	ServerErrorMessage  = "Server error. Please try again later."
	NetworkErrorMessage = "Network error. Check your connection and try again."
)

// Outcome is the classified result of one gateway call. Callers branch on
// Kind, never on raw status codes.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int    // 0 when no response was received
	Body       []byte // raw success payload, nil otherwise
	Message    string // short human-readable failure message
}

// NewSuccessOutcome wraps a 2xx response payload.
func NewSuccessOutcome(statusCode int, body []byte) Outcome {
	return Outcome{Kind: OutcomeSuccess, StatusCode: statusCode, Body: body}
}

// NewAuthExpiredOutcome marks the single 401 classification that drives the
// re-auth coordinator. It carries no message because it must never be shown
// to the user as a raw error.
func NewAuthExpiredOutcome() Outcome {
	return Outcome{Kind: OutcomeAuthExpired, StatusCode: http.StatusUnauthorized}
}

// NewClientErrorOutcome wraps a non-401 4xx. The server message is surfaced
// verbatim when the body carries one.
func NewClientErrorOutcome(statusCode int, body []byte) Outcome {
	msg := fmt.Sprintf("Request rejected (status %d).", statusCode)
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		msg = apiErr.Message
	}
	return Outcome{Kind: OutcomeClientError, StatusCode: statusCode, Message: msg}
}

// NewServerErrorOutcome wraps a 5xx with a generic try-again message.
func NewServerErrorOutcome(statusCode int) Outcome {
	return Outcome{Kind: OutcomeServerError, StatusCode: statusCode, Message: ServerErrorMessage}
}

// NewNetworkErrorOutcome marks a transport failure where no response arrived.
func NewNetworkErrorOutcome(err error) Outcome {
	msg := NetworkErrorMessage
	if err != nil {
		msg = fmt.Sprintf("%s (%v)", NetworkErrorMessage, err)
	}
	return Outcome{Kind: OutcomeNetworkError, Message: msg}
}

// IsSuccess reports whether the call settled in the success range.
func (o Outcome) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}
