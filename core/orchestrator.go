package core

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/hellperdev/contactbook/schema"
)

// EmptyFieldsMessage rejects an add before it reaches the network. This is
// the only validation not delegated to the remote service.
const EmptyFieldsMessage = "Please fill in both name and phone!"

// Result is the settled outcome of one user-issued operation.
type Result struct {
	Intent   schema.Intent
	Status   schema.OperationStatus
	Contacts []schema.Contact
	Contact  *schema.Contact
	Message  string
}

// OK reports whether the operation confirmed successfully.
func (r Result) OK() bool {
	return r.Status == schema.StatusOK
}

// Orchestrator sequences user intents through the gateway and applies the
// confirmed results to the cache. Auth-expired outcomes are routed to the
// coordinator instead of being surfaced as errors.
type Orchestrator struct {
	gateway contract.Gateway
	cache   *ContactCache
	reauth  *ReauthCoordinator
}

// NewOrchestrator wires the orchestrator and registers its dispatch as the
// coordinator's replay target.
func NewOrchestrator(gateway contract.Gateway, cache *ContactCache, reauth *ReauthCoordinator) *Orchestrator {
	o := &Orchestrator{gateway: gateway, cache: cache, reauth: reauth}
	reauth.BindReplay(o.Dispatch)
	return o
}

// Cache exposes the contact cache for rendering.
func (o *Orchestrator) Cache() *ContactCache {
	return o.cache
}

// ListAll refreshes the cache from the server.
func (o *Orchestrator) ListAll(ctx context.Context) Result {
	return o.Dispatch(ctx, schema.NewListAllIntent())
}

// Add creates a contact. Both fields must be non-empty; an invalid add never
// reaches the gateway so the inputs stay available for correction.
func (o *Orchestrator) Add(ctx context.Context, name, phoneNumber string) Result {
	intent := schema.NewAddIntent(name, phoneNumber)
	if name == "" || phoneNumber == "" {
		return Result{Intent: intent, Status: schema.StatusFailed, Message: EmptyFieldsMessage}
	}
	return o.Dispatch(ctx, intent)
}

// Delete removes a contact by its opaque ID. Confirmation is the caller's
// concern.
func (o *Orchestrator) Delete(ctx context.Context, id string) Result {
	return o.Dispatch(ctx, schema.NewDeleteIntent(id))
}

// Dispatch performs one intent and settles it. The cache is only mutated
// from a confirmed success response: no optimistic application, no rollback.
// Dispatch is also the coordinator's replay target, so a replayed intent
// that expires again simply re-arms the challenge.
func (o *Orchestrator) Dispatch(ctx context.Context, intent schema.Intent) Result {
	out := o.gateway.Call(ctx, intent.Descriptor())

	switch out.Kind {
	case schema.OutcomeSuccess:
		return o.applyConfirmed(intent, out)
	case schema.OutcomeAuthExpired:
		o.reauth.Open(intent)
		return pendingResult(intent, "")
	default:
		return Result{
			Intent:  intent,
			Status:  schema.StatusFailed,
			Message: failureMessage(intent, out),
		}
	}
}

// applyConfirmed mutates the cache with the server-confirmed payload.
func (o *Orchestrator) applyConfirmed(intent schema.Intent, out schema.Outcome) Result {
	result := Result{Intent: intent, Status: schema.StatusOK}

	switch intent.Kind {
	case schema.IntentListAll:
		var contacts []schema.Contact
		if err := json.Unmarshal(out.Body, &contacts); err != nil {
			return Result{Intent: intent, Status: schema.StatusFailed, Message: failureMessage(intent, out)}
		}
		o.cache.ReplaceAll(contacts)
		result.Contacts = contacts
	case schema.IntentAdd:
		var contact schema.Contact
		if err := json.Unmarshal(out.Body, &contact); err != nil {
			return Result{Intent: intent, Status: schema.StatusFailed, Message: failureMessage(intent, out)}
		}
		o.cache.Insert(contact)
		result.Contact = &contact
	case schema.IntentDelete:
		o.cache.Remove(intent.ID)
	}

	return result
}

// failureMessage builds the short per-operation message shown to the user.
func failureMessage(intent schema.Intent, out schema.Outcome) string {
	var action string
	switch intent.Kind {
	case schema.IntentAdd:
		action = "add contact"
	case schema.IntentDelete:
		action = "delete contact"
	default:
		action = "fetch contacts"
	}

	if out.Message != "" {
		return fmt.Sprintf("Failed to %s: %s", action, out.Message)
	}
	return fmt.Sprintf("Failed to %s.", action)
}
