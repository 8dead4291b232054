package core

import (
	"context"
	"errors"

	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/hellperdev/contactbook/schema"
)

// User-facing recovery messages.
const (
	PasswordRequiredMessage = "Password must not be empty."
	BadPasswordMessage      = "Invalid credentials. Please try again."
)

// ErrNoOpenChallenge is returned by Submit when no challenge is awaiting
// a password.
var ErrNoOpenChallenge = errors.New("no open re-auth challenge")

// ReplayFunc re-issues a deferred intent after a successful exchange. The
// coordinator invokes it exactly once per resolved challenge.
type ReplayFunc func(ctx context.Context, intent schema.Intent) Result

// ReauthCoordinator owns the credential-expiry recovery state machine. It
// holds the single deferred intent, drives the password exchange through the
// gateway, and replays the intent once the store has a fresh credential.
//
// All cross-call retry state in the system lives here. The gateway stays
// stateless per call and the orchestrator only routes outcomes.
type ReauthCoordinator struct {
	gateway contract.Gateway
	store   contract.CredentialStore
	replay  ReplayFunc

	state    schema.ChallengeState
	deferred *schema.Intent
	login    string
	message  string
}

// NewReauthCoordinator returns an idle coordinator. BindReplay must be called
// before the first challenge can resolve.
func NewReauthCoordinator(gateway contract.Gateway, store contract.CredentialStore) *ReauthCoordinator {
	return &ReauthCoordinator{
		gateway: gateway,
		store:   store,
		state:   schema.ChallengeIdle,
	}
}

// BindReplay wires the orchestrator's dispatch back into the coordinator.
// Split from the constructor because the two components reference each other.
func (r *ReauthCoordinator) BindReplay(replay ReplayFunc) {
	r.replay = replay
}

// State returns the current challenge state.
func (r *ReauthCoordinator) State() schema.ChallengeState {
	return r.state
}

// Deferred returns the intent awaiting replay, if any.
func (r *ReauthCoordinator) Deferred() (schema.Intent, bool) {
	if r.deferred == nil {
		return schema.Intent{}, false
	}
	return *r.deferred, true
}

// Login returns the account identity the challenge will re-authenticate.
// Empty when no credential was stored at the time the challenge opened.
func (r *ReauthCoordinator) Login() string {
	return r.login
}

// LastMessage returns the most recent validation or exchange failure message.
func (r *ReauthCoordinator) LastMessage() string {
	return r.message
}

// Open records an auth-expired intent and arms the challenge. A second
// expiry while a challenge is already open overwrites the deferred intent,
// so only the most recent operation is replayed.
func (r *ReauthCoordinator) Open(intent schema.Intent) {
	r.state = schema.ChallengeOpen
	r.deferred = &intent
	r.message = ""

	if cred, ok, err := r.store.Get(); err == nil && ok {
		r.login = cred.Login
	}
}

// Submit exchanges the password for a fresh credential and, on success,
// replays the deferred intent exactly once. Exchange failures keep the
// challenge open for another attempt; only storage faults surface as errors.
func (r *ReauthCoordinator) Submit(ctx context.Context, password string) (Result, error) {
	if r.state != schema.ChallengeOpen {
		return Result{}, ErrNoOpenChallenge
	}

	intent, ok := r.Deferred()
	if !ok {
		return Result{}, ErrNoOpenChallenge
	}

	if password == "" {
		r.message = PasswordRequiredMessage
		return pendingResult(intent, r.message), nil
	}

	r.state = schema.ChallengeExchanging
	cred, out := r.gateway.ExchangeCredentials(ctx, r.login, password)
	if !out.IsSuccess() {
		r.state = schema.ChallengeOpen
		r.message = out.Message
		if r.message == "" {
			r.message = BadPasswordMessage
		}
		return pendingResult(intent, r.message), nil
	}

	if err := r.store.Set(cred); err != nil {
		r.state = schema.ChallengeOpen
		return Result{}, err
	}

	// Settle the challenge before the replay runs so a second expiry during
	// the replay opens a fresh challenge instead of corrupting this one.
	r.state = schema.ChallengeResolved
	r.deferred = nil
	r.message = ""
	r.state = schema.ChallengeIdle

	return r.replay(ctx, intent), nil
}

// Abandon cancels the challenge, clears the stored credential, and discards
// the deferred intent. The caller is expected to drop back to an
// unauthenticated flow.
func (r *ReauthCoordinator) Abandon() error {
	r.state = schema.ChallengeAbandoned
	r.deferred = nil
	r.message = ""
	return r.store.Clear()
}

// Reset returns the coordinator to idle, discarding any open challenge and
// its deferred intent. The stored credential is untouched.
func (r *ReauthCoordinator) Reset() {
	r.state = schema.ChallengeIdle
	r.deferred = nil
	r.login = ""
	r.message = ""
}

func pendingResult(intent schema.Intent, message string) Result {
	return Result{
		Intent:  intent,
		Status:  schema.StatusPendingReauth,
		Message: message,
	}
}
