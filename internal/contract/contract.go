// Package contract provides interfaces and shared utilities for the contactbook CLI's internal architecture.
package contract

import (
	"context"

	"github.com/hellperdev/contactbook/schema"
)

// CredentialStore is the process-wide holder of the bearer credential. It is
// passed explicitly to every component that issues remote calls so that the
// dependency stays visible and can be faked in tests.
type CredentialStore interface {
	// Get returns the persisted credential. The second return is false when
	// no credential is stored. A structurally corrupt persisted record reads
	// as absent and is cleared as a side effect.
	Get() (schema.Credential, bool, error)

	// Set overwrites the persisted credential. Globally observable by every
	// subsequent gateway call in the same process.
	Set(cred schema.Credential) error

	// Clear removes the persisted and in-memory credential.
	Clear() error

	// Status returns status information about the session store.
	Status() (schema.SessionStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// Gateway performs and classifies a single remote call. It is stateless per
// call and performs no retries; retry policy lives entirely above it.
type Gateway interface {
	// Call executes the descriptor with the current credential attached when
	// one exists, and classifies the result.
	Call(ctx context.Context, desc schema.Descriptor) schema.Outcome

	// ExchangeCredentials performs the login exchange and returns the fresh
	// credential on success. The outcome carries the failure classification
	// otherwise.
	ExchangeCredentials(ctx context.Context, login, password string) (schema.Credential, schema.Outcome)

	// RegisterAccount creates a new account and yields a usable credential
	// on success, mirroring the login exchange.
	RegisterAccount(ctx context.Context, login, password string) (schema.Credential, schema.Outcome)
}

// PasswordPrompter supplies passwords for the interactive re-auth flow.
// abort reports an explicit user cancellation (EOF on the terminal).
type PasswordPrompter interface {
	ReadPassword(prompt string) (value string, abort bool, err error)
}
