package session

import (
	"time"

	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/hellperdev/contactbook/schema"
)

// MemoryStore holds the credential for the lifetime of the process only.
// It backs the "none" session backend and doubles as a fake in tests.
type MemoryStore struct {
	slots     map[string]string
	updatedAt time.Time
}

var _ contract.CredentialStore = &MemoryStore{} // Compile-time check

// NewMemoryStore returns an empty in-memory credential store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string]string)}
}

// Get implements the CredentialStore interface.
func (m *MemoryStore) Get() (schema.Credential, bool, error) {
	return readSlots(m.getSlot, m.Clear)
}

// Set implements the CredentialStore interface.
func (m *MemoryStore) Set(cred schema.Credential) error {
	account, err := encodeAccount(cred)
	if err != nil {
		return err
	}
	m.slots[slotToken] = cred.Token
	m.slots[slotAccount] = account
	m.updatedAt = time.Now()
	return nil
}

// Clear implements the CredentialStore interface.
func (m *MemoryStore) Clear() error {
	delete(m.slots, slotToken)
	delete(m.slots, slotAccount)
	return nil
}

// Status implements the CredentialStore interface.
func (m *MemoryStore) Status() (schema.SessionStatus, error) {
	status := schema.SessionStatus{
		Backend:   string(schema.NoneBackend),
		Connected: true,
	}
	cred, ok, err := m.Get()
	if err != nil || !ok {
		return status, err
	}
	status.Authenticated = true
	status.Login = cred.Login
	status.UpdatedAt = m.updatedAt
	return status, nil
}

// Close implements the CredentialStore interface.
func (m *MemoryStore) Close() error {
	return nil
}

// SeedCorrupt stores a token next to an unparseable account record. Tests use
// it to simulate corrupt persisted state.
func (m *MemoryStore) SeedCorrupt(token string) {
	m.slots[slotToken] = token
	m.slots[slotAccount] = "{not json"
}

func (m *MemoryStore) getSlot(key string) (string, bool, error) {
	value, ok := m.slots[key]
	return value, ok, nil
}
