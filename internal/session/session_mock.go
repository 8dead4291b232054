package session

import (
	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/hellperdev/contactbook/schema"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of CredentialStore for testing.
type MockStore struct {
	mock.Mock
}

var _ contract.CredentialStore = &MockStore{} // Compile-time check

// Get implements the CredentialStore interface.
func (m *MockStore) Get() (schema.Credential, bool, error) {
	args := m.Called()
	return args.Get(0).(schema.Credential), args.Bool(1), args.Error(2)
}

// Set implements the CredentialStore interface.
func (m *MockStore) Set(cred schema.Credential) error {
	args := m.Called(cred)
	return args.Error(0)
}

// Clear implements the CredentialStore interface.
func (m *MockStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Status implements the CredentialStore interface.
func (m *MockStore) Status() (schema.SessionStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.SessionStatus), args.Error(1)
}

// Close implements the CredentialStore interface.
func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
