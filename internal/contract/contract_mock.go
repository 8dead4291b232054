package contract

import (
	"context"

	"github.com/hellperdev/contactbook/schema"
	"github.com/stretchr/testify/mock"
)

// MockGateway is a mock implementation of Gateway for testing.
type MockGateway struct {
	mock.Mock
}

var _ Gateway = &MockGateway{} // Compile-time check

// Call implements the Gateway interface.
func (m *MockGateway) Call(ctx context.Context, desc schema.Descriptor) schema.Outcome {
	args := m.Called(ctx, desc)
	return args.Get(0).(schema.Outcome)
}

// ExchangeCredentials implements the Gateway interface.
func (m *MockGateway) ExchangeCredentials(ctx context.Context, login, password string) (schema.Credential, schema.Outcome) {
	args := m.Called(ctx, login, password)
	return args.Get(0).(schema.Credential), args.Get(1).(schema.Outcome)
}

// RegisterAccount implements the Gateway interface.
func (m *MockGateway) RegisterAccount(ctx context.Context, login, password string) (schema.Credential, schema.Outcome) {
	args := m.Called(ctx, login, password)
	return args.Get(0).(schema.Credential), args.Get(1).(schema.Outcome)
}

// MockPrompter is a scripted PasswordPrompter for testing.
type MockPrompter struct {
	mock.Mock
}

var _ PasswordPrompter = &MockPrompter{} // Compile-time check

// ReadPassword implements the PasswordPrompter interface.
func (m *MockPrompter) ReadPassword(prompt string) (string, bool, error) {
	args := m.Called(prompt)
	return args.String(0), args.Bool(1), args.Error(2)
}
