package apiclient

import (
	"context"
	"encoding/json"

	"github.com/hellperdev/contactbook/schema"
)

// Auth endpoint paths.
const (
	loginPath    = "/auth/login"
	registerPath = "/auth/register"
)

// badTokenMessage is surfaced when the service answers 2xx without a token.
const badTokenMessage = "Login succeeded but the server did not return a token."

// ExchangeCredentials implements the Gateway interface. It posts the login
// form and decodes the fresh credential from the token response.
func (c *Client) ExchangeCredentials(ctx context.Context, login, password string) (schema.Credential, schema.Outcome) {
	return c.exchange(ctx, loginPath, login, password)
}

// RegisterAccount creates a new account and, like a login, yields a usable
// credential straight away.
func (c *Client) RegisterAccount(ctx context.Context, login, password string) (schema.Credential, schema.Outcome) {
	return c.exchange(ctx, registerPath, login, password)
}

func (c *Client) exchange(ctx context.Context, path, login, password string) (schema.Credential, schema.Outcome) {
	desc := schema.Descriptor{
		Method: "POST",
		Path:   path,
		Body:   schema.LoginRequest{Login: login, Password: password},
	}

	// Exchanges never carry a stale bearer token.
	out := c.call(ctx, desc, false)
	if !out.IsSuccess() {
		return schema.Credential{}, out
	}

	var resp schema.TokenResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil || resp.Bearer() == "" {
		return schema.Credential{}, schema.Outcome{
			Kind:       schema.OutcomeClientError,
			StatusCode: out.StatusCode,
			Message:    badTokenMessage,
		}
	}

	cred := schema.Credential{Token: resp.Bearer(), Login: login}
	if resp.User != nil && resp.User.Login != "" {
		cred.Login = resp.User.Login
	}
	return cred, out
}
