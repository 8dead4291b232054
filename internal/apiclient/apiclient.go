// Package apiclient is the gateway for all calls to the remote contacts service.
//
// The gateway attaches the current credential, performs exactly one HTTP
// round trip per call, and classifies the response. It holds no cross-call
// state: retry and recovery policy belong to the core package.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/hellperdev/contactbook/schema"
)

// maxResponseBytes bounds how much of a response body the gateway will read.
const maxResponseBytes = 4 << 20

// Client performs classified calls against the contacts API.
type Client struct {
	baseURL string
	http    *http.Client
	creds   contract.CredentialStore
}

var _ contract.Gateway = &Client{} // Compile-time check

// New returns a gateway bound to the configured base URL and session store.
func New(cfg *contract.Config, creds contract.CredentialStore) *Client {
	return &Client{
		baseURL: cfg.BaseURL.String(),
		http:    &http.Client{Timeout: cfg.Timeout},
		creds:   creds,
	}
}

// Call implements the Gateway interface. A transport failure classifies as a
// network error; a received response classifies by status code, with 401 as
// the single auth-expired trigger.
func (c *Client) Call(ctx context.Context, desc schema.Descriptor) schema.Outcome {
	return c.call(ctx, desc, true)
}

func (c *Client) call(ctx context.Context, desc schema.Descriptor, withAuth bool) schema.Outcome {
	req, err := c.newRequest(ctx, desc, withAuth)
	if err != nil {
		return schema.NewNetworkErrorOutcome(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// No response reached us at all.
		return schema.NewNetworkErrorOutcome(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return schema.NewNetworkErrorOutcome(err)
	}

	return classify(resp.StatusCode, body)
}

// newRequest builds the HTTP request for a descriptor, attaching the bearer
// credential when the store holds one and sending unauthenticated otherwise.
func (c *Client) newRequest(ctx context.Context, desc schema.Descriptor, withAuth bool) (*http.Request, error) {
	var reqBody io.Reader
	if desc.Body != nil {
		payload, err := json.Marshal(desc.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, desc.Method, c.baseURL+desc.Path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if withAuth {
		cred, ok, err := c.creds.Get()
		if err != nil {
			return nil, fmt.Errorf("failed to read credential: %w", err)
		}
		if ok {
			req.Header.Set("Authorization", "Bearer "+cred.Token)
		}
	}

	return req, nil
}

// classify maps a received response onto the outcome taxonomy.
func classify(statusCode int, body []byte) schema.Outcome {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return schema.NewSuccessOutcome(statusCode, body)
	case statusCode == http.StatusUnauthorized:
		return schema.NewAuthExpiredOutcome()
	case statusCode >= 400 && statusCode < 500:
		return schema.NewClientErrorOutcome(statusCode, body)
	default:
		return schema.NewServerErrorOutcome(statusCode)
	}
}
