package schema

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The service speaks camelCase field names and opaque string ids. Both
// directions of the wire format are pinned here so a tag change cannot
// silently drop fields against the real service.
func TestContactWireFormat(t *testing.T) {
	payload, err := json.Marshal(ContactRequest{Name: "Bob", PhoneNumber: "+2"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Bob","phoneNumber":"+2"}`, string(payload))

	var contacts []Contact
	require.NoError(t, json.Unmarshal([]byte(`[{"id":"1","name":"Ann","phoneNumber":"+1"}]`), &contacts))
	require.Len(t, contacts, 1)
	assert.Equal(t, "1", contacts[0].ID)
	assert.Equal(t, "+1", contacts[0].PhoneNumber)
}

func TestTokenResponseBearer(t *testing.T) {
	tests := []struct {
		name string
		resp TokenResponse
		want string
	}{
		{name: "canonical field", resp: TokenResponse{Token: "abc"}, want: "abc"},
		{name: "legacy field", resp: TokenResponse{AccessToken: "xyz"}, want: "xyz"},
		{name: "canonical wins", resp: TokenResponse{Token: "abc", AccessToken: "xyz"}, want: "abc"},
		{name: "empty", resp: TokenResponse{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.resp.Bearer())
		})
	}
}

func TestOutcomeClassificationHelpers(t *testing.T) {
	ok := NewSuccessOutcome(http.StatusOK, []byte(`[]`))
	assert.Equal(t, OutcomeSuccess, ok.Kind)
	assert.True(t, ok.IsSuccess())

	expired := NewAuthExpiredOutcome()
	assert.Equal(t, OutcomeAuthExpired, expired.Kind)
	assert.Equal(t, http.StatusUnauthorized, expired.StatusCode)
	assert.Empty(t, expired.Message, "auth expiry is never shown as a raw error")

	srv := NewServerErrorOutcome(http.StatusBadGateway)
	assert.Equal(t, OutcomeServerError, srv.Kind)
	assert.Equal(t, ServerErrorMessage, srv.Message)

	net := NewNetworkErrorOutcome(nil)
	assert.Equal(t, OutcomeNetworkError, net.Kind)
	assert.Zero(t, net.StatusCode)
}

func TestClientErrorOutcomeMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "server message surfaced", body: `{"message":"phone number already exists"}`, want: "phone number already exists"},
		{name: "generic on empty body", body: "", want: "Request rejected (status 409)."},
		{name: "generic on malformed body", body: "<html>", want: "Request rejected (status 409)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewClientErrorOutcome(http.StatusConflict, []byte(tt.body))
			assert.Equal(t, OutcomeClientError, out.Kind)
			assert.Equal(t, tt.want, out.Message)
		})
	}
}
