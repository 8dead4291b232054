package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hellperdev/contactbook/internal/session"
	"github.com/hellperdev/contactbook/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeCredentials(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		body      string
		wantKind  schema.OutcomeKind
		wantToken string
		wantLogin string
	}{
		{
			name:      "token field",
			status:    http.StatusOK,
			body:      `{"token":"jwt-abc"}`,
			wantKind:  schema.OutcomeSuccess,
			wantToken: "jwt-abc",
			wantLogin: "ann@example.com",
		},
		{
			name:      "access_token field",
			status:    http.StatusOK,
			body:      `{"access_token":"jwt-def"}`,
			wantKind:  schema.OutcomeSuccess,
			wantToken: "jwt-def",
			wantLogin: "ann@example.com",
		},
		{
			name:      "user login overrides submitted login",
			status:    http.StatusOK,
			body:      `{"token":"jwt-abc","user":{"login":"ann.b@example.com"}}`,
			wantKind:  schema.OutcomeSuccess,
			wantToken: "jwt-abc",
			wantLogin: "ann.b@example.com",
		},
		{
			name:     "missing token",
			status:   http.StatusOK,
			body:     `{"user":{"login":"ann"}}`,
			wantKind: schema.OutcomeClientError,
		},
		{
			name:     "rejected credentials",
			status:   http.StatusUnauthorized,
			body:     `{"message":"Invalid credentials"}`,
			wantKind: schema.OutcomeAuthExpired,
		},
		{
			name:     "server failure",
			status:   http.StatusInternalServerError,
			body:     `boom`,
			wantKind: schema.OutcomeServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var gotPath string
			var gotReq schema.LoginRequest
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}), session.NewMemoryStore())

			cred, outcome := client.ExchangeCredentials(context.Background(), "ann@example.com", "hunter2")
			assert.Equal(t, "/auth/login", gotPath)
			assert.Equal(t, "ann@example.com", gotReq.Login)
			assert.Equal(t, "hunter2", gotReq.Password)
			assert.Equal(t, tc.wantKind, outcome.Kind)
			if tc.wantKind == schema.OutcomeSuccess {
				assert.Equal(t, tc.wantToken, cred.Token)
				assert.Equal(t, tc.wantLogin, cred.Login)
			}
		})
	}
}

func TestExchangeDoesNotSendBearer(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(schema.Credential{Token: "stale", Login: "ann"}))

	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"token":"jwt-new"}`))
	}), store)

	_, outcome := client.ExchangeCredentials(context.Background(), "ann", "hunter2")
	require.Equal(t, schema.OutcomeSuccess, outcome.Kind)
	assert.Empty(t, gotAuth, "a stale token must not ride along on a login exchange")
}

func TestRegisterAccount(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"token":"jwt-new"}`))
	}), session.NewMemoryStore())

	cred, outcome := client.RegisterAccount(context.Background(), "ann@example.com", "hunter2")
	assert.Equal(t, "/auth/register", gotPath)
	assert.Equal(t, schema.OutcomeSuccess, outcome.Kind)
	assert.Equal(t, "jwt-new", cred.Token)
}

func TestExchangeNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}), session.NewMemoryStore())
	client.baseURL = srv.URL

	_, outcome := client.ExchangeCredentials(context.Background(), "ann", "hunter2")
	assert.Equal(t, schema.OutcomeNetworkError, outcome.Kind)
}
