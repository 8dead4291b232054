package core

import (
	"context"
	"testing"

	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/hellperdev/contactbook/internal/session"
	"github.com/hellperdev/contactbook/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// replaySpy records replay invocations so exactly-once behavior can be
// asserted.
type replaySpy struct {
	intents []schema.Intent
	result  Result
}

func (s *replaySpy) replay(_ context.Context, intent schema.Intent) Result {
	s.intents = append(s.intents, intent)
	return s.result
}

func newTestCoordinator(t *testing.T) (*ReauthCoordinator, *contract.MockGateway, *session.MemoryStore, *replaySpy) {
	t.Helper()
	gateway := &contract.MockGateway{}
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(schema.Credential{Token: "stale", Login: "ann@example.com"}))

	spy := &replaySpy{result: Result{Status: schema.StatusOK}}
	reauth := NewReauthCoordinator(gateway, store)
	reauth.BindReplay(spy.replay)
	return reauth, gateway, store, spy
}

func TestCoordinatorOpenCapturesLoginAndIntent(t *testing.T) {
	reauth, _, _, _ := newTestCoordinator(t)

	reauth.Open(schema.NewAddIntent("Cid", "+3"))

	assert.Equal(t, schema.ChallengeOpen, reauth.State())
	assert.Equal(t, "ann@example.com", reauth.Login())
	deferred, ok := reauth.Deferred()
	require.True(t, ok)
	assert.Equal(t, schema.IntentAdd, deferred.Kind)
	assert.Equal(t, "Cid", deferred.Name)
}

func TestCoordinatorSecondExpiryOverwritesDeferred(t *testing.T) {
	reauth, _, _, _ := newTestCoordinator(t)

	reauth.Open(schema.NewAddIntent("Cid", "+3"))
	reauth.Open(schema.NewDeleteIntent("7"))

	assert.Equal(t, schema.ChallengeOpen, reauth.State())
	deferred, ok := reauth.Deferred()
	require.True(t, ok)
	assert.Equal(t, schema.IntentDelete, deferred.Kind)
	assert.Equal(t, "7", deferred.ID)
}

func TestCoordinatorSubmitWithoutChallenge(t *testing.T) {
	reauth, _, _, _ := newTestCoordinator(t)

	_, err := reauth.Submit(context.Background(), "hunter2")
	assert.ErrorIs(t, err, ErrNoOpenChallenge)
}

func TestCoordinatorSubmitEmptyPasswordKeepsChallengeOpen(t *testing.T) {
	reauth, _, _, spy := newTestCoordinator(t)
	reauth.Open(schema.NewListAllIntent())

	result, err := reauth.Submit(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, schema.StatusPendingReauth, result.Status)
	assert.Equal(t, PasswordRequiredMessage, reauth.LastMessage())
	assert.Equal(t, schema.ChallengeOpen, reauth.State())
	assert.Empty(t, spy.intents)
}

func TestCoordinatorSubmitBadPasswordKeepsChallengeOpen(t *testing.T) {
	reauth, gateway, _, spy := newTestCoordinator(t)
	reauth.Open(schema.NewListAllIntent())

	gateway.On("ExchangeCredentials", mock.Anything, "ann@example.com", "wrong").
		Return(schema.Credential{}, schema.NewAuthExpiredOutcome()).Once()

	result, err := reauth.Submit(context.Background(), "wrong")
	require.NoError(t, err)

	assert.Equal(t, schema.StatusPendingReauth, result.Status)
	assert.Equal(t, BadPasswordMessage, reauth.LastMessage())
	assert.Equal(t, schema.ChallengeOpen, reauth.State())
	assert.Empty(t, spy.intents, "a failed exchange must not replay")

	// The deferred intent survives for the next attempt
	_, ok := reauth.Deferred()
	assert.True(t, ok)
	gateway.AssertExpectations(t)
}

func TestCoordinatorSubmitSuccessReplaysExactlyOnce(t *testing.T) {
	reauth, gateway, store, spy := newTestCoordinator(t)
	reauth.Open(schema.NewAddIntent("Cid", "+3"))

	fresh := schema.Credential{Token: "fresh", Login: "ann@example.com"}
	gateway.On("ExchangeCredentials", mock.Anything, "ann@example.com", "hunter2").
		Return(fresh, schema.NewSuccessOutcome(200, []byte(`{"token":"fresh"}`))).Once()

	result, err := reauth.Submit(context.Background(), "hunter2")
	require.NoError(t, err)

	assert.Equal(t, schema.StatusOK, result.Status)
	assert.Equal(t, schema.ChallengeIdle, reauth.State())
	_, ok := reauth.Deferred()
	assert.False(t, ok, "resolved challenge must drop its deferred intent")

	require.Len(t, spy.intents, 1, "deferred intent replays exactly once")
	assert.Equal(t, schema.IntentAdd, spy.intents[0].Kind)

	stored, ok, err := store.Get()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "fresh", stored.Token)
	gateway.AssertExpectations(t)
}

func TestCoordinatorAbandonClearsCredentialAndIntent(t *testing.T) {
	reauth, _, store, spy := newTestCoordinator(t)
	reauth.Open(schema.NewDeleteIntent("7"))

	require.NoError(t, reauth.Abandon())

	assert.Equal(t, schema.ChallengeAbandoned, reauth.State())
	_, ok := reauth.Deferred()
	assert.False(t, ok, "abandoned intent is discarded, never replayed")
	assert.Empty(t, spy.intents)

	_, ok, err := store.Get()
	require.NoError(t, err)
	assert.False(t, ok, "abandon forces logout")

	reauth.Reset()
	assert.Equal(t, schema.ChallengeIdle, reauth.State())
}
