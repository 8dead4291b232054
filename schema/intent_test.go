package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntentDescriptor(t *testing.T) {
	tests := []struct {
		name       string
		intent     Intent
		wantMethod string
		wantPath   string
		wantBody   any
	}{
		{
			name:       "list all",
			intent:     NewListAllIntent(),
			wantMethod: "GET",
			wantPath:   "/contacts",
			wantBody:   nil,
		},
		{
			name:       "add",
			intent:     NewAddIntent("Ann", "+1"),
			wantMethod: "POST",
			wantPath:   "/contacts",
			wantBody:   ContactRequest{Name: "Ann", PhoneNumber: "+1"},
		},
		{
			name:       "delete",
			intent:     NewDeleteIntent("42"),
			wantMethod: "DELETE",
			wantPath:   "/contacts/42",
			wantBody:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.intent.Descriptor()
			assert.Equal(t, tt.wantMethod, d.Method)
			assert.Equal(t, tt.wantPath, d.Path)
			assert.Equal(t, tt.wantBody, d.Body)
		})
	}
}

// An intent must survive a serialization round trip unchanged so that a
// deferred operation replays verbatim after re-authentication.
func TestIntentRoundTrip(t *testing.T) {
	original := NewAddIntent("Cid", "+3")

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored Intent
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, original, restored)
	assert.Equal(t, original.Descriptor(), restored.Descriptor())
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "list_all", NewListAllIntent().String())
	assert.Equal(t, "add(Bob, +2)", NewAddIntent("Bob", "+2").String())
	assert.Equal(t, "delete(1)", NewDeleteIntent("1").String())
}
