//go:build basic

package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVersionCommand verifies the binary runs at all.
func TestVersionCommand(t *testing.T) {
	output, err := runContactbook(t, nil, "", "version")
	require.NoError(t, err)
	assert.Contains(t, output, "contactbook CLI")
}

// TestSessionLifecycle drives login, mutations, and logout end to end
// against the stub service with a sqlite session store.
func TestSessionLifecycle(t *testing.T) {
	_, env := startStubService(t)

	// Not logged in yet
	output, _ := runContactbook(t, env, "", "session", "status")
	assert.Contains(t, output, "Authenticated: false")

	// Login stores the session
	output, err := runContactbook(t, env, "secret\n", "login", "ann@example.com")
	require.NoError(t, err)
	assert.Contains(t, output, "Logged in as ann@example.com")

	output, err = runContactbook(t, env, "", "whoami")
	require.NoError(t, err)
	assert.Contains(t, output, "ann@example.com")

	output, _ = runContactbook(t, env, "", "session", "status")
	assert.Contains(t, output, "Authenticated: true")
	assert.Contains(t, output, "ann@example.com")

	// Mutations round-trip through the service
	output, err = runContactbook(t, env, "", "add", "Ann Smith", "+1 555 0100")
	require.NoError(t, err)
	assert.Contains(t, output, "Added Ann Smith")

	output, err = runContactbook(t, env, "", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "Ann Smith")
	assert.Contains(t, output, "Showing 1 contacts")

	output, err = runContactbook(t, env, "", "delete", "1", "--yes")
	require.NoError(t, err)
	assert.Contains(t, output, "Deleted contact 1")

	output, err = runContactbook(t, env, "", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "Showing 0 contacts")

	// Logout drops the session
	_, err = runContactbook(t, env, "", "logout")
	require.NoError(t, err)

	output, _ = runContactbook(t, env, "", "session", "status")
	assert.Contains(t, output, "Authenticated: false")
}

// TestExpiredSessionRecovery forces a credential expiry and verifies the
// interactive password prompt replays the suspended operation.
func TestExpiredSessionRecovery(t *testing.T) {
	svc, env := startStubService(t)

	_, err := runContactbook(t, env, "secret\n", "login", "ann@example.com")
	require.NoError(t, err)

	_, err = runContactbook(t, env, "", "add", "Bob", "+2")
	require.NoError(t, err)

	// Invalidate the stored token server-side, then list. The binary should
	// prompt for the password on stdin and finish the listing after re-auth.
	svc.ExpireSession()

	output, err := runContactbook(t, env, "secret\n", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "Session expired")
	assert.Contains(t, output, "Bob")
}

// TestExpiredSessionWrongThenRightPassword verifies the prompt loops on a
// rejected password instead of failing.
func TestExpiredSessionWrongThenRightPassword(t *testing.T) {
	svc, env := startStubService(t)

	_, err := runContactbook(t, env, "secret\n", "login", "ann@example.com")
	require.NoError(t, err)
	svc.ExpireSession()

	output, err := runContactbook(t, env, "wrong\nsecret\n", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "Invalid credentials")
	assert.Contains(t, output, "Showing 0 contacts")
}

// TestExportParquet writes the listing to a parquet file.
func TestExportParquet(t *testing.T) {
	_, env := startStubService(t)

	_, err := runContactbook(t, env, "secret\n", "login", "ann@example.com")
	require.NoError(t, err)
	_, err = runContactbook(t, env, "", "add", "Ann", "+1")
	require.NoError(t, err)

	outputFile := filepath.Join(t.TempDir(), "contacts.parquet")
	output, err := runContactbook(t, env, "", "export", "--output", "parquet", "--output-file", outputFile)
	require.NoError(t, err)
	assert.Contains(t, output, "Wrote 1 contacts")
	assert.FileExists(t, outputFile)
}

// TestAddValidation checks the client-side validation message.
func TestAddValidation(t *testing.T) {
	_, env := startStubService(t)

	_, err := runContactbook(t, env, "secret\n", "login", "ann@example.com")
	require.NoError(t, err)

	output, err := runContactbook(t, env, "", "add", "", "+1")
	require.Error(t, err)
	assert.Contains(t, output, "Please fill in both name and phone!")
}
