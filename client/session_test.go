package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore(t.TempDir())

	sess := &Session{UserID: "abc123", Name: "Dilnoza", Phone: "+998901112233", IsAdmin: true, Token: "tok"}
	require.NoError(t, store.Save(sess))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, sess, loaded)
	assert.True(t, loaded.LoggedIn())
}

func TestSessionStoreLoadEmptySlot(t *testing.T) {
	store := NewSessionStore(t.TempDir())

	sess, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.False(t, sess.LoggedIn())
}

func TestSessionStoreClear(t *testing.T) {
	store := NewSessionStore(t.TempDir())
	require.NoError(t, store.Save(&Session{Token: "tok"}))

	require.NoError(t, store.Clear())

	sess, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, sess)

	// Clearing twice is fine.
	assert.NoError(t, store.Clear())
}
