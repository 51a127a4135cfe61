package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltStoreRoundTrip(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "session.db")

	store, err := NewBoltStore(dbFile)
	require.NoError(t, err)

	sess := Session{
		Token:     "tok-abc",
		UserName:  "Desk Admin",
		UserEmail: "admin@newsdesk.example",
		Roles:     []string{"super-admin", "editor"},
	}
	require.NoError(t, store.Save(sess))
	require.NoError(t, store.Close())

	// reopen: the session must survive a process restart
	store, err = NewBoltStore(dbFile)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, "tok-abc", store.Token())

	got, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, sess, got, "roles round-trip through their serialized form")
}

func TestBoltStoreClear(t *testing.T) {
	store, err := NewBoltStore(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(Session{Token: "tok"}))
	require.NoError(t, store.Clear())

	assert.Empty(t, store.Token())
	_, err = store.Current()
	assert.ErrorIs(t, err, ErrAuthenticationRequired)

	// clearing an already-empty store is fine
	assert.NoError(t, store.Clear())
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()

	assert.Empty(t, store.Token())
	_, err := store.Current()
	assert.ErrorIs(t, err, ErrAuthenticationRequired)

	require.NoError(t, store.Save(Session{Token: "tok", Roles: []string{"editor"}}))
	assert.Equal(t, "tok", store.Token())

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Token())
}

func TestRequireToken(t *testing.T) {
	store := NewMemStore()
	assert.ErrorIs(t, RequireToken(store), ErrAuthenticationRequired)

	require.NoError(t, store.Save(Session{Token: "tok"}))
	assert.NoError(t, RequireToken(store))
}

func TestExpiresAt(t *testing.T) {
	// opaque (non-JWT) tokens report no expiry rather than an error
	_, ok := ExpiresAt("just-an-opaque-string")
	assert.False(t, ok)

	// header {"alg":"none"} / claims {"exp": 4102444800} (2100-01-01), unsigned
	jwtToken := "eyJhbGciOiJub25lIn0.eyJleHAiOjQxMDI0NDQ4MDB9."
	exp, ok := ExpiresAt(jwtToken)
	require.True(t, ok)
	assert.Equal(t, int64(4102444800), exp.Unix())
}
