package tokenfile

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/rentaride/rentaride/internal/ports"
)

func TestStore_SaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "token.json")
	store := New(path)
	ctx := context.Background()

	tok := &oauth2.Token{AccessToken: "t1", TokenType: "Bearer"}
	require.NoError(t, store.Save(ctx, tok))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", got.AccessToken)
	assert.Equal(t, "Bearer", got.TokenType)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrNoToken)
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "token.json"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ports.ErrNoToken)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := New(path).Load(context.Background())
	assert.ErrorIs(t, err, ports.ErrNoToken)
}

func TestStore_LoadEmptyToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"access_token":""}`), 0o600))

	_, err := New(path).Load(context.Background())
	assert.ErrorIs(t, err, ports.ErrNoToken)
}

func TestStore_SaveRejectsEmptyToken(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "token.json"))
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, nil))
	assert.Error(t, store.Save(ctx, &oauth2.Token{}))
}

func TestStore_ClearIdempotent(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "token.json"))
	ctx := context.Background()

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
}

func TestStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	path := filepath.Join(t.TempDir(), "state", "token.json")
	store := New(path)
	require.NoError(t, store.Save(context.Background(), &oauth2.Token{AccessToken: "t1"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "token.json"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &oauth2.Token{AccessToken: "old"}))
	require.NoError(t, store.Save(ctx, &oauth2.Token{AccessToken: "new"}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", got.AccessToken)
}
