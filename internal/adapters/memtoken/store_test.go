package memtoken

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/rentaride/rentaride/internal/ports"
)

func TestStore_SaveLoadClear(t *testing.T) {
	store := New()
	ctx := context.Background()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrNoToken)

	require.NoError(t, store.Save(ctx, &oauth2.Token{AccessToken: "t1"}))
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", got.AccessToken)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrNoToken)
}

func TestStore_CopiesTokens(t *testing.T) {
	store := New()
	ctx := context.Background()

	tok := &oauth2.Token{AccessToken: "t1"}
	require.NoError(t, store.Save(ctx, tok))
	tok.AccessToken = "mutated"

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", got.AccessToken)

	// Mutating the loaded copy must not leak back into the slot.
	got.AccessToken = "mutated again"
	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", again.AccessToken)
}
