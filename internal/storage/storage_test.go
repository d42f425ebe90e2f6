package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"mem":  NewMemStore(),
		"disk": NewDiskStore(t.TempDir()),
	}
}

func TestStore_SetGetRemove(t *testing.T) {
	ctx := context.Background()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok := s.Get(ctx, "missing")
			require.False(t, ok)

			require.NoError(t, s.Set(ctx, "k", `{"a":1}`))
			got, ok := s.Get(ctx, "k")
			require.True(t, ok)
			require.Equal(t, `{"a":1}`, got)

			require.NoError(t, s.Set(ctx, "k", "v2"))
			got, ok = s.Get(ctx, "k")
			require.True(t, ok)
			require.Equal(t, "v2", got)

			require.NoError(t, s.Remove(ctx, "k"))
			_, ok = s.Get(ctx, "k")
			require.False(t, ok)
		})
	}
}

func TestStore_RemoveAbsentKeyIsNoError(t *testing.T) {
	ctx := context.Background()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Remove(ctx, "never-written"))
		})
	}
}

func TestDiskStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s := NewDiskStore(dir)
	require.NoError(t, s.Set(ctx, "moodmate_user", `{"id":"u1"}`))

	reopened := NewDiskStore(dir)
	got, ok := reopened.Get(ctx, "moodmate_user")
	require.True(t, ok)
	require.Equal(t, `{"id":"u1"}`, got)
}
