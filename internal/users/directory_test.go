package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"moodmate/internal/models"
	"moodmate/internal/storage"
)

func reg(email string) models.Registration {
	return models.Registration{
		Email:     email,
		Secret:    "pass",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Age:       28,
		GenderTag: "f",
	}
}

func TestRegister_DistinctEmailsGrowDirectory(t *testing.T) {
	ctx := context.Background()
	d := NewDirectory(storage.NewMemStore())

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	seen := map[string]bool{}

	for i, email := range emails {
		account, err := d.Register(ctx, reg(email))
		require.NoError(t, err)
		require.NotEmpty(t, account.ID)
		require.False(t, seen[account.ID], "id %q assigned twice", account.ID)
		seen[account.ID] = true
		require.Len(t, d.load(ctx), i+1)
	}
}

func TestRegister_DuplicateEmailFailsWithoutMutation(t *testing.T) {
	ctx := context.Background()
	d := NewDirectory(storage.NewMemStore())

	first, err := d.Register(ctx, reg("dup@example.com"))
	require.NoError(t, err)

	_, err = d.Register(ctx, reg("dup@example.com"))
	require.ErrorIs(t, err, ErrEmailTaken)

	accounts := d.load(ctx)
	require.Len(t, accounts, 1)
	require.Equal(t, first.ID, accounts[0].ID)
}

func TestAuthenticate_ExactPairOnly(t *testing.T) {
	ctx := context.Background()
	d := NewDirectory(storage.NewMemStore())

	_, err := d.Register(ctx, reg("user@example.com"))
	require.NoError(t, err)

	account, err := d.Authenticate(ctx, "user@example.com", "pass")
	require.NoError(t, err)
	require.Equal(t, "user@example.com", account.Email)

	// Wrong secret and unknown email yield the same outcome.
	_, err = d.Authenticate(ctx, "user@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = d.Authenticate(ctx, "nobody@example.com", "pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_EmptyDirectory(t *testing.T) {
	ctx := context.Background()
	d := NewDirectory(storage.NewMemStore())

	_, err := d.Authenticate(ctx, "user@example.com", "pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdate_PatchesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	d := NewDirectory(storage.NewMemStore())

	account, err := d.Register(ctx, reg("user@example.com"))
	require.NoError(t, err)

	name := "Grace"
	age := 31
	updated, err := d.Update(ctx, account.ID, models.AccountPatch{FirstName: &name, Age: &age})
	require.NoError(t, err)
	require.Equal(t, "Grace", updated.FirstName)
	require.Equal(t, 31, updated.Age)
	require.Equal(t, "Lovelace", updated.LastName)
	require.Equal(t, account.Email, updated.Email)
	require.Equal(t, account.ID, updated.ID)

	// Persisted, not just returned.
	fromStore, err := d.Authenticate(ctx, "user@example.com", "pass")
	require.NoError(t, err)
	require.Equal(t, "Grace", fromStore.FirstName)
}

func TestUpdate_UnknownID(t *testing.T) {
	ctx := context.Background()
	d := NewDirectory(storage.NewMemStore())

	name := "X"
	_, err := d.Update(ctx, "no-such-id", models.AccountPatch{FirstName: &name})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_CorruptDirectoryTreatedAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStore()
	require.NoError(t, store.Set(ctx, accountsKey, "{not json"))

	d := NewDirectory(store)
	require.Empty(t, d.load(ctx))

	// And registration starts from scratch over the corrupt record.
	_, err := d.Register(ctx, reg("fresh@example.com"))
	require.NoError(t, err)
	require.Len(t, d.load(ctx), 1)
}
