// Package users manages the collection of registered accounts. The whole
// directory is persisted as one JSON array in the record store, mirroring
// how the application keeps all of its state in flat keyed records.
package users

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"moodmate/internal/models"
	"moodmate/internal/storage"
)

const accountsKey = "moodmate_users"

type Directory struct {
	store storage.Store
	now   func() time.Time
}

func NewDirectory(store storage.Store) *Directory {
	return &Directory{store: store, now: time.Now}
}

// load reads the full directory. A missing or undecodable record yields an
// empty directory.
func (d *Directory) load(ctx context.Context) []models.Account {
	raw, ok := d.store.Get(ctx, accountsKey)
	if !ok {
		return nil
	}
	var accounts []models.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil
	}
	return accounts
}

func (d *Directory) save(ctx context.Context, accounts []models.Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encoding account directory: %w", err)
	}
	return d.store.Set(ctx, accountsKey, string(data))
}

// Register creates a new account from the candidate data. The email must
// not already be present; on conflict the directory is left unchanged and
// ErrEmailTaken is returned. IDs are random UUIDs, so concurrent
// registrations cannot collide.
func (d *Directory) Register(ctx context.Context, reg models.Registration) (*models.Account, error) {
	accounts := d.load(ctx)

	for _, a := range accounts {
		if a.Email == reg.Email {
			return nil, ErrEmailTaken
		}
	}

	account := models.Account{
		ID:        uuid.NewString(),
		Email:     reg.Email,
		Secret:    reg.Secret,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Age:       reg.Age,
		GenderTag: reg.GenderTag,
		CreatedAt: d.now(),
	}

	accounts = append(accounts, account)
	if err := d.save(ctx, accounts); err != nil {
		return nil, err
	}
	return &account, nil
}

// Authenticate scans for an account matching both email and secret.
// Wrong email and wrong secret produce the same ErrInvalidCredentials.
func (d *Directory) Authenticate(ctx context.Context, email, secret string) (*models.Account, error) {
	for _, a := range d.load(ctx) {
		if a.Email != email {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(a.Secret), []byte(secret)) == 1 {
			found := a
			return &found, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Update applies the non-nil fields of patch to the account with the given
// id and persists the directory. Identity fields (id, email) cannot be
// patched.
func (d *Directory) Update(ctx context.Context, id string, patch models.AccountPatch) (*models.Account, error) {
	accounts := d.load(ctx)

	for i, a := range accounts {
		if a.ID != id {
			continue
		}
		if patch.FirstName != nil {
			a.FirstName = *patch.FirstName
		}
		if patch.LastName != nil {
			a.LastName = *patch.LastName
		}
		if patch.Age != nil {
			a.Age = *patch.Age
		}
		if patch.GenderTag != nil {
			a.GenderTag = *patch.GenderTag
		}
		accounts[i] = a
		if err := d.save(ctx, accounts); err != nil {
			return nil, err
		}
		return &a, nil
	}
	return nil, ErrNotFound
}
