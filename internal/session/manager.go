// Package session tracks the single currently-authenticated user. The
// session is a sanitized copy of an account (no secret) persisted under its
// own record-store key, so it survives restarts of the application.
package session

import (
	"context"
	"encoding/json"
	"errors"

	"moodmate/internal/models"
	"moodmate/internal/storage"
	"moodmate/internal/users"
)

const sessionKey = "moodmate_user"

// ErrAnonymous is returned by operations that require a logged-in user.
var ErrAnonymous = errors.New("not logged in")

// Manager owns the current session. It has two states: anonymous (Current
// returns nil) and authenticated. State changes are applied to the record
// store and the in-memory copy together, or not at all.
type Manager struct {
	store     storage.Store
	directory *users.Directory
	current   *models.Account
}

func NewManager(store storage.Store, directory *users.Directory) *Manager {
	return &Manager{store: store, directory: directory}
}

// Restore hydrates the session from the persisted record. A missing or
// malformed record leaves the manager anonymous; the broken record is
// removed so it is not reparsed on every start.
func (m *Manager) Restore(ctx context.Context) {
	raw, ok := m.store.Get(ctx, sessionKey)
	if !ok {
		return
	}
	var account models.Account
	if err := json.Unmarshal([]byte(raw), &account); err != nil || account.ID == "" {
		_ = m.store.Remove(ctx, sessionKey)
		return
	}
	m.current = &account
}

// Login authenticates against the directory and, on success, persists the
// sanitized account as the session record. On failure the current state is
// untouched.
func (m *Manager) Login(ctx context.Context, email, secret string) error {
	account, err := m.directory.Authenticate(ctx, email, secret)
	if err != nil {
		return err
	}
	return m.setCurrent(ctx, account.Sanitized())
}

// Register creates the account and immediately logs it in.
func (m *Manager) Register(ctx context.Context, reg models.Registration) error {
	account, err := m.directory.Register(ctx, reg)
	if err != nil {
		return err
	}
	return m.setCurrent(ctx, account.Sanitized())
}

// Logout clears the persisted session record and returns to anonymous.
// Logging out while anonymous is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Remove(ctx, sessionKey); err != nil {
		return err
	}
	m.current = nil
	return nil
}

// UpdateProfile patches the logged-in account in the directory and keeps
// the persisted session record in step with it.
func (m *Manager) UpdateProfile(ctx context.Context, patch models.AccountPatch) (*models.Account, error) {
	if m.current == nil {
		return nil, ErrAnonymous
	}
	account, err := m.directory.Update(ctx, m.current.ID, patch)
	if err != nil {
		return nil, err
	}
	sanitized := account.Sanitized()
	if err := m.setCurrent(ctx, sanitized); err != nil {
		return nil, err
	}
	return &sanitized, nil
}

// Current returns the logged-in account without its secret, or nil when
// anonymous.
func (m *Manager) Current() *models.Account {
	return m.current
}

func (m *Manager) LoggedIn() bool {
	return m.current != nil
}

func (m *Manager) setCurrent(ctx context.Context, account models.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}
	if err := m.store.Set(ctx, sessionKey, string(data)); err != nil {
		return err
	}
	m.current = &account
	return nil
}
