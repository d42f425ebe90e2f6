package models

import "time"

// Account is a registered user as stored in the account directory.
// Secret is the opaque password value; it is kept only in the directory
// record and must be stripped before an account is persisted as the
// current session.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Secret    string    `json:"password,omitempty"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Age       int       `json:"age"`
	GenderTag string    `json:"gender"`
	CreatedAt time.Time `json:"createdAt"`
}

// Sanitized returns a copy of the account with the secret removed.
func (a Account) Sanitized() Account {
	a.Secret = ""
	return a
}

// Registration carries the fields a new account is created from.
type Registration struct {
	Email     string
	Secret    string
	FirstName string
	LastName  string
	Age       int
	GenderTag string
}

// AccountPatch lists the fields a profile edit may change. Nil fields are
// left untouched. ID and email are deliberately absent: the id is stable
// and the email carries the uniqueness invariant.
type AccountPatch struct {
	FirstName *string
	LastName  *string
	Age       *int
	GenderTag *string
}
