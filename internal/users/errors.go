package users

import "errors"

var (
	// ErrEmailTaken is returned by Register when an account with the same
	// email already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned by Authenticate for a wrong email
	// and for a wrong secret alike, so the caller cannot tell which part
	// failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound is returned by Update for an unknown account id.
	ErrNotFound = errors.New("account not found")
)
