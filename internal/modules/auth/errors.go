package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidToken       = errors.New("invalid or expired verification token")
	ErrAccountInactive    = errors.New("account not verified yet")
	ErrAccountSuspended   = errors.New("account suspended")
)
