package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPhone       = errors.New("invalid phone number for the specified region")
	ErrEmailAlreadyExists = errors.New("email address is already in use")
	ErrNotAdmin           = errors.New("operation requires an admin account")
)
