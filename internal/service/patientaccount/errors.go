package patientaccount

import "errors"

var (
	ErrPatientNotFound  = errors.New("patient not found")
	ErrAccessDenied     = errors.New("patient is followed by another practitioner")
	ErrAlreadyActivated = errors.New("account is already activated")
	ErrTokenInvalid     = errors.New("activation token is invalid")
	ErrTokenExpired     = errors.New("activation token has expired")
	ErrTokenUsed        = errors.New("activation token has already been used")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")

	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrNotActivated       = errors.New("account is not activated")
	ErrAccountLocked      = errors.New("account temporarily locked due to repeated login failures")
)
