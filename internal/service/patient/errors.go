package patient

import "errors"

var (
	ErrPatientNotFound  = errors.New("patient not found")
	ErrEmailTaken       = errors.New("guardian email is already registered")
	ErrAccessDenied     = errors.New("patient is followed by another practitioner")
	ErrInvalidPhone     = errors.New("guardian phone number is not valid")
	ErrInvalidBirthDate = errors.New("birth date must be in the past")
)
