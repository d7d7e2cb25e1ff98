package prescription

import "errors"

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrTestNotFound         = errors.New("test not found")

	ErrAccessDenied    = errors.New("prescription belongs to another practitioner")
	ErrPatientNotOwned = errors.New("patient is followed by another practitioner")
	ErrAgeOutOfRange   = errors.New("patient age is outside the test's age range")
	ErrNotCancellable  = errors.New("a validated prescription cannot be cancelled")
	ErrNotEditable     = errors.New("only a pending prescription can be edited")
)
