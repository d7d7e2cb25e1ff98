package passation

import "errors"

var (
	ErrPassationNotFound    = errors.New("passation not found")
	ErrPrescriptionNotFound = errors.New("prescription not found")

	// State machine violations. All detected before any mutation.
	ErrActivePassationExists     = errors.New("an active passation already exists for this prescription")
	ErrPrescriptionNotStartable  = errors.New("prescription cannot be started (wrong status or missing GDPR consent)")
	ErrNotSuspendable            = errors.New("only an in-progress passation can be suspended")
	ErrNotResumable              = errors.New("only a suspended passation can be resumed")
	ErrNotFinishable             = errors.New("only an active passation can be finished")
	ErrAlreadyTerminated         = errors.New("passation is already finished or abandoned")
	ErrWrongTestKind             = errors.New("scores can only be computed for IDE tests")
)
