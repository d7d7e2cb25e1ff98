package bilan

import "errors"

var (
	ErrBilanNotFound     = errors.New("bilan not found")
	ErrPassationNotFound = errors.New("passation not found")

	ErrPassationNotFinished = errors.New("bilan can only be generated from a finished passation")
	ErrBilanImmutable       = errors.New("bilan is finalized and can no longer be modified")
	ErrNotValidated         = errors.New("only a validated bilan can be finalized")
	ErrAccessDenied         = errors.New("bilan belongs to another practitioner")
	ErrDifferentPatients    = errors.New("bilans belong to different patients")
	ErrNoScores             = errors.New("passation has no computable scores")
)
