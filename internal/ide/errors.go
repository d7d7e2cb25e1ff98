package ide

import "errors"

var (
	ErrInvalidItemKey = errors.New("invalid item key")
	ErrInvalidAnswer  = errors.New(`answer must be "yes" or "no"`)
	ErrNoAnswers      = errors.New("no answers recorded")
)
