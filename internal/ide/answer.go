package ide

import "fmt"

// Answer is the two-valued response domain of the questionnaire. Any other
// encoding (the legacy numeric AJAX one included) must be translated at
// the HTTP boundary before reaching this package.
type Answer string

const (
	AnswerYes Answer = "yes"
	AnswerNo  Answer = "no"
)

// Valid reports whether a is one of the two accepted values.
func (a Answer) Valid() bool {
	return a == AnswerYes || a == AnswerNo
}

// ParseAnswer validates a raw answer value.
func ParseAnswer(s string) (Answer, error) {
	a := Answer(s)
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAnswer, s)
	}
	return a, nil
}

// AnswerSet maps item key tokens to recorded answers. It is the shape
// persisted on a passation's answers JSON column.
type AnswerSet map[string]Answer

// Counts returns the number of yes and no answers in the set.
func (s AnswerSet) Counts() (yes, no int) {
	for _, a := range s {
		switch a {
		case AnswerYes:
			yes++
		case AnswerNo:
			no++
		}
	}
	return yes, no
}
