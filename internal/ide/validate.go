package ide

import (
	"fmt"
	"math"
)

// AnswerStats summarizes the yes/no distribution of an answer set.
type AnswerStats struct {
	Total    int     `json:"total_answers"`
	Yes      int     `json:"yes_answers"`
	No       int     `json:"no_answers"`
	YesRatio float64 `json:"yes_ratio"` // percentage, one decimal
}

// ConsistencyReport is the advisory result of validating an answer set
// before report generation. Warnings never invalidate; only the
// completeness error does.
type ConsistencyReport struct {
	Valid    bool        `json:"valid"`
	Errors   []string    `json:"errors"`
	Warnings []string    `json:"warnings"`
	Stats    AnswerStats `json:"stats"`
}

// ValidateConsistency checks the yes/no ratio and the completeness of an
// answer set against the number of items applicable at the child's age.
// A yes ratio above 95% or below 5% produces a warning; fewer answers
// than 80% of the applicable items is an error ("incomplete passation").
func ValidateConsistency(answers AnswerSet, applicableItems int) ConsistencyReport {
	yes, no := answers.Counts()
	total := yes + no

	report := ConsistencyReport{
		Stats: AnswerStats{Total: total, Yes: yes, No: no},
	}

	if total > 0 {
		ratio := float64(yes) / float64(total)
		report.Stats.YesRatio = math.Round(ratio*1000) / 10

		if ratio > 0.95 {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"Très peu de réponses 'non' (%d). Vérifier la compréhension des questions.", no))
		} else if ratio < 0.05 {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"Très peu de réponses 'oui' (%d). Vérifier l'âge de l'enfant ou la compréhension des questions.", yes))
		}
	}

	if applicableItems > 0 && float64(total) < float64(applicableItems)*0.8 {
		report.Errors = append(report.Errors, fmt.Sprintf(
			"Passation incomplète : %d réponses sur %d attendues.", total, applicableItems))
	}

	report.Valid = len(report.Errors) == 0
	return report
}
