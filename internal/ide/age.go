package ide

import "time"

// AgeInMonths computes a chronological age as whole calendar months
// between birth and ref: years*12 + months of the calendar interval.
// Days inside a partial month do not count.
func AgeInMonths(birth, ref time.Time) int {
	if ref.Before(birth) {
		return 0
	}

	years := ref.Year() - birth.Year()
	months := int(ref.Month()) - int(birth.Month())
	if ref.Day() < birth.Day() {
		months--
	}

	total := years*12 + months
	if total < 0 {
		return 0
	}
	return total
}

// DurationMinutes computes a session duration as whole-hours*60 plus the
// remaining whole minutes, matching the grid's duration bookkeeping.
// Seconds below a full minute are discarded.
func DurationMinutes(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	d := end.Sub(start)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return hours*60 + minutes
}

// EstimateDevelopmentalAge derives the estimated developmental age from
// the DG score, capped at 6 months ahead of the chronological age.
// Placeholder heuristic carried over from the paper grid workflow, not a
// normed statistical estimate.
func EstimateDevelopmentalAge(dgScore, chronologicalAgeMonths int) int {
	ceiling := chronologicalAgeMonths + 6
	if dgScore < ceiling {
		return dgScore
	}
	return ceiling
}

// Progress computes the completion percentage of a session from the
// number of recorded answers and the expected item count, clamped to 100.
func Progress(answered, expectedItems int) int {
	if expectedItems <= 0 {
		return 0
	}
	p := int(float64(answered)/float64(expectedItems)*100 + 0.5)
	if p > 100 {
		return 100
	}
	return p
}
