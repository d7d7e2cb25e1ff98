package ide

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeInMonths(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		ref   time.Time
		want  int
	}{
		{"exactly two years", date(2022, time.March, 15), date(2024, time.March, 15), 24},
		{"day before month anniversary", date(2022, time.March, 15), date(2024, time.March, 14), 23},
		{"partial month does not count", date(2023, time.January, 31), date(2023, time.March, 1), 1},
		{"same day", date(2023, time.June, 1), date(2023, time.June, 1), 0},
		{"ref before birth", date(2024, time.January, 1), date(2023, time.January, 1), 0},
		{"thirty months", date(2021, time.September, 10), date(2024, time.March, 10), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeInMonths(tt.birth, tt.ref); got != tt.want {
				t.Errorf("AgeInMonths() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDurationMinutes(t *testing.T) {
	base := date(2024, time.May, 2)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"45 minutes", base, base.Add(45 * time.Minute), 45},
		{"hour and a half", base, base.Add(90 * time.Minute), 90},
		{"seconds discarded", base, base.Add(12*time.Minute + 59*time.Second), 12},
		{"end before start", base.Add(time.Hour), base, 0},
		{"zero duration", base, base, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DurationMinutes(tt.start, tt.end); got != tt.want {
				t.Errorf("DurationMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEstimateDevelopmentalAge(t *testing.T) {
	tests := []struct {
		name    string
		dgScore int
		age     int
		want    int
	}{
		{"score below ceiling", 20, 30, 20},
		{"score at ceiling", 36, 30, 36},
		{"score capped", 50, 30, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateDevelopmentalAge(tt.dgScore, tt.age); got != tt.want {
				t.Errorf("EstimateDevelopmentalAge(%d, %d) = %d, want %d", tt.dgScore, tt.age, got, tt.want)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		answered int
		expected int
		want     int
	}{
		{"none answered", 0, 200, 0},
		{"half answered", 100, 200, 50},
		{"rounds half-up", 1, 3, 33},
		{"rounds up", 2, 3, 67},
		{"complete", 200, 200, 100},
		{"clamped above 100", 250, 200, 100},
		{"zero expected", 50, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.answered, tt.expected); got != tt.want {
				t.Errorf("Progress(%d, %d) = %d, want %d", tt.answered, tt.expected, got, tt.want)
			}
		})
	}
}
