package ide

import (
	"errors"
	"testing"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		raw     string
		want    Answer
		wantErr bool
	}{
		{"yes", AnswerYes, false},
		{"no", AnswerNo, false},
		{"oui", "", true}, // translation happens before this package
		{"1", "", true},
		{"YES", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseAnswer(tt.raw)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidAnswer) {
				t.Errorf("ParseAnswer(%q) error = %v, want ErrInvalidAnswer", tt.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAnswer(%q) error = %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAnswer(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestAnswerSetCounts(t *testing.T) {
	s := AnswerSet{
		"A:SO:1": AnswerYes,
		"A:SO:2": AnswerYes,
		"A:MG:1": AnswerNo,
	}
	yes, no := s.Counts()
	if yes != 2 || no != 1 {
		t.Errorf("Counts() = (%d, %d), want (2, 1)", yes, no)
	}
}

func yesHeavySet(yes, no int) AnswerSet {
	s := make(AnswerSet, yes+no)
	order := 1
	for i := 0; i < yes; i++ {
		s[ItemKey{PartA, DomainSO, order}.String()] = AnswerYes
		order++
	}
	for i := 0; i < no; i++ {
		s[ItemKey{PartA, DomainSO, order}.String()] = AnswerNo
		order++
	}
	return s
}

func TestValidateConsistency(t *testing.T) {
	tests := []struct {
		name         string
		answers      AnswerSet
		applicable   int
		wantValid    bool
		wantWarnings int
		wantErrors   int
	}{
		{
			name:       "balanced and complete",
			answers:    yesHeavySet(60, 40),
			applicable: 100,
			wantValid:  true,
		},
		{
			name:         "almost all yes",
			answers:      yesHeavySet(98, 2),
			applicable:   100,
			wantValid:    true,
			wantWarnings: 1,
		},
		{
			name:         "almost all no",
			answers:      yesHeavySet(2, 98),
			applicable:   100,
			wantValid:    true,
			wantWarnings: 1,
		},
		{
			name:       "incomplete passation",
			answers:    yesHeavySet(30, 30),
			applicable: 100,
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:       "exactly at 80 percent",
			answers:    yesHeavySet(40, 40),
			applicable: 100,
			wantValid:  true,
		},
		{
			name:       "unknown applicable count skips completeness",
			answers:    yesHeavySet(5, 5),
			applicable: 0,
			wantValid:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := ValidateConsistency(tt.answers, tt.applicable)
			if report.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v (errors: %v)", report.Valid, tt.wantValid, report.Errors)
			}
			if len(report.Warnings) != tt.wantWarnings {
				t.Errorf("got %d warnings %v, want %d", len(report.Warnings), report.Warnings, tt.wantWarnings)
			}
			if len(report.Errors) != tt.wantErrors {
				t.Errorf("got %d errors %v, want %d", len(report.Errors), report.Errors, tt.wantErrors)
			}
		})
	}
}

func TestValidateConsistencyStats(t *testing.T) {
	report := ValidateConsistency(yesHeavySet(2, 1), 0)
	if report.Stats.Total != 3 || report.Stats.Yes != 2 || report.Stats.No != 1 {
		t.Errorf("Stats = %+v", report.Stats)
	}
	if report.Stats.YesRatio != 66.7 {
		t.Errorf("YesRatio = %v, want 66.7", report.Stats.YesRatio)
	}
}
