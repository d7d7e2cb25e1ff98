package ide

import (
	"strings"
	"testing"
)

// scoreSetWith builds a score set where every profile domain is low risk
// except the listed overrides. Age 30 months: THR=21, HR=26.
func scoreSetWith(overrides map[Domain]RiskLevel) ScoreSet {
	const age = 30
	th := RiskThresholds(age)

	scoreFor := func(r RiskLevel) int {
		switch r {
		case RiskVeryHigh:
			return th.VeryHighRisk
		case RiskHigh:
			return th.HighRisk
		case RiskModerate:
			return th.HighRisk + 1
		default:
			return age
		}
	}

	s := make(ScoreSet, len(Domains))
	for _, d := range Domains {
		risk := RiskLow
		if r, ok := overrides[d]; ok {
			risk = r
		}
		s[d] = DomainScore{
			Score:                 scoreFor(risk),
			HighRiskThreshold:     th.HighRisk,
			VeryHighRiskThreshold: th.VeryHighRisk,
			Risk:                  risk,
			AgeMonths:             age,
		}
	}
	return s
}

func TestStrengths(t *testing.T) {
	scores := scoreSetWith(map[Domain]RiskLevel{
		DomainMG:  RiskHigh,
		DomainLEX: RiskModerate,
	})

	strengths := Strengths(scores)
	// 8 profile domains minus MG (high) and LEX (moderate).
	if len(strengths) != 6 {
		t.Fatalf("got %d strengths, want 6: %+v", len(strengths), strengths)
	}
	for _, f := range strengths {
		if f.Domain == DomainMG || f.Domain == DomainLEX {
			t.Errorf("domain %s must not be a strength", f.Domain)
		}
		if f.Domain == DomainDG {
			t.Error("DG must not appear among strengths")
		}
	}
	// Report order preserved.
	if strengths[0].Domain != DomainSO {
		t.Errorf("first strength = %s, want SO", strengths[0].Domain)
	}
}

func TestWatchPoints(t *testing.T) {
	scores := scoreSetWith(map[Domain]RiskLevel{
		DomainMG:  RiskVeryHigh,
		DomainLCO: RiskHigh,
		DomainAU:  RiskModerate, // moderate is not a watch point
	})

	watch := WatchPoints(scores)
	if len(watch) != 2 {
		t.Fatalf("got %d watch points, want 2: %+v", len(watch), watch)
	}
	if watch[0].Domain != DomainMG {
		t.Errorf("first watch point = %s, want MG (report order)", watch[0].Domain)
	}
	if !strings.Contains(watch[0].Description, "Très haut risque") {
		t.Errorf("very high risk description = %q", watch[0].Description)
	}
	if watch[1].Domain != DomainLCO {
		t.Errorf("second watch point = %s, want LCO", watch[1].Domain)
	}
}

func TestInterpretation(t *testing.T) {
	scores := scoreSetWith(map[Domain]RiskLevel{
		DomainDG: RiskHigh,
		DomainMG: RiskHigh,
	})

	text := Interpretation(scores, 30)

	for _, fragment := range []string{
		"INTERPRÉTATION DES RÉSULTATS - TEST IDE",
		"2 ans 6 mois",
		"SCORE DE DÉVELOPPEMENT GÉNÉRAL (DG)",
		"Haut risque (HR)",
		"ANALYSE PAR DOMAINE :",
		"POINTS FORTS IDENTIFIÉS :",
		"POINTS DE VIGILANCE :",
		"RECOMMANDATIONS :",
		"Une surveillance étroite et une évaluation orthophonique sont recommandées.",
	} {
		if !strings.Contains(text, fragment) {
			t.Errorf("interpretation missing %q\n%s", fragment, text)
		}
	}

	// Deterministic output for identical input.
	if again := Interpretation(scores, 30); again != text {
		t.Error("interpretation is not deterministic")
	}
}

func TestRecommendation(t *testing.T) {
	tests := []struct {
		level    RiskLevel
		fragment string
	}{
		{RiskVeryHigh, "prise en charge précoce"},
		{RiskHigh, "surveillance étroite"},
		{RiskModerate, "points de vigilance"},
		{RiskLow, "adapté à l'âge"},
		{RiskLevel(""), "Évaluation complémentaire"},
	}

	for _, tt := range tests {
		if got := Recommendation(tt.level); !strings.Contains(got, tt.fragment) {
			t.Errorf("Recommendation(%q) = %q, missing %q", tt.level, got, tt.fragment)
		}
	}
}

func TestFormatAgeMonths(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{9, "9 mois"},
		{12, "1 an 0 mois"},
		{27, "2 ans 3 mois"},
		{48, "4 ans 0 mois"},
	}

	for _, tt := range tests {
		if got := FormatAgeMonths(tt.months); got != tt.want {
			t.Errorf("FormatAgeMonths(%d) = %q, want %q", tt.months, got, tt.want)
		}
	}
}
