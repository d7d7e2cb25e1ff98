package ide

import (
	"errors"
	"testing"
)

func TestRiskThresholds(t *testing.T) {
	tests := []struct {
		name      string
		ageMonths int
		wantHR    int
		wantTHR   int
	}{
		{"30 months", 30, 26, 21},   // 25.5 rounds half-up
		{"24 months", 24, 20, 17},   // 20.4 -> 20, 16.8 -> 17
		{"48 months", 48, 41, 34},   // 40.8 -> 41, 33.6 -> 34
		{"18 months", 18, 15, 13},   // 15.3 -> 15, 12.6 -> 13
		{"72 months", 72, 61, 50},   // 61.2 -> 61, 50.4 -> 50
		{"zero age", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RiskThresholds(tt.ageMonths)
			if got.HighRisk != tt.wantHR {
				t.Errorf("RiskThresholds(%d).HighRisk = %d, want %d", tt.ageMonths, got.HighRisk, tt.wantHR)
			}
			if got.VeryHighRisk != tt.wantTHR {
				t.Errorf("RiskThresholds(%d).VeryHighRisk = %d, want %d", tt.ageMonths, got.VeryHighRisk, tt.wantTHR)
			}
		})
	}
}

func TestClassifyRisk(t *testing.T) {
	// Age 30 months: THR = 21, HR = 26, moderate ceiling = 28.5.
	ageMonths := 30
	th := RiskThresholds(ageMonths)

	tests := []struct {
		score int
		want  RiskLevel
	}{
		{0, RiskVeryHigh},
		{20, RiskVeryHigh},
		{21, RiskVeryHigh}, // boundary resolves to the worse tier
		{22, RiskHigh},
		{26, RiskHigh}, // boundary again
		{27, RiskModerate},
		{28, RiskModerate},
		{29, RiskLow}, // 29 >= 28.5
		{30, RiskLow},
		{35, RiskLow},
	}

	for _, tt := range tests {
		got := ClassifyRisk(tt.score, ageMonths, th)
		if got != tt.want {
			t.Errorf("ClassifyRisk(%d, %d) = %q, want %q", tt.score, ageMonths, got, tt.want)
		}
	}
}

func gridItems() []Item {
	return []Item{
		{Part: PartA, Domain: DomainSO, Order: 1, CountsDG: true, Active: true},
		{Part: PartA, Domain: DomainSO, Order: 2, CountsDG: false, Active: true},
		{Part: PartA, Domain: DomainMG, Order: 1, CountsDG: true, Active: true},
		{Part: PartB, Domain: DomainSO, Order: 1, CountsDG: true, Active: true},
		{Part: PartB, Domain: DomainLEX, Order: 1, CountsDG: false, Active: true},
		// Retired item: must never contribute, even when answered yes.
		{Part: PartB, Domain: DomainLEX, Order: 2, CountsDG: true, Active: false},
	}
}

func TestComputeScores(t *testing.T) {
	items := gridItems()
	answers := AnswerSet{
		"A:SO:1":  AnswerYes,
		"A:SO:2":  AnswerYes,
		"A:MG:1":  AnswerNo,
		"B:SO:1":  AnswerYes,
		"B:LEX:1": AnswerYes,
		"B:LEX:2": AnswerYes, // inactive item
	}

	scores, err := ComputeScores(items, answers, 30)
	if err != nil {
		t.Fatalf("ComputeScores() error = %v", err)
	}

	if got := scores[DomainSO].Score; got != 3 {
		t.Errorf("SO score = %d, want 3", got)
	}
	if got := scores[DomainSO].Parts[PartA]; got != 2 {
		t.Errorf("SO part A = %d, want 2", got)
	}
	if got := scores[DomainSO].Parts[PartB]; got != 1 {
		t.Errorf("SO part B = %d, want 1", got)
	}
	if got := scores[DomainMG].Score; got != 0 {
		t.Errorf("MG score = %d, want 0 (answered no)", got)
	}
	if got := scores[DomainLEX].Score; got != 1 {
		t.Errorf("LEX score = %d, want 1 (inactive item skipped)", got)
	}

	// DG counts only CountsDG items answered yes: A:SO:1 and B:SO:1.
	dg, ok := scores.DG()
	if !ok {
		t.Fatal("DG composite missing from score set")
	}
	if dg.Score != 2 {
		t.Errorf("DG score = %d, want 2", dg.Score)
	}

	// Every domain gets a result, answered or not.
	if len(scores) != len(Domains) {
		t.Errorf("score set has %d domains, want %d", len(scores), len(Domains))
	}

	// Thresholds carried onto every result.
	if got := scores[DomainSO].HighRiskThreshold; got != 26 {
		t.Errorf("SO HighRiskThreshold = %d, want 26", got)
	}
	if got := scores[DomainSO].AgeMonths; got != 30 {
		t.Errorf("SO AgeMonths = %d, want 30", got)
	}
}

func TestComputeScoresNoAnswers(t *testing.T) {
	_, err := ComputeScores(gridItems(), AnswerSet{}, 30)
	if !errors.Is(err, ErrNoAnswers) {
		t.Errorf("ComputeScores() error = %v, want ErrNoAnswers", err)
	}
}

func TestComputeScoresDeterministic(t *testing.T) {
	items := gridItems()
	answers := AnswerSet{"A:SO:1": AnswerYes, "B:SO:1": AnswerYes}

	first, err := ComputeScores(items, answers, 24)
	if err != nil {
		t.Fatalf("ComputeScores() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := ComputeScores(items, answers, 24)
		if err != nil {
			t.Fatalf("ComputeScores() error = %v", err)
		}
		for _, d := range Domains {
			if first[d].Score != again[d].Score || first[d].Risk != again[d].Risk {
				t.Fatalf("domain %s: run %d diverged: %+v vs %+v", d, i, first[d], again[d])
			}
		}
	}
}

func TestGraphicProfile(t *testing.T) {
	scores, err := ComputeScores(gridItems(), AnswerSet{"A:SO:1": AnswerYes}, 30)
	if err != nil {
		t.Fatalf("ComputeScores() error = %v", err)
	}

	profile := GraphicProfile(scores)
	if len(profile) != len(ProfileDomains) {
		t.Fatalf("profile has %d entries, want %d", len(profile), len(ProfileDomains))
	}
	for i, d := range ProfileDomains {
		if profile[i].Domain != d {
			t.Errorf("profile[%d].Domain = %q, want %q (report order)", i, profile[i].Domain, d)
		}
		if profile[i].Domain == DomainDG {
			t.Error("DG must not appear on the graphic profile")
		}
		if profile[i].Color == "" {
			t.Errorf("profile[%d] has no color", i)
		}
	}
}

func TestRiskLevelName(t *testing.T) {
	if got := RiskHigh.Name(); got != "Haut risque (HR)" {
		t.Errorf("RiskHigh.Name() = %q", got)
	}
	if got := RiskLevel("bogus").Name(); got != "Niveau indéterminé" {
		t.Errorf("unknown level Name() = %q", got)
	}
}
