package ide

import "math"

// RiskLevel classifies a domain score against the age-derived thresholds.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
)

var riskNames = map[RiskLevel]string{
	RiskLow:      "Faible risque",
	RiskModerate: "Risque modéré",
	RiskHigh:     "Haut risque (HR)",
	RiskVeryHigh: "Très haut risque (THR)",
}

// Name returns the French display label of the level.
func (r RiskLevel) Name() string {
	if n, ok := riskNames[r]; ok {
		return n
	}
	return "Niveau indéterminé"
}

// Color returns the hex color used for this level on the graphic profile.
func (r RiskLevel) Color() string {
	switch r {
	case RiskLow:
		return "#10B981"
	case RiskModerate:
		return "#F59E0B"
	case RiskHigh:
		return "#EF4444"
	case RiskVeryHigh:
		return "#DC2626"
	default:
		return "#6B7280"
	}
}

// Thresholds holds the age-derived cut-offs of the grid.
type Thresholds struct {
	HighRisk     int `json:"high_risk"`
	VeryHighRisk int `json:"very_high_risk"`
}

// RiskThresholds derives the cut-offs for a chronological age:
// HR = round(age * 0.85), THR = round(age * 0.70), half-up rounding.
func RiskThresholds(ageMonths int) Thresholds {
	return Thresholds{
		HighRisk:     int(math.Round(float64(ageMonths) * 0.85)),
		VeryHighRisk: int(math.Round(float64(ageMonths) * 0.70)),
	}
}

// ClassifyRisk places a domain total on the risk scale. Boundary scores
// resolve to the worse tier (<=, not <).
func ClassifyRisk(score, ageMonths int, t Thresholds) RiskLevel {
	switch {
	case score <= t.VeryHighRisk:
		return RiskVeryHigh
	case score <= t.HighRisk:
		return RiskHigh
	case float64(score) < float64(ageMonths)*0.95:
		return RiskModerate
	default:
		return RiskLow
	}
}

// DomainScore is the computed result for a single domain.
type DomainScore struct {
	Score                 int          `json:"score"`
	Parts                 map[Part]int `json:"parts"`
	HighRiskThreshold     int          `json:"high_risk_threshold"`
	VeryHighRiskThreshold int          `json:"very_high_risk_threshold"`
	Risk                  RiskLevel    `json:"risk"`
	AgeMonths             int          `json:"age_months"`
}

// ScoreSet maps each domain, the DG composite included, to its result.
type ScoreSet map[Domain]DomainScore

// DG returns the general-development composite result.
func (s ScoreSet) DG() (DomainScore, bool) {
	dg, ok := s[DomainDG]
	return dg, ok
}

// ComputeScores reduces a sparse answer set to per-domain scores and risk
// tiers. An item with no recorded answer contributes zero; completeness is
// the consistency validator's concern, not an error here. Inactive items
// are skipped.
func ComputeScores(items []Item, answers AnswerSet, ageMonths int) (ScoreSet, error) {
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}

	// Zero counter for every (domain x part) cell, DG included.
	grid := make(map[Domain]map[Part]int, len(Domains))
	for _, d := range Domains {
		cells := make(map[Part]int, len(Parts))
		for _, p := range Parts {
			cells[p] = 0
		}
		grid[d] = cells
	}

	for _, it := range items {
		if !it.Active {
			continue
		}
		if answers[it.Key().String()] != AnswerYes {
			continue
		}
		if cells, ok := grid[it.Domain]; ok {
			cells[it.Part]++
		}
		if it.CountsDG {
			grid[DomainDG][it.Part]++
		}
	}

	thresholds := RiskThresholds(ageMonths)

	result := make(ScoreSet, len(Domains))
	for _, d := range Domains {
		total := 0
		for _, n := range grid[d] {
			total += n
		}
		result[d] = DomainScore{
			Score:                 total,
			Parts:                 grid[d],
			HighRiskThreshold:     thresholds.HighRisk,
			VeryHighRiskThreshold: thresholds.VeryHighRisk,
			Risk:                  ClassifyRisk(total, ageMonths, thresholds),
			AgeMonths:             ageMonths,
		}
	}

	return result, nil
}

// ProfileEntry is one row of the graphic profile shown on a report.
type ProfileEntry struct {
	Domain                Domain    `json:"domain"`
	Name                  string    `json:"name"`
	Score                 int       `json:"score"`
	HighRiskThreshold     int       `json:"high_risk_threshold"`
	VeryHighRiskThreshold int       `json:"very_high_risk_threshold"`
	Risk                  RiskLevel `json:"risk"`
	Color                 string    `json:"color"`
}

// GraphicProfile builds the ordered per-domain display records for the
// report chart. DG is excluded: it has its own headline figure.
func GraphicProfile(scores ScoreSet) []ProfileEntry {
	profile := make([]ProfileEntry, 0, len(ProfileDomains))
	for _, d := range ProfileDomains {
		ds, ok := scores[d]
		if !ok {
			continue
		}
		profile = append(profile, ProfileEntry{
			Domain:                d,
			Name:                  d.Name(),
			Score:                 ds.Score,
			HighRiskThreshold:     ds.HighRiskThreshold,
			VeryHighRiskThreshold: ds.VeryHighRiskThreshold,
			Risk:                  ds.Risk,
			Color:                 ds.Risk.Color(),
		})
	}
	return profile
}
