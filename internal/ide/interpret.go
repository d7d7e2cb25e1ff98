package ide

import (
	"fmt"
	"strings"
)

// Finding is one strength or watch-point line of a report.
type Finding struct {
	Domain      Domain `json:"domain"`
	Description string `json:"description"`
}

// Strengths lists every non-DG domain at low risk, in report order.
func Strengths(scores ScoreSet) []Finding {
	var out []Finding
	for _, d := range ProfileDomains {
		ds, ok := scores[d]
		if !ok {
			continue
		}
		if ds.Risk == RiskLow {
			out = append(out, Finding{
				Domain:      d,
				Description: fmt.Sprintf("Développement adapté à l'âge en %s", d.Name()),
			})
		}
	}
	return out
}

// WatchPoints lists every non-DG domain at high or very high risk,
// in report order.
func WatchPoints(scores ScoreSet) []Finding {
	var out []Finding
	for _, d := range ProfileDomains {
		ds, ok := scores[d]
		if !ok {
			continue
		}
		switch ds.Risk {
		case RiskVeryHigh:
			out = append(out, Finding{
				Domain:      d,
				Description: fmt.Sprintf("Très haut risque identifié en %s", d.Name()),
			})
		case RiskHigh:
			out = append(out, Finding{
				Domain:      d,
				Description: fmt.Sprintf("Haut risque identifié en %s", d.Name()),
			})
		}
	}
	return out
}

// Interpretation generates the deterministic narrative attached to a
// report: header, DG headline, per-domain listing, strengths,
// watch-points and a closing recommendation keyed on the DG risk tier.
// The text is advisory output; nothing downstream computes on it.
func Interpretation(scores ScoreSet, ageMonths int) string {
	var b []string

	b = append(b,
		"INTERPRÉTATION DES RÉSULTATS - TEST IDE",
		fmt.Sprintf("Âge chronologique de l'enfant : %s", FormatAgeMonths(ageMonths)),
		"",
	)

	dg, _ := scores.DG()
	b = append(b,
		fmt.Sprintf("SCORE DE DÉVELOPPEMENT GÉNÉRAL (DG) : %d", dg.Score),
		fmt.Sprintf("Niveau de risque global : %s", dg.Risk.Name()),
		"",
		"ANALYSE PAR DOMAINE :",
	)

	for _, d := range ProfileDomains {
		ds, ok := scores[d]
		if !ok {
			continue
		}
		b = append(b, fmt.Sprintf("• %s : %d points - %s", d.Name(), ds.Score, ds.Risk.Name()))
	}
	b = append(b, "")

	if strengths := Strengths(scores); len(strengths) > 0 {
		b = append(b, "POINTS FORTS IDENTIFIÉS :")
		for _, f := range strengths {
			b = append(b, "• "+f.Description)
		}
		b = append(b, "")
	}

	if watch := WatchPoints(scores); len(watch) > 0 {
		b = append(b, "POINTS DE VIGILANCE :")
		for _, f := range watch {
			b = append(b, fmt.Sprintf("• %s : %s", f.Domain.Name(), scores[f.Domain].Risk.Name()))
		}
		b = append(b, "")
	}

	b = append(b, "RECOMMANDATIONS :", Recommendation(dg.Risk))

	return strings.Join(b, "\n")
}

// Recommendation returns the closing advice text for a global risk tier.
func Recommendation(global RiskLevel) string {
	switch global {
	case RiskVeryHigh:
		return "Le niveau de développement global indique un très haut risque. " +
			"Une évaluation orthophonique approfondie est fortement recommandée, " +
			"ainsi qu'une prise en charge précoce."
	case RiskHigh:
		return "Le niveau de développement global indique un haut risque. " +
			"Une surveillance étroite et une évaluation orthophonique sont recommandées."
	case RiskModerate:
		return "Le développement global présente quelques points de vigilance. " +
			"Un suivi régulier et des activités de stimulation ciblées sont conseillés."
	case RiskLow:
		return "Le développement global est adapté à l'âge. " +
			"Continuer à stimuler l'enfant dans ses apprentissages quotidiens."
	default:
		return "Évaluation complémentaire recommandée pour préciser le niveau de développement."
	}
}

// FormatAgeMonths renders an age like "2 ans 3 mois" or "9 mois".
func FormatAgeMonths(months int) string {
	years := months / 12
	rest := months % 12

	if years > 0 {
		plural := ""
		if years > 1 {
			plural = "s"
		}
		return fmt.Sprintf("%d an%s %d mois", years, plural, rest)
	}
	return fmt.Sprintf("%d mois", months)
}
