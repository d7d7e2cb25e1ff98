// Package ide implements the scoring grid of the IDE developmental
// screening questionnaire: item catalog types, score computation,
// risk classification and the automatic interpretation text.
//
// Everything in this package is pure: no database, no clock, no I/O.
// Persistence and lifecycle live in internal/service.
package ide

// Domain is a developmental skill area assessed by the questionnaire.
type Domain string

const (
	DomainSO   Domain = "SO"   // social
	DomainAU   Domain = "AU"   // autonomy
	DomainMG   Domain = "MG"   // gross motor
	DomainMF   Domain = "MF"   // fine motor
	DomainLEX  Domain = "LEX"  // expressive language
	DomainLCO  Domain = "LCO"  // language comprehension
	DomainLE   Domain = "LE"   // letter learning
	DomainNBRE Domain = "NBRE" // number learning
	DomainDG   Domain = "DG"   // general development composite
)

// domainNames maps domain codes to their French display names, as printed
// in reports and interpretation text.
var domainNames = map[Domain]string{
	DomainSO:   "Social",
	DomainAU:   "Autonomie",
	DomainMG:   "Moteur Global",
	DomainMF:   "Moteur Fin",
	DomainLEX:  "Langage Expressif",
	DomainLCO:  "Compréhension du Langage",
	DomainLE:   "Apprentissage des Lettres",
	DomainNBRE: "Apprentissage des Nombres",
	DomainDG:   "Développement Général",
}

// Domains lists every scored domain, DG included, in report order.
var Domains = []Domain{
	DomainSO, DomainAU, DomainMG, DomainMF,
	DomainLEX, DomainLCO, DomainLE, DomainNBRE, DomainDG,
}

// ProfileDomains lists the domains shown on the graphic profile,
// in report order. DG is a composite and is reported separately.
var ProfileDomains = []Domain{
	DomainSO, DomainAU, DomainMG, DomainMF,
	DomainLEX, DomainLCO, DomainLE, DomainNBRE,
}

// Valid reports whether d is a known domain code.
func (d Domain) Valid() bool {
	_, ok := domainNames[d]
	return ok
}

// Name returns the French display name, or the raw code when unknown.
func (d Domain) Name() string {
	if n, ok := domainNames[d]; ok {
		return n
	}
	return string(d)
}

// ValidForAge reports whether a domain is assessable at the given age.
// Letter and number learning only become meaningful from 48 months.
func (d Domain) ValidForAge(ageMonths int) bool {
	if (d == DomainLE || d == DomainNBRE) && ageMonths < 48 {
		return false
	}
	return d.Valid()
}

// Part is an age-banded section of the questionnaire.
type Part string

const (
	PartAP Part = "AP" // 15-18 months
	PartA  Part = "A"  // 18-24 months
	PartB  Part = "B"  // 24-36 months
	PartC  Part = "C"  // 36-48 months
	PartD  Part = "D"  // 48-60 months
	PartE  Part = "E"  // 60-72 months
)

// Parts lists the questionnaire parts in age progression order.
var Parts = []Part{PartAP, PartA, PartB, PartC, PartD, PartE}

var partNames = map[Part]string{
	PartAP: "Partie AP (15-18 mois)",
	PartA:  "Partie A (18-24 mois)",
	PartB:  "Partie B (24-36 mois)",
	PartC:  "Partie C (36-48 mois)",
	PartD:  "Partie D (48-60 mois)",
	PartE:  "Partie E (60-72 mois)",
}

// DGItemsPerPart is the expected distribution of DG-counting items per
// part, as printed on the official scoring grid.
var DGItemsPerPart = map[Part]int{
	PartA: 17,
	PartB: 12,
	PartC: 11,
	PartD: 6,
	PartE: 23,
}

// Valid reports whether p is a known part code.
func (p Part) Valid() bool {
	_, ok := partNames[p]
	return ok
}

// Name returns the display name of the part, or the raw code when unknown.
func (p Part) Name() string {
	if n, ok := partNames[p]; ok {
		return n
	}
	return string(p)
}

// TotalDGItems returns the number of DG-counting items on the full grid.
func TotalDGItems() int {
	total := 0
	for _, n := range DGItemsPerPart {
		total += n
	}
	return total
}
