package ide

import (
	"fmt"
	"strconv"
	"strings"
)

// ItemKey identifies an item within the grid by its (part, domain, order)
// coordinates. The string form is "PART:DOMAIN:ORDER", e.g. "A:SO:12",
// and is the map key under which answers are recorded.
type ItemKey struct {
	Part   Part
	Domain Domain
	Order  int
}

// String renders the canonical token form of the key.
func (k ItemKey) String() string {
	return fmt.Sprintf("%s:%s:%d", k.Part, k.Domain, k.Order)
}

// ParseItemKey parses and validates a "PART:DOMAIN:ORDER" token.
func ParseItemKey(s string) (ItemKey, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return ItemKey{}, fmt.Errorf("%w: %q", ErrInvalidItemKey, s)
	}

	k := ItemKey{Part: Part(parts[0]), Domain: Domain(parts[1])}
	if !k.Part.Valid() {
		return ItemKey{}, fmt.Errorf("%w: unknown part %q", ErrInvalidItemKey, parts[0])
	}
	if !k.Domain.Valid() || k.Domain == DomainDG {
		return ItemKey{}, fmt.Errorf("%w: unknown domain %q", ErrInvalidItemKey, parts[1])
	}

	order, err := strconv.Atoi(parts[2])
	if err != nil || order < 1 {
		return ItemKey{}, fmt.Errorf("%w: bad order %q", ErrInvalidItemKey, parts[2])
	}
	k.Order = order

	return k, nil
}

// Item is one question of the grid. Items are immutable reference data:
// they are created by catalog seeding and never mutated by the scoring path.
type Item struct {
	Part     Part   `json:"part"`
	Domain   Domain `json:"domain"`
	Order    int    `json:"order"`
	Text     string `json:"text"`
	CountsDG bool   `json:"counts_dg"`

	// Applicability window, inclusive. Zero means open on that side.
	AgeMinMonths int `json:"age_min_months,omitempty"`
	AgeMaxMonths int `json:"age_max_months,omitempty"`

	Active bool `json:"active"`
}

// Key returns the identity key under which this item's answer is stored.
func (i Item) Key() ItemKey {
	return ItemKey{Part: i.Part, Domain: i.Domain, Order: i.Order}
}

// AppliesToAge reports whether the item falls inside its applicability
// window for a child of the given age.
func (i Item) AppliesToAge(ageMonths int) bool {
	if i.AgeMinMonths > 0 && ageMonths < i.AgeMinMonths {
		return false
	}
	if i.AgeMaxMonths > 0 && ageMonths > i.AgeMaxMonths {
		return false
	}
	return true
}

// ApplicableCount counts the active items applicable at the given age.
func ApplicableCount(items []Item, ageMonths int) int {
	n := 0
	for _, it := range items {
		if it.Active && it.AppliesToAge(ageMonths) {
			n++
		}
	}
	return n
}
