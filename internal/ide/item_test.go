package ide

import (
	"errors"
	"testing"
)

func TestParseItemKey(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    ItemKey
		wantErr bool
	}{
		{"valid key", "A:SO:12", ItemKey{PartA, DomainSO, 12}, false},
		{"pre-part key", "AP:MG:1", ItemKey{PartAP, DomainMG, 1}, false},
		{"unknown part", "Z:SO:1", ItemKey{}, true},
		{"unknown domain", "A:XX:1", ItemKey{}, true},
		{"DG is not addressable", "A:DG:1", ItemKey{}, true},
		{"order zero", "A:SO:0", ItemKey{}, true},
		{"negative order", "A:SO:-2", ItemKey{}, true},
		{"non-numeric order", "A:SO:abc", ItemKey{}, true},
		{"missing segment", "A:SO", ItemKey{}, true},
		{"extra segment", "A:SO:1:2", ItemKey{}, true},
		{"empty", "", ItemKey{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseItemKey(tt.token)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidItemKey) {
					t.Errorf("ParseItemKey(%q) error = %v, want ErrInvalidItemKey", tt.token, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseItemKey(%q) error = %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseItemKey(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestItemKeyRoundTrip(t *testing.T) {
	k := ItemKey{Part: PartC, Domain: DomainLCO, Order: 7}
	parsed, err := ParseItemKey(k.String())
	if err != nil {
		t.Fatalf("ParseItemKey(%q) error = %v", k.String(), err)
	}
	if parsed != k {
		t.Errorf("round trip = %+v, want %+v", parsed, k)
	}
}

func TestItemAppliesToAge(t *testing.T) {
	tests := []struct {
		name string
		item Item
		age  int
		want bool
	}{
		{"open window", Item{}, 30, true},
		{"inside window", Item{AgeMinMonths: 24, AgeMaxMonths: 36}, 30, true},
		{"at lower bound", Item{AgeMinMonths: 24, AgeMaxMonths: 36}, 24, true},
		{"at upper bound", Item{AgeMinMonths: 24, AgeMaxMonths: 36}, 36, true},
		{"below window", Item{AgeMinMonths: 24}, 20, false},
		{"above window", Item{AgeMaxMonths: 36}, 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.AppliesToAge(tt.age); got != tt.want {
				t.Errorf("AppliesToAge(%d) = %v, want %v", tt.age, got, tt.want)
			}
		})
	}
}

func TestApplicableCount(t *testing.T) {
	items := []Item{
		{Active: true, AgeMinMonths: 18, AgeMaxMonths: 36},
		{Active: true, AgeMinMonths: 36, AgeMaxMonths: 48},
		{Active: false, AgeMinMonths: 18, AgeMaxMonths: 36}, // inactive
		{Active: true},                                      // open window
	}

	if got := ApplicableCount(items, 30); got != 2 {
		t.Errorf("ApplicableCount(30) = %d, want 2", got)
	}
	if got := ApplicableCount(items, 40); got != 2 {
		t.Errorf("ApplicableCount(40) = %d, want 2", got)
	}
	if got := ApplicableCount(items, 60); got != 1 {
		t.Errorf("ApplicableCount(60) = %d, want 1", got)
	}
}

func TestDomainValidForAge(t *testing.T) {
	if DomainLE.ValidForAge(36) {
		t.Error("letter learning must not be assessable before 48 months")
	}
	if !DomainLE.ValidForAge(48) {
		t.Error("letter learning must be assessable from 48 months")
	}
	if DomainNBRE.ValidForAge(47) {
		t.Error("number learning must not be assessable before 48 months")
	}
	if !DomainSO.ValidForAge(18) {
		t.Error("social domain must be assessable at any questionnaire age")
	}
}
