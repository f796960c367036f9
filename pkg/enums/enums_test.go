package enums

import "testing"

func TestProductStatusListable(t *testing.T) {
	cases := map[ProductStatus]bool{
		ProductStatusActive:   true,
		ProductStatusDraft:    false,
		ProductStatusInactive: false,
		ProductStatusArchived: false,
		"preorder":            true,
		"":                    true,
	}
	for status, want := range cases {
		if got := status.IsListable(); got != want {
			t.Fatalf("status %q listable=%v want %v", status, got, want)
		}
	}
}

func TestUnitIsValid(t *testing.T) {
	if !UnitPiece.IsValid() {
		t.Fatalf("piece should be a known unit")
	}
	if Unit("oz").IsValid() {
		t.Fatalf("oz should not be a known unit")
	}
}
