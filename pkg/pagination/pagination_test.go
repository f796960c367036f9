package pagination

import "testing"

func TestNormalize(t *testing.T) {
	got := Params{Page: 0, Limit: 0}.Normalize()
	if got.Page != 1 || got.Limit != DefaultLimit {
		t.Fatalf("unexpected defaults %+v", got)
	}

	got = Params{Page: 3, Limit: 500}.Normalize()
	if got.Page != 3 || got.Limit != MaxLimit {
		t.Fatalf("limit should be capped, got %+v", got)
	}

	if normalizeLimit(12) != 12 {
		t.Fatalf("in-range limits should pass through")
	}
}
