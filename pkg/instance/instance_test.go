package instance

import "testing"

func TestGetID(t *testing.T) {
	t.Setenv("STOREFRONT_INSTANCE_ID", "")
	t.Setenv("DYNO", "web.1")
	t.Setenv("HOSTNAME", "pod-123")
	if got := GetID(); got != "web.1" {
		t.Fatalf("expected dyno name, got %q", got)
	}

	t.Setenv("DYNO", "")
	t.Setenv("HOSTNAME", "")
	if got := GetID(); got != defaultID {
		t.Fatalf("expected %q, got %q", defaultID, got)
	}
}
