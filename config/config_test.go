package config

import "testing"

func TestSessionsAreDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, sc := range Sessions {
		if seen[sc.ID] {
			t.Errorf("duplicate session id %s", sc.ID)
		}
		seen[sc.ID] = true
		if sc.Count <= 0 || sc.Count > 80 {
			t.Errorf("%s: count %d outside (0, 80]", sc.ID, sc.Count)
		}
	}
	if len(Sessions) != 7 {
		t.Errorf("expected 7 sessions, got %d", len(Sessions))
	}
}

func TestOnlyNetworkFollowsViewportAndPointer(t *testing.T) {
	for _, sc := range Sessions {
		network := sc.ID == NetworkID
		if (sc.Sizing == SizeViewport) != network || (sc.Pointer != nil) != network {
			t.Errorf("%s: unexpected sizing %v or pointer %v", sc.ID, sc.Sizing, sc.Pointer)
		}
	}
}

func TestCircuitSessionsMatch(t *testing.T) {
	a, b := AboutCircuit, ContactCircuit
	if a.ID == b.ID {
		t.Fatal("expected distinct circuit ids")
	}
	if a.Count != b.Count || a.GridLine.SpeedMin != b.GridLine.SpeedMin || len(a.GridLine.Dash) != 2 {
		t.Errorf("expected identically configured circuits, got %+v and %+v", a, b)
	}
}

func TestVariantString(t *testing.T) {
	if VariantBadge.String() != "badge" || Variant(99).String() != "unknown" {
		t.Error("unexpected variant names")
	}
}
