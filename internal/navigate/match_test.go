package navigate

import "testing"

func TestFilterItemsEmptyQueryReturnsAll(t *testing.T) {
	items := leaves("Wood", "Tools")
	got := FilterItems(items, "  ")
	if len(got) != 2 {
		t.Fatalf("expected all items for blank query, got %d", len(got))
	}
}

func TestFilterItemsNarrows(t *testing.T) {
	items := leaves("Pause on events", "Automatic hauling", "Notifications")
	got := FilterItems(items, "haul")
	if len(got) != 1 || got[0].Label != "Automatic hauling" {
		t.Fatalf("expected single haul match, got %+v", got)
	}
}

func TestFilterItemsSubstringFallbackOnID(t *testing.T) {
	items := []Item{Leaf("opt-xyz", "Something", "")}
	got := FilterItems(items, "xyz")
	if len(got) != 1 {
		t.Fatalf("expected ID substring fallback to match, got %d items", len(got))
	}
}

func TestBestMatchIndexPrefersExact(t *testing.T) {
	items := leaves("Woodland", "Wood", "Driftwood")
	if idx := BestMatchIndex(items, "wood"); idx != 1 {
		t.Fatalf("expected exact match preferred, got %d", idx)
	}
}

func TestBestMatchIndexPrefix(t *testing.T) {
	items := leaves("Driftwood", "Woodland")
	if idx := BestMatchIndex(items, "wood"); idx != 1 {
		t.Fatalf("expected prefix match preferred over substring, got %d", idx)
	}
}

func TestBestMatchIndexEmptyList(t *testing.T) {
	if idx := BestMatchIndex(nil, "x"); idx != -1 {
		t.Fatalf("expected -1 for empty list, got %d", idx)
	}
}

func TestBestMatchIndexEmptyQuery(t *testing.T) {
	if idx := BestMatchIndex(leaves("a", "b"), ""); idx != 0 {
		t.Fatalf("expected 0 for empty query, got %d", idx)
	}
}
