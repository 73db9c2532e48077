package navigate

import "testing"

func leaves(labels ...string) []Item {
	items := make([]Item, 0, len(labels))
	for _, label := range labels {
		items = append(items, Leaf(label, label, ""))
	}
	return items
}

func TestLevelMoveWrapsBothDirections(t *testing.T) {
	l := NewLevel("test", "Test", leaves("a", "b", "c"))
	if !l.Move(-1) {
		t.Fatalf("expected move on non-empty level to succeed")
	}
	if l.Index != 2 {
		t.Fatalf("expected wrap from first to last, got index %d", l.Index)
	}
	if !l.Move(1) {
		t.Fatalf("expected move to succeed")
	}
	if l.Index != 0 {
		t.Fatalf("expected wrap from last to first, got index %d", l.Index)
	}
}

func TestLevelMoveOnEmptyLevel(t *testing.T) {
	l := NewLevel("empty", "Empty", nil)
	if l.Move(1) || l.Move(-1) {
		t.Fatalf("expected movement on empty level to report false")
	}
	if _, ok := l.Current(); ok {
		t.Fatalf("expected no current item on empty level")
	}
}

func TestLevelReplaceClampsIndex(t *testing.T) {
	l := NewLevel("test", "Test", leaves("a", "b", "c", "d", "e"))
	l.SetIndex(4)
	l.Replace(leaves("a", "b", "c"))
	if l.Index != 2 {
		t.Fatalf("expected index clamped to 2 after shrink, got %d", l.Index)
	}
	item, ok := l.Current()
	if !ok || item.Label != "c" {
		t.Fatalf("expected current item c, got %+v ok=%v", item, ok)
	}
}

func TestLevelReplacePreservesIndexWhenStillValid(t *testing.T) {
	l := NewLevel("test", "Test", leaves("a", "b", "c"))
	l.SetIndex(1)
	l.Replace(leaves("x", "y", "z", "w"))
	if l.Index != 1 {
		t.Fatalf("expected index 1 preserved, got %d", l.Index)
	}
}

func TestLevelReplaceWithEmptySnapshot(t *testing.T) {
	l := NewLevel("test", "Test", leaves("a", "b"))
	l.SetIndex(1)
	l.Replace(nil)
	if l.Index != 0 {
		t.Fatalf("expected index reset to 0 on empty snapshot, got %d", l.Index)
	}
	if _, ok := l.Current(); ok {
		t.Fatalf("expected no current item after emptying")
	}
}

func TestLevelIndexOf(t *testing.T) {
	l := NewLevel("test", "Test", leaves("a", "b", "c"))
	if idx := l.IndexOf("b"); idx != 1 {
		t.Fatalf("expected index 1 for b, got %d", idx)
	}
	if idx := l.IndexOf("missing"); idx != -1 {
		t.Fatalf("expected -1 for unknown id, got %d", idx)
	}
	if idx := l.IndexOf(""); idx != -1 {
		t.Fatalf("expected -1 for empty id, got %d", idx)
	}
}
