package navigate

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestSearchBufferAccumulatesWithinTimeout(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	b := NewSearchBuffer(1500 * time.Millisecond)
	b.SetClock(clock.now)

	if got := b.Add('a'); got != "a" {
		t.Fatalf("expected query a, got %q", got)
	}
	clock.advance(500 * time.Millisecond)
	if got := b.Add('p'); got != "ap" {
		t.Fatalf("expected query ap, got %q", got)
	}
}

func TestSearchBufferExpiresLazily(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	b := NewSearchBuffer(1500 * time.Millisecond)
	b.SetClock(clock.now)

	b.Add('a')
	b.Add('p')
	clock.advance(2 * time.Second)
	// Nothing resets until the next character arrives.
	if b.String() != "ap" {
		t.Fatalf("expected stale buffer to persist until next Add, got %q", b.String())
	}
	if got := b.Add('x'); got != "x" {
		t.Fatalf("expected stale buffer discarded, got %q", got)
	}
}

func TestSearchBufferBoundaryIsNotExpiry(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	b := NewSearchBuffer(1500 * time.Millisecond)
	b.SetClock(clock.now)

	b.Add('a')
	clock.advance(1500 * time.Millisecond)
	if got := b.Add('b'); got != "ab" {
		t.Fatalf("expected exactly-at-timeout to extend the buffer, got %q", got)
	}
}

func TestSearchBufferRemoveLast(t *testing.T) {
	b := NewSearchBuffer(0)
	if b.RemoveLast() {
		t.Fatalf("expected RemoveLast on empty buffer to report false")
	}
	b.Add('a')
	b.Add('b')
	if !b.RemoveLast() {
		t.Fatalf("expected RemoveLast to succeed")
	}
	if b.String() != "a" {
		t.Fatalf("expected buffer a, got %q", b.String())
	}
}

func TestFindMatchPrefixFirstInOrder(t *testing.T) {
	items := leaves("Apples", "Bread", "Apricot")
	if idx := FindMatch(items, "a"); idx != 0 {
		t.Fatalf("expected first prefix match 0, got %d", idx)
	}
	if idx := FindMatch(items, "ap"); idx != 0 {
		t.Fatalf("expected ap to stay on Apples, got %d", idx)
	}
	if idx := FindMatch(items, "apr"); idx != 2 {
		t.Fatalf("expected apr to match Apricot, got %d", idx)
	}
	if idx := FindMatch(items, "z"); idx != -1 {
		t.Fatalf("expected -1 on miss, got %d", idx)
	}
}

func TestFindMatchEmptyInputs(t *testing.T) {
	if idx := FindMatch(leaves("a"), ""); idx != -1 {
		t.Fatalf("expected -1 for empty query, got %d", idx)
	}
	if idx := FindMatch(nil, "a"); idx != -1 {
		t.Fatalf("expected -1 for empty list, got %d", idx)
	}
}

func TestFindMatchCaseInsensitive(t *testing.T) {
	items := leaves("Moira", "bram")
	if idx := FindMatch(items, "MO"); idx != 0 {
		t.Fatalf("expected case-insensitive match 0, got %d", idx)
	}
	if idx := FindMatch(items, "B"); idx != 1 {
		t.Fatalf("expected case-insensitive match 1, got %d", idx)
	}
}
