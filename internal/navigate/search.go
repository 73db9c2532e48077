package navigate

import (
	"strings"
	"time"
)

// DefaultSearchTimeout is the idle window after which the type-ahead buffer
// is treated as empty.
const DefaultSearchTimeout = 1500 * time.Millisecond

// SearchBuffer accumulates typed characters into a prefix query. Expiry is
// lazy: the buffer is only reset when the next character arrives after the
// timeout, or when an explicit navigation key clears it.
type SearchBuffer struct {
	timeout time.Duration
	runes   []rune
	last    time.Time
	now     func() time.Time
}

// NewSearchBuffer constructs a buffer with the given idle timeout. A timeout
// of zero or less falls back to DefaultSearchTimeout.
func NewSearchBuffer(timeout time.Duration) *SearchBuffer {
	if timeout <= 0 {
		timeout = DefaultSearchTimeout
	}
	return &SearchBuffer{timeout: timeout, now: time.Now}
}

// SetClock overrides the time source. Tests use this to step time explicitly.
func (b *SearchBuffer) SetClock(now func() time.Time) {
	if now != nil {
		b.now = now
	}
}

// Add appends a character, first discarding the stale buffer when the idle
// timeout elapsed, and returns the resulting query.
func (b *SearchBuffer) Add(r rune) string {
	now := b.now()
	if len(b.runes) > 0 && now.Sub(b.last) > b.timeout {
		b.runes = b.runes[:0]
	}
	b.runes = append(b.runes, r)
	b.last = now
	return string(b.runes)
}

// RemoveLast drops the trailing character. Returns false when the buffer was
// already empty.
func (b *SearchBuffer) RemoveLast() bool {
	if len(b.runes) == 0 {
		return false
	}
	b.runes = b.runes[:len(b.runes)-1]
	b.last = b.now()
	return true
}

// Clear empties the buffer.
func (b *SearchBuffer) Clear() {
	b.runes = b.runes[:0]
}

// String returns the current query.
func (b *SearchBuffer) String() string {
	return string(b.runes)
}

// Empty reports whether the buffer holds no characters.
func (b *SearchBuffer) Empty() bool {
	return len(b.runes) == 0
}

// FindMatch scans items in display order and returns the first whose label
// starts with the query, case-insensitively, or -1. An empty query or empty
// list returns -1 without scanning. First-match-in-order is the contract;
// lists are UI-sized, so a linear scan is fine.
func FindMatch(items []Item, query string) int {
	if query == "" || len(items) == 0 {
		return -1
	}
	lower := strings.ToLower(query)
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	return -1
}
