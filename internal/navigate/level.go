package navigate

// Level is one depth of a hierarchical navigator: an ordered list of items
// plus the current index. Index stays in [0, len(Items)) whenever the level is
// non-empty; on an empty level every movement is a no-op that reports false.
type Level struct {
	ID    string
	Title string
	Items []Item
	Index int
}

// NewLevel constructs a level positioned on the first item.
func NewLevel(id, title string, items []Item) *Level {
	return &Level{ID: id, Title: title, Items: CloneItems(items)}
}

// Len returns the number of items at this level.
func (l *Level) Len() int {
	return len(l.Items)
}

// Current returns the item under the index. The second return is false when
// the level is empty.
func (l *Level) Current() (Item, bool) {
	if len(l.Items) == 0 {
		return Item{}, false
	}
	l.clamp()
	return l.Items[l.Index], true
}

// Move shifts the index by delta with wraparound. Returns false when the
// level is empty.
func (l *Level) Move(delta int) bool {
	if len(l.Items) == 0 {
		return false
	}
	l.clamp()
	l.Index = Wrap(l.Index, delta, len(l.Items))
	return true
}

// First moves the index to the first item. Returns false when empty.
func (l *Level) First() bool {
	if len(l.Items) == 0 {
		return false
	}
	l.Index = 0
	return true
}

// Last moves the index to the last item. Returns false when empty.
func (l *Level) Last() bool {
	if len(l.Items) == 0 {
		return false
	}
	l.Index = len(l.Items) - 1
	return true
}

// SetIndex positions the index, clamping into range. Returns false when empty.
func (l *Level) SetIndex(i int) bool {
	if len(l.Items) == 0 {
		return false
	}
	if i < 0 {
		i = 0
	}
	if i >= len(l.Items) {
		i = len(l.Items) - 1
	}
	l.Index = i
	return true
}

// Replace swaps in a fresh item snapshot, preserving the user's position via
// min(previous, newCount-1). Live collections can shrink between a selection
// and its use, so the index is clamped rather than trusted.
func (l *Level) Replace(items []Item) {
	prev := l.Index
	l.Items = CloneItems(items)
	if len(l.Items) == 0 {
		l.Index = 0
		return
	}
	if prev < 0 {
		prev = 0
	}
	if prev > len(l.Items)-1 {
		prev = len(l.Items) - 1
	}
	l.Index = prev
}

// IndexOf returns the position of the item with the given ID, or -1.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (l *Level) clamp() {
	if l.Index < 0 {
		l.Index = 0
	}
	if l.Index >= len(l.Items) && len(l.Items) > 0 {
		l.Index = len(l.Items) - 1
	}
}
