package navigate

import (
	"fmt"
	"time"

	"stormreader/internal/announce"
	"stormreader/internal/logging/events"
)

// Config wires a Navigator to its overlay-specific collaborators.
type Config struct {
	// Sink receives every announcement. Required; a nil sink is replaced by
	// announce.Discard.
	Sink announce.Sink
	// SearchTimeout is the type-ahead idle window; zero uses the default.
	SearchTimeout time.Duration
	// Format renders the announcement for the current item. Nil uses
	// DefaultFormat.
	Format func(l *Level, item Item) string
	// EmptyText is spoken when a level has no items.
	EmptyText string
	// Perform invokes an action item against the data provider and returns
	// the text to announce. Overlays without actions leave it nil.
	Perform func(item Item) (string, error)
	// Load fetches children for a branch item that carries none inline.
	Load func(item Item) ([]Item, error)
}

// Navigator is the reusable hierarchical list engine: an ordered stack of
// levels, one to three deep, with wraparound movement, drill-in/go-back and
// type-ahead search. All methods are synchronous and leave the navigator in a
// valid state; empty-collection conditions are spoken, never fatal.
type Navigator struct {
	cfg    Config
	stack  []*Level
	search *SearchBuffer
}

// New constructs a navigator with an empty stack.
func New(cfg Config) *Navigator {
	if cfg.Sink == nil {
		cfg.Sink = announce.Discard
	}
	if cfg.EmptyText == "" {
		cfg.EmptyText = "No items"
	}
	return &Navigator{cfg: cfg, search: NewSearchBuffer(cfg.SearchTimeout)}
}

// DefaultFormat speaks label, optional value, and position within the level.
func DefaultFormat(l *Level, item Item) string {
	text := item.Label
	if item.Value != "" {
		text += ", " + item.Value
	}
	if n := l.Len(); n > 0 {
		text += fmt.Sprintf(", %d of %d", l.Index+1, n)
	}
	return text
}

// Reset replaces the whole stack with a single root level and announces the
// current item.
func (n *Navigator) Reset(root *Level) {
	n.stack = n.stack[:0]
	n.search.Clear()
	if root == nil {
		return
	}
	n.stack = append(n.stack, root)
	n.Announce()
}

// Clear drops all state. Called when the owning overlay closes.
func (n *Navigator) Clear() {
	n.stack = nil
	n.search.Clear()
}

// Depth returns the number of levels on the stack.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

// Current returns the active level, or nil when the stack is empty.
func (n *Navigator) Current() *Level {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// CurrentItem returns the item under the active level's index.
func (n *Navigator) CurrentItem() (Item, bool) {
	l := n.Current()
	if l == nil {
		return Item{}, false
	}
	return l.Current()
}

// Buffer exposes the type-ahead buffer, mainly for tests and tracing.
func (n *Navigator) Buffer() *SearchBuffer {
	return n.search
}

// Move shifts the active level's index by delta with wraparound and announces
// the newly current item. An empty level announces emptiness and leaves the
// index untouched.
func (n *Navigator) Move(delta int) {
	l := n.Current()
	if l == nil {
		return
	}
	n.search.Clear()
	if !l.Move(delta) {
		n.say(n.cfg.EmptyText, true)
		return
	}
	events.Nav.Cursor(l.ID, l.Index)
	n.Announce()
}

// JumpToFirst moves to the first item of the active level.
func (n *Navigator) JumpToFirst() {
	n.jump(func(l *Level) bool { return l.First() })
}

// JumpToLast moves to the last item of the active level.
func (n *Navigator) JumpToLast() {
	n.jump(func(l *Level) bool { return l.Last() })
}

func (n *Navigator) jump(move func(*Level) bool) {
	l := n.Current()
	if l == nil {
		return
	}
	n.search.Clear()
	if !move(l) {
		n.say(n.cfg.EmptyText, true)
		return
	}
	events.Nav.Cursor(l.ID, l.Index)
	n.Announce()
}

// DrillIn descends into the current item's children, or invokes its action.
// Action items always prefer the action, even with zero children. Leaf items
// are simply re-announced; pressing the drill key twice never errors.
func (n *Navigator) DrillIn() {
	l := n.Current()
	if l == nil {
		return
	}
	n.search.Clear()
	item, ok := l.Current()
	if !ok {
		n.say(n.cfg.EmptyText, true)
		return
	}
	switch item.Kind {
	case KindAction:
		n.invoke(item)
	case KindBranch:
		children := item.Children
		if len(children) == 0 && n.cfg.Load != nil {
			loaded, err := n.cfg.Load(item)
			if err != nil {
				events.Nav.LoadError(l.ID, item.ID, err)
				n.say(fmt.Sprintf("%s unavailable", item.Label), true)
				return
			}
			children = loaded
		}
		if len(children) == 0 {
			n.say(n.cfg.EmptyText, true)
			return
		}
		child := NewLevel(item.ID, item.Label, children)
		n.stack = append(n.stack, child)
		events.Nav.Drill(item.ID, len(children))
		n.Announce()
	default:
		n.Announce()
	}
}

func (n *Navigator) invoke(item Item) {
	if n.cfg.Perform == nil {
		n.Announce()
		return
	}
	msg, err := n.cfg.Perform(item)
	if err != nil {
		events.Nav.ActionError(item.ID, err)
		if msg == "" {
			msg = fmt.Sprintf("%s failed", item.Label)
		}
		n.say(msg, true)
		return
	}
	events.Nav.Action(item.ID, item.Action)
	if msg != "" {
		n.say(msg, true)
	}
}

// GoBack pops one level, restoring the parent's index as it was before the
// drill, and re-announces the parent item. At the root it reports false so the
// caller can let the cancel key fall through to the host.
func (n *Navigator) GoBack() bool {
	if len(n.stack) <= 1 {
		events.Nav.BackAtRoot()
		return false
	}
	child := n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]
	n.search.Clear()
	events.Nav.Back(child.ID)
	n.Announce()
	return true
}

// Search appends a character to the type-ahead buffer and jumps to the first
// item whose label has the buffer as prefix. On no match, the miss is spoken
// and the index stays put.
func (n *Navigator) Search(r rune) {
	l := n.Current()
	if l == nil {
		return
	}
	if l.Len() == 0 {
		n.say(n.cfg.EmptyText, true)
		return
	}
	query := n.search.Add(r)
	idx := FindMatch(l.Items, query)
	if idx < 0 {
		events.Nav.SearchMiss(l.ID, query)
		n.say(fmt.Sprintf("No match for %s", query), true)
		return
	}
	l.SetIndex(idx)
	events.Nav.SearchHit(l.ID, query, idx)
	n.Announce()
}

// SearchBackspace removes the trailing buffer character and re-matches what
// remains. Returns false when the buffer was already empty.
func (n *Navigator) SearchBackspace() bool {
	if !n.search.RemoveLast() {
		return false
	}
	l := n.Current()
	if l == nil {
		return true
	}
	if n.search.Empty() {
		n.Announce()
		return true
	}
	query := n.search.String()
	if idx := FindMatch(l.Items, query); idx >= 0 {
		l.SetIndex(idx)
		events.Nav.SearchHit(l.ID, query, idx)
		n.Announce()
	} else {
		events.Nav.SearchMiss(l.ID, query)
		n.say(fmt.Sprintf("No match for %s", query), true)
	}
	return true
}

// RefreshCurrent swaps a fresh item snapshot into the active level, clamping
// the index so the user's position survives shrinking lists.
func (n *Navigator) RefreshCurrent(items []Item) {
	l := n.Current()
	if l == nil {
		return
	}
	l.Replace(items)
	events.Nav.Refresh(l.ID, l.Len())
}

// Announce re-speaks the current item without moving, or the empty message.
func (n *Navigator) Announce() {
	l := n.Current()
	if l == nil {
		return
	}
	item, ok := l.Current()
	if !ok {
		n.say(n.cfg.EmptyText, true)
		return
	}
	format := n.cfg.Format
	if format == nil {
		format = DefaultFormat
	}
	n.say(format(l, item), true)
}

func (n *Navigator) say(text string, interrupt bool) {
	if text == "" {
		return
	}
	n.cfg.Sink.Say(text, interrupt)
}
