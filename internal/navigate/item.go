package navigate

// Kind discriminates the item variants. An item is exactly one of: a plain
// leaf fact, a branch with child items, or an action the user can invoke.
type Kind int

const (
	KindLeaf Kind = iota
	KindBranch
	KindAction
)

// Item is an immutable snapshot of one navigable entry. Items are rebuilt
// wholesale from the data provider after every state-changing action, never
// patched in place.
type Item struct {
	ID       string
	Label    string
	Value    string
	Kind     Kind
	Children []Item
	Action   string
	Payload  interface{}
}

// Leaf constructs a plain informational item.
func Leaf(id, label, value string) Item {
	return Item{ID: id, Label: label, Value: value, Kind: KindLeaf}
}

// Branch constructs an item holding child items.
func Branch(id, label string, children []Item) Item {
	return Item{ID: id, Label: label, Kind: KindBranch, Children: CloneItems(children)}
}

// ActionItem constructs an invokable item carrying an action kind and an
// opaque provider payload.
func ActionItem(id, label, value, action string, payload interface{}) Item {
	return Item{ID: id, Label: label, Value: value, Kind: KindAction, Action: action, Payload: payload}
}

// CloneItems returns a defensive copy of the supplied items.
func CloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
