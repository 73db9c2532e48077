// Package provider defines the narrow contract between the navigation core
// and the host application's data layer. The provider owns all domain truth;
// the core never caches beyond one level snapshot and treats every snapshot
// as stale after an action.
package provider

import "stormreader/internal/navigate"

// ActionKind names a user-initiated operation on an item payload.
type ActionKind string

const (
	ActionActivate ActionKind = "activate"
	ActionToggle   ActionKind = "toggle"
	ActionPurchase ActionKind = "purchase"
	ActionIncrease ActionKind = "increase"
	ActionDecrease ActionKind = "decrease"
	ActionJump     ActionKind = "jump"
	ActionMove     ActionKind = "move"
	ActionConfirm  ActionKind = "confirm"
	ActionCancel   ActionKind = "cancel"
)

// Context identifies which surface of the host a request concerns. Ref
// carries an opaque host-supplied handle delivered with the open signal.
type Context struct {
	Screen string
	Ref    interface{}
}

// Result reports the outcome of an action.
type Result struct {
	OK   bool
	Code string
}

// Source supplies item snapshots and performs actions. Implementations live
// outside the core, next to the host application's object graph.
type Source interface {
	Items(ctx Context) ([]navigate.Item, error)
	Perform(ctx Context, payload interface{}, kind ActionKind) (Result, error)
}
