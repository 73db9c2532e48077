// Package overlay holds the screen-specific navigators built on the generic
// list engine, plus the manager that owns their lifecycle and priority order.
package overlay

import (
	"fmt"
	"time"
	"unicode"

	"stormreader/internal/announce"
	"stormreader/internal/input"
	"stormreader/internal/logging/events"
	"stormreader/internal/navigate"
	"stormreader/internal/provider"
	"stormreader/internal/route"
)

// Overlay is one screen-specific navigator: a routable key handler with an
// open/close lifecycle driven by host signals.
type Overlay interface {
	route.Handler
	OnOpen(ctx provider.Context)
	OnClose()
}

// Deps carries the collaborators every overlay is wired with.
type Deps struct {
	Sink        announce.Sink
	Source      provider.Source
	Keymap      *input.Keymap
	Suppression *input.Suppression
	// SearchTimeout overrides the type-ahead idle window; zero keeps the
	// engine default.
	SearchTimeout time.Duration
}

func (d Deps) sink() announce.Sink {
	if d.Sink == nil {
		return announce.Discard
	}
	return d.Sink
}

// withDefaults fills the collaborators an overlay cannot run without.
func (d Deps) withDefaults() Deps {
	if d.Sink == nil {
		d.Sink = announce.Discard
	}
	if d.Keymap == nil {
		d.Keymap = input.DefaultKeymap()
	}
	if d.Suppression == nil {
		d.Suppression = &input.Suppression{}
	}
	return d
}

func newBase(name string, deps Deps) base {
	return base{name: name, deps: deps.withDefaults()}
}

// base implements the lifecycle and key plumbing shared by the list-backed
// overlays. Each overlay supplies reload, which rebuilds its root level from
// the provider.
type base struct {
	name   string
	deps   Deps
	nav    *navigate.Navigator
	open   bool
	ctx    provider.Context
	reload func()
}

func (b *base) Name() string { return b.name }

// IsActive is a pure query with no side effects; the router calls it on every
// dispatch.
func (b *base) IsActive() bool { return b.open }

// OnOpen is idempotent: a repeated open with the same context refreshes the
// item snapshot instead of duplicating state.
func (b *base) OnOpen(ctx provider.Context) {
	if b.open {
		b.ctx = ctx
		events.Overlay.Reopen(b.name)
		if b.reload != nil {
			b.reload()
		}
		return
	}
	b.open = true
	b.ctx = ctx
	events.Overlay.Open(b.name, ctx.Screen)
	if b.reload != nil {
		b.reload()
	}
}

// OnClose without a matching open is a no-op.
func (b *base) OnClose() {
	if !b.open {
		events.Overlay.CloseWithoutOpen(b.name)
		return
	}
	b.open = false
	if b.nav != nil {
		b.nav.Clear()
	}
	events.Overlay.Close(b.name)
}

// fetch pulls a fresh item snapshot for a sub-screen of this overlay's
// context. Provider failure is spoken and yields an empty list; it never
// propagates.
func (b *base) fetch(screen string) []navigate.Item {
	if b.deps.Source == nil {
		return nil
	}
	items, err := b.deps.Source.Items(provider.Context{Screen: screen, Ref: b.ctx.Ref})
	if err != nil {
		events.Overlay.ProviderError(b.name, err)
		b.deps.sink().Say(fmt.Sprintf("%s data unavailable", b.name), true)
		return nil
	}
	return items
}

// perform runs an action item against the provider. Rejected actions are
// spoken as failures with no state mutation and are never retried.
func (b *base) perform(item navigate.Item) (string, error) {
	if b.deps.Source == nil {
		return "", nil
	}
	res, err := b.deps.Source.Perform(b.ctx, item.Payload, provider.ActionKind(item.Action))
	if err != nil {
		return "", err
	}
	if !res.OK {
		msg := res.Code
		if msg == "" {
			msg = fmt.Sprintf("%s not available", item.Label)
		}
		return msg, nil
	}
	if res.Code != "" {
		return res.Code, nil
	}
	return fmt.Sprintf("%s, done", item.Label), nil
}

// handleNavKey runs the common list navigation bindings. Returns false for
// events this overlay should let fall through, including go-back at the root
// so a single cancel key can also reach the host's own dialog.
func (b *base) handleNavKey(ev input.Event) bool {
	switch b.deps.Keymap.Resolve(ev) {
	case input.ActionUp:
		b.nav.Move(-1)
		return true
	case input.ActionDown:
		b.nav.Move(1)
		return true
	case input.ActionFirst:
		b.nav.JumpToFirst()
		return true
	case input.ActionLast:
		b.nav.JumpToLast()
		return true
	case input.ActionDrillIn:
		b.nav.DrillIn()
		return true
	case input.ActionRepeat:
		b.nav.Announce()
		return true
	case input.ActionErase:
		b.nav.SearchBackspace()
		return true
	case input.ActionBack:
		if b.nav.GoBack() {
			// The same physical key closes the host's dialogs; make sure one
			// press does not collapse both.
			b.deps.Suppression.SuppressNextCancel()
			events.Overlay.SuppressCancel(b.name)
			return true
		}
		return false
	}
	if ev.Sym == input.SymRune && ev.Mods == 0 && unicode.IsPrint(ev.Rune) {
		b.nav.Search(ev.Rune)
		return true
	}
	return false
}
