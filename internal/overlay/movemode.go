package overlay

import (
	"stormreader/internal/input"
	"stormreader/internal/logging/events"
	"stormreader/internal/provider"
)

// MoveMode captures the keyboard while the host is placing something — a
// building footprint, a relocating unit. It is not list-backed: arrows step
// the placement through the provider and the provider's result code is spoken
// verbatim (position, blockers). Confirm and cancel both end the mode.
type MoveMode struct {
	base
}

// NewMoveMode wires the move-mode controller.
func NewMoveMode(deps Deps) *MoveMode {
	m := &MoveMode{}
	m.base = newBase("movemode", deps)
	m.reload = m.announceStart
	return m
}

func (m *MoveMode) announceStart() {
	m.deps.sink().Say("Move mode", true)
	m.step("")
}

// ProcessKey translates arrows to provider moves. Every key is consumed while
// the mode is active except unbound ones, which stay with the overlay anyway
// so the host's camera does not wander mid-placement.
func (m *MoveMode) ProcessKey(ev input.Event) bool {
	switch ev.Sym {
	case input.SymUp:
		return m.step("north")
	case input.SymDown:
		return m.step("south")
	case input.SymLeft:
		return m.step("west")
	case input.SymRight:
		return m.step("east")
	}
	switch m.deps.Keymap.Resolve(ev) {
	case input.ActionDrillIn:
		return m.finish(provider.ActionConfirm, "Placed")
	case input.ActionBack:
		m.deps.Suppression.SuppressNextCancel()
		events.Overlay.SuppressCancel(m.name)
		return m.finish(provider.ActionCancel, "Move cancelled")
	case input.ActionRepeat:
		return m.step("")
	}
	return true
}

// step asks the provider to move one tile; an empty direction re-reads the
// current position.
func (m *MoveMode) step(direction string) bool {
	res, err := m.deps.Source.Perform(m.ctx, direction, provider.ActionMove)
	if err != nil {
		events.Overlay.ProviderError(m.name, err)
		m.deps.sink().Say("Cannot move", true)
		return true
	}
	if !res.OK {
		msg := res.Code
		if msg == "" {
			msg = "Blocked"
		}
		m.deps.sink().Say(msg, true)
		return true
	}
	if res.Code != "" {
		m.deps.sink().Say(res.Code, true)
	}
	return true
}

func (m *MoveMode) finish(kind provider.ActionKind, fallback string) bool {
	res, err := m.deps.Source.Perform(m.ctx, nil, kind)
	msg := fallback
	if err != nil {
		events.Overlay.ProviderError(m.name, err)
		msg = fallback + " failed"
	} else if res.Code != "" {
		msg = res.Code
	}
	m.deps.sink().Say(msg, true)
	m.OnClose()
	return true
}
