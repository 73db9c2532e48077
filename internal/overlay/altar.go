package overlay

import (
	"stormreader/internal/input"
	"stormreader/internal/navigate"
)

// Altar covers the altar's offering list: each entry is a purchasable effect.
// Accepting an offer refreshes the snapshot, and because the list usually
// shrinks, the clamped index restore in the level keeps the cursor in range.
type Altar struct {
	base
}

// NewAltar wires the altar overlay.
func NewAltar(deps Deps) *Altar {
	a := &Altar{}
	a.base = newBase("altar", deps)
	a.nav = navigate.New(navigate.Config{
		Sink:          deps.sink(),
		SearchTimeout: deps.SearchTimeout,
		EmptyText:     "No offerings",
		Perform:       a.acceptOffer,
	})
	a.reload = a.rebuild
	return a
}

func (a *Altar) rebuild() {
	a.nav.Reset(navigate.NewLevel("altar", "Altar", a.fetch("altar")))
}

func (a *Altar) acceptOffer(item navigate.Item) (string, error) {
	msg, err := a.perform(item)
	if err != nil {
		return msg, err
	}
	a.nav.RefreshCurrent(a.fetch("altar"))
	return msg, nil
}

func (a *Altar) ProcessKey(ev input.Event) bool {
	return a.handleNavKey(ev)
}
