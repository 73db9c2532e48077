package overlay

import (
	"fmt"

	"stormreader/internal/input"
	"stormreader/internal/navigate"
	"stormreader/internal/provider"
)

// Embark screen sub-surfaces queried from the provider.
const (
	embarkGoods   = "embark:goods"
	embarkBonuses = "embark:bonuses"
	embarkCaravan = "embark:caravan"
)

// Embark covers the expedition loadout screen: three fixed categories whose
// entries load on demand, with increase/decrease adjustments on the goods the
// caravan carries. Entries drill into leaf details (cost, stock).
type Embark struct {
	base
}

// NewEmbark wires the embark overlay.
func NewEmbark(deps Deps) *Embark {
	e := &Embark{}
	e.base = newBase("embark", deps)
	e.nav = navigate.New(navigate.Config{
		Sink:          deps.sink(),
		SearchTimeout: deps.SearchTimeout,
		EmptyText:     "Nothing here",
		Perform:       e.performAndRefresh,
		Load:          e.loadCategory,
	})
	e.reload = e.rebuild
	return e
}

func (e *Embark) rebuild() {
	root := []navigate.Item{
		navigate.Branch(embarkGoods, "Embark goods", nil),
		navigate.Branch(embarkBonuses, "Embark bonuses", nil),
		navigate.Branch(embarkCaravan, "Caravan", nil),
	}
	e.nav.Reset(navigate.NewLevel("embark", "Embark", root))
}

// loadCategory fetches a category's entries the first time it is drilled
// into. Category IDs double as provider screen names.
func (e *Embark) loadCategory(item navigate.Item) ([]navigate.Item, error) {
	return e.deps.Source.Items(provider.Context{Screen: item.ID, Ref: e.ctx.Ref})
}

func (e *Embark) performAndRefresh(item navigate.Item) (string, error) {
	msg, err := e.perform(item)
	if err != nil {
		return msg, err
	}
	e.refreshLevel()
	return msg, nil
}

// refreshLevel re-fetches the entries for the level the user sits in; only
// category levels map to a provider screen.
func (e *Embark) refreshLevel() {
	l := e.nav.Current()
	if l == nil || l.ID == "embark" {
		return
	}
	e.nav.RefreshCurrent(e.fetch(l.ID))
}

// ProcessKey adds quantity adjustment on top of the shared bindings.
func (e *Embark) ProcessKey(ev input.Event) bool {
	switch e.deps.Keymap.Resolve(ev) {
	case input.ActionIncrease:
		return e.adjust(provider.ActionIncrease)
	case input.ActionDecrease:
		return e.adjust(provider.ActionDecrease)
	}
	return e.handleNavKey(ev)
}

// adjust changes the carried quantity of the current entry. Items without a
// payload (category headers, detail leaves) just re-announce.
func (e *Embark) adjust(kind provider.ActionKind) bool {
	item, ok := e.nav.CurrentItem()
	if !ok {
		e.deps.sink().Say("Nothing here", true)
		return true
	}
	if item.Payload == nil {
		e.nav.Announce()
		return true
	}
	res, err := e.deps.Source.Perform(e.ctx, item.Payload, kind)
	if err != nil {
		e.deps.sink().Say(fmt.Sprintf("%s failed", item.Label), true)
		return true
	}
	if !res.OK {
		msg := res.Code
		if msg == "" {
			msg = fmt.Sprintf("Cannot change %s", item.Label)
		}
		e.deps.sink().Say(msg, true)
		return true
	}
	e.refreshLevel()
	if res.Code != "" {
		e.deps.sink().Say(res.Code, true)
	} else {
		e.nav.Announce()
	}
	return true
}
