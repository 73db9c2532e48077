package overlay

import (
	"fmt"
	"unicode"

	"stormreader/internal/input"
	"stormreader/internal/navigate"
)

// Popup is the generic navigator for host popups, menus and dropdowns:
// toggles, buttons and one level of submenu, whatever the provider reports
// for the open surface. Beyond type-ahead it offers a filter mode that
// narrows the visible list fuzzily and restores the cursor when cleared.
type Popup struct {
	base
	filtering bool
	query     []rune
	full      []navigate.Item
	preFilter int
}

// NewPopup wires the popup overlay.
func NewPopup(deps Deps) *Popup {
	p := &Popup{}
	p.base = newBase("popup", deps)
	p.nav = navigate.New(navigate.Config{
		Sink:          deps.sink(),
		SearchTimeout: deps.SearchTimeout,
		EmptyText:     "Empty menu",
		Perform:       p.performAndRefresh,
	})
	p.reload = p.rebuild
	return p
}

func (p *Popup) rebuild() {
	p.filtering = false
	p.query = nil
	p.full = p.fetch(p.ctx.Screen)
	p.nav.Reset(navigate.NewLevel(p.ctx.Screen, "Menu", p.full))
}

// performAndRefresh invokes the action, then replaces the level with a fresh
// snapshot: every action leaves the previous one stale.
func (p *Popup) performAndRefresh(item navigate.Item) (string, error) {
	msg, err := p.perform(item)
	if err != nil {
		return msg, err
	}
	p.full = p.fetch(p.ctx.Screen)
	items := p.full
	if p.filtering {
		items = navigate.FilterItems(p.full, string(p.query))
	}
	p.nav.RefreshCurrent(items)
	return msg, nil
}

// ProcessKey handles filter-mode editing first, then the shared navigation
// bindings.
func (p *Popup) ProcessKey(ev input.Event) bool {
	if p.filtering {
		return p.processFilterKey(ev)
	}
	if p.deps.Keymap.Resolve(ev) == input.ActionFilter {
		p.enterFilter()
		return true
	}
	return p.handleNavKey(ev)
}

func (p *Popup) enterFilter() {
	p.filtering = true
	p.query = nil
	if l := p.nav.Current(); l != nil {
		p.preFilter = l.Index
	}
	p.deps.sink().Say("Filter", true)
}

// leaveFilter restores the full list; keep selects the filtered item, cancel
// puts the cursor back where it was before filtering.
func (p *Popup) leaveFilter(keep bool) {
	l := p.nav.Current()
	var selected string
	if keep {
		if item, ok := p.nav.CurrentItem(); ok {
			selected = item.ID
		}
	}
	p.filtering = false
	p.query = nil
	if l == nil {
		return
	}
	l.Replace(p.full)
	if keep && selected != "" {
		if idx := l.IndexOf(selected); idx >= 0 {
			l.SetIndex(idx)
		}
	} else {
		l.SetIndex(p.preFilter)
	}
	p.nav.Announce()
}

func (p *Popup) processFilterKey(ev input.Event) bool {
	switch p.deps.Keymap.Resolve(ev) {
	case input.ActionBack:
		p.leaveFilter(false)
		p.deps.Suppression.SuppressNextCancel()
		return true
	case input.ActionDrillIn:
		p.leaveFilter(true)
		return true
	case input.ActionUp:
		p.nav.Move(-1)
		return true
	case input.ActionDown:
		p.nav.Move(1)
		return true
	case input.ActionErase:
		if len(p.query) == 0 {
			return true
		}
		p.query = p.query[:len(p.query)-1]
		p.applyFilter()
		return true
	}
	if ev.Sym == input.SymRune && ev.Mods == 0 && unicode.IsPrint(ev.Rune) {
		p.query = append(p.query, ev.Rune)
		p.applyFilter()
		return true
	}
	if ev.Sym == input.SymSpace {
		p.query = append(p.query, ' ')
		p.applyFilter()
		return true
	}
	return true
}

func (p *Popup) applyFilter() {
	l := p.nav.Current()
	if l == nil {
		return
	}
	query := string(p.query)
	matched := navigate.FilterItems(p.full, query)
	l.Replace(matched)
	if len(matched) == 0 {
		p.deps.sink().Say(fmt.Sprintf("No match for %s", query), true)
		return
	}
	if idx := navigate.BestMatchIndex(matched, query); idx >= 0 {
		l.SetIndex(idx)
	}
	if item, ok := l.Current(); ok {
		p.deps.sink().Say(fmt.Sprintf("%s, %d matches", item.Label, len(matched)), true)
	}
}
