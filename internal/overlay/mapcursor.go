package overlay

import (
	"stormreader/internal/input"
	"stormreader/internal/logging/events"
	"stormreader/internal/navigate"
	"stormreader/internal/provider"
)

// MapCursor covers free map exploration. It runs in two modes: cursor mode,
// where arrows step a virtual cursor across the grid and each tile is spoken,
// and scan mode, a two-level navigator over landmark categories and their
// instances with a jump action that relocates the cursor.
type MapCursor struct {
	base
	scanning bool
}

// NewMapCursor wires the map cursor overlay.
func NewMapCursor(deps Deps) *MapCursor {
	c := &MapCursor{}
	c.base = newBase("mapcursor", deps)
	c.nav = navigate.New(navigate.Config{
		Sink:          deps.sink(),
		SearchTimeout: deps.SearchTimeout,
		EmptyText:     "Nothing found",
		Perform:       c.jumpTo,
	})
	c.reload = c.enterCursorMode
	return c
}

func (c *MapCursor) enterCursorMode() {
	c.scanning = false
	c.nav.Clear()
	c.deps.sink().Say("Map", true)
	c.step("")
}

func (c *MapCursor) ProcessKey(ev input.Event) bool {
	if c.scanning {
		return c.processScanKey(ev)
	}
	switch ev.Sym {
	case input.SymUp:
		return c.step("north")
	case input.SymDown:
		return c.step("south")
	case input.SymLeft:
		return c.step("west")
	case input.SymRight:
		return c.step("east")
	}
	switch c.deps.Keymap.Resolve(ev) {
	case input.ActionScan:
		c.enterScanMode()
		return true
	case input.ActionRepeat:
		return c.step("")
	case input.ActionBack:
		// Cursor mode sits directly on the host's map screen; let the host
		// handle its own close.
		return false
	}
	return false
}

func (c *MapCursor) processScanKey(ev input.Event) bool {
	if c.deps.Keymap.Resolve(ev) == input.ActionScan {
		c.leaveScanMode()
		return true
	}
	if c.handleNavKey(ev) {
		return true
	}
	if c.deps.Keymap.Resolve(ev) == input.ActionBack {
		// Back at the scan root drops to cursor mode instead of reaching the
		// host.
		c.leaveScanMode()
		return true
	}
	return false
}

// enterScanMode builds the landmark list: categories with their instances as
// jumpable children.
func (c *MapCursor) enterScanMode() {
	items := c.fetch("map:landmarks")
	c.scanning = true
	c.deps.sink().Say("Scanning", true)
	c.nav.Reset(navigate.NewLevel("map:landmarks", "Landmarks", items))
}

func (c *MapCursor) leaveScanMode() {
	c.scanning = false
	c.nav.Clear()
	c.deps.sink().Say("Map", true)
	c.step("")
}

// jumpTo relocates the cursor onto a scanned landmark and returns to cursor
// mode so arrows continue from there.
func (c *MapCursor) jumpTo(item navigate.Item) (string, error) {
	res, err := c.deps.Source.Perform(c.ctx, item.Payload, provider.ActionJump)
	if err != nil {
		return "", err
	}
	if !res.OK {
		msg := res.Code
		if msg == "" {
			msg = "Cannot jump there"
		}
		return msg, nil
	}
	c.scanning = false
	c.nav.Clear()
	if res.Code != "" {
		return res.Code, nil
	}
	return item.Label, nil
}

// step moves the cursor one tile; empty direction re-reads the tile under it.
func (c *MapCursor) step(direction string) bool {
	res, err := c.deps.Source.Perform(c.ctx, direction, provider.ActionMove)
	if err != nil {
		events.Overlay.ProviderError(c.name, err)
		c.deps.sink().Say("Map unavailable", true)
		return true
	}
	if !res.OK {
		msg := res.Code
		if msg == "" {
			msg = "Edge of map"
		}
		c.deps.sink().Say(msg, true)
		return true
	}
	if res.Code != "" {
		c.deps.sink().Say(res.Code, true)
	}
	return true
}
