package overlay

import (
	"fmt"

	"stormreader/internal/input"
	"stormreader/internal/navigate"
)

// Tooltip covers tutorial tooltips: a single flat level of paragraphs the
// user steps through. The first paragraph is spoken as soon as the host shows
// the tooltip; the cancel key falls through so the host dismisses it.
type Tooltip struct {
	base
}

// NewTooltip wires the tutorial tooltip overlay.
func NewTooltip(deps Deps) *Tooltip {
	t := &Tooltip{}
	t.base = newBase("tooltip", deps)
	t.nav = navigate.New(navigate.Config{
		Sink:          deps.sink(),
		SearchTimeout: deps.SearchTimeout,
		EmptyText:     "No tutorial text",
		Format:        tooltipFormat,
	})
	t.reload = t.rebuild
	return t
}

func (t *Tooltip) rebuild() {
	t.nav.Reset(navigate.NewLevel("tooltip", "Tutorial", t.fetch("tooltip")))
}

func (t *Tooltip) ProcessKey(ev input.Event) bool {
	return t.handleNavKey(ev)
}

// tooltipFormat reads the paragraph body rather than a label; position comes
// last so the text leads.
func tooltipFormat(l *navigate.Level, item navigate.Item) string {
	text := item.Value
	if text == "" {
		text = item.Label
	}
	if n := l.Len(); n > 1 {
		text += fmt.Sprintf(", paragraph %d of %d", l.Index+1, n)
	}
	return text
}
