package overlay

import (
	"fmt"

	"stormreader/internal/input"
	"stormreader/internal/navigate"
)

// Villagers covers the villager roster panel: villager → aspect (needs,
// status, work) → individual facts, three levels deep. The provider delivers
// the whole tree inline so drilling never blocks.
type Villagers struct {
	base
}

// NewVillagers wires the villagers overlay.
func NewVillagers(deps Deps) *Villagers {
	v := &Villagers{}
	v.base = newBase("villagers", deps)
	v.nav = navigate.New(navigate.Config{
		Sink:          deps.sink(),
		SearchTimeout: deps.SearchTimeout,
		EmptyText:     "No villagers",
		Format:        villagerFormat,
	})
	v.reload = v.rebuild
	return v
}

func (v *Villagers) rebuild() {
	v.nav.Reset(navigate.NewLevel("villagers", "Villagers", v.fetch("villagers")))
}

func (v *Villagers) ProcessKey(ev input.Event) bool {
	return v.handleNavKey(ev)
}

// villagerFormat marks drillable entries so the listener knows more detail is
// behind them.
func villagerFormat(l *navigate.Level, item navigate.Item) string {
	text := item.Label
	if item.Value != "" {
		text += ", " + item.Value
	}
	if item.Kind == navigate.KindBranch && len(item.Children) > 0 {
		text += ", submenu"
	}
	if n := l.Len(); n > 0 {
		text += fmt.Sprintf(", %d of %d", l.Index+1, n)
	}
	return text
}
