package ui

import (
	"stormreader/internal/input"

	tea "github.com/charmbracelet/bubbletea"
)

// translateKey converts a Bubble Tea key message into the engine's event
// shape. Returns false for keys the engine has no symbol for, which the
// harness then treats as host-only input.
func translateKey(msg tea.KeyMsg) (input.Event, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return input.Key(input.SymUp), true
	case tea.KeyDown:
		return input.Key(input.SymDown), true
	case tea.KeyLeft:
		return input.Key(input.SymLeft), true
	case tea.KeyRight:
		return input.Key(input.SymRight), true
	case tea.KeyEnter:
		return input.Key(input.SymEnter), true
	case tea.KeyEscape:
		return input.Key(input.SymEscape), true
	case tea.KeyTab:
		return input.Key(input.SymTab), true
	case tea.KeyShiftTab:
		return input.Event{Sym: input.SymTab, Mods: input.ModShift}, true
	case tea.KeyBackspace:
		return input.Key(input.SymBackspace), true
	case tea.KeySpace:
		return input.Key(input.SymSpace), true
	case tea.KeyHome:
		return input.Key(input.SymHome), true
	case tea.KeyEnd:
		return input.Key(input.SymEnd), true
	case tea.KeyPgUp:
		return input.Key(input.SymPageUp), true
	case tea.KeyPgDown:
		return input.Key(input.SymPageDown), true
	case tea.KeyCtrlF:
		return input.Event{Sym: input.SymRune, Rune: 'f', Mods: input.ModCtrl}, true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return input.Event{}, false
		}
		ev := input.Char(msg.Runes[0])
		if msg.Alt {
			ev.Mods |= input.ModAlt
		}
		return ev, true
	}
	return input.Event{}, false
}
