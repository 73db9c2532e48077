package input

import "strings"

// Symbol identifies a physical key. Rune-bearing keys use SymRune with the
// Rune field set.
type Symbol int

const (
	SymNone Symbol = iota
	SymRune
	SymUp
	SymDown
	SymLeft
	SymRight
	SymEnter
	SymEscape
	SymTab
	SymBackspace
	SymSpace
	SymHome
	SymEnd
	SymPageUp
	SymPageDown
)

// Mod is a bitmask of held modifiers.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
)

// Event is one discrete key transition: a symbol plus modifiers. No
// key-repeat semantics are assumed; hosts needing repeat re-deliver events.
type Event struct {
	Sym  Symbol
	Rune rune
	Mods Mod
}

// Key builds a plain event for a named symbol.
func Key(sym Symbol) Event {
	return Event{Sym: sym}
}

// Char builds a rune event.
func Char(r rune) Event {
	return Event{Sym: SymRune, Rune: r}
}

var symbolNames = map[string]Symbol{
	"up":        SymUp,
	"down":      SymDown,
	"left":      SymLeft,
	"right":     SymRight,
	"enter":     SymEnter,
	"escape":    SymEscape,
	"esc":       SymEscape,
	"tab":       SymTab,
	"backspace": SymBackspace,
	"space":     SymSpace,
	"home":      SymHome,
	"end":       SymEnd,
	"pageup":    SymPageUp,
	"pagedown":  SymPageDown,
}

// ParseKey turns a binding name like "ctrl+home" or "shift+r" into an event.
// Returns false when the name is unknown.
func ParseKey(name string) (Event, bool) {
	var ev Event
	parts := strings.Split(strings.ToLower(strings.TrimSpace(name)), "+")
	if len(parts) == 0 {
		return ev, false
	}
	for _, part := range parts[:len(parts)-1] {
		switch part {
		case "ctrl":
			ev.Mods |= ModCtrl
		case "alt":
			ev.Mods |= ModAlt
		case "shift":
			ev.Mods |= ModShift
		default:
			return Event{}, false
		}
	}
	last := parts[len(parts)-1]
	if sym, ok := symbolNames[last]; ok {
		ev.Sym = sym
		return ev, true
	}
	// "+" and "-" cannot appear literally in a "mod+key" name.
	switch last {
	case "plus":
		ev.Sym, ev.Rune = SymRune, '+'
		return ev, true
	case "minus":
		ev.Sym, ev.Rune = SymRune, '-'
		return ev, true
	}
	runes := []rune(last)
	if len(runes) != 1 {
		return Event{}, false
	}
	ev.Sym = SymRune
	ev.Rune = runes[0]
	return ev, true
}
