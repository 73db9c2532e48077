package input

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Action is a navigation intent resolved from a key event. Printable runes
// that resolve to ActionNone are fed to type-ahead search instead, so the
// default bindings deliberately avoid letter keys.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionFirst
	ActionLast
	ActionDrillIn
	ActionBack
	ActionRepeat
	ActionErase
	ActionIncrease
	ActionDecrease
	ActionFilter
	ActionScan
)

var actionNames = map[string]Action{
	"up":       ActionUp,
	"down":     ActionDown,
	"first":    ActionFirst,
	"last":     ActionLast,
	"drill":    ActionDrillIn,
	"back":     ActionBack,
	"repeat":   ActionRepeat,
	"erase":    ActionErase,
	"increase": ActionIncrease,
	"decrease": ActionDecrease,
	"filter":   ActionFilter,
	"scan":     ActionScan,
}

// Keymap resolves key events to navigation actions.
type Keymap struct {
	bindings map[Event]Action
}

// DefaultKeymap returns the compiled-in bindings.
func DefaultKeymap() *Keymap {
	k := &Keymap{bindings: make(map[Event]Action)}
	defaults := map[Action][]Event{
		ActionUp:       {Key(SymUp)},
		ActionDown:     {Key(SymDown)},
		ActionFirst:    {Key(SymHome)},
		ActionLast:     {Key(SymEnd)},
		ActionDrillIn:  {Key(SymEnter), Key(SymRight)},
		ActionBack:     {Key(SymEscape), Key(SymLeft)},
		ActionRepeat:   {Key(SymTab)},
		ActionErase:    {Key(SymBackspace)},
		ActionIncrease: {Char('+')},
		ActionDecrease: {Char('-')},
		ActionFilter:   {{Sym: SymRune, Rune: 'f', Mods: ModCtrl}},
		ActionScan:     {Key(SymSpace)},
	}
	for action, evs := range defaults {
		for _, ev := range evs {
			k.bindings[ev] = action
		}
	}
	return k
}

// Resolve maps an event to its bound action, or ActionNone.
func (k *Keymap) Resolve(ev Event) Action {
	if k == nil {
		return ActionNone
	}
	return k.bindings[ev]
}

// Bind attaches an event to an action, replacing any previous binding for
// that event.
func (k *Keymap) Bind(ev Event, action Action) {
	k.bindings[ev] = action
}

type keymapFile struct {
	Bindings map[string][]string `toml:"bindings"`
}

// LoadKeymap reads a TOML bindings file and merges it over the defaults.
// Actions named in the file are rebound wholesale; unnamed actions keep their
// default keys. A missing path returns the defaults unchanged.
func LoadKeymap(path string) (*Keymap, error) {
	k := DefaultKeymap()
	if path == "" {
		return k, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return k, nil
		}
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	var file keymapFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse keymap: %w", err)
	}
	for name, keys := range file.Bindings {
		action, ok := actionNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown action %q in keymap", name)
		}
		for prev, bound := range k.bindings {
			if bound == action {
				delete(k.bindings, prev)
			}
		}
		for _, keyName := range keys {
			ev, ok := ParseKey(keyName)
			if !ok {
				return nil, fmt.Errorf("unknown key %q for action %q", keyName, name)
			}
			k.bindings[ev] = action
		}
	}
	return k, nil
}
