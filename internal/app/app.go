package app

import (
	"errors"
	"fmt"
	"time"

	"stormreader/internal/announce"
	"stormreader/internal/input"
	"stormreader/internal/overlay"
	"stormreader/internal/sim"
	"stormreader/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width         int
	Height        int
	Verbose       bool
	KeymapPath    string
	SearchTimeout time.Duration
	PollInterval  time.Duration
	PollTimeout   time.Duration
}

// Run bootstraps the engine against the scripted settlement and executes the
// Bubble Tea harness.
func Run(cfg Config) error {
	keymap, err := input.LoadKeymap(cfg.KeymapPath)
	if err != nil {
		return fmt.Errorf("load keymap: %w", err)
	}

	rec := &announce.Recorder{}
	world := sim.NewSettlement()
	supp := &input.Suppression{}
	deps := overlay.Deps{
		Sink:          rec,
		Source:        world,
		Keymap:        keymap,
		Suppression:   supp,
		SearchTimeout: cfg.SearchTimeout,
	}

	// Registration order is router priority: innermost surfaces first so a
	// popup on top of an open screen wins the key.
	mgr := overlay.NewManager(supp,
		overlay.NewPopup(deps),
		overlay.NewAltar(deps),
		overlay.NewSeal(deps, cfg.PollInterval, cfg.PollTimeout),
		overlay.NewEmbark(deps),
		overlay.NewVillagers(deps),
		overlay.NewMoveMode(deps),
		overlay.NewMapCursor(deps),
		overlay.NewTooltip(deps),
	)

	model := ui.NewModel(mgr, rec, cfg.Width, cfg.Height, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
