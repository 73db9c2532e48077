// Package ui is the demo harness: a Bubble Tea program that plays the role of
// the host application, feeding keys through the overlay manager and showing
// the spoken transcript alongside the routing decisions.
package ui

import (
	"time"

	"stormreader/internal/announce"
	"stormreader/internal/input"
	"stormreader/internal/overlay"
	"stormreader/internal/provider"
	"stormreader/internal/theme"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const tickInterval = 100 * time.Millisecond

var styles = theme.Default()

type lineKind int

const (
	lineAnnounce lineKind = iota
	lineInterrupt
	lineEvent
	lineError
)

type line struct {
	text string
	kind lineKind
}

type tickMsg time.Time

// Model drives the harness: key messages become engine events, unconsumed
// events fall through to a pretend host boundary, and the transcript shows
// what a screen reader user would hear.
type Model struct {
	mgr         *overlay.Manager
	rec         *announce.Recorder
	drained     int
	transcript  []line
	vp          viewport.Model
	ready       bool
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	verbose     bool
}

// NewModel builds the harness model. The recorder must be the same sink the
// overlays announce into.
func NewModel(mgr *overlay.Manager, rec *announce.Recorder, width, height int, verbose bool) *Model {
	m := &Model{mgr: mgr, rec: rec, verbose: verbose}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.addEvent("Press F1-F8 to open overlays, ctrl+c to quit")
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return scheduleTick()
}

func scheduleTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.handleWindowSizeMsg(msg)
		return m, nil
	case tickMsg:
		m.mgr.Tick(time.Time(msg))
		m.drainAnnouncements()
		m.refreshViewport()
		return m, scheduleTick()
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyF1:
		m.toggleOverlay("popup")
	case tea.KeyF2:
		m.toggleOverlay("altar")
	case tea.KeyF3:
		m.toggleOverlay("seal")
	case tea.KeyF4:
		m.toggleOverlay("embark")
	case tea.KeyF5:
		m.toggleOverlay("villagers")
	case tea.KeyF6:
		m.toggleOverlay("movemode")
	case tea.KeyF7:
		m.toggleOverlay("mapcursor")
	case tea.KeyF8:
		m.toggleOverlay("tooltip")
	case tea.KeyF10:
		m.mgr.CloseAll()
		m.addEvent("all overlays closed")
	default:
		m.dispatchKey(msg)
	}
	m.drainAnnouncements()
	m.refreshViewport()
	return m, nil
}

// dispatchKey runs one key through the engine and then through the pretend
// host boundary. The boundary sees every physical key, consumed or not: a
// cancel the engine just consumed is exactly the one the armed one-shot flag
// guards against, so the flag never survives past the event that armed it.
func (m *Model) dispatchKey(msg tea.KeyMsg) {
	ev, ok := translateKey(msg)
	if !ok {
		if m.verbose {
			m.addEvent("host-only key " + msg.String())
		}
		return
	}
	if m.mgr.HandleKey(ev) {
		if ev.Sym == input.SymEscape && m.mgr.Suppression().ConsumeNextCancel() {
			m.addEvent("cancel swallowed at host boundary")
		}
		if m.verbose {
			m.addEvent("consumed " + msg.String())
		}
		return
	}
	m.hostHandle(ev, msg.String())
}

// hostHandle stands in for the host's own input handling behind the
// suppression gate. A cancel that the engine armed one-shot suppression for
// is swallowed here; otherwise the host closes whatever modal is up.
func (m *Model) hostHandle(ev input.Event, name string) {
	supp := m.mgr.Suppression()
	if ev.Sym == input.SymEscape {
		if supp.ConsumeNextCancel() {
			m.addEvent("cancel swallowed at host boundary")
			return
		}
		if active := m.mgr.Active(); active != "" {
			m.mgr.Close(active)
			m.addEvent("host closed " + active)
			return
		}
		m.addEvent("host: pause menu")
		return
	}
	if supp.Suppressing() {
		m.addEvent("suppressed host key " + name)
		return
	}
	if m.verbose {
		m.addEvent("host handled " + name)
	}
}

func (m *Model) toggleOverlay(name string) {
	if m.mgr.Active() == name {
		m.mgr.Close(name)
		m.addEvent("closed " + name)
		return
	}
	m.mgr.Open(name, provider.Context{Screen: name})
	m.addEvent("opened " + name)
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) {
	if !m.fixedWidth {
		m.width = msg.Width
	}
	if !m.fixedHeight {
		m.height = msg.Height
	}
	m.resizeViewport()
	m.refreshViewport()
}

// drainAnnouncements appends the recorder entries made since the last drain.
func (m *Model) drainAnnouncements() {
	for ; m.drained < len(m.rec.Entries); m.drained++ {
		entry := m.rec.Entries[m.drained]
		kind := lineAnnounce
		if entry.Interrupt {
			kind = lineInterrupt
		}
		m.transcript = append(m.transcript, line{text: entry.Text, kind: kind})
	}
}

func (m *Model) addEvent(text string) {
	m.transcript = append(m.transcript, line{text: text, kind: lineEvent})
}
