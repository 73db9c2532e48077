package overlay

import (
	"time"

	"stormreader/internal/input"
	"stormreader/internal/provider"
	"stormreader/internal/route"
)

// Ticker is implemented by overlays that need the host's per-frame update
// tick, e.g. to drive a bounded poll.
type Ticker interface {
	Tick(now time.Time)
}

// Manager owns the overlay set: it fans host lifecycle signals in by overlay
// name, keeps the router's fixed priority order, distributes ticks, and holds
// the suppression gate the host's input boundary reads.
//
// Mutual exclusivity of overlays is a convention upheld by the host's own
// modal lifecycles, not enforced here: when it is violated the router's
// layered precedence (registration order, innermost surface first) decides.
type Manager struct {
	router   *route.Router
	supp     *input.Suppression
	overlays []Overlay
	byName   map[string]Overlay
}

// NewManager builds a manager over the given overlays; registration order is
// the router priority order, highest first.
func NewManager(supp *input.Suppression, overlays ...Overlay) *Manager {
	if supp == nil {
		supp = &input.Suppression{}
	}
	m := &Manager{
		router: route.New(),
		supp:   supp,
		byName: make(map[string]Overlay, len(overlays)),
	}
	for _, o := range overlays {
		if o == nil {
			continue
		}
		m.overlays = append(m.overlays, o)
		m.byName[o.Name()] = o
		m.router.Register(o)
	}
	return m
}

// HandleKey routes one input event. False means the host should see the event
// unmodified.
func (m *Manager) HandleKey(ev input.Event) bool {
	consumed := m.router.Dispatch(ev)
	m.syncSuppression()
	return consumed
}

// Open delivers the host's open signal to the named overlay. Unknown names
// are ignored; hosts signal surfaces this build has no overlay for.
func (m *Manager) Open(name string, ctx provider.Context) {
	o, ok := m.byName[name]
	if !ok {
		return
	}
	o.OnOpen(ctx)
	m.syncSuppression()
}

// Close delivers the host's close signal. A close with no matching open is a
// no-op inside the overlay.
func (m *Manager) Close(name string) {
	o, ok := m.byName[name]
	if !ok {
		return
	}
	o.OnClose()
	m.syncSuppression()
}

// CloseAll closes every overlay, e.g. when the host tears a whole screen
// down.
func (m *Manager) CloseAll() {
	for _, o := range m.overlays {
		if o.IsActive() {
			o.OnClose()
		}
	}
	m.syncSuppression()
}

// Tick distributes the host's update tick to overlays that poll.
func (m *Manager) Tick(now time.Time) {
	for _, o := range m.overlays {
		if t, ok := o.(Ticker); ok {
			t.Tick(now)
		}
	}
}

// Suppression exposes the gate for the host's input-blocking boundary.
func (m *Manager) Suppression() *input.Suppression {
	return m.supp
}

// Active returns the name of the highest-priority active overlay, or "".
func (m *Manager) Active() string {
	for _, o := range m.overlays {
		if o.IsActive() {
			return o.Name()
		}
	}
	return ""
}

// Overlay looks an overlay up by name.
func (m *Manager) Overlay(name string) (Overlay, bool) {
	o, ok := m.byName[name]
	return o, ok
}

func (m *Manager) syncSuppression() {
	m.supp.SetSuppressing(m.Active() != "")
}
