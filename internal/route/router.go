package route

import (
	"stormreader/internal/input"
	"stormreader/internal/logging/events"
)

// Handler is one registered overlay. IsActive is a pure query; ProcessKey
// reports whether the event was fully handled.
type Handler interface {
	Name() string
	IsActive() bool
	ProcessKey(ev input.Event) bool
}

// Router arbitrates which handler owns each input event. Handlers are held in
// fixed priority order, innermost modal surface first; open/close lifecycles
// are expected to keep at most one active at a time, but layered precedence is
// the deliberate tie-break when they overlap (a dropdown outranks the popup
// that contains it).
type Router struct {
	handlers []Handler
}

// New constructs a router over the given handlers, highest priority first.
func New(handlers ...Handler) *Router {
	return &Router{handlers: handlers}
}

// Register appends a handler at the lowest priority.
func (r *Router) Register(h Handler) {
	if h == nil {
		return
	}
	r.handlers = append(r.handlers, h)
}

// Dispatch delivers the event to the first active handler and returns its
// verdict immediately; no other handler is consulted. This is not a
// broadcast: the single-owner short circuit guarantees the user never hears
// two interpretations of one keystroke. False means the caller should pass
// the event to the host untouched.
func (r *Router) Dispatch(ev input.Event) bool {
	for _, h := range r.handlers {
		if !h.IsActive() {
			continue
		}
		consumed := h.ProcessKey(ev)
		events.Router.Consumed(h.Name(), consumed)
		return consumed
	}
	events.Router.PassThrough()
	return false
}

// Handlers returns the registration order, for diagnostics.
func (r *Router) Handlers() []Handler {
	out := make([]Handler, len(r.handlers))
	copy(out, r.handlers)
	return out
}
