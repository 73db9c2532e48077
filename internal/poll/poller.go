// Package poll implements bounded, tick-driven waiting for facts that settle
// after an animation: the provider is re-sampled at a fixed interval until two
// consecutive samples agree, a wall-clock timeout passes, or the source stops
// being alive. It replaces a blocking sleep loop so the core stays
// single-threaded inside any host event loop.
package poll

import (
	"time"

	"stormreader/internal/logging/events"
)

// Status is the poller state: Idle until started, Polling while sampling,
// then exactly one terminal state.
type Status int

const (
	Idle Status = iota
	Polling
	Stable
	TimedOut
	Abandoned
)

const (
	DefaultInterval = 500 * time.Millisecond
	DefaultTimeout  = 6 * time.Second
)

// Poller drives one bounded wait. Samples are compared as opaque digest
// strings; the caller encodes whatever "the list of rewards" means into one.
type Poller struct {
	name     string
	interval time.Duration
	timeout  time.Duration

	status    Status
	startedAt time.Time
	nextAt    time.Time
	prev      string
	havePrev  bool
	result    string
}

// New constructs an idle poller. Zero durations use the defaults.
func New(name string, interval, timeout time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Poller{name: name, interval: interval, timeout: timeout}
}

// Status returns the current state.
func (p *Poller) Status() Status {
	return p.status
}

// Result returns the final digest once the poller reached Stable or TimedOut.
// On timeout it is the best-available last sample.
func (p *Poller) Result() string {
	return p.result
}

// Start arms the poller; the first sample is taken on the next Tick.
func (p *Poller) Start(now time.Time) {
	p.status = Polling
	p.startedAt = now
	p.nextAt = now
	p.prev = ""
	p.havePrev = false
	p.result = ""
	events.Poll.Start(p.name)
}

// Reset returns the poller to Idle without touching the last result.
func (p *Poller) Reset() {
	p.status = Idle
}

// Tick advances the state machine. alive is the liveness predicate checked on
// every iteration; when it turns false the poller exits silently. sample is
// only invoked when the interval elapsed. The returned status is terminal for
// anything but Polling.
func (p *Poller) Tick(now time.Time, alive func() bool, sample func() string) Status {
	if p.status != Polling {
		return p.status
	}
	if alive != nil && !alive() {
		p.status = Abandoned
		events.Poll.Done(p.name, "abandoned")
		return p.status
	}
	if now.Before(p.nextAt) {
		return Polling
	}
	s := sample()
	events.Poll.Sample(p.name, s)
	if p.havePrev && s == p.prev {
		p.status = Stable
		p.result = s
		events.Poll.Done(p.name, "stable")
		return p.status
	}
	p.prev = s
	p.havePrev = true
	if now.Sub(p.startedAt) >= p.timeout {
		p.status = TimedOut
		p.result = s
		events.Poll.Done(p.name, "timeout")
		return p.status
	}
	p.nextAt = now.Add(p.interval)
	return Polling
}
