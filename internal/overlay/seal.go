package overlay

import (
	"strings"
	"time"

	"stormreader/internal/input"
	"stormreader/internal/navigate"
	"stormreader/internal/poll"
)

// Seal covers the seal progress overlay: stages with their requirements, and
// a claim action whose rewards only exist once the host's animation settles.
// The claim arms a bounded poller; the host's update tick drives it until two
// consecutive reward snapshots agree or the timeout passes, then the best
// available result is spoken.
type Seal struct {
	base
	poller *poll.Poller
	now    func() time.Time
}

// NewSeal wires the seal overlay. Interval and timeout of zero use the poll
// package defaults (500ms, 6s).
func NewSeal(deps Deps, interval, timeout time.Duration) *Seal {
	s := &Seal{
		poller: poll.New("seal-rewards", interval, timeout),
		now:    time.Now,
	}
	s.base = newBase("seal", deps)
	s.nav = navigate.New(navigate.Config{
		Sink:          deps.sink(),
		SearchTimeout: deps.SearchTimeout,
		EmptyText:     "No stages",
		Perform:       s.claim,
	})
	s.reload = s.rebuild
	return s
}

// SetClock overrides the time source used when arming the poller.
func (s *Seal) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *Seal) rebuild() {
	s.poller.Reset()
	s.nav.Reset(navigate.NewLevel("seal", "Seal", s.fetch("seal")))
}

func (s *Seal) claim(item navigate.Item) (string, error) {
	msg, err := s.perform(item)
	if err != nil {
		return msg, err
	}
	s.nav.RefreshCurrent(s.fetch("seal"))
	s.poller.Start(s.now())
	return msg, nil
}

func (s *Seal) ProcessKey(ev input.Event) bool {
	return s.handleNavKey(ev)
}

// Tick advances the reward poll. The liveness predicate is simply whether the
// overlay is still open; a closed seal abandons the wait silently.
func (s *Seal) Tick(now time.Time) {
	if s.poller.Status() != poll.Polling {
		return
	}
	status := s.poller.Tick(now, func() bool { return s.open }, s.sampleRewards)
	switch status {
	case poll.Stable, poll.TimedOut:
		text := s.poller.Result()
		if text == "" {
			text = "No rewards yet"
		} else {
			text = "Rewards: " + text
		}
		s.deps.sink().Say(text, false)
		s.poller.Reset()
	case poll.Abandoned:
		s.poller.Reset()
	}
}

// sampleRewards digests the reward list into a comparable string.
func (s *Seal) sampleRewards() string {
	items := s.fetch("seal:rewards")
	parts := make([]string, 0, len(items))
	for _, item := range items {
		part := item.Label
		if item.Value != "" {
			part += " " + item.Value
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}
