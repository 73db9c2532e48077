package events

import "stormreader/internal/logging"

type PollTracer struct{}

var Poll = PollTracer{}

func (PollTracer) Start(name string) {
	logging.Trace("poll.start", map[string]interface{}{"poller": name})
}

func (PollTracer) Sample(name, digest string) {
	logging.Trace("poll.sample", map[string]interface{}{"poller": name, "digest": digest})
}

func (PollTracer) Done(name, outcome string) {
	logging.Trace("poll.done", map[string]interface{}{"poller": name, "outcome": outcome})
}
