package announce

// Sink receives spoken output. Implementations forward to a screen reader or
// speech synthesizer; delivery is fire-and-forget and never retried.
type Sink interface {
	Say(text string, interrupt bool)
}

// Func adapts a plain function to the Sink interface.
type Func func(text string, interrupt bool)

func (f Func) Say(text string, interrupt bool) { f(text, interrupt) }

// Discard is a Sink that drops all output.
var Discard Sink = Func(func(string, bool) {})

// Recorder captures announcements for inspection in tests.
type Recorder struct {
	Entries []Entry
}

// Entry is one recorded announcement.
type Entry struct {
	Text      string
	Interrupt bool
}

func (r *Recorder) Say(text string, interrupt bool) {
	r.Entries = append(r.Entries, Entry{Text: text, Interrupt: interrupt})
}

// Last returns the most recent announcement, or "" when none were made.
func (r *Recorder) Last() string {
	if len(r.Entries) == 0 {
		return ""
	}
	return r.Entries[len(r.Entries)-1].Text
}

// Reset discards recorded announcements.
func (r *Recorder) Reset() {
	r.Entries = nil
}
