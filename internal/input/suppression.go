package input

// Suppression is the gate a host-input-blocking boundary layer consults. It is
// an explicit value passed through call signatures, not a process-wide global,
// so cores under test carry no shared side effects. Access is single-threaded.
type Suppression struct {
	suppressing bool
	nextCancel  bool
}

// Suppressing reports whether the host's own input pipeline should be held
// off entirely, independent of whether a handler consumed the event.
func (s *Suppression) Suppressing() bool {
	return s.suppressing
}

// SetSuppressing flips the process-wide hold on the host input pipeline.
func (s *Suppression) SetSuppressing(on bool) {
	s.suppressing = on
}

// SuppressNextCancel arms the one-shot flag. The overlay's go-back key is the
// same physical key the host uses to close its own dialogs; arming this for
// exactly one consultation prevents one keypress from closing both.
func (s *Suppression) SuppressNextCancel() {
	s.nextCancel = true
}

// ConsumeNextCancel reads and resets the one-shot flag. The first consultation
// after arming must call this; the flag is never left pending across events.
func (s *Suppression) ConsumeNextCancel() bool {
	v := s.nextCancel
	s.nextCancel = false
	return v
}

// PendingNextCancel reports the flag without consuming it. Tracing only.
func (s *Suppression) PendingNextCancel() bool {
	return s.nextCancel
}
