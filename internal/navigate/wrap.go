package navigate

// Wrap returns index shifted by delta with modulo wraparound. The result is
// always in [0, count) for count > 0, including negative deltas. Behaviour is
// undefined for count <= 0; callers must guard.
func Wrap(index, delta, count int) int {
	return ((index+delta)%count + count) % count
}
