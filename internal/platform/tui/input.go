package tui

// ImpulseSource identifies a physical input device that can fire the
// logical impulse: the simulation treats all sources as equivalent.
type ImpulseSource int

const (
	SourceKeyboard ImpulseSource = iota
	SourceMouse

	numSources
)

// ImpulseTracker collapses the physical sources into one logical impulse,
// edge-triggered per source: a sustained activation fires once and the
// source must be released before it can fire again. Other sources are
// tracked independently.
type ImpulseTracker struct {
	held [numSources]bool
}

// Press registers an activation of the given source.
// Returns true when a fresh impulse should fire.
func (t *ImpulseTracker) Press(s ImpulseSource) bool {
	if s < 0 || s >= numSources {
		return false
	}
	if t.held[s] {
		return false
	}
	t.held[s] = true
	return true
}

// Release registers a deactivation, allowing the source to fire again.
func (t *ImpulseTracker) Release(s ImpulseSource) {
	if s < 0 || s >= numSources {
		return
	}
	t.held[s] = false
}

// Tap registers a press-and-release in one call, for sources that only
// report discrete activations. Terminals send no key-up events, so every
// keyboard repeat counts as a fresh activation.
func (t *ImpulseTracker) Tap(s ImpulseSource) bool {
	fired := t.Press(s)
	t.Release(s)
	return fired
}
