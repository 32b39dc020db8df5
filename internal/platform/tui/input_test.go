package tui

import "testing"

func TestImpulseTrackerEdgeTriggered(t *testing.T) {
	var tr ImpulseTracker

	if !tr.Press(SourceMouse) {
		t.Error("first press should fire")
	}
	if tr.Press(SourceMouse) {
		t.Error("held source must not fire again")
	}

	tr.Release(SourceMouse)
	if !tr.Press(SourceMouse) {
		t.Error("a fresh activation after release should fire")
	}
}

func TestImpulseTrackerSourcesIndependent(t *testing.T) {
	var tr ImpulseTracker

	if !tr.Press(SourceMouse) {
		t.Fatal("mouse press should fire")
	}
	// A held mouse button must not block the keyboard.
	if !tr.Press(SourceKeyboard) {
		t.Error("keyboard press should fire while mouse is held")
	}
}

func TestImpulseTrackerTap(t *testing.T) {
	var tr ImpulseTracker

	for i := 0; i < 3; i++ {
		if !tr.Tap(SourceKeyboard) {
			t.Errorf("tap %d should fire", i)
		}
	}

	// A tap leaves the source released.
	if !tr.Press(SourceKeyboard) {
		t.Error("press after tap should fire")
	}
}

func TestImpulseTrackerBounds(t *testing.T) {
	var tr ImpulseTracker

	if tr.Press(ImpulseSource(-1)) || tr.Press(numSources) {
		t.Error("out-of-range sources must never fire")
	}
	tr.Release(ImpulseSource(-1)) // must not panic
	tr.Release(numSources)
}
