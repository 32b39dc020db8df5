package sim

import (
	"math/rand"

	"github.com/nkoreli/skygate/internal/config"
)

// Gate is one obstacle pair: an upper and a lower body sharing a horizontal
// gap. Gates travel along the depth axis toward and past the flyer. The ID is
// a process-unique handle the platform uses to track a gate's visual
// representation across spawn and retirement.
type Gate struct {
	ID        int
	Depth     float64
	Lateral   float64
	GapCenter float64
	GapHalf   float64
	Passed    bool
}

// GapBottom returns the height of the lower edge of the opening.
func (g Gate) GapBottom() float64 {
	return g.GapCenter - g.GapHalf
}

// GapTop returns the height of the upper edge of the opening.
func (g Gate) GapTop() float64 {
	return g.GapCenter + g.GapHalf
}

// GateField owns the live gates in spawn order along with the random source
// that places gap centers. Removal is by predicate, so iteration order stays
// spawn order but indexes are not stable across frames.
type GateField struct {
	cfg    config.Config
	rng    *rand.Rand
	gates  []Gate
	nextID int
}

// NewGateField creates an empty field. The rng drives gap-center draws;
// seeding it fixes the gate sequence for a run.
func NewGateField(cfg config.Config, rng *rand.Rand) *GateField {
	return &GateField{
		cfg:    cfg,
		rng:    rng,
		gates:  make([]Gate, 0, 8),
		nextID: 1,
	}
}

// Spawn creates a gate far in front of the flyer with a gap center drawn
// uniformly from [MinGapCenter, MaxGapCenter], and appends it to the field.
// Returns the spawned gate so the caller can announce its visual.
func (f *GateField) Spawn() Gate {
	gc := f.cfg.Gates
	center := gc.MinGapCenter + f.rng.Float64()*(gc.MaxGapCenter-gc.MinGapCenter)

	gate := Gate{
		ID:        f.nextID,
		Depth:     f.cfg.World.SpawnDepth,
		GapCenter: center,
		GapHalf:   gc.GapHalfWidth,
	}
	f.nextID++
	f.gates = append(f.gates, gate)
	return gate
}

// Advance moves every live gate one world-speed step toward the flyer.
// A gate strictly past the flyer's depth plus the pass margin is marked
// passed exactly once and counted toward the return value; a gate past the
// retirement depth is removed and returned so its visual can be released.
func (f *GateField) Advance(flyerDepth, passMargin float64) (passed int, retired []Gate) {
	w := f.cfg.World

	live := f.gates[:0]
	for _, g := range f.gates {
		g.Depth += w.Speed

		if !g.Passed && g.Depth > flyerDepth+passMargin {
			g.Passed = true
			passed++
		}

		if g.Depth > w.RetireDepth {
			retired = append(retired, g)
			continue
		}
		live = append(live, g)
	}
	f.gates = live

	return passed, retired
}

// Gates returns the live gates in spawn order. The slice is owned by the
// field and valid until the next mutation.
func (f *GateField) Gates() []Gate {
	return f.gates
}

// Len returns the number of live gates.
func (f *GateField) Len() int {
	return len(f.gates)
}

// Clear removes every live gate and returns them so their visuals can be
// released. Called when a new run starts.
func (f *GateField) Clear() []Gate {
	removed := append([]Gate(nil), f.gates...)
	f.gates = f.gates[:0]
	return removed
}
