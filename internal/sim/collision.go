package sim

import (
	"github.com/nkoreli/skygate/internal/config"
	"github.com/nkoreli/skygate/internal/core"
)

// Evaluate reports whether the flyer collides with the world bounds or any
// live gate. Either check alone is sufficient. The function has no side
// effects: scoring happens in GateField.Advance, which runs to completion
// before evaluation each frame, so a pass and a collision can land in the
// same frame on different gates.
func Evaluate(cfg config.Config, f Flyer, gates []Gate) bool {
	r := cfg.Flyer.CollisionRadius

	if f.Height-r <= cfg.World.Floor || f.Height+r >= cfg.World.Ceiling {
		return true
	}

	for _, g := range gates {
		// Depth slab: is the flyer inside the gate's thickness?
		if core.AbsF(g.Depth-f.Depth) >= cfg.Gates.DepthExtent/2+r {
			continue
		}
		// Lateral corridor. Flyer and gates sit on the same lateral axis,
		// so this is a constant-offset comparison.
		if core.AbsF(g.Lateral-f.Lateral) >= cfg.Gates.Width/2+r {
			continue
		}
		// Inside the slab: the inflated flyer must fit within the opening.
		if f.Height-r < g.GapBottom() || f.Height+r > g.GapTop() {
			return true
		}
	}

	return false
}
