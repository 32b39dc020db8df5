// Package sim implements the skygate gameplay simulation: flyer physics,
// procedural gate generation, collision and scoring, and the run lifecycle.
// It contains pure logic with no platform dependencies; the terminal layer
// drives it through Game.Frame and Game.Impulse and reads state back for
// rendering.
package sim

import (
	"github.com/nkoreli/skygate/internal/config"
	"github.com/nkoreli/skygate/internal/core"
)

// Flyer is the player-controlled body. Height is simulated; Depth and
// Lateral are fixed placement. Tilt is a smoothed cosmetic orientation with
// no effect on collision.
type Flyer struct {
	Height   float64
	Depth    float64
	Lateral  float64
	Velocity float64
	Tilt     float64
}

// NewFlyer creates a flyer at its canonical start position.
func NewFlyer(cfg config.Flyer) Flyer {
	return Flyer{Height: cfg.StartHeight, Depth: cfg.Depth}
}

// Reset returns the flyer to its start position with zero velocity.
// Called on every transition into the running phase.
func (f *Flyer) Reset(cfg config.Flyer) {
	f.Height = cfg.StartHeight
	f.Depth = cfg.Depth
	f.Lateral = 0
	f.Velocity = 0
	f.Tilt = 0
}

// Integrate applies one fixed physics step. The step is per-call, not
// delta-scaled: simulation speed follows the tick rate, which reproduces the
// original arcade feel. Order matters: gravity, clamp, move, then tilt.
func (f *Flyer) Integrate(p config.Physics) {
	f.Velocity += p.Gravity
	f.Velocity = core.ClampF(f.Velocity, p.MinVelocity, p.MaxVelocity)
	f.Height += f.Velocity
	f.Tilt = core.Lerp(f.Tilt, -f.Velocity*p.TiltScale, p.TiltSmoothing)
}

// ApplyImpulse sets the vertical velocity to the flap strength. This is a
// hard overwrite, not additive, so rapid repeated impulses do not stack.
func (f *Flyer) ApplyImpulse(p config.Physics) {
	f.Velocity = p.FlapStrength
}
