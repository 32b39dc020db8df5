// Package config provides YAML-based tuning for the skygate simulation.
// Every numeric constant the simulation consumes lives here; the sim
// packages contain no magic numbers of their own.
package config

// Config contains all tunable parameters for a run.
type Config struct {
	Physics Physics `yaml:"physics"`
	World   World   `yaml:"world"`
	Gates   Gates   `yaml:"gates"`
	Flyer   Flyer   `yaml:"flyer"`
	Idle    Idle    `yaml:"idle"`
}

// Physics defines the flyer's per-frame integration constants.
// Gravity and velocities are in world units per frame: the integration is
// deliberately frame-rate coupled, matching the original arcade feel.
type Physics struct {
	Gravity       float64 `yaml:"gravity"`        // Per-frame velocity increment, negative
	FlapStrength  float64 `yaml:"flap_strength"`  // Velocity set by an impulse, positive
	MinVelocity   float64 `yaml:"min_velocity"`   // Terminal fall speed, negative
	MaxVelocity   float64 `yaml:"max_velocity"`   // Rise speed cap, positive
	TiltScale     float64 `yaml:"tilt_scale"`     // Radians of tilt per unit of velocity
	TiltSmoothing float64 `yaml:"tilt_smoothing"` // Exponential smoothing factor in (0, 1]
}

// World defines the playfield bounds and gate motion.
type World struct {
	Floor         float64 `yaml:"floor"`          // Lower height bound
	Ceiling       float64 `yaml:"ceiling"`        // Upper height bound
	Speed         float64 `yaml:"speed"`          // Gate depth advance per frame
	SpawnDepth    float64 `yaml:"spawn_depth"`    // Depth at which gates spawn (in front of the flyer)
	RetireDepth   float64 `yaml:"retire_depth"`   // Depth past which gates are retired
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds of running time between spawns
}

// Gates defines gate geometry and the gap-center draw range.
type Gates struct {
	GapHalfWidth float64 `yaml:"gap_half_width"` // Half-height of the passable opening
	MinGapCenter float64 `yaml:"min_gap_center"` // Lowest gap center drawn at spawn
	MaxGapCenter float64 `yaml:"max_gap_center"` // Highest gap center drawn at spawn
	DepthExtent  float64 `yaml:"depth_extent"`   // Gate thickness along the travel axis
	Width        float64 `yaml:"width"`          // Gate extent along the fixed lateral axis
}

// Flyer defines the flyer's fixed placement and collision inflation.
type Flyer struct {
	StartHeight     float64 `yaml:"start_height"`     // Height on every run start
	Depth           float64 `yaml:"depth"`            // Fixed depth position
	CollisionRadius float64 `yaml:"collision_radius"` // Inflation for bounds and gate tests
	PassMargin      float64 `yaml:"pass_margin"`      // Depth past the flyer before a gate scores
}

// Idle defines the cosmetic bob shown before the first run.
type Idle struct {
	BobAmplitude float64 `yaml:"bob_amplitude"` // Height swing around the start height
	BobFrequency float64 `yaml:"bob_frequency"` // Radians per second of wall-clock time
}
