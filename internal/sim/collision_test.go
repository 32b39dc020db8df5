package sim

import (
	"testing"

	"github.com/nkoreli/skygate/internal/config"
)

func testFlyerAt(height float64, cfg config.Config) Flyer {
	return Flyer{Height: height, Depth: cfg.Flyer.Depth}
}

func TestEvaluateBounds(t *testing.T) {
	cfg := config.Default()
	r := cfg.Flyer.CollisionRadius

	tests := []struct {
		name     string
		height   float64
		collided bool
	}{
		{"mid air", 9, false},
		{"touching floor", cfg.World.Floor + r, true},
		{"below floor", cfg.World.Floor - 1, true},
		{"just above floor", cfg.World.Floor + r + 0.01, false},
		{"touching ceiling", cfg.World.Ceiling - r, true},
		{"above ceiling", cfg.World.Ceiling + 1, true},
		{"just below ceiling", cfg.World.Ceiling - r - 0.01, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(cfg, testFlyerAt(tc.height, cfg), nil)
			if got != tc.collided {
				t.Errorf("Evaluate at height %f = %v, expected %v", tc.height, got, tc.collided)
			}
		})
	}
}

func TestEvaluateGateOverlap(t *testing.T) {
	// Gap center 9 with half-width 4.5 spans [4.5, 13.5]; radius 0.96.
	cfg := config.Default()
	gate := Gate{ID: 1, Depth: cfg.Flyer.Depth, GapCenter: 9, GapHalf: 4.5}

	tests := []struct {
		name     string
		height   float64
		collided bool
	}{
		{"centered in gap", 9, false}, // 8.04 >= 4.5 and 9.96 <= 13.5
		{"below gap", 4, true},        // 3.04 < 4.5
		{"above gap", 14, true},       // 14.96 > 13.5
		{"grazing gap bottom", 4.5 + cfg.Flyer.CollisionRadius, false},
		{"grazing gap top", 13.5 - cfg.Flyer.CollisionRadius, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(cfg, testFlyerAt(tc.height, cfg), []Gate{gate})
			if got != tc.collided {
				t.Errorf("Evaluate at height %f = %v, expected %v", tc.height, got, tc.collided)
			}
		})
	}
}

func TestEvaluateDepthSlab(t *testing.T) {
	cfg := config.Default()
	slab := cfg.Gates.DepthExtent/2 + cfg.Flyer.CollisionRadius

	tests := []struct {
		name     string
		depth    float64
		collided bool
	}{
		{"inside slab", cfg.Flyer.Depth, true},
		{"slab edge in front", cfg.Flyer.Depth - slab + 0.01, true},
		{"slab edge behind", cfg.Flyer.Depth + slab - 0.01, true},
		{"far in front", cfg.World.SpawnDepth, false},
		{"well behind", cfg.Flyer.Depth + slab + 1, false},
		{"exactly at slab boundary", cfg.Flyer.Depth + slab, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Flyer below the gap: collision reported only when inside the slab.
			gate := Gate{ID: 1, Depth: tc.depth, GapCenter: 9, GapHalf: 4.5}
			got := Evaluate(cfg, testFlyerAt(2, cfg), []Gate{gate})
			if got != tc.collided {
				t.Errorf("Evaluate with gate at depth %f = %v, expected %v", tc.depth, got, tc.collided)
			}
		})
	}
}

func TestEvaluateEitherCheckSufficient(t *testing.T) {
	cfg := config.Default()

	// Flyer at the floor AND outside a gate's gap: still just collided=true.
	gate := Gate{ID: 1, Depth: cfg.Flyer.Depth, GapCenter: 12, GapHalf: 2}
	if !Evaluate(cfg, testFlyerAt(cfg.World.Floor, cfg), []Gate{gate}) {
		t.Error("simultaneous bounds and gate violations must report collided")
	}

	// Gate overlap alone is sufficient.
	if !Evaluate(cfg, testFlyerAt(9, cfg), []Gate{{ID: 2, Depth: cfg.Flyer.Depth, GapCenter: 15, GapHalf: 1}}) {
		t.Error("gate overlap alone must report collided")
	}
}

func TestEvaluateLaterGateChecked(t *testing.T) {
	cfg := config.Default()

	gates := []Gate{
		{ID: 1, Depth: cfg.World.SpawnDepth, GapCenter: 9, GapHalf: 4.5}, // far away, harmless
		{ID: 2, Depth: cfg.Flyer.Depth, GapCenter: 15, GapHalf: 1},       // overlapping
	}
	if !Evaluate(cfg, testFlyerAt(9, cfg), gates) {
		t.Error("collision against any live gate must be reported")
	}
}

func TestEvaluateHasNoSideEffects(t *testing.T) {
	cfg := config.Default()
	gates := []Gate{{ID: 1, Depth: cfg.Flyer.Depth, GapCenter: 15, GapHalf: 1}}

	Evaluate(cfg, testFlyerAt(9, cfg), gates)

	if gates[0].Passed {
		t.Error("Evaluate must not mutate gate state")
	}
	if gates[0].Depth != cfg.Flyer.Depth {
		t.Error("Evaluate must not move gates")
	}
}
