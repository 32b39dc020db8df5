package sim

import (
	"math/rand"
	"testing"

	"github.com/nkoreli/skygate/internal/config"
)

func TestFlyerIntegrateOrder(t *testing.T) {
	cfg := config.Default()
	f := NewFlyer(cfg.Flyer)

	f.Integrate(cfg.Physics)

	// Gravity applies before the move, so the first step already falls.
	wantVel := cfg.Physics.Gravity
	if f.Velocity != wantVel {
		t.Errorf("velocity after one step = %f, expected %f", f.Velocity, wantVel)
	}
	wantHeight := cfg.Flyer.StartHeight + wantVel
	if f.Height != wantHeight {
		t.Errorf("height after one step = %f, expected %f", f.Height, wantHeight)
	}
}

func TestFlyerVelocityClamp(t *testing.T) {
	// For any sequence of integrate/impulse calls, velocity stays within
	// [MinVelocity, MaxVelocity] after every integration step.
	cfg := config.Default()
	f := NewFlyer(cfg.Flyer)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		if rng.Intn(10) == 0 {
			f.ApplyImpulse(cfg.Physics)
		}
		f.Integrate(cfg.Physics)

		if f.Velocity < cfg.Physics.MinVelocity || f.Velocity > cfg.Physics.MaxVelocity {
			t.Fatalf("step %d: velocity %f outside [%f, %f]",
				i, f.Velocity, cfg.Physics.MinVelocity, cfg.Physics.MaxVelocity)
		}
	}
}

func TestFlyerVelocitySaturates(t *testing.T) {
	cfg := config.Default()
	f := NewFlyer(cfg.Flyer)

	for i := 0; i < 200; i++ {
		f.Integrate(cfg.Physics)
	}

	if f.Velocity != cfg.Physics.MinVelocity {
		t.Errorf("free fall should saturate at MinVelocity, got %f", f.Velocity)
	}
}

func TestFlyerImpulseOverwrites(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name string
		vel  float64
	}{
		{"at rest", 0},
		{"falling fast", cfg.Physics.MinVelocity},
		{"already rising", cfg.Physics.FlapStrength},
		{"rising faster than flap", cfg.Physics.MaxVelocity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFlyer(cfg.Flyer)
			f.Velocity = tc.vel

			f.ApplyImpulse(cfg.Physics)

			if f.Velocity != cfg.Physics.FlapStrength {
				t.Errorf("impulse should set velocity to exactly %f, got %f",
					cfg.Physics.FlapStrength, f.Velocity)
			}
		})
	}
}

func TestFlyerImpulsesDoNotStack(t *testing.T) {
	cfg := config.Default()
	f := NewFlyer(cfg.Flyer)

	f.ApplyImpulse(cfg.Physics)
	f.ApplyImpulse(cfg.Physics)
	f.ApplyImpulse(cfg.Physics)

	if f.Velocity != cfg.Physics.FlapStrength {
		t.Errorf("repeated impulses must not stack, got velocity %f", f.Velocity)
	}
}

func TestFlyerTiltFollowsVelocity(t *testing.T) {
	cfg := config.Default()
	f := NewFlyer(cfg.Flyer)

	// Sustained fall noses the flyer downward: negative velocity drives
	// the tilt target positive.
	for i := 0; i < 100; i++ {
		f.Integrate(cfg.Physics)
	}
	if f.Tilt <= 0 {
		t.Errorf("tilt while falling should be positive, got %f", f.Tilt)
	}

	// A flap swings the tilt target the other way; smoothing means it
	// moves toward it, not jumps.
	before := f.Tilt
	f.ApplyImpulse(cfg.Physics)
	f.Integrate(cfg.Physics)
	if f.Tilt >= before {
		t.Errorf("tilt should decrease after a flap, was %f now %f", before, f.Tilt)
	}
}

func TestFlyerReset(t *testing.T) {
	cfg := config.Default()
	f := NewFlyer(cfg.Flyer)

	for i := 0; i < 50; i++ {
		f.Integrate(cfg.Physics)
	}
	f.Reset(cfg.Flyer)

	if f.Height != cfg.Flyer.StartHeight {
		t.Errorf("reset height = %f, expected %f", f.Height, cfg.Flyer.StartHeight)
	}
	if f.Velocity != 0 || f.Tilt != 0 {
		t.Errorf("reset should zero velocity and tilt, got %f, %f", f.Velocity, f.Tilt)
	}
	if f.Depth != cfg.Flyer.Depth {
		t.Errorf("reset depth = %f, expected %f", f.Depth, cfg.Flyer.Depth)
	}
}
