package config

import (
	_ "embed"
)

//go:embed defaults/skygate.yaml
var defaultYAML []byte

// Default returns the default skygate configuration.
// Values match the embedded defaults/skygate.yaml.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:       -0.006,
			FlapStrength:  0.15,
			MinVelocity:   -0.25,
			MaxVelocity:   0.3,
			TiltScale:     4.0,
			TiltSmoothing: 0.15,
		},
		World: World{
			Floor:         0.0,
			Ceiling:       18.0,
			Speed:         0.12,
			SpawnDepth:    -42.0,
			RetireDepth:   12.0,
			SpawnInterval: 1.5,
		},
		Gates: Gates{
			GapHalfWidth: 4.5,
			MinGapCenter: 6.0,
			MaxGapCenter: 12.0,
			DepthExtent:  1.6,
			Width:        10.0,
		},
		Flyer: Flyer{
			StartHeight:     9.0,
			Depth:           0.0,
			CollisionRadius: 0.96,
			PassMargin:      0.5,
		},
		Idle: Idle{
			BobAmplitude: 0.6,
			BobFrequency: 2.0,
		},
	}
}
