package sim

import (
	"math"
	"math/rand"

	"github.com/nkoreli/skygate/internal/config"
)

// Phase is the lifecycle state of the simulation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Game is the simulation context: it owns the flyer, the gate field, the
// score and the lifecycle phase. All state is mutated only through Impulse
// and Frame, both called from a single goroutine. Independent games can run
// side by side in one process.
type Game struct {
	cfg   config.Config
	flyer Flyer
	gates *GateField
	phase Phase

	score     int
	highScore int

	sinceSpawn float64 // Running time since the last spawn, seconds
	idleClock  float64 // Wall-clock time accumulated while idle, seconds

	observer Observer
	store    ScoreStore
}

// New creates a game in the idle phase. The seed fixes the gate sequence for
// the process. Observer and store may be nil; the stored high score is read
// once here and defaults to 0 when the store is missing or unreadable.
func New(cfg config.Config, seed int64, obs Observer, store ScoreStore) *Game {
	if obs == nil {
		obs = NopObserver{}
	}

	g := &Game{
		cfg:      cfg,
		flyer:    NewFlyer(cfg.Flyer),
		gates:    NewGateField(cfg, rand.New(rand.NewSource(seed))),
		observer: obs,
		store:    store,
	}

	if store != nil {
		if best, err := store.HighScore(); err == nil {
			g.highScore = best
		}
	}

	return g
}

// Impulse is the single input event. While idle or ended it starts a fresh
// run; while running it flaps. An impulse received after a run has ended
// always restarts, it never queues.
func (g *Game) Impulse() {
	switch g.phase {
	case PhaseIdle, PhaseEnded:
		g.startRun()
	case PhaseRunning:
		g.flyer.ApplyImpulse(g.cfg.Physics)
	}
}

// startRun resets score, flyer and gates, restarts the spawn timer and
// applies the impulse that triggered the start.
func (g *Game) startRun() {
	g.score = 0
	g.flyer.Reset(g.cfg.Flyer)
	for _, gone := range g.gates.Clear() {
		g.observer.GateRetired(gone)
	}
	g.sinceSpawn = 0
	g.phase = PhaseRunning
	g.flyer.ApplyImpulse(g.cfg.Physics)
}

// Frame advances the simulation by one display refresh. delta is the elapsed
// wall-clock time in seconds; it drives the spawn timer and the idle bob.
// Physics integration stays fixed-step per call.
func (g *Game) Frame(delta float64) {
	switch g.phase {
	case PhaseIdle:
		g.idleClock += delta
	case PhaseRunning:
		g.step(delta)
	}
}

// step runs one running-phase frame: integrate, spawn on cadence,
// advance/retire/score every gate, then evaluate collision.
func (g *Game) step(delta float64) {
	g.flyer.Integrate(g.cfg.Physics)

	g.sinceSpawn += delta
	if g.sinceSpawn >= g.cfg.World.SpawnInterval {
		g.sinceSpawn -= g.cfg.World.SpawnInterval
		g.observer.GateSpawned(g.gates.Spawn())
	}

	passed, retired := g.gates.Advance(g.flyer.Depth, g.cfg.Flyer.PassMargin)
	for i := 0; i < passed; i++ {
		g.score++
		g.observer.ScorePoint(g.score)
	}
	for _, gone := range retired {
		g.observer.GateRetired(gone)
	}

	if Evaluate(g.cfg, g.flyer, g.gates.Gates()) {
		g.endRun()
	}
}

// endRun transitions to the ended phase, raising and persisting the high
// score when beaten. Persistence is best-effort and never retried.
func (g *Game) endRun() {
	g.phase = PhaseEnded
	if g.score > g.highScore {
		g.highScore = g.score
		if g.store != nil {
			//nolint:errcheck // Best-effort save, the run result stands regardless
			g.store.SaveScore(g.score)
		}
	}
	g.observer.RunEnded(g.score, g.highScore)
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current run's score.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score seen by this game, including the value
// loaded from the store at startup.
func (g *Game) HighScore() int {
	return g.highScore
}

// Flyer returns a copy of the flyer for rendering.
func (g *Game) Flyer() Flyer {
	return g.flyer
}

// Gates returns the live gates in spawn order for rendering.
func (g *Game) Gates() []Gate {
	return g.gates.Gates()
}

// DisplayHeight returns the height the renderer should draw the flyer at.
// While idle it is a wall-clock bob around the start height; the physics
// state is untouched, so play always begins from the canonical position.
func (g *Game) DisplayHeight() float64 {
	if g.phase == PhaseIdle {
		idle := g.cfg.Idle
		return g.cfg.Flyer.StartHeight + idle.BobAmplitude*math.Sin(g.idleClock*idle.BobFrequency)
	}
	return g.flyer.Height
}
