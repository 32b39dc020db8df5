package sim

// Observer receives simulation lifecycle notifications: gate visual
// creation and release, score increments, and run endings. Callbacks run
// synchronously inside the frame step and must be cheap.
type Observer interface {
	// GateSpawned is emitted exactly once when a gate enters the field.
	GateSpawned(g Gate)

	// GateRetired is emitted exactly once when a gate leaves the field,
	// either by crossing the retirement depth or by a run reset.
	GateRetired(g Gate)

	// ScorePoint is emitted on every score increment with the new total.
	ScorePoint(score int)

	// RunEnded is emitted on the transition to the ended phase with the
	// final score and the (possibly just raised) high score.
	RunEnded(score, highScore int)
}

// NopObserver ignores all notifications.
type NopObserver struct{}

func (NopObserver) GateSpawned(Gate)  {}
func (NopObserver) GateRetired(Gate)  {}
func (NopObserver) ScorePoint(int)    {}
func (NopObserver) RunEnded(int, int) {}

// ScoreStore persists the best score across runs. Both operations are
// best-effort: a missing or failing store never interrupts play, and an
// unreadable stored value is treated as 0.
type ScoreStore interface {
	HighScore() (int, error)
	SaveScore(score int) error
}
