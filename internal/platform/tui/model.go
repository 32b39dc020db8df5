package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nkoreli/skygate/internal/config"
	"github.com/nkoreli/skygate/internal/core"
	"github.com/nkoreli/skygate/internal/sim"
	"github.com/nkoreli/skygate/internal/storage"
)

// scoreFlashFrames is how many ticks the HUD score stays highlighted after
// an increment.
const scoreFlashFrames = 12

// maxFrameDelta caps the elapsed time fed to the simulation so a stalled
// terminal does not dump a burst of spawn-timer seconds into one frame.
const maxFrameDelta = 0.25

// watcher implements sim.Observer for the platform: it drives the HUD score
// flash and, when a logger is attached (SSH sessions), logs the simulation's
// lifecycle events.
type watcher struct {
	logger      *log.Logger
	flashFrames int
}

func (w *watcher) GateSpawned(g sim.Gate) {
	if w.logger != nil {
		w.logger.Debug("gate spawned", "id", g.ID, "gap_center", g.GapCenter)
	}
}

func (w *watcher) GateRetired(g sim.Gate) {
	if w.logger != nil {
		w.logger.Debug("gate retired", "id", g.ID)
	}
}

func (w *watcher) ScorePoint(score int) {
	w.flashFrames = scoreFlashFrames
	if w.logger != nil {
		w.logger.Debug("score", "total", score)
	}
}

func (w *watcher) RunEnded(score, highScore int) {
	if w.logger != nil {
		w.logger.Info("run ended", "score", score, "best", highScore)
	}
}

// Model is the Bubble Tea model driving one skygate session. It owns the
// frame loop: every tick feeds the elapsed time to the simulation exactly
// once and redraws from its state.
type Model struct {
	game    *sim.Game
	watcher *watcher
	screen  *core.Screen
	store   *storage.Store
	cfg     config.Config
	tracker ImpulseTracker

	tickRate int
	lastTick time.Time
	quitting bool
}

// NewModel creates a session model. A zero seed picks a time-based one;
// store and logger may be nil.
func NewModel(cfg config.Config, store *storage.Store, width, height, tickRate int, seed int64, logger *log.Logger) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w := &watcher{logger: logger}

	// A typed nil must not reach the interface, or the simulation would
	// call methods on a nil store.
	var scoreStore sim.ScoreStore
	if store != nil {
		scoreStore = store
	}

	return Model{
		game:     sim.New(cfg, seed, w, scoreStore),
		watcher:  w,
		screen:   core.NewScreen(width, height),
		store:    store,
		cfg:      cfg,
		tickRate: tickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		// Resize is presentation-only: the simulation never sees it.
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
	case " ", "up", "w":
		if m.tracker.Tap(SourceKeyboard) {
			m.game.Impulse()
		}
	}

	return m, nil
}

// handleMouse maps pointer presses to the impulse, edge-triggered: a held
// button fires once until released.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.tracker.Press(SourceMouse) {
			m.game.Impulse()
		}
	case tea.MouseActionRelease:
		m.tracker.Release(SourceMouse)
	}

	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := 1.0 / float64(m.tickRate)
	if !m.lastTick.IsZero() {
		delta = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now
	delta = core.ClampF(delta, 0, maxFrameDelta)

	m.game.Frame(delta)

	if m.watcher.flashFrames > 0 {
		m.watcher.flashFrames--
	}

	return m, tickCmd(m.tickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	drawWorld(m.screen, m.game, m.cfg, false)

	dir := filepath.Join(os.Getenv("HOME"), ".skygate", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("skygate_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, the game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawWorld(m.screen, m.game, m.cfg, m.watcher.flashFrames > 0)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg config.Config, store *storage.Store, width, height, tickRate int, seed int64) error {
	model := NewModel(cfg, store, width, height, tickRate, seed, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer presses fire the impulse
	)

	_, err := p.Run()
	return err
}
