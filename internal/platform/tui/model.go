package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakebird/internal/core"
	"github.com/vovakirdan/snakebird/internal/input"
	"github.com/vovakirdan/snakebird/internal/registry"
	"github.com/vovakirdan/snakebird/internal/storage"
)

// statusRows is the bottom bar holding toasts or the help line.
const statusRows = 1

var (
	bestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for running a Snake Bird session.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     GameKeyMap
	help     help.Model
	sampler  *input.Sampler
	toasts   *Toasts
	state    core.GameState
	step     time.Duration // Simulated time per tick; the tick interval only sets the pace
	gen      int           // Tick generation; bumped on pause so stale ticks are dropped
	recorded bool          // Whether the current run has been written to the ledger
	best     int
	newBest  bool
	quitting bool
	now      func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-statusRows)),
		store:   store,
		logger:  logger.With("variant", game.ID()),
		config:  cfg,
		step:    time.Second / time.Duration(cfg.TickRate),
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		sampler: input.New(input.DefaultHold),
		toasts:  NewToasts(DefaultToastTTL),
		state:   game.State(),
		now:     time.Now,
	}
	m.help.Width = cfg.ScreenW
	m.best = m.loadBest()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session started", "seed", m.config.Seed)
	return tickCmd(m.gen, m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
// Movement keys only feed the sampler; the next tick reads them.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.toasts.Push(core.Notice{Tone: core.ToneInfo, Text: "Saved " + filepath.Base(path)}, m.now())
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.recordRun("quit")
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.sampler.Press(action, m.now())

	case core.ActionPause:
		return m.togglePause()

	case core.ActionDismiss:
		if !m.state.Started {
			m.state = m.game.Command(core.CommandStart)
		} else {
			m.state = m.game.Command(core.CommandDismiss)
		}

	case core.ActionRestart:
		if m.state.GameOver {
			m.state = m.game.Command(core.CommandReset)
			m.sampler.Clear()
			m.toasts.Clear()
			m.recorded = false
			m.newBest = false
			m.logger.Debug("run reset")
		}
	}

	return m, nil
}

// togglePause pauses or resumes the run. Pausing stops tick scheduling by
// invalidating the in-flight tick; resuming schedules a fresh one.
func (m Model) togglePause() (tea.Model, tea.Cmd) {
	st := m.game.Command(core.CommandTogglePause)
	if st.Paused == m.state.Paused {
		return m, nil
	}
	m.state = st
	m.sampler.SetPaused(st.Paused)
	m.sampler.Clear()
	m.gen++
	if st.Paused {
		m.logger.Debug("paused", "score", st.Score)
		return m, nil
	}
	m.logger.Debug("resumed", "score", st.Score)
	return m, tickCmd(m.gen, m.game.TickInterval())
}

// handleResize processes window resize events.
// The arena is logical, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-statusRows))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}

	at := msg.At
	if at.IsZero() {
		at = m.now()
	}
	frame := m.sampler.Snapshot(at)
	result := m.game.Step(frame, m.step)
	m.state = result.State

	for _, n := range result.Notices {
		m.toasts.Push(n, at)
		m.logger.Info(n.Text, "tone", toneName(n.Tone), "score", m.state.Score)
	}

	if m.state.GameOver {
		m.recordRun(m.state.Reason)
	}

	return m, tickCmd(m.gen, m.game.TickInterval())
}

// recordRun writes the current run to the ledger once.
// Runs that never started are not recorded.
func (m *Model) recordRun(reason string) {
	if m.recorded || !m.state.Started {
		return
	}
	m.recorded = true
	m.logger.Info("run finished",
		"score", m.state.Score,
		"frogs", m.state.Frogs,
		"portals", m.state.Portals,
		"reason", reason,
		"elapsed", fmt.Sprintf("%.1fs", m.state.Elapsed),
	)

	if m.store == nil {
		return
	}
	run, err := m.store.SaveRun(storage.RunRecord{
		Variant:      m.game.ID(),
		Score:        m.state.Score,
		Frogs:        m.state.Frogs,
		Portals:      m.state.Portals,
		EndReason:    reason,
		DurationSecs: m.state.Elapsed,
	})
	if err != nil {
		m.logger.Warn("cannot record run", "err", err)
		return
	}
	m.logger.Debug("run recorded", "run_id", run.RunID)
	prev := m.best
	m.best = m.loadBest()
	m.newBest = m.state.Score > prev
}

func (m *Model) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.BestScore(m.game.ID())
	if err != nil {
		m.logger.Warn("cannot read best score", "err", err)
		return 0
	}
	return best
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".snakebird", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.state.GameOver && m.screen.Height() > 2 {
		m.screen.DrawTextCentered(m.screen.Height()-2, fmt.Sprintf("Session best: %d", m.best))
	}

	status := m.toasts.View(m.now())
	if status == "" {
		status = helpStyle.Render(m.help.View(m.keys))
		if m.state.GameOver && m.newBest {
			status = bestStyle.Render("New session best!")
		}
	}

	return RenderScreen(m.screen) + "\n" + status
}

// Run starts the Bubble Tea program for one session and returns when the player quits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
