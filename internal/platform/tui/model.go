package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-climb/internal/climb"
	"github.com/vovakirdan/tui-climb/internal/config"
	"github.com/vovakirdan/tui-climb/internal/core"
	"github.com/vovakirdan/tui-climb/internal/storage"
)

// helpRows is the space reserved under the game screen for the key help.
const helpRows = 1

// Options carries the optional collaborators of a Model.
type Options struct {
	Ledger        *storage.Ledger // Finished matches are recorded here when set
	Logger        *log.Logger     // Defaults to a discarding logger
	Watcher       *config.Watcher // Config hot reload; applies from the next match
	Preset        config.Preset   // Re-applied to reloaded configs
	SessionID     string          // Ledger key; generated when empty
	Names         [2]string       // Pre-filled player names
	ScreenshotDir string          // Defaults to ~/.climb/screenshots
}

// Model is the Bubble Tea model for one shared-keyboard climb session.
type Model struct {
	session  *climb.Session
	screen   *core.Screen
	config   core.RuntimeConfig
	opts     Options
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	menu     menu
	hold     *holdTracker
	pending  climb.Frame // Presses since the last tick
	lastTick time.Time
	width    int
	height   int
	status   string
	quitting bool
}

// NewModel creates a model in the menu, ready to take both names.
func NewModel(cfg core.RuntimeConfig, climbCfg config.ClimbConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		session: climb.NewSession(climbCfg, rand.New(rand.NewSource(cfg.Seed))),
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		config:  cfg,
		opts:    opts,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		menu:    newMenu(opts.Names),
		hold:    newHoldTracker(initialHoldWindow, repeatHoldWindow),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.refreshHistory()
	return m
}

// Init starts the frame clock, the cursor blink and the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.config.TickInterval()),
		textinput.Blink,
		watchConfigCmd(m.opts.Watcher, m.opts.Preset),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case configReloadMsg:
		m.session.SetConfig(msg.cfg)
		m.logger.Info("config reloaded", "path", msg.path, "state", m.session.State())
		m.status = "Config reloaded: " + filepath.Base(msg.path)
		return m, watchConfigCmd(m.opts.Watcher, m.opts.Preset)

	case configErrorMsg:
		m.logger.Warn("config reload failed", "error", msg.err)
		m.status = "Config reload failed, keeping previous settings"
		return m, watchConfigCmd(m.opts.Watcher, m.opts.Preset)
	}

	// Cursor blink and other input messages
	if m.session.State() == climb.StateMenu {
		return m, m.menu.update(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.State() == climb.StateMenu {
		return m.handleMenuKey(msg)
	}

	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	seat, action := m.keys.Resolve(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.pending.Pause = true
	case core.ActionRematch:
		m.pending.Rematch = true
	case core.ActionRestart:
		m.pending.Restart = true
	case core.ActionLeft, core.ActionRight:
		m.hold.press(seat, action, time.Now())
	case core.ActionJump:
		m.pendingInput(seat).Jump = true
	case core.ActionAttack:
		m.pendingInput(seat).Attack = true
	}

	return m, nil
}

// handleMenuKey processes keyboard input on the name entry screen.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.menu.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.menu.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.menu.keys.Start):
		m.startMatch()
		return m, nil
	case key.Matches(msg, m.menu.keys.NextField):
		return m, m.menu.focusNext(1)
	case key.Matches(msg, m.menu.keys.PrevField):
		return m, m.menu.focusNext(-1)
	}
	return m, m.menu.update(msg)
}

// handleResize processes window resize events. The match keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the session by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now
	next := tickCmd(m.config.TickInterval())

	if m.session.State() == climb.StateMenu {
		return m, next
	}

	frame := m.pending
	m.pending = climb.Frame{}
	frame.P1.Left = m.hold.held(core.Player1, core.ActionLeft, now)
	frame.P1.Right = m.hold.held(core.Player1, core.ActionRight, now)
	frame.P2.Left = m.hold.held(core.Player2, core.ActionLeft, now)
	frame.P2.Right = m.hold.held(core.Player2, core.ActionRight, now)

	res := m.session.Tick(frame, elapsed)

	if res.Ended {
		m.recordMatch(res.Winner)
	}
	if frame.Restart {
		m.logger.Info("tally reset")
		if m.opts.Ledger != nil {
			if err := m.opts.Ledger.ClearSession(m.opts.SessionID); err != nil {
				m.logger.Warn("could not clear match history", "error", err)
			}
		}
	}
	if res.State == climb.StateMenu {
		m.enterMenu()
	}

	return m, next
}

// startMatch leaves the menu with the entered names.
func (m *Model) startMatch() {
	names := m.menu.names()
	if !m.session.Start(names[0], names[1]) {
		return
	}

	m.hold.releaseAll()
	m.pending = climb.Frame{}
	m.lastTick = time.Time{}
	m.status = ""

	started := m.session.Names()
	m.logger.Info("match started",
		"p1", started[0],
		"p2", started[1],
		"goal", m.session.Config().World.GoalHeight,
		"wins", m.session.Wins(),
	)
}

// enterMenu prepares the name entry screen after a rematch or reset.
func (m *Model) enterMenu() {
	m.hold.releaseAll()
	m.menu.setNames(m.session.Names())
	m.refreshHistory()
}

// recordMatch logs a finished match and stores it in the ledger.
func (m *Model) recordMatch(winner core.PlayerID) {
	i := winner.Index()
	if i < 0 {
		return
	}
	names := m.session.Names()

	m.logger.Info("match ended",
		"winner", names[i],
		"ticks", m.session.Ticks(),
		"elapsed", m.session.Elapsed(),
		"wins", m.session.Wins(),
	)

	if m.opts.Ledger == nil {
		return
	}
	_, err := m.opts.Ledger.RecordMatch(storage.MatchRecord{
		SessionID:  m.opts.SessionID,
		Winner:     i + 1,
		WinnerName: names[i],
		LoserName:  names[1-i],
		Ticks:      m.session.Ticks(),
		Duration:   m.session.Elapsed(),
	})
	if err != nil {
		m.logger.Warn("could not record match", "error", err)
	}
}

// refreshHistory reloads the recent matches table from the ledger.
func (m *Model) refreshHistory() {
	if m.opts.Ledger == nil {
		return
	}
	records, err := m.opts.Ledger.Recent(m.opts.SessionID, historyLimit)
	if err != nil {
		m.logger.Warn("could not load match history", "error", err)
		return
	}
	m.menu.setHistory(records)
}

func (m *Model) pendingInput(seat core.PlayerID) *climb.Input {
	if seat == core.Player2 {
		return &m.pending.P2
	}
	return &m.pending.P1
}

// saveScreenshot saves the current game screen as plain text.
func (m *Model) saveScreenshot() {
	climb.Render(m.session.Snapshot(), m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.status = "Screenshot failed: no home directory"
			return
		}
		dir = filepath.Join(home, ".climb", "screenshots")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", dir, "error", err)
		m.status = "Screenshot failed"
		return
	}

	filename := fmt.Sprintf("climb_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		m.status = "Screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "Screenshot saved: " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.session.State() == climb.StateMenu {
		return m.menu.view(m.width, m.height, m.session.Names(), m.session.Wins(), m.session.Config(), m.status)
	}

	climb.Render(m.session.Snapshot(), m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Session returns the underlying game session.
func (m Model) Session() *climb.Session {
	return m.session
}

// SessionID returns the ledger key of this session.
func (m Model) SessionID() string {
	return m.opts.SessionID
}

// Status returns the last status line shown to the players.
func (m Model) Status() string {
	return m.status
}

// Run starts the Bubble Tea program with the given model.
func Run(cfg core.RuntimeConfig, climbCfg config.ClimbConfig, opts Options) error {
	model := NewModel(cfg, climbCfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
