package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gemdash/gemdash/internal/core"
	"github.com/gemdash/gemdash/internal/registry"
	"github.com/gemdash/gemdash/internal/storage"
)

// holdTicks is how many simulation ticks a movement key stays held
// after its last press event. Terminals deliver key repeats but no
// release events, so the platform synthesizes KeyUp when the repeat
// stream stops.
const holdTicks = 8

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	gameState  core.GameState
	tick       uint64
	pressed    map[string]uint64 // movement key -> tick at which it expires
	started    bool
	paused     bool
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		pressed: make(map[string]uint64),
	}
}

// Init initializes the model and starts the tick loops.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), secondCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case SecondMsg:
		return m.handleSecond()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "p", "esc":
		if m.started && !m.gameState.Over {
			m.paused = !m.paused
		}
		return m, nil

	case "enter", " ":
		if !m.started {
			m.game.Start()
			m.started = true
		} else if adv, ok := m.game.(registry.LevelAdvancer); ok {
			// A no-op unless a level was just completed.
			adv.NextLevel()
		}
		return m, nil

	case "r":
		if m.started && m.gameState.Over {
			m.game.Start()
			m.gameState = m.game.State()
			m.scoreSaved = false
			m.paused = false
		}
		return m, nil
	}

	// Movement keys go to the game's held-input set.
	if _, ok := core.MapKey(key); ok {
		m.game.KeyDown(key)
		m.pressed[key] = m.tick + holdTicks
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Resizing mid-session restarts it with the new dimensions.
	if !m.gameState.Over {
		m.game.Reset(m.config)
		m.started = false
		m.paused = false
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tick++

	// Synthesize releases for keys whose repeat stream went quiet.
	for key, expires := range m.pressed {
		if m.tick >= expires {
			m.game.KeyUp(key)
			delete(m.pressed, key)
		}
	}

	if !m.paused {
		result := m.game.Step()
		m.gameState = result.State
	}

	// Save score on game over (once)
	if m.gameState.Over && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level)
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// handleSecond drives wall-clock countdowns in games that carry one.
func (m Model) handleSecond() (tea.Model, tea.Cmd) {
	if st, ok := m.game.(registry.SecondTicker); ok && !m.paused {
		st.TickSecond()
	}
	return m, secondCmd()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, "PAUSED")
		m.screen.DrawTextCentered(m.screen.Height()/2+1, "Press P to resume")
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
