package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile2048/internal/core"
	"github.com/vovakirdan/tile2048/internal/games/t2048"
)

// footerHeight is the number of rows reserved for the help line.
const footerHeight = 1

// Model is the Bubble Tea model for a 2048 session.
type Model struct {
	game       *t2048.Game
	screen     *core.Screen
	palette    *Palette
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithRenderer renders output through r instead of the default renderer.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) {
		m.palette = NewPalette(r)
		m.help.Styles = help.Styles{
			ShortKey:       r.NewStyle().Foreground(lipgloss.Color("245")),
			ShortDesc:      r.NewStyle().Foreground(lipgloss.Color("240")),
			ShortSeparator: r.NewStyle().Foreground(lipgloss.Color("237")),
			FullKey:        r.NewStyle().Foreground(lipgloss.Color("245")),
			FullDesc:       r.NewStyle().Foreground(lipgloss.Color("240")),
			FullSeparator:  r.NewStyle().Foreground(lipgloss.Color("237")),
			Ellipsis:       r.NewStyle().Foreground(lipgloss.Color("237")),
		}
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *t2048.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		palette:    NewPalette(nil),
		keys:       DefaultKeyMap(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	// The game is reset here rather than in Init: Init has a value receiver
	// and Bubble Tea keeps the model returned by NewModel.
	game.Reset(m.gameConfig())
	m.gameState = game.State()
	return m
}

func boardHeight(screenH int) int {
	return max(0, screenH-footerHeight)
}

// gameConfig is the runtime config with the help line taken off the height.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = boardHeight(cfg.ScreenH)
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
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
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The board is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width
	m.game.Resize(msg.Width, boardHeight(msg.Height))
	m.gameState = m.game.State()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart is honored between moves only
	if m.inputFrame.Has(core.ActionRestart) && !m.gameState.Resolving {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *t2048.Game, cfg core.RuntimeConfig) error {
	model := NewModel(game, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
