// Package tui provides the Bubble Tea front end for 2048, both for local
// play and for sessions served over SSH.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/leaderboard"
)

// overlay is whatever covers the board and captures input.
type overlay int

const (
	overlayNone overlay = iota
	overlayNamePrompt
	overlayLeaderboard
)

// Minimum terminal size for the board, HUD and help bar.
const (
	minWidth  = t2048.BoardWidth + 2
	minHeight = t2048.BoardHeight + 6
)

// Model is the Bubble Tea model for a 2048 session.
type Model struct {
	session  *t2048.Session
	leaders  *leaderboard.Store
	config   core.RuntimeConfig
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	input    textinput.Model
	board    LeaderboardView
	overlay  overlay
	status   string
	quitting bool
}

// NewModel creates a model over a loaded session. defaultName is shown as
// the placeholder in the name prompt.
func NewModel(session *t2048.Session, leaders *leaderboard.Store, cfg core.RuntimeConfig, defaultName string) Model {
	ti := textinput.New()
	ti.Prompt = "Name: "
	ti.Placeholder = defaultName
	ti.CharLimit = 24
	ti.Width = nameWidth

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		session: session,
		leaders: leaders,
		config:  cfg,
		screen:  core.NewScreen(t2048.BoardWidth, t2048.BoardHeight),
		keys:    DefaultKeyMap(),
		help:    h,
		input:   ti,
		board:   NewLeaderboardView(cfg.ScreenH),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.board.Resize(msg.Height)
		return m, nil
	}

	if m.overlay == overlayNamePrompt {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes input to the open overlay, or to the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayNamePrompt:
		return m.handlePromptKey(msg)
	case overlayLeaderboard:
		return m.handleLeaderboardKey(msg)
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeaderboard:
		m.openLeaderboard(nil)
		return m, nil

	case core.ActionConfirm:
		if m.session.GameOver() && !m.session.Submitted() {
			return m, m.openPrompt()
		}
		return m, nil
	}

	wasOver := m.session.GameOver()
	changed := m.session.Dispatch(action)

	switch {
	case action == core.ActionNewGame:
		m.status = "New game"
	case action == core.ActionUndo && !changed:
		m.status = "Nothing to undo"
	case changed:
		m.status = ""
	}

	if !wasOver && m.session.GameOver() {
		return m, m.openPrompt()
	}
	return m, nil
}

// handlePromptKey edits the player name. Only Enter, Esc and Ctrl+C are
// treated as commands; every other key is typed into the field.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEsc:
		m.closeOverlay()
		m.status = "Score not saved. Press enter to save it"
		return m, nil

	case tea.KeyEnter:
		name := m.input.Value()
		if strings.TrimSpace(name) == "" {
			name = m.input.Placeholder
		}
		entry, err := m.session.SubmitScore(name)
		m.status = ""
		if err != nil {
			m.status = "Could not save score"
		}
		m.openLeaderboard(&entry)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleLeaderboardKey scrolls or closes the leaderboard. Moves are ignored.
func (m Model) handleLeaderboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack, core.ActionLeaderboard:
		m.closeOverlay()
		return m, nil
	case core.ActionUp, core.ActionDown:
		var cmd tea.Cmd
		m.board, cmd = m.board.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) openPrompt() tea.Cmd {
	m.overlay = overlayNamePrompt
	m.input.Reset()
	return m.input.Focus()
}

func (m *Model) openLeaderboard(highlight *leaderboard.Entry) {
	m.input.Blur()
	m.overlay = overlayLeaderboard
	var entries []leaderboard.Entry
	if m.leaders != nil {
		entries = m.leaders.All()
	}
	m.board.SetEntries(entries, highlight)
}

func (m *Model) closeOverlay() {
	m.input.Blur()
	m.overlay = overlayNone
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.config.ScreenW, m.config.ScreenH
	if w > 0 && h > 0 && (w < minWidth || h < minHeight) {
		return m.renderTooSmall()
	}

	snap := m.session.Snapshot()

	title := titleStyle.Render("2 0 4 8")
	hud := hudStyle.Render(fmt.Sprintf("Score: %d   Best: %d", snap.Score, snap.Best))

	var body string
	switch m.overlay {
	case overlayLeaderboard:
		body = m.board.View()
	case overlayNamePrompt:
		body = lipgloss.JoinVertical(lipgloss.Center, m.renderBoard(snap), m.renderPrompt(snap))
	default:
		body = m.renderBoard(snap)
	}

	status := m.status
	if status == "" && snap.GameOver && m.overlay == overlayNone {
		status = "Game over! Press n for a new game"
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		hud,
		"",
		body,
		statusStyle.Render(status),
		hintStyle.Render(m.help.View(m.keys)),
	)

	if w <= 0 || h <= 0 {
		return content
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderBoard(snap t2048.Snapshot) string {
	m.screen.Clear()
	t2048.RenderBoard(m.screen, snap.Board, 0, 0)
	return RenderScreen(m.screen)
}

func (m Model) renderPrompt(snap t2048.Snapshot) string {
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("GAME OVER"),
		fmt.Sprintf("Score: %d   Max tile: %d", snap.Score, snap.MaxTile),
		"",
		m.input.View(),
		hintStyle.Render("enter: save  esc: skip"),
	))
}

// renderTooSmall shows a "window too small" message.
func (m Model) renderTooSmall() string {
	msg := "Window too small\nPlease resize terminal"
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, msg)
}

// Run starts the Bubble Tea program for a local session.
func Run(session *t2048.Session, leaders *leaderboard.Store, cfg core.RuntimeConfig, defaultName string) error {
	model := NewModel(session, leaders, cfg, defaultName)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
