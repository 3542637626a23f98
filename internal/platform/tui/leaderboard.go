package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/leaderboard"
)

// Leaderboard layout constants
const (
	rankWidth  = 5
	nameWidth  = 16
	scoreWidth = 8
	dateWidth  = 16
)

// LeaderboardView shows the ranked entries in a scrollable table.
type LeaderboardView struct {
	entries []leaderboard.Entry
	table   table.Model
	height  int
}

// NewLeaderboardView creates a view sized for a terminal of the given height.
func NewLeaderboardView(height int) LeaderboardView {
	v := LeaderboardView{height: height}
	v.table = v.createTable()
	return v
}

// createTable creates a new table with the leaderboard columns.
func (v *LeaderboardView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: rankWidth},
		{Title: "Name", Width: nameWidth},
		{Title: "Score", Width: scoreWidth},
		{Title: "Date", Width: dateWidth},
	}

	// Room for title, borders and help
	rows := min(max(v.height-10, 3), leaderboard.DefaultCapacity)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(rows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// SetEntries replaces the rows and moves the cursor to highlight, if present.
func (v *LeaderboardView) SetEntries(entries []leaderboard.Entry, highlight *leaderboard.Entry) {
	v.entries = entries

	rows := make([]table.Row, len(entries))
	cursor := 0
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			truncate(e.Name, nameWidth),
			fmt.Sprintf("%d", e.Score),
			e.Date.Local().Format(leaderboard.DateLayout),
		}
		if highlight != nil && e.Score == highlight.Score && e.Name == highlight.Name && e.Date.Equal(highlight.Date) {
			cursor = i
		}
	}
	v.table.SetRows(rows)
	v.table.SetCursor(cursor)
}

// Resize rebuilds the table for a new terminal height.
func (v *LeaderboardView) Resize(height int) {
	v.height = height
	cursor := v.table.Cursor()
	rows := v.table.Rows()
	v.table = v.createTable()
	v.table.SetRows(rows)
	v.table.SetCursor(cursor)
}

// Update scrolls the table.
func (v LeaderboardView) Update(msg tea.Msg) (LeaderboardView, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// Len returns the number of entries shown.
func (v LeaderboardView) Len() int {
	return len(v.entries)
}

// View renders the table or an empty message.
func (v LeaderboardView) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("LEADERBOARD"))
	b.WriteString("\n")

	if len(v.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(emptyStyle.Render("No scores recorded yet.\nFinish a game to set a high score!"))
		return panelStyle.Render(b.String())
	}

	b.WriteString(v.table.View())
	return panelStyle.Render(b.String())
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "."
}
