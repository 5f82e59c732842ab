package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-climb/internal/climb"
	"github.com/vovakirdan/tui-climb/internal/config"
	"github.com/vovakirdan/tui-climb/internal/core"
	"github.com/vovakirdan/tui-climb/internal/storage"
)

// Menu layout constants
const (
	nameCharLimit = 16
	historyLimit  = 5 // Matches shown in the recent matches table
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11")).
			Padding(0, 2)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tallyStyle    = lipgloss.NewStyle().Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// menu is the name entry screen shown between matches.
type menu struct {
	inputs  [2]textinput.Model
	focus   int
	history table.Model
	records int
	keys    MenuKeyMap
	help    help.Model
}

func newMenu(names [2]string) menu {
	m := menu{
		keys: DefaultMenuKeyMap(),
		help: help.New(),
	}

	placeholders := [2]string{climb.DefaultName1, climb.DefaultName2}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = nameCharLimit
		in.Width = nameCharLimit + 1
		in.Prompt = fmt.Sprintf("P%d ▸ ", i+1)
		in.SetValue(names[i])
		m.inputs[i] = in
	}
	m.inputs[0].Focus()

	m.history = newHistoryTable()
	return m
}

func newHistoryTable() table.Model {
	columns := []table.Column{
		{Title: "Winner", Width: nameCharLimit},
		{Title: "Loser", Width: nameCharLimit},
		{Title: "Time", Width: 8},
		{Title: "Finished", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(historyLimit+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// focusNext moves the cursor between the two name inputs.
func (m *menu) focusNext(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

// update forwards a message to the focused input.
func (m *menu) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

// names returns the entered names; blanks are filled in by the session.
func (m *menu) names() [2]string {
	return [2]string{
		strings.TrimSpace(m.inputs[0].Value()),
		strings.TrimSpace(m.inputs[1].Value()),
	}
}

// setNames pre-fills the inputs, usually with the previous match's names.
func (m *menu) setNames(names [2]string) {
	for i := range m.inputs {
		m.inputs[i].SetValue(names[i])
		m.inputs[i].CursorEnd()
	}
}

// setHistory replaces the recent matches table.
func (m *menu) setHistory(records []storage.MatchRecord) {
	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, table.Row{
			r.WinnerName,
			r.LoserName,
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
			r.CreatedAt.Format("15:04:05"),
		})
	}
	m.history.SetRows(rows)
	m.records = len(rows)
}

func (m *menu) view(width, height int, names [2]string, wins [2]int, cfg config.ClimbConfig, status string) string {
	var blocks []string

	blocks = append(blocks,
		titleStyle.Render("S P L I T   C L I M B"),
		subtitleStyle.Render(fmt.Sprintf("First one above the goal line wins. The goal is %.0f up.",
			cfg.World.Height-cfg.World.GoalHeight)),
		"",
	)

	seats := [2]config.SeatConfig{cfg.Player.P1, cfg.Player.P2}
	for i, in := range m.inputs {
		color, _ := core.ParseColor(seats[i].Color)
		style, ok := colorStyles[color]
		if !ok {
			style = colorStyles[core.ColorDefault]
		}
		blocks = append(blocks, style.Render(in.View()))
	}

	blocks = append(blocks, "",
		tallyStyle.Render(fmt.Sprintf("%s %d - %d %s", names[0], wins[0], wins[1], names[1])),
	)

	if m.records > 0 {
		blocks = append(blocks, "", subtitleStyle.Render("Recent matches"), m.history.View())
	}

	blocks = append(blocks, "", m.help.View(m.keys))
	if status != "" {
		blocks = append(blocks, statusStyle.Render(status))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
