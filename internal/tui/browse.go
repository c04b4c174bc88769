// internal/tui/browse.go
// Package tui provides the interactive terminal leaderboard browser.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CadeHall0/EsoBench/internal/leaderboard"
	"github.com/CadeHall0/EsoBench/internal/ranking"
	"github.com/CadeHall0/EsoBench/internal/report"
)

const (
	headerHeight = 2
	footerHeight = 2
)

var headerStyle = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)

type keyMap struct {
	Score   key.Binding
	Solved  key.Binding
	Reverse key.Binding
	Compact key.Binding
	Up      key.Binding
	Down    key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Score, k.Solved, k.Reverse, k.Compact, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Score, k.Solved, k.Reverse},
		{k.Up, k.Down, k.Compact, k.Quit},
	}
}

var keys = keyMap{
	Score:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort by score")),
	Solved:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "sort by solved")),
	Reverse: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reverse")),
	Compact: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compact heatmap")),
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// model is the Bubble Tea model for the leaderboard browser.
type model struct {
	board         *leaderboard.Board
	title         string
	state         leaderboard.SortState
	compact       bool
	viewport      viewport.Model
	help          help.Model
	width, height int
}

func initialModel(board *leaderboard.Board, state leaderboard.SortState, title string) *model {
	m := &model{
		board:    board,
		title:    title,
		state:    state,
		viewport: viewport.New(100, 20),
		help:     help.New(),
	}
	m.refresh()
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

// Update applies key presses and window resizes. Any change to the sort
// state re-renders the table from the board.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Score):
			m.state = m.state.Toggle(ranking.KeyScore)
			m.refresh()
			return m, nil
		case key.Matches(msg, keys.Solved):
			m.state = m.state.Toggle(ranking.KeySolved)
			m.refresh()
			return m, nil
		case key.Matches(msg, keys.Reverse):
			m.state.Direction = m.state.Direction.Reverse()
			m.refresh()
			return m, nil
		case key.Matches(msg, keys.Compact):
			m.compact = !m.compact
			m.refresh()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) refresh() {
	m.viewport.SetContent(report.RenderTerminal(m.board, m.state, report.TerminalOptions{
		Width:   m.width,
		Compact: m.compact,
	}))
}

func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	header := headerStyle.Render(fmt.Sprintf("%s  |  %d models  |  %s", m.title, m.board.Results().Len(), m.state))
	return header + "\n\n" + m.viewport.View() + "\n" + m.help.View(keys)
}

// Browse runs the interactive browser until the user quits.
func Browse(board *leaderboard.Board, state leaderboard.SortState, title string) error {
	p := tea.NewProgram(initialModel(board, state, title), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
