package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-skydive/internal/core"
	"github.com/vovakirdan/tui-skydive/internal/storage"
)

const maxRows = 100

// ScoreTab selects the table shown by the scoreboard.
type ScoreTab int

const (
	TabSessions ScoreTab = iota
	TabJumps
)

// String returns the tab label.
func (t ScoreTab) String() string {
	if t == TabJumps {
		return "Recent Jumps"
	}
	return "Sessions"
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	store     *storage.Store
	tab       ScoreTab
	sessions  []storage.Session
	jumps     []storage.Jump
	stats     storage.JumpStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      MenuKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model and loads both tables.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	return m
}

// load reads sessions, jumps and statistics from the store.
func (m *ScoreboardModel) load() {
	if m.store == nil {
		return
	}
	var err error
	if m.sessions, err = m.store.TopSessions(maxRows); err != nil {
		m.loadErr = err
		return
	}
	if m.jumps, err = m.store.RecentJumps(maxRows); err != nil {
		m.loadErr = err
		return
	}
	if m.stats, err = m.store.JumpStats(); err != nil {
		m.loadErr = err
	}
}

// createTable builds the table for the active tab.
func (m *ScoreboardModel) createTable() table.Model {
	height := m.height - 10 // title, tabs, stats and help
	if height < 5 {
		height = 5
	}

	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(height),
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

func (m *ScoreboardModel) columns() []table.Column {
	if m.tab == TabJumps {
		return []table.Column{
			{Title: "Player", Width: 12},
			{Title: "Outcome", Width: 12},
			{Title: "X", Width: 6},
			{Title: "Offset", Width: 7},
			{Title: "Chute at", Width: 9},
			{Title: "Wind", Width: 6},
			{Title: "Date", Width: 13},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 6},
		{Title: "Tries", Width: 6},
		{Title: "Outcome", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 13},
	}
}

func (m *ScoreboardModel) rows() []table.Row {
	if m.tab == TabJumps {
		rows := make([]table.Row, len(m.jumps))
		for i, j := range m.jumps {
			chute := "-"
			if j.ChuteOpen {
				chute = fmt.Sprintf("%.0f", j.OpenAt)
			}
			offset := core.JumpReport{LandingX: j.LandingX, TargetLeft: j.TargetLeft, TargetRight: j.TargetRight}.Offset()
			rows[i] = table.Row{
				j.Player,
				j.Outcome,
				fmt.Sprintf("%.0f", j.LandingX),
				fmt.Sprintf("%.1f", offset),
				chute,
				// pixels per second
				fmt.Sprintf("%+.1f", j.WindDX*core.TickRate),
				j.CreatedAt.Format("Jan 02 15:04"),
			}
		}
		return rows
	}

	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.TriesLeft),
			s.Outcome,
			formatTicks(s.Ticks),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// formatTicks renders a tick count as m:ss.
func formatTicks(ticks uint64) string {
	secs := ticks / core.TickRate
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			if m.tab == TabSessions {
				m.tab = TabJumps
			} else {
				m.tab = TabSessions
			}
			m.table = m.createTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("HIGH SCORES"))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.stats.Total > 0 {
		b.WriteString(menuDimStyle.Render(fmt.Sprintf(
			"%d jumps, %d landed, avg chute at %.0f, avg offset %.1f, %d/%d sessions won",
			m.stats.Total, m.stats.ByOutcome[core.EventLanded.String()],
			m.stats.AvgOpenAt, m.stats.AvgLandedOffset, m.stats.Wins, m.stats.Sessions,
		)))
		b.WriteString("\n")
	}

	b.WriteString(menuDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	active := menuCursorStyle.Padding(0, 1)
	inactive := menuDimStyle.Padding(0, 1)

	tabs := make([]string, 0, 2)
	for _, t := range []ScoreTab{TabSessions, TabJumps} {
		if t == m.tab {
			tabs = append(tabs, active.Render(t.String()))
		} else {
			tabs = append(tabs, inactive.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return empty.Render("Scores are unavailable.")
	case m.loadErr != nil:
		return empty.Render("Could not load scores:\n" + m.loadErr.Error())
	case m.tab == TabSessions && len(m.sessions) == 0:
		return empty.Render("No sessions recorded yet.\nFinish a game to set a high score!")
	case m.tab == TabJumps && len(m.jumps) == 0:
		return empty.Render("No jumps recorded yet.")
	}
	return m.table.View()
}

// Tab returns the active tab.
func (m ScoreboardModel) Tab() ScoreTab {
	return m.tab
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen on its own.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
