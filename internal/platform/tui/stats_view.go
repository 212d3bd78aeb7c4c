package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/progress"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// maxScores is how many scores the scores tab loads.
const maxScores = 100

// StatsTab is one page of the stats screen.
type StatsTab int

const (
	TabScores StatsTab = iota
	TabStatistics
	TabAchievements
)

// String returns the tab title.
func (t StatsTab) String() string {
	switch t {
	case TabScores:
		return "High Scores"
	case TabStatistics:
		return "Statistics"
	case TabAchievements:
		return "Achievements"
	default:
		return "?"
	}
}

// AllTabs lists every tab in display order.
var AllTabs = []StatsTab{TabScores, TabStatistics, TabAchievements}

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsData is everything the stats screen displays.
type StatsData struct {
	Scores   []storage.ScoreEntry
	Stats    progress.Stats
	Unlocked *progress.Achievements
}

// LoadStatsData reads scores, statistics and achievements from the store.
// A nil store yields empty data.
func LoadStatsData(store *storage.Store) (StatsData, error) {
	data := StatsData{Unlocked: progress.NewAchievements()}
	if store == nil {
		return data, nil
	}

	scores, err := store.TopScores(t2048.ID, maxScores)
	if err != nil {
		return data, err
	}
	data.Scores = scores

	tracker := progress.NewTracker(store)
	if data.Stats, err = tracker.Stats(); err != nil {
		return data, err
	}
	if data.Unlocked, err = tracker.Achievements(); err != nil {
		return data, err
	}
	return data, nil
}

// StatsModel is the Bubble Tea model for the scores, statistics and
// achievements screen.
type StatsModel struct {
	data      StatsData
	tabs      []StatsTab
	tabCursor int
	table     table.Model
	help      help.Model
	keys      StatsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewStatsModel creates a stats screen showing the given tabs.
func NewStatsModel(data StatsData, tabs []StatsTab, width, height int) StatsModel {
	if len(tabs) == 0 {
		tabs = AllTabs
	}
	if data.Unlocked == nil {
		data.Unlocked = progress.NewAchievements()
	}

	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		data:   data,
		tabs:   tabs,
		keys:   DefaultStatsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// Tab returns the active tab.
func (m StatsModel) Tab() StatsTab {
	return m.tabs[m.tabCursor]
}

// columns returns the table layout for the active tab.
func (m StatsModel) columns() []table.Column {
	switch m.Tab() {
	case TabStatistics:
		return []table.Column{
			{Title: "Statistic", Width: 16},
			{Title: "Value", Width: 12},
		}
	case TabAchievements:
		descWidth := min(max(m.width-32, 20), 30)
		return []table.Column{
			{Title: "", Width: 2},
			{Title: "Achievement", Width: 16},
			{Title: "Goal", Width: descWidth},
		}
	default:
		return []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Tile", Width: 6},
			{Title: "Date", Width: 14},
		}
	}
}

// rows returns the table content for the active tab.
func (m StatsModel) rows() []table.Row {
	switch m.Tab() {
	case TabStatistics:
		lines := m.data.Stats.Lines()
		rows := make([]table.Row, len(lines))
		for i, l := range lines {
			rows[i] = table.Row{l.Label, l.Value}
		}
		return rows
	case TabAchievements:
		rows := make([]table.Row, len(progress.Catalogue))
		for i, a := range progress.Catalogue {
			mark := "·"
			if m.data.Unlocked.Unlocked(a.ID) {
				mark = "✓"
			}
			rows[i] = table.Row{mark, a.Title, a.Description}
		}
		return rows
	default:
		rows := make([]table.Row, len(m.data.Scores))
		for i, s := range m.data.Scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				fmt.Sprintf("%d", s.MaxTile),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
		return rows
	}
}

// createTable builds the table for the active tab.
func (m StatsModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, tabs and help
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

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.tabCursor = (m.tabCursor + 1) % len(m.tabs)
			m.table = m.createTable()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tabCursor = (m.tabCursor - 1 + len(m.tabs)) % len(m.tabs)
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

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("2048 - "+strings.ToUpper(m.Tab().String())), m.width))
	b.WriteString("\n\n")

	if len(m.tabs) > 1 {
		b.WriteString(centerText(m.renderTabs(), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the tab bar with the active tab highlighted.
func (m StatsModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.tabCursor {
			tabs[i] = activeTabStyle.Render(t.String())
		} else {
			tabs[i] = tabStyle.Render(t.String())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderTableContent renders the table or empty message.
func (m StatsModel) renderTableContent() string {
	if m.Tab() == TabScores && len(m.data.Scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}

// statsRunner quits the program once the stats screen is closed.
type statsRunner struct {
	StatsModel
}

func (r statsRunner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := r.StatsModel.Update(msg)
	r.StatsModel = next.(StatsModel)
	if r.IsGoingBack() || r.IsQuitting() {
		return r, tea.Quit
	}
	return r, cmd
}

// RunStats runs the stats screen on its own.
func RunStats(store *storage.Store, width, height int) error {
	data, err := LoadStatsData(store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		statsRunner{NewStatsModel(data, AllTabs, width, height)},
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
