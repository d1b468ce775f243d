package tui

import (
	"fmt"

	"fittrack/internal/config"
	"fittrack/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenOverview Screen = iota
	ScreenEntries
	ScreenDetail
	ScreenHelp
)

// App is the root Bubble Tea model. It browses one processed batch;
// the results never change while the program runs.
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	overview OverviewModel
	entries  EntriesModel
	detail   DetailModel
	help     HelpModel

	// Batch under inspection
	results []service.Result

	// Window dimensions
	width  int
	height int

	// Status message
	status string
}

// NewApp creates the browser over one processed batch
func NewApp(results []service.Result, display config.DisplayConfig) *App {
	totals := service.Totals(results)

	status := fmt.Sprintf("%d packages", totals.Entries)
	if totals.Failed > 0 {
		status = fmt.Sprintf("%d packages, %d failed", totals.Entries, totals.Failed)
	}

	return &App{
		screen:   ScreenOverview,
		results:  results,
		overview: NewOverviewModel(results, display.ChartMetric),
		entries:  NewEntriesModel(results),
		help:     NewHelpModel(),
		status:   status,
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.overview.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenOverview
			return a, nil
		case "2":
			a.screen = ScreenEntries
			return a, nil
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			switch a.screen {
			case ScreenHelp:
				a.screen = a.prevScreen
			case ScreenDetail:
				a.screen = ScreenEntries
			}
			return a, nil
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case OpenDetailMsg:
		a.screen = ScreenDetail
		a.detail = NewDetailModel(a.results[msg.Index], msg.Index, a.width, a.height)
		return a, a.detail.Init()
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenOverview:
		var m tea.Model
		m, cmd = a.overview.Update(msg)
		a.overview = m.(OverviewModel)
	case ScreenEntries:
		var m tea.Model
		m, cmd = a.entries.Update(msg)
		a.entries = m.(EntriesModel)
	case ScreenDetail:
		var m tea.Model
		m, cmd = a.detail.Update(msg)
		a.detail = m.(DetailModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenOverview:
		content = a.overview.View()
	case ScreenEntries:
		content = a.entries.View()
	case ScreenDetail:
		content = a.detail.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Workout Summary Browser")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Overview", ScreenOverview},
		{"2", "Packages", ScreenEntries},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	return ""
}

// OpenDetailMsg asks the app to open one entry's detail screen
type OpenDetailMsg struct {
	Index int
}
