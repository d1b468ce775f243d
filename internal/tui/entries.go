package tui

import (
	"fmt"

	"fittrack/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EntriesModel is the package list screen model
type EntriesModel struct {
	results  []service.Result
	cursor   int
	offset   int
	pageSize int
}

// NewEntriesModel creates a new entries model
func NewEntriesModel(results []service.Result) EntriesModel {
	return EntriesModel{
		results:  results,
		pageSize: 15,
	}
}

// Init initializes the entries screen
func (m EntriesModel) Init() tea.Cmd {
	return nil
}

// page returns the slice of results visible at the current offset
func (m EntriesModel) page() []service.Result {
	end := m.offset + m.pageSize
	if end > len(m.results) {
		end = len(m.results)
	}
	return m.results[m.offset:end]
}

// Update handles messages
func (m EntriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else if m.offset > 0 {
				// Go to previous page
				m.offset -= m.pageSize
				m.cursor = m.pageSize - 1
			}
		case "down", "j":
			if m.cursor < len(m.page())-1 {
				m.cursor++
			} else if m.offset+m.pageSize < len(m.results) {
				// Go to next page
				m.offset += m.pageSize
				m.cursor = 0
			}
		case "pgup":
			if m.offset > 0 {
				m.offset -= m.pageSize
				if m.offset < 0 {
					m.offset = 0
				}
				m.cursor = 0
			}
		case "pgdown":
			if m.offset+m.pageSize < len(m.results) {
				m.offset += m.pageSize
				m.cursor = 0
			}
		case "enter":
			if page := m.page(); len(page) > 0 && m.cursor < len(page) {
				index := m.offset + m.cursor
				return m, func() tea.Msg {
					return OpenDetailMsg{Index: index}
				}
			}
		}
	}
	return m, nil
}

// View renders the package list
func (m EntriesModel) View() string {
	if len(m.results) == 0 {
		return "\n  No sensor packages to show."
	}

	page := m.page()

	var sections []string

	// Title with pagination info
	startNum := m.offset + 1
	endNum := m.offset + len(page)
	title := cardTitleStyle.Render(fmt.Sprintf("Sensor Packages (%d-%d of %d)", startNum, endNum, len(m.results)))
	sections = append(sections, title)

	// Header
	header := tableHeaderStyle.Render(fmt.Sprintf("   %-4s  %-12s  %-14s  %9s  %9s  %10s",
		"#", "Code", "Activity", "Distance", "Speed", "Calories"))
	sections = append(sections, header)

	// Rows
	for i, res := range page {
		// Cursor indicator
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		var row string
		if res.Err != nil {
			row = fmt.Sprintf("%s%-4d  %-12s  %s",
				cursor,
				m.offset+i+1,
				truncateName(res.Package.Type, 12),
				errorStyle.Render(truncateName(res.Err.Error(), 44)),
			)
		} else {
			s := res.Summary
			row = fmt.Sprintf("%s%-4d  %-12s  %-14s  %9.3f  %9.3f  %10.3f",
				cursor,
				m.offset+i+1,
				truncateName(res.Package.Type, 12),
				s.ActivityName,
				s.Distance,
				s.Speed,
				s.Calories,
			)
		}

		if i == m.cursor {
			sections = append(sections, tableSelectedStyle.Render(row))
		} else {
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	// Help
	help := statusStyle.Render("\n  enter: view details  j/k: navigate  pgup/pgdn: page")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
