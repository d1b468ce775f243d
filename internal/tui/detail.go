package tui

import (
	"fmt"
	"strings"

	"fittrack/internal/report"
	"fittrack/internal/service"
	"fittrack/internal/workout"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// DetailModel is the single-package detail screen model
type DetailModel struct {
	result   service.Result
	index    int
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewDetailModel creates a detail model for one batch entry
func NewDetailModel(result service.Result, index, width, height int) DetailModel {
	m := DetailModel{
		result: result,
		index:  index,
		width:  width,
		height: height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6) // Reserve space for header/footer
		m.viewport.SetContent(m.renderContent())
		m.ready = true
	}

	return m
}

// Init initializes the detail screen
func (m DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.renderContent())
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail screen
func (m DetailModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  esc: back to list  j/k or arrows: scroll")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m DetailModel) renderContent() string {
	var sections []string

	sections = append(sections, m.renderHeader())

	if m.result.Err != nil {
		sections = append(sections, m.renderError())
		sections = append(sections, m.renderReadings())
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections, m.renderReport())
	sections = append(sections, m.renderSummary())
	sections = append(sections, m.renderReadings())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DetailModel) renderHeader() string {
	title := cardTitleStyle.Render(fmt.Sprintf("Package %d: %s", m.index+1, m.result.Package.Type))

	subtitle := m.result.Summary.ActivityName
	if m.result.Err != nil {
		subtitle = "not decoded"
	}

	return lipgloss.JoinVertical(lipgloss.Left, "", title,
		lipgloss.NewStyle().Foreground(mutedColor).Render(subtitle), "")
}

func (m DetailModel) renderError() string {
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Decode Error"),
		errorStyle.Render(fmt.Sprintf("  %v", m.result.Err)),
		"",
	}
	return strings.Join(lines, "\n")
}

func (m DetailModel) renderReport() string {
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Report"),
		"  " + report.Line(m.result.Summary),
		"",
	}
	return strings.Join(lines, "\n")
}

func (m DetailModel) renderSummary() string {
	s := m.result.Summary

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Summary"),
		fmt.Sprintf("  Activity:             %s", s.ActivityName),
		fmt.Sprintf("  Duration:             %.3f h", s.Duration),
		fmt.Sprintf("  Distance:             %.3f km", s.Distance),
		fmt.Sprintf("  Avg speed:            %.3f km/h", s.Speed),
		fmt.Sprintf("  Calories:             %.3f kcal", s.Calories),
		"",
	}

	return strings.Join(lines, "\n")
}

func (m DetailModel) renderReadings() string {
	data := m.result.Package.Data

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Sensor Readings"),
	}

	labels := readingLabels(m.result.Summary.ActivityName, len(data))
	for i, v := range data {
		lines = append(lines, fmt.Sprintf("  %-21s %s", labels[i]+":", humanize.Commaf(v)))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// readingLabels names the positional values of a package. Unknown or
// undecoded packages fall back to generic labels.
func readingLabels(activity string, n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("value %d", i+1)
	}
	if activity == "" {
		return labels
	}

	if n > 0 {
		labels[0] = "action count"
	}
	if n > 1 {
		labels[1] = "duration (h)"
	}
	if n > 2 {
		labels[2] = "weight (kg)"
	}

	switch activity {
	case workout.ActivityWalking:
		if n > 3 {
			labels[3] = "height (cm)"
		}
	case workout.ActivitySwimming:
		if n > 3 {
			labels[3] = "pool length (m)"
		}
		if n > 4 {
			labels[4] = "pool laps"
		}
	}

	return labels
}
