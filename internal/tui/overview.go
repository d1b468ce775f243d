package tui

import (
	"fmt"

	"fittrack/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// OverviewModel is the batch overview screen model
type OverviewModel struct {
	results []service.Result
	totals  service.BatchTotals
	series  []float64
	metric  string
}

// NewOverviewModel creates a new overview model
func NewOverviewModel(results []service.Result, metric string) OverviewModel {
	return OverviewModel{
		results: results,
		totals:  service.Totals(results),
		series:  service.Series(results, metric),
		metric:  metric,
	}
}

// Init initializes the overview
func (m OverviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m OverviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the overview
func (m OverviewModel) View() string {
	if len(m.results) == 0 {
		return "\n  No sensor packages to show."
	}

	var sections []string

	// Top row: batch totals and decode status side by side
	totalsCard := m.renderTotalsCard()
	statusCard := m.renderStatusCard()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, totalsCard, "  ", statusCard)
	sections = append(sections, topRow)

	// Chart
	if len(m.series) > 2 {
		sections = append(sections, m.renderChart())
	}

	// First entries of the batch
	sections = append(sections, m.renderPreview())

	// Help
	help := statusStyle.Render("Press '2' for the package list, 'enter' there for details")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m OverviewModel) renderTotalsCard() string {
	title := cardTitleStyle.Render("Batch Totals")

	lines := []string{
		RenderMetric("Time", fmt.Sprintf("%.3f h", m.totals.Duration)),
		RenderMetric("Distance", fmt.Sprintf("%.3f km", m.totals.Distance)),
		RenderMetric("Calories", fmt.Sprintf("%.3f kcal", m.totals.Calories)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(38).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m OverviewModel) renderStatusCard() string {
	title := cardTitleStyle.Render("Packages")

	decoded := m.totals.Entries - m.totals.Failed
	lines := []string{
		RenderMetric("Received", fmt.Sprintf("%d", m.totals.Entries)),
		RenderMetric("Decoded", fmt.Sprintf("%d", decoded)),
	}

	if m.totals.Failed > 0 {
		lines = append(lines, RenderMetric("Failed", warningStyle.Render(fmt.Sprintf("%d", m.totals.Failed))))
	} else {
		lines = append(lines, "", successStyle.Render("All packages decoded"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(30).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m OverviewModel) renderChart() string {
	title := cardTitleStyle.Render(chartTitle(m.metric))

	graph := asciigraph.Plot(m.series,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(2),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m OverviewModel) renderPreview() string {
	title := cardTitleStyle.Render("First Packages")

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %-14s  %10s  %10s  %10s",
		"Code", "Activity", "Distance", "Speed", "Calories"))

	rows := []string{header}
	for i, res := range m.results {
		if i >= 5 {
			break
		}

		var row string
		if res.Err != nil {
			row = tableRowStyle.Render(fmt.Sprintf("%-10s  %s",
				truncateName(res.Package.Type, 10),
				errorStyle.Render("decode failed")))
		} else {
			s := res.Summary
			row = tableRowStyle.Render(fmt.Sprintf("%-10s  %-14s  %7.3f km  %10.3f  %10.3f",
				truncateName(res.Package.Type, 10),
				s.ActivityName,
				s.Distance,
				s.Speed,
				s.Calories,
			))
		}
		rows = append(rows, row)
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

func chartTitle(metric string) string {
	switch metric {
	case service.MetricSpeed:
		return "Avg Speed per Package (km/h)"
	case service.MetricDistance:
		return "Distance per Package (km)"
	default:
		return "Calories per Package (kcal)"
	}
}

func truncateName(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
