package tui

import (
	"fmt"
	"strings"

	"StockDash/internal/chart"
	"StockDash/internal/dashboard"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(chart.ColorLine))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(chart.ColorDown))
	titleStyle    = lipgloss.NewStyle().Bold(true)
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color(chart.ColorLine))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(chart.ColorLine))
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1).Width(16)
	cardLabel     = mutedStyle
	cardValue     = lipgloss.NewStyle().Bold(true)
	selectedViews = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color(chart.ColorLine))
)

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.companiesView(), m.chartPane())
	footer := mutedStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	if m.status != "" {
		footer = accentStyle.Render(strings.ReplaceAll(m.status, "\n", "  ")) + "\n" + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m Model) companiesView() string {
	var b strings.Builder
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	st := m.state
	rows := m.height - 10
	if rows < 3 {
		rows = 3
	}
	switch {
	case st.Panels.Visible(dashboard.CompaniesLoading):
		b.WriteString(m.spinner.View() + " Loading companies...")
	case st.Panels.Visible(dashboard.CompaniesError):
		b.WriteString(errorStyle.Render("Failed to load companies."))
	default:
		list := st.Visible()
		if len(list) == 0 {
			b.WriteString(mutedStyle.Render("No matching companies"))
		}
		start := 0
		if m.cursor >= rows {
			start = m.cursor - rows + 1
		}
		for i := start; i < len(list) && i < start+rows; i++ {
			c := list[i]
			line := fmt.Sprintf("%-6s %s", c.Symbol, c.Name)
			if w := listWidth - 6; len([]rune(line)) > w {
				line = string([]rune(line)[:w-1]) + "…"
			}
			prefix := "  "
			if i == m.cursor {
				prefix = cursorStyle.Render("> ")
			}
			if c.Symbol == st.Active {
				line = activeStyle.Render(line)
			}
			b.WriteString(prefix + line + "\n")
		}
	}
	return paneStyle.Width(listWidth).Height(m.height - 4).Render(b.String())
}

func (m Model) chartPane() string {
	st := m.state
	var b strings.Builder

	b.WriteString(titleStyle.Render(st.Title))
	if st.Subtitle != "" {
		b.WriteString("\n" + mutedStyle.Render(st.Subtitle))
	}
	b.WriteString("\n" + m.viewTabs() + "\n\n")

	switch {
	case st.Panels.Visible(dashboard.ChartLoading):
		b.WriteString(m.spinner.View() + " Loading chart...")
	case st.Panels.Visible(dashboard.ChartError):
		b.WriteString(errorStyle.Render("⚠ " + st.ErrorMessage))
	case st.Panels.Visible(dashboard.StockChart):
		b.WriteString(st.Chart)
	default:
		b.WriteString(mutedStyle.Render("Select a company from the list to view its chart."))
	}
	b.WriteString("\n\n")

	cards := make([]string, 0, len(dashboard.StatCards))
	for _, id := range dashboard.StatCards {
		cards = append(cards, cardStyle.Render(cardLabel.Render(dashboard.CardLabel(id))+"\n"+cardValue.Render(st.Cards[id])))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n" + mutedStyle.Render("Last updated: "+dashboard.FormatClock(st.LastUpdated)))

	return paneStyle.Width(m.width - listWidth - 4).Height(m.height - 4).Render(b.String())
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(chart.Views))
	for i, v := range chart.Views {
		label := fmt.Sprintf("%d %s", i+1, v)
		if v == m.state.View {
			label = selectedViews.Render(label)
		} else {
			label = mutedStyle.Render(label)
		}
		tabs = append(tabs, label)
	}
	return strings.Join(tabs, "  ")
}
