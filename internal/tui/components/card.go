// Package components provides reusable TUI widgets for the chitieu dashboard.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/tui/theme"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base, rem := totalWidth/n, totalWidth%n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < rem {
			widths[i]++
		}
	}
	return widths
}

// TotalCard renders a small card with a label, a prominent value and an
// optional detail line. outerWidth includes the border.
func TotalCard(label, value, detail string, outerWidth int) string {
	t := theme.Active

	content := lipgloss.NewStyle().Foreground(t.TextMuted).Render(label) + "\n" +
		lipgloss.NewStyle().Foreground(t.Green).Bold(true).Render(value)
	if detail != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(detail)
	}
	return cardStyle(t.Border, outerWidth).Render(content)
}

// ContentCard renders a bordered panel with an optional title. A focused
// card gets the bright border.
func ContentCard(title, body string, outerWidth int, focused bool) string {
	t := theme.Active

	border := t.Border
	titleColor := t.TextMuted
	if focused {
		border = t.BorderBright
		titleColor = t.Accent
	}

	content := ""
	if title != "" {
		content = lipgloss.NewStyle().Foreground(titleColor).Bold(true).Render(title) + "\n"
	}
	content += body

	return cardStyle(border, outerWidth).Render(content)
}

func cardStyle(border lipgloss.Color, outerWidth int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(max(outerWidth-2, 10)).
		Padding(0, 1)
}

// CardRow joins pre-rendered card strings horizontally.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	return max(outerWidth-4, 10)
}
