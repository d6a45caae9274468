package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/cli"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/model"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/tui/theme"
)

// Share returns the fraction of grand each total represents, clamped to
// [0, 1]. A non-positive grand total yields all zeros.
func Share(totals []model.CategoryTotal, grand float64) []float64 {
	out := make([]float64, len(totals))
	if grand <= 0 {
		return out
	}
	for i, ct := range totals {
		out[i] = min(max(ct.Total/grand, 0), 1)
	}
	return out
}

// ShareBars renders each category's share of the month as a labeled
// progress bar, standing in for a pie chart.
func ShareBars(totals []model.CategoryTotal, grand float64, barWidth int) string {
	if len(totals) == 0 {
		return ""
	}
	t := theme.Active
	shares := Share(totals, grand)

	labelW := 0
	for _, ct := range totals {
		labelW = max(labelW, lipgloss.Width(string(ct.Category)))
	}

	surface := lipgloss.NewStyle().Background(t.Surface)
	label := surface.Foreground(t.TextMuted)
	amount := surface.Foreground(t.TextDim)

	lines := make([]string, len(totals))
	for i, ct := range totals {
		style := theme.Category(ct.Category)
		bar := progress.New(
			progress.WithSolidFill(string(style.Color)),
			progress.WithWidth(max(barWidth, 4)),
			progress.WithoutPercentage(),
		)
		bar.EmptyColor = string(t.TextDim)

		name := string(ct.Category)
		name += strings.Repeat(" ", labelW-lipgloss.Width(name))

		lines[i] = label.Render(style.Glyph+" "+name) +
			surface.Render(" ") +
			bar.ViewAs(shares[i]) +
			surface.Foreground(style.Color).Bold(true).Render(fmt.Sprintf(" %5.1f%%", shares[i]*100)) +
			amount.Render("  "+cli.FormatVND(ct.Total))
	}
	return strings.Join(lines, "\n")
}
