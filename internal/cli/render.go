package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/model"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#403E3C")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#878580")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Foreground(ColorText).Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorTextMuted)
	amountStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	warnStyle   = lipgloss.NewStyle().Foreground(ColorOrange)
)

// Table is a bordered text table for CLI output. The last row is rendered
// as a footer when Footer is set.
type Table struct {
	Headers []string
	Rows    [][]string
	Footer  []string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders t with rounded borders. Every column except the
// first is right-aligned.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	rows := t.Rows
	footerIdx := -1
	if len(t.Footer) > 0 {
		rows = append(append([][]string{}, rows...), t.Footer)
		footerIdx = len(rows) - 1
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorTextDim)).
		Headers(t.Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch {
			case row == table.HeaderRow:
				s = headerStyle
			case row == footerIdx:
				s = cellStyle.Bold(true)
			default:
				s = cellStyle
			}
			if col > 0 {
				s = s.Align(lipgloss.Right)
			}
			return s
		})

	return tbl.Render() + "\n"
}

// RenderMuted renders s in the muted text color.
func RenderMuted(s string) string { return mutedStyle.Render(s) }

// RenderWarning renders s in the warning color.
func RenderWarning(s string) string { return warnStyle.Render(s) }

// RenderCategoryBars renders one horizontal bar per category total,
// scaled to the largest absolute total.
func RenderCategoryBars(totals []model.CategoryTotal, maxWidth int) string {
	if len(totals) == 0 {
		return ""
	}

	labelW := 0
	peak := 0.0
	for _, ct := range totals {
		if w := lipgloss.Width(string(ct.Category)); w > labelW {
			labelW = w
		}
		if v := abs(ct.Total); v > peak {
			peak = v
		}
	}

	var b strings.Builder
	for _, ct := range totals {
		barLen := 0
		if peak > 0 {
			barLen = int(abs(ct.Total) / peak * float64(maxWidth))
		}
		if barLen == 0 && ct.Total != 0 {
			barLen = 1
		}
		label := string(ct.Category) + strings.Repeat(" ", labelW-lipgloss.Width(string(ct.Category)))
		b.WriteString("  ")
		b.WriteString(label)
		b.WriteString(" ")
		b.WriteString(amountStyle.Render(strings.Repeat("█", barLen)))
		b.WriteString(" ")
		b.WriteString(mutedStyle.Render(FormatVND(ct.Total)))
		b.WriteString("\n")
	}
	return b.String()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
