package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/cli"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/model"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/tui/theme"
)

var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// BarChart renders one vertical bar per category total, each in its
// category color, with a y-axis of compact VND ticks and category glyphs
// along the x-axis. Negative totals are drawn as empty columns.
func BarChart(totals []model.CategoryTotal, width, height int) string {
	if len(totals) == 0 {
		return ""
	}
	t := theme.Active
	if height < 4 {
		height = 4
	}

	peak := 0.0
	for _, ct := range totals {
		if ct.Total > peak {
			peak = ct.Total
		}
	}
	if peak == 0 {
		peak = 1
	}

	step := tickStep(peak)
	for int(math.Ceil(peak/step)) > max(2, height/2) {
		step *= 2
	}
	ceiling := math.Ceil(peak/step) * step
	intervals := max(1, int(math.Round(ceiling/step)))
	rowsPerTick := max(2, height/intervals)
	chartH := rowsPerTick * intervals

	labelW := max(4, len(cli.FormatCompact(ceiling))+1)
	ticks := make(map[int]string, intervals)
	for i := 1; i <= intervals; i++ {
		ticks[i*rowsPerTick] = cli.FormatCompact(step * float64(i))
	}

	n := len(totals)
	barW := (width - labelW - 1 - (n - 1)) / n
	barW = min(max(barW, 2), 6)
	axisLen := n*barW + (n - 1)

	surface := lipgloss.NewStyle().Background(t.Surface)
	axis := surface.Foreground(t.TextDim)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		top := ceiling * float64(row) / float64(chartH)
		bottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axis.Render(fmt.Sprintf("%*s│", labelW, ticks[row])))
		for i, ct := range totals {
			if i > 0 {
				b.WriteString(surface.Render(" "))
			}
			bar := surface.Foreground(theme.Category(ct.Category).Color)
			switch {
			case ct.Total >= top:
				b.WriteString(bar.Render(strings.Repeat("█", barW)))
			case ct.Total > bottom:
				idx := int((ct.Total - bottom) / (top - bottom) * 8)
				idx = min(max(idx, 1), 8)
				b.WriteString(bar.Render(strings.Repeat(string(eighths[idx]), barW)))
			default:
				b.WriteString(surface.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axis.Render(fmt.Sprintf("%*s└%s", labelW, "0", strings.Repeat("─", axisLen))))
	b.WriteString("\n")
	b.WriteString(surface.Render(strings.Repeat(" ", labelW+1)))
	for i, ct := range totals {
		if i > 0 {
			b.WriteString(surface.Render(" "))
		}
		glyph := theme.Category(ct.Category).Glyph
		pad := max(0, barW-lipgloss.Width(glyph))
		b.WriteString(surface.Render(glyph + strings.Repeat(" ", pad)))
	}

	return b.String()
}

// tickStep picks a 1/2/5 interval targeting about five ticks.
func tickStep(peak float64) float64 {
	if peak <= 0 {
		return 1
	}
	rough := peak / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	switch frac := rough / base; {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}
