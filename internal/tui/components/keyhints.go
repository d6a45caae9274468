package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/tui/theme"
)

// KeyHint is one shortcut shown in the hint line.
type KeyHint struct {
	Key   string
	Label string
}

// RenderKeyHints renders hints as "[k]label" pairs, dropping trailing
// hints that do not fit in width.
func RenderKeyHints(hints []KeyHint, width int) string {
	t := theme.Active
	bracket := lipgloss.NewStyle().Foreground(t.TextDim)
	key := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	label := lipgloss.NewStyle().Foreground(t.TextMuted)

	var parts []string
	used := 1
	for _, h := range hints {
		plain := len([]rune(h.Key)) + len([]rune(h.Label)) + 2
		if width > 0 && used+plain+2 > width {
			break
		}
		used += plain + 2
		parts = append(parts, bracket.Render("[")+key.Render(h.Key)+bracket.Render("]")+label.Render(h.Label))
	}
	return " " + strings.Join(parts, "  ")
}
