package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/tui/theme"
)

// Status is what the bottom bar reports about the store.
type Status struct {
	Path    string // storage location, "" for in-memory
	Count   int    // records loaded
	Warning string // last non-fatal problem, shown instead of the path
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s Status) string {
	t := theme.Active

	left := " [?]trợ giúp  [q]thoát"

	where := s.Path
	if where == "" {
		where = "bộ nhớ tạm"
	}
	right := fmt.Sprintf("%d khoản · %s ", s.Count, where)
	rightStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	if s.Warning != "" {
		right = "⚠ " + s.Warning + " "
		rightStyle = lipgloss.NewStyle().Foreground(t.Orange)
	}

	gap := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	return lipgloss.NewStyle().Foreground(t.TextMuted).Render(left) +
		strings.Repeat(" ", gap) +
		rightStyle.Render(right)
}
