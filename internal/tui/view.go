package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/cli"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/ledger"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/tui/components"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/tui/theme"
)

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.mode == modeSetup && a.setupForm != nil {
		return a.placeCenter(a.setupForm.View())
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf("\n  Cửa sổ quá hẹp (%d cột)\n\n  chitieu cần ít nhất %d cột.\n",
		a.width, minTerminalWidth)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderBright).
		Padding(1, 3)
	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	desc := lipgloss.NewStyle().Foreground(t.TextMuted)

	bindings := []struct{ key, desc string }{
		{"h ←  l →", "Ngày trước / ngày sau"},
		{"t", "Về hôm nay"},
		{"g", "Đến ngày (YYYY-MM-DD)"},
		{"j k", "Chọn khoản chi"},
		{"a", "Thêm khoản chi"},
		{"d", "Xóa khoản chi đã chọn"},
		{"[ ]", "Tháng cũ hơn / mới hơn"},
		{"esc", "Hủy / ẩn cảnh báo"},
		{"?", "Trợ giúp"},
		{"q", "Thoát"},
	}

	var b strings.Builder
	b.WriteString(title.Render("◈ Phím tắt"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-9s", bind.key)),
			desc.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("Nhấn phím bất kỳ để đóng"))

	return a.placeCenter(card.Render(b.String()))
}

func (a App) viewMain() string {
	cw := a.contentWidth()

	header := a.renderHeader(cw)
	hints := components.RenderKeyHints(browseHints, cw)
	status := components.RenderStatusBar(cw, components.Status{
		Path:    a.storePath,
		Count:   a.store.Len(),
		Warning: a.warning,
	})

	contentH := max(a.height-lipgloss.Height(header)-lipgloss.Height(hints)-lipgloss.Height(status), minContentHeight)

	var content string
	if cw >= splitWidth {
		widths := components.LayoutRow(cw, 2)
		content = components.CardRow([]string{
			a.renderDayPanel(widths[0]),
			a.renderMonthPanel(widths[1]),
		})
	} else {
		content = a.renderDayPanel(cw) + "\n" + a.renderMonthPanel(cw)
	}
	content = padHeight(truncateHeight(content, contentH), contentH)

	out := lipgloss.JoinVertical(lipgloss.Left, header, content, hints, status)
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, out)
}

func (a App) renderHeader(cw int) string {
	t := theme.Active

	logo := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(" ◈ chitieu")
	arrow := lipgloss.NewStyle().Foreground(t.TextDim)
	day := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).
		Render(cli.FormatWeekday(a.day.Weekday()) + ", " + cli.FormatDay(a.day))

	nav := arrow.Render("‹ ") + day + arrow.Render(" ›")
	if ledger.SameDay(a.now(), a.day) {
		nav += lipgloss.NewStyle().Foreground(t.Green).Render("  hôm nay")
	}

	gap := max(2, cw-lipgloss.Width(logo)-lipgloss.Width(nav)-1)
	return logo + strings.Repeat(" ", gap) + nav + " "
}

func (a App) renderDayPanel(outer int) string {
	t := theme.Active
	inner := components.CardInnerWidth(outer)

	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	text := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selected := lipgloss.NewStyle().Background(t.SurfaceHover)

	var b strings.Builder
	if len(a.dayExpenses) == 0 {
		b.WriteString(dim.Render("Chưa có khoản chi nào. Nhấn a để thêm."))
		b.WriteString("\n")
	}

	amountW := 0
	for _, e := range a.dayExpenses {
		amountW = max(amountW, lipgloss.Width(cli.FormatVND(e.Amount)))
	}
	for i, e := range a.dayExpenses {
		cs := theme.Category(e.Category)
		marker := "  "
		if i == a.cursor && a.mode == modeBrowse {
			marker = "▸ "
		}
		amount := cli.FormatVND(e.Amount)
		cat := lipgloss.NewStyle().Foreground(cs.Color).Render(string(e.Category))

		// marker + glyph + space + name + two spaces + category + gap + amount
		nameW := max(4, inner-2-lipgloss.Width(cs.Glyph)-1-2-lipgloss.Width(string(e.Category))-1-amountW)
		name := truncStr(e.Name, nameW)
		left := marker + cs.Glyph + " " + text.Render(name) + "  " + cat
		gap := max(1, inner-lipgloss.Width(left)-lipgloss.Width(amount))
		line := left + strings.Repeat(" ", gap) + lipgloss.NewStyle().Foreground(t.Green).Render(amount)
		if i == a.cursor && a.mode == modeBrowse {
			line = selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	total := "Tổng ngày: " + cli.FormatVND(ledger.Total(a.dayExpenses))
	b.WriteString(muted.Render(strings.Repeat("─", inner)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(inner, lipgloss.Right, text.Bold(true).Render(total)))

	switch a.mode {
	case modeAdd:
		b.WriteString("\n\n")
		b.WriteString(a.addForm.View())
		if a.addErr != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(t.Red).Render(a.addErr))
		}
	case modeConfirmDelete:
		b.WriteString("\n\n")
		b.WriteString(a.confirmForm.View())
	case modeJump:
		b.WriteString("\n\n")
		b.WriteString(muted.Render("Đến ngày: "))
		b.WriteString(a.jump.View())
		if a.jumpErr != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(t.Red).Render(a.jumpErr))
		}
	}

	title := fmt.Sprintf("Chi tiêu ngày %s", cli.FormatDay(a.day))
	return components.ContentCard(title, b.String(), outer, a.mode != modeBrowse)
}

func (a App) renderMonthPanel(outer int) string {
	t := theme.Active
	inner := components.CardInnerWidth(outer)
	s := a.summary

	title := "Thống kê tháng " + cli.FormatMonth(a.month.Year, a.month.Month)
	if len(a.months) > 0 {
		title += lipgloss.NewStyle().Foreground(t.TextDim).Render("  [ ]")
	}

	if len(s.Totals) == 0 {
		body := lipgloss.NewStyle().Foreground(t.TextDim).Render("Không có dữ liệu cho tháng này.")
		return components.ContentCard(title, body, outer, false)
	}

	var b strings.Builder
	b.WriteString(components.BarChart(s.Totals, inner, a.display.ChartHeight))
	if a.display.ShowShareChart {
		b.WriteString("\n\n")
		b.WriteString(components.ShareBars(s.Totals, s.GrandTotal, max(inner/3, 8)))
	}
	b.WriteString("\n")
	b.WriteString(components.TotalCard("Tổng cộng", cli.FormatVND(s.GrandTotal),
		fmt.Sprintf("%d khoản chi", s.Count), inner))

	return components.ContentCard(title, b.String(), outer, false)
}
