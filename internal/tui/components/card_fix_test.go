package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/model"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	assert.Equal(t, []int{4, 3, 3}, LayoutRow(10, 3))
	assert.Nil(t, LayoutRow(10, 0))
}

func TestCardRowMatchesTallestCard(t *testing.T) {
	theme.SetActive("flexoki-dark")

	short := ContentCard("Short", "Content", 22, false)
	tall := ContentCard("Tall", "1\n2\n3\n4\n5", 22, true)

	tallLines := len(strings.Split(tall, "\n"))
	require.Less(t, len(strings.Split(short, "\n")), tallLines)

	joined := CardRow([]string{tall, short})
	assert.Len(t, strings.Split(joined, "\n"), tallLines)
}

func TestTotalCardShowsValue(t *testing.T) {
	out := TotalCard("Tổng", "50.000 ₫", "1 khoản", 30)
	assert.Contains(t, out, "50.000 ₫")
	assert.Contains(t, out, "1 khoản")
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 30, lipgloss.Width(line))
	}
}

func TestBarChartHeights(t *testing.T) {
	totals := []model.CategoryTotal{
		{Category: model.CategoryFood, Total: 100_000},
		{Category: model.CategoryBills, Total: 50_000},
	}
	out := BarChart(totals, 40, 10)
	require.NotEmpty(t, out)
	assert.Contains(t, out, "└")
	assert.Contains(t, out, "100k")
	assert.Empty(t, BarChart(nil, 40, 10))
}

func TestShareClamps(t *testing.T) {
	totals := []model.CategoryTotal{
		{Category: model.CategoryFood, Total: 75},
		{Category: model.CategoryOther, Total: 25},
	}
	assert.InDeltaSlice(t, []float64{0.75, 0.25}, Share(totals, 100), 1e-9)
	assert.Equal(t, []float64{0, 0}, Share(totals, 0))

	out := ShareBars(totals, 100, 20)
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, string(model.CategoryOther))
}

func TestStatusBarPrefersWarning(t *testing.T) {
	plain := RenderStatusBar(80, Status{Path: "/tmp/x.db", Count: 3})
	assert.Contains(t, plain, "3 khoản")
	assert.Contains(t, plain, "/tmp/x.db")

	warn := RenderStatusBar(80, Status{Path: "/tmp/x.db", Warning: "không lưu được"})
	assert.Contains(t, warn, "không lưu được")
	assert.NotContains(t, warn, "/tmp/x.db")
}

func TestKeyHintsTruncate(t *testing.T) {
	hints := []KeyHint{{"a", "thêm"}, {"d", "xóa"}, {"q", "thoát"}}
	assert.Contains(t, RenderKeyHints(hints, 0), "thoát")
	assert.NotContains(t, RenderKeyHints(hints, 12), "thoát")
}
