package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/model"
)

func TestFormatVND(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0 ₫"},
		{500, "500 ₫"},
		{50000, "50.000 ₫"},
		{1234567, "1.234.567 ₫"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatVND(tt.in), "amount %v", tt.in)
	}
}

func TestFormatVNDNegative(t *testing.T) {
	got := FormatVND(-50000)
	assert.True(t, strings.HasPrefix(got, "-"), got)
	assert.Contains(t, got, "50.000")
}

func TestFormatDay(t *testing.T) {
	d := time.Date(2024, time.May, 10, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "10/5/2024", FormatDay(d))
	assert.Equal(t, "5/2024", FormatMonth(2024, time.May))
	assert.Equal(t, "Thứ sáu", FormatWeekday(d.Weekday()))
}

func TestFormatCompact(t *testing.T) {
	assert.Equal(t, "950", FormatCompact(950))
	assert.Equal(t, "1.5k", FormatCompact(1500))
	assert.Equal(t, "2tr", FormatCompact(2_000_000))
	assert.Equal(t, "3tỷ", FormatCompact(3e9))
	assert.Equal(t, "-50k", FormatCompact(-50_000))
}

func TestRenderCategoryBars(t *testing.T) {
	out := RenderCategoryBars([]model.CategoryTotal{
		{Category: model.CategoryFood, Total: 100},
		{Category: model.CategoryShopping, Total: 50},
	}, 20)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, 20, strings.Count(lines[0], "█"))
	assert.Equal(t, 10, strings.Count(lines[1], "█"))
	assert.Empty(t, RenderCategoryBars(nil, 20))
}

func TestRenderTableIncludesFooter(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Danh mục", "Tổng"},
		Rows:    [][]string{{"Ăn uống", "50.000 ₫"}},
		Footer:  []string{"Cộng", "50.000 ₫"},
	})
	assert.Contains(t, out, "Danh mục")
	assert.Contains(t, out, "Ăn uống")
	assert.Contains(t, out, "Cộng")
}
