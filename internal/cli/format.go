// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol is the Vietnamese Dong sign appended to amounts.
const CurrencySymbol = "₫"

var viPrinter = message.NewPrinter(language.Vietnamese)

// FormatVND formats an amount the way vi-VN currency formatting does:
// dot thousands separators, no fraction digits, trailing ₫.
// e.g., 50000 -> "50.000 ₫"
func FormatVND(amount float64) string {
	return viPrinter.Sprintf("%v %s", number.Decimal(amount, number.MaxFractionDigits(0)), CurrencySymbol)
}

// FormatNumber groups an integer with vi-VN separators.
// e.g., 1234567 -> "1.234.567"
func FormatNumber(n int64) string {
	return viPrinter.Sprintf("%v", number.Decimal(n))
}

// FormatDay formats a date as d/m/yyyy, matching vi-VN short dates.
func FormatDay(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// FormatMonth formats a month as m/yyyy.
func FormatMonth(year int, month time.Month) string {
	return fmt.Sprintf("%d/%d", int(month), year)
}

var weekdaysVN = []string{"Chủ nhật", "Thứ hai", "Thứ ba", "Thứ tư", "Thứ năm", "Thứ sáu", "Thứ bảy"}

// FormatWeekday returns the Vietnamese weekday name.
func FormatWeekday(d time.Weekday) string {
	if d >= 0 && int(d) < len(weekdaysVN) {
		return weekdaysVN[d]
	}
	return "???"
}

// FormatCompact shortens large amounts for chart axes.
// e.g., 1500 -> "1.5k", 2000000 -> "2tr", 3000000000 -> "3tỷ"
func FormatCompact(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	var s string
	switch {
	case v >= 1e9:
		s = trimFloat(v/1e9) + "tỷ"
	case v >= 1e6:
		s = trimFloat(v/1e6) + "tr"
	case v >= 1e3:
		s = trimFloat(v/1e3) + "k"
	default:
		s = trimFloat(v)
	}
	if neg {
		return "-" + s
	}
	return s
}

func trimFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
