package model

import (
	"fmt"
	"time"
)

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// MonthOf returns the calendar month t falls in, viewed in loc.
func MonthOf(t time.Time, loc *time.Location) YearMonth {
	if loc != nil {
		t = t.In(loc)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses the "2006-01" form.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", s, err)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Before reports whether ym is an earlier month than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// Contains reports whether t, viewed in loc, falls inside ym.
func (ym YearMonth) Contains(t time.Time, loc *time.Location) bool {
	return MonthOf(t, loc) == ym
}

// Start returns midnight on the first day of ym in loc.
func (ym YearMonth) Start(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, loc)
}

// CategoryTotal is the summed amount of one category within a month.
type CategoryTotal struct {
	Category Category
	Total    float64
}

// MonthSummary aggregates one month for display.
type MonthSummary struct {
	Month      YearMonth
	Totals     []CategoryTotal
	GrandTotal float64
	Count      int
}
