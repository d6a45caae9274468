package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/model"
)

// ExpensesOnDay returns the records whose date falls on day's calendar
// day, compared in day's location. Order is preserved.
func ExpensesOnDay(all []model.Expense, day time.Time) []model.Expense {
	var result []model.Expense
	for _, e := range all {
		if SameDay(e.Date, day) {
			result = append(result, e)
		}
	}
	return result
}

// MonthlyTotals sums amounts per category for records dated inside ym,
// viewed in loc. Entries follow model.Categories order and categories
// whose total is exactly zero are left out.
func MonthlyTotals(all []model.Expense, ym model.YearMonth, loc *time.Location) []model.CategoryTotal {
	sums := make(map[model.Category]decimal.Decimal)
	for _, e := range all {
		if !ym.Contains(e.Date, loc) {
			continue
		}
		sums[e.Category] = sums[e.Category].Add(decimal.NewFromFloat(e.Amount))
	}

	var totals []model.CategoryTotal
	for _, c := range model.Categories {
		sum, ok := sums[c]
		if !ok || sum.IsZero() {
			continue
		}
		totals = append(totals, model.CategoryTotal{Category: c, Total: sum.InexactFloat64()})
	}
	return totals
}

// SummarizeMonth computes MonthlyTotals plus the grand total and record
// count for ym.
func SummarizeMonth(all []model.Expense, ym model.YearMonth, loc *time.Location) model.MonthSummary {
	summary := model.MonthSummary{
		Month:  ym,
		Totals: MonthlyTotals(all, ym, loc),
	}
	grand := decimal.Zero
	for _, e := range all {
		if !ym.Contains(e.Date, loc) {
			continue
		}
		summary.Count++
		grand = grand.Add(decimal.NewFromFloat(e.Amount))
	}
	summary.GrandTotal = grand.InexactFloat64()
	return summary
}

// AvailableMonths returns each distinct month that has a record, most
// recent first.
func AvailableMonths(all []model.Expense, loc *time.Location) []model.YearMonth {
	seen := make(map[model.YearMonth]struct{})
	for _, e := range all {
		seen[model.MonthOf(e.Date, loc)] = struct{}{}
	}

	months := make([]model.YearMonth, 0, len(seen))
	for ym := range seen {
		months = append(months, ym)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[j].Before(months[i])
	})
	return months
}

// Total sums the amounts of expenses.
func Total(expenses []model.Expense) float64 {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(decimal.NewFromFloat(e.Amount))
	}
	return sum.InexactFloat64()
}
