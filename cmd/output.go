package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/cli"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/ledger"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/model"
)

// warnLoad reports non-fatal load problems on w unless --quiet.
func warnLoad(w io.Writer, s *session) {
	if flagQuiet {
		return
	}
	if s.loadErr != nil {
		fmt.Fprintln(w, cli.RenderWarning(fmt.Sprintf("  Dữ liệu hỏng, đã sao lưu vào %s.corrupt và bắt đầu danh sách trống.", s.ledger.Key())))
	}
	if n := s.ledger.Skipped(); n > 0 {
		fmt.Fprintln(w, cli.RenderWarning(fmt.Sprintf("  Bỏ qua %d bản ghi lỗi.", n)))
	}
}

// parseCategory accepts a category label (case-insensitive) or its
// 1-based position in the list. Empty selects the default.
func parseCategory(s string) (model.Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.DefaultCategory, nil
	}
	for i, c := range model.Categories {
		if strings.EqualFold(s, string(c)) || s == fmt.Sprint(i+1) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ledger.ErrUnknownCategory, s)
}

// resolveDay parses --date, defaulting to today. The time of day comes
// from now so the record sorts naturally within its day.
func resolveDay(s string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return now, nil
	}
	day, err := ledger.ParseDay(strings.TrimSpace(s), now.Location(), now)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", s, err)
	}
	return day, nil
}

func expenseRows(expenses []model.Expense) [][]string {
	rows := make([][]string, len(expenses))
	for i, e := range expenses {
		rows[i] = []string{
			fmt.Sprint(e.ID),
			e.Name,
			string(e.Category),
			cli.FormatVND(e.Amount),
		}
	}
	return rows
}
