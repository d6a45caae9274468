package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/cli"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/ledger"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/model"
)

var flagMonth string

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Per-category totals for one month",
	Args:  cobra.NoArgs,
	RunE:  runMonth,
}

func init() {
	monthCmd.Flags().StringVarP(&flagMonth, "month", "m", "", "Month to show, YYYY-MM (default this month)")
	rootCmd.AddCommand(monthCmd)
}

func runMonth(cmd *cobra.Command, _ []string) error {
	ym := model.MonthOf(time.Now(), time.Local)
	if flagMonth != "" {
		parsed, err := model.ParseYearMonth(flagMonth)
		if err != nil {
			return err
		}
		ym = parsed
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()
	warnLoad(cmd.ErrOrStderr(), s)

	out := cmd.OutOrStdout()
	summary := ledger.SummarizeMonth(s.ledger.All(), ym, time.Local)

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle("Thống kê tháng "+cli.FormatMonth(ym.Year, ym.Month)))
	fmt.Fprintln(out)

	if len(summary.Totals) == 0 {
		fmt.Fprintln(out, cli.RenderMuted("  Không có dữ liệu cho tháng này."))
		return nil
	}

	rows := make([][]string, len(summary.Totals))
	for i, ct := range summary.Totals {
		share := 0.0
		if summary.GrandTotal > 0 {
			share = ct.Total / summary.GrandTotal
		}
		rows[i] = []string{string(ct.Category), cli.FormatVND(ct.Total), cli.FormatPercent(share)}
	}
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Headers: []string{"Danh mục", "Tổng", "Tỉ lệ"},
		Rows:    rows,
		Footer:  []string{fmt.Sprintf("Tổng cộng (%d khoản)", summary.Count), cli.FormatVND(summary.GrandTotal), ""},
	}))
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderCategoryBars(summary.Totals, 30))
	return nil
}
