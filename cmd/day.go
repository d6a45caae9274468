package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/cli"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/ledger"
)

var flagDayDate string

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "List the expenses of one day",
	Args:  cobra.NoArgs,
	RunE:  runDay,
}

func init() {
	dayCmd.Flags().StringVar(&flagDayDate, "date", "", "Day to show, YYYY-MM-DD (default today)")
	rootCmd.AddCommand(dayCmd)
}

func runDay(cmd *cobra.Command, _ []string) error {
	day, err := resolveDay(flagDayDate, time.Now())
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()
	warnLoad(cmd.ErrOrStderr(), s)

	out := cmd.OutOrStdout()
	expenses := ledger.ExpensesOnDay(s.ledger.All(), day)

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle(fmt.Sprintf("%s, %s", cli.FormatWeekday(day.Weekday()), cli.FormatDay(day))))
	fmt.Fprintln(out)

	if len(expenses) == 0 {
		fmt.Fprintln(out, cli.RenderMuted("  Chưa có khoản chi nào."))
		return nil
	}

	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Tên", "Danh mục", "Số tiền"},
		Rows:    expenseRows(expenses),
		Footer:  []string{"", "Tổng ngày", "", cli.FormatVND(ledger.Total(expenses))},
	}))
	return nil
}
