package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/cli"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/ledger"
)

var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "List months that have expenses, newest first",
	Args:  cobra.NoArgs,
	RunE:  runMonths,
}

func init() {
	rootCmd.AddCommand(monthsCmd)
}

func runMonths(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()
	warnLoad(cmd.ErrOrStderr(), s)

	out := cmd.OutOrStdout()
	all := s.ledger.All()
	months := ledger.AvailableMonths(all, time.Local)
	if len(months) == 0 {
		fmt.Fprintln(out, cli.RenderMuted("  Chưa có khoản chi nào."))
		return nil
	}

	rows := make([][]string, len(months))
	for i, ym := range months {
		sum := ledger.SummarizeMonth(all, ym, time.Local)
		rows[i] = []string{ym.String(), cli.FormatNumber(int64(sum.Count)), cli.FormatVND(sum.GrandTotal)}
	}
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Headers: []string{"Tháng", "Số khoản", "Tổng"},
		Rows:    rows,
	}))
	return nil
}
