package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/cli"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/model"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/tui"
)

var (
	flagAddName     string
	flagAddAmount   string
	flagAddCategory string
	flagAddDate     string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an expense (interactive without flags)",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagAddName, "name", "", "What the money was spent on")
	addCmd.Flags().StringVar(&flagAddAmount, "amount", "", "Amount in VND")
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Category label or number (see `chitieu categories`)")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Day of the expense, YYYY-MM-DD (default today)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	day, err := resolveDay(flagAddDate, time.Now())
	if err != nil {
		return err
	}
	cat, err := parseCategory(flagAddCategory)
	if err != nil {
		return err
	}
	draft := model.Draft{Name: flagAddName, Amount: flagAddAmount, Category: cat}

	if flagAddName == "" && flagAddAmount == "" {
		if err := tui.NewAddForm(&draft).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("add form: %w", err)
		}
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()
	warnLoad(cmd.ErrOrStderr(), s)

	e, err := s.ledger.Add(draft, day)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "  Đã thêm #%d: %s · %s · %s · %s\n",
		e.ID, e.Name, e.Category, cli.FormatVND(e.Amount), cli.FormatDay(e.Date.Local()))
	return nil
}
