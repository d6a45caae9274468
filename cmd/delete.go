package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/cli"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/ledger"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/model"
)

var flagDeleteYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete an expense after confirmation",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&flagDeleteYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

// promptConfirmer asks on the terminal with a huh confirm.
var promptConfirmer = ledger.ConfirmFunc(func(e model.Expense) (bool, error) {
	ok := false
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Xóa %q?", e.Name)).
		Description(fmt.Sprintf("%s · %s · %s", e.Category, cli.FormatVND(e.Amount), cli.FormatDay(e.Date.Local()))).
		Affirmative("Xóa").
		Negative("Hủy").
		Value(&ok).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
})

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", args[0], err)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()
	warnLoad(cmd.ErrOrStderr(), s)

	if _, ok := s.ledger.Get(id); !ok {
		return fmt.Errorf("%w: id %d", ledger.ErrNotFound, id)
	}

	var c ledger.Confirmer = promptConfirmer
	if flagDeleteYes {
		c = ledger.AlwaysConfirm
	}
	removed, err := s.ledger.Delete(id, c)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if removed {
		fmt.Fprintf(out, "  Đã xóa #%d\n", id)
	} else {
		fmt.Fprintln(out, "  Đã hủy, không có gì thay đổi.")
	}
	return nil
}
