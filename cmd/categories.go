package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/model"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/tui/theme"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the expense categories",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		for i, c := range model.Categories {
			suffix := ""
			if c == model.DefaultCategory {
				suffix = "  (mặc định)"
			}
			fmt.Fprintf(out, "  %d. %s %s%s\n", i+1, theme.Category(c).Glyph, c, suffix)
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
