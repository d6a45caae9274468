package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/config"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	dbPath := firstNonEmpty(flagDB, cfg.General.DBPath, store.DefaultPath())
	if flagEphemeral {
		dbPath = "(in-memory)"
	}
	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Database:    %s\n", dbPath)
	fmt.Fprintf(out, "    Storage key: %s\n", firstNonEmpty(flagKey, cfg.General.StorageKey))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Display]")
	fmt.Fprintf(out, "    Share chart:  %v\n", cfg.Display.ShowShareChart)
	fmt.Fprintf(out, "    Chart height: %d\n", cfg.Display.ChartHeight)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  Environment overrides: %s, %s, %s\n", config.EnvDB, config.EnvStorageKey, config.EnvTheme)
	fmt.Fprintln(out, "  Run `chitieu setup` to reconfigure.")
	return nil
}
