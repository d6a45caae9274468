package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/config"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/log"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/tui"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// The dashboard owns the terminal; warnings go to its status bar.
	logger = log.Discard()

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	theme.SetActive(s.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Store:     s.ledger,
		StorePath: s.path,
		Location:  time.Local,
		Display:   s.cfg.Display,
		LoadErr:   s.loadErr,
		FirstRun:  !config.Exists(),
		Config:    s.cfg,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
