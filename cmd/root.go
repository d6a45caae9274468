// Package cmd implements the chitieu CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/config"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/ledger"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/log"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/store"
)

var (
	flagDB        string
	flagKey       string
	flagQuiet     bool
	flagEphemeral bool
	flagVerbose   bool
)

var logger = log.New(log.DefaultConfig())

var rootCmd = &cobra.Command{
	Use:   "chitieu",
	Short: "Personal expense tracker",
	Long:  "Record dated, categorized expenses, browse them day by day and review monthly totals.",
	RunE:  runTUI,

	PersistentPreRunE: setupRun,
	SilenceUsage:      true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default $XDG_DATA_HOME/chitieu/chitieu.db)")
	rootCmd.PersistentFlags().StringVar(&flagKey, "key", "", "Storage key holding the expense list")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "Keep expenses in memory only")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

// setupRun loads .env and configures logging before any command runs.
func setupRun(cmd *cobra.Command, _ []string) error {
	cfg := log.DefaultConfig()
	cfg.Output = cmd.ErrOrStderr()
	switch {
	case flagVerbose:
		cfg.Level = slog.LevelDebug
	case flagQuiet:
		cfg.Level = slog.LevelError
	}
	logger = log.New(cfg)
	log.SetDefault(logger)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not read .env", "err", err)
	}
	return nil
}

// session is an opened store plus the settings it was opened with.
type session struct {
	cfg     config.Config
	kv      store.KV
	path    string // "" when ephemeral
	ledger  *ledger.Store
	loadErr error // ErrMalformedData when the stored list was unreadable
}

// openSession resolves config, env and flags (flags win), opens the
// key-value store and loads the expense list.
func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	key := firstNonEmpty(flagKey, cfg.General.StorageKey, ledger.DefaultKey)

	s := &session{cfg: cfg}
	if flagEphemeral {
		s.kv = store.NewMemory()
	} else {
		s.path = firstNonEmpty(flagDB, cfg.General.DBPath, store.DefaultPath())
		db, err := store.Open(s.path)
		if err != nil {
			return nil, fmt.Errorf("opening store: %w", err)
		}
		s.kv = db
	}

	s.ledger = ledger.New(s.kv,
		ledger.WithKey(key),
		ledger.WithLogger(logger.WithComponent("ledger")),
	)
	if _, err := s.ledger.Load(); err != nil {
		if !errors.Is(err, ledger.ErrMalformedData) {
			_ = s.kv.Close()
			return nil, err
		}
		s.loadErr = err
	}
	logger.Debug("store opened", "path", s.path, "key", key, "count", s.ledger.Len())
	return s, nil
}

// Close closes the underlying store.
func (s *session) Close() error {
	return s.kv.Close()
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
