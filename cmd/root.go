package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/config"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/store"
	"github.com/theirongolddev/fintrack/internal/tui/theme"
)

var (
	flagDataDir string
	flagVerbose bool
	flagQuiet   bool
)

var (
	cfg    config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:               "fintrack",
	Short:             "Personal income and expense tracker",
	Long:              "Record income and expenses, track a monthly budget, and see where the money goes.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding fintrack.db (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors")
}

// setup loads config and builds the logger before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.WarnLevel
	}
	switch {
	case flagVerbose:
		level = log.DebugLevel
	case flagQuiet:
		level = log.ErrorLevel
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "fintrack",
	})
	logger.Debug("config loaded", "path", config.ConfigPath(), "data", config.DBPath(cfg))
	return nil
}

// openLedger opens the database and applies the stored theme. The returned
// func closes the database.
func openLedger() (*ledger.Ledger, func(), error) {
	db, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("opening data store: %w", err)
	}

	l := ledger.New(db, ledger.Options{
		DefaultCurrency: config.Currency(cfg),
		Logger:          logger,
	})

	if th, err := l.Theme(); err == nil {
		theme.SetActive(th)
	} else {
		logger.Warn("could not read theme", "err", err)
	}

	closeFn := func() {
		if err := db.Close(); err != nil {
			logger.Error("closing data store", "err", err)
		}
	}
	return l, closeFn, nil
}

// currency returns the display symbol for l's settings.
func currency(l *ledger.Ledger) (string, error) {
	s, err := l.Settings()
	if err != nil {
		return "", err
	}
	return s.Currency, nil
}

// shortID is the display form of a transaction ID. UUIDv7 IDs share their
// leading timestamp bits, so the random tail is used.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}

var errAmbiguousID = errors.New("ambiguous transaction id")

// resolveID finds the transaction whose ID equals ref or ends or begins
// with it.
func resolveID(txs []model.Transaction, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ledger.ErrNotFound
	}

	var matches []string
	for _, t := range txs {
		if t.ID == ref {
			return t.ID, nil
		}
		if strings.HasSuffix(t.ID, ref) || strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ledger.ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s matches %d transactions", errAmbiguousID, ref, len(matches))
	}
}

func today() string {
	return model.DateOf(time.Now()).String()
}

func exportPath(out string) string {
	if out != "" {
		return out
	}
	return filepath.Join(".", ledger.ExportFilename(time.Now()))
}
