package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"docdash/internal/logging"
	"docdash/internal/seed"
	"docdash/internal/session"
	"docdash/internal/tui"
)

var (
	seedFile string
	logLevel string
	logFile  string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Terminal document dashboard over in-memory mock data",
	Long: `Browse, filter, add, edit and delete documents in a session-scoped
collection seeded from mock data. Nothing is persisted: logging out or
quitting discards every change.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		// the terminal belongs to the UI, so logs go to a file or nowhere
		var w io.Writer = io.Discard
		if logFile != "" {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			w = f
		}
		logger = logging.NewWithWriter(w, lvl)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDashboard,
}

var validateSeedCmd = &cobra.Command{
	Use:   "validate-seed [file]",
	Short: "Check that a YAML seed file parses",
	Args:  cobra.ExactArgs(1),
	RunE:  validateSeed,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&seedFile, "seed", os.Getenv("SEED_FILE"), "YAML seed file (defaults to the built-in mock documents)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", envOr("LOG_LEVEL", "info"), "log level")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append JSON logs to this file")
	rootCmd.AddCommand(validateSeedCmd)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	gate := session.NewGate(session.Mount(seed.FromEnv(seedFile), logger.Named("store")))
	app := tui.New(gate, tui.WithLogger(logger.Named("tui")), tui.WithContext(ctx))

	logger.Info("dashboard starting", zap.Bool("seed_file", seedFile != ""))
	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

func validateSeed(cmd *cobra.Command, args []string) error {
	docs, err := seed.File(args[0]).Documents(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d documents\n", args[0], len(docs))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
