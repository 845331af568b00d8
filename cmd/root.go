package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/abhisek/limbcalc/internal/config"
	"github.com/abhisek/limbcalc/internal/logging"
	"github.com/abhisek/limbcalc/internal/store"
	"github.com/spf13/cobra"
)

// settings is loaded before any command runs.
var settings = config.DefaultConfig()

// logSink is closed after the command finishes.
var logSink io.Closer

var rootCmd = &cobra.Command{
	Use:   "limbcalc",
	Short: "Add two numbers by counting on fingers and toes",
	Long: "Limbcalc is a terminal calculator that adds two numbers by lighting up\n" +
		"fingers and toes one at a time. Sums above 20 do not fit.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	defer closeLogSink()
	return rootCmd.Execute()
}

// closeLogSink closes the TUI log file, including when a command failed.
func closeLogSink() {
	if logSink != nil {
		logSink.Close()
		logSink = nil
	}
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LIMBCALC_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to JSON config file (default $XDG_CONFIG_HOME/limbcalc/config.json)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadSettings reads the config file and environment, then applies flags
// and sets up logging. The TUI owns the terminal, so it logs to the
// configured file only; other commands log to stderr.
func loadSettings(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	settings = cfg

	var w io.Writer = os.Stderr
	if !cmd.HasParent() {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return err
		}
		logSink = f
		w = f
	}
	return logging.Configure(w, cfg.LogLevel)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path (config file or LIMBCALC_DB), then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if settings.DBPath != "" {
		return settings.DBPath, store.EnsureDir(settings.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore opens the history database for cmd.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
