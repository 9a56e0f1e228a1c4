package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/corey/adco/internal/app"
	"github.com/corey/adco/internal/domain/puzzle"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// version is overridden at link time (-ldflags "-X ...cmd.version=...").
var version = "dev"

var (
	verbose    int
	configPath string

	// Resolved in PersistentPreRunE, before any subcommand runs.
	paths *app.Paths
	cfg   *app.Config
)

var rootCmd = &cobra.Command{
	Use:               "adco",
	Short:             "Advent of Code 2020 solutions built on parser combinators",
	Long:              "Solves Advent of Code 2020 puzzles. Inputs are parsed with a parser-combinator engine that reports exactly where a malformed input goes wrong.",
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "Log more (repeat for more detail)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default .adco/config.yaml)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(lspCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// projectRoot returns the project root (cwd by default).
func projectRoot() (string, error) {
	return os.Getwd()
}

func setup(cmd *cobra.Command, args []string) error {
	root, err := projectRoot()
	if err != nil {
		return err
	}
	paths = app.NewPaths(root)

	path := configPath
	if path == "" {
		path = paths.Config
	}
	if cfg, err = app.LoadConfig(path, paths); err != nil {
		return err
	}

	level := max(verbose, cfg.Log.Verbosity)
	if cfg.Log.File == "" {
		commonlog.Configure(level, nil)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0755); err != nil {
		return fmt.Errorf("log dir: %w", err)
	}
	commonlog.Configure(level, &cfg.Log.File)
	return nil
}

// parseDay validates a day argument against the registry.
func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(arg)
	if err != nil || day < 1 || day > 25 {
		return 0, fmt.Errorf("invalid day %q: want a number from 1 to 25", arg)
	}
	return day, nil
}

func parseDayPart(args []string) (int, puzzle.Part, error) {
	day, err := parseDay(args[0])
	if err != nil {
		return 0, "", err
	}
	part, err := puzzle.ParsePart(args[1])
	if err != nil {
		return 0, "", err
	}
	return day, part, nil
}
