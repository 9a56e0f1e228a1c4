package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/corey/adco/internal/app"
	"github.com/corey/adco/internal/domain/puzzle"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the answer cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every cached answer",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if _, err := os.Stat(cfg.Cache.Path); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(out, "no cached answers")
		return nil
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Len()
	if err != nil {
		return err
	}
	if err := app.NewRunner(puzzle.Default(), store).ClearCache(); err != nil {
		return err
	}
	fmt.Fprintf(out, "cleared %d cached answers\n", n)
	return nil
}
