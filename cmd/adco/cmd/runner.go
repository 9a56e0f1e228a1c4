package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/corey/adco/internal/adapters/bbolt"
	"github.com/corey/adco/internal/app"
	"github.com/corey/adco/internal/domain/puzzle"
)

// openStore opens the answer cache named by the config.
func openStore() (*bbolt.Store, error) {
	if err := paths.EnsureDirs(); err != nil {
		return nil, err
	}
	store, err := bbolt.NewStore(cfg.Cache.Path)
	if isDBLockError(err) {
		return nil, fmt.Errorf("%w\n  → another adco process (watch?) holds %s\n  → stop it or pass --no-cache", err, cfg.Cache.Path)
	}
	return store, err
}

// newRunner builds a runner over every implemented day. The returned close
// func is always safe to call.
func newRunner(useCache bool) (*app.Runner, func(), error) {
	if !useCache || !cfg.Cache.Enabled {
		return app.NewRunner(puzzle.Default(), nil), func() {}, nil
	}
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return app.NewRunner(puzzle.Default(), store), func() { store.Close() }, nil
}

// isDBLockError returns true if the error chain contains a bbolt lock timeout.
// bbolt returns the string "timeout" when it cannot acquire the file lock
// within the configured deadline.
func isDBLockError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "timeout")
}

// readInput reads the puzzle input. "-" means stdin. With no flag, piped
// stdin wins, then the day's file under the configured inputs directory.
func readInput(flag string, day int, stdin io.Reader) (string, string, error) {
	switch {
	case flag == "-" || (flag == "" && isStdinPipe()):
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	case flag == "":
		flag = app.InputFile(cfg.InputsDir, day)
	}
	data, err := os.ReadFile(flag)
	if err != nil {
		return "", "", err
	}
	return string(data), flag, nil
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

// isStdoutTTY returns true if stdout is connected to a terminal.
func isStdoutTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
