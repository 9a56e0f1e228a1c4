package app

import (
	"context"
	"fmt"
	"os"

	"github.com/corey/adco/internal/domain/puzzle"
	"github.com/corey/adco/internal/ports"
)

// Watch solves day/part from the file at path once, then again every time
// w reports that it changed, until ctx is cancelled. report receives every
// outcome, including read and solve failures; those do not end the watch.
func (r *Runner) Watch(ctx context.Context, w ports.Watcher, path string, day int, part puzzle.Part, report func(Result, error)) error {
	changes := make(chan struct{}, 1)
	if err := w.Watch(path, func(string) {
		// Coalesce: one pending re-solve is enough.
		select {
		case changes <- struct{}{}:
		default:
		}
	}); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer w.Stop()

	solve := func() {
		input, err := os.ReadFile(path)
		if err != nil {
			report(Result{Day: day, Part: part}, err)
			return
		}
		res, err := r.Solve(ctx, day, part, string(input))
		if ctx.Err() != nil {
			return
		}
		report(res, err)
	}

	r.log.Infof("watching %s for day %d part %s", path, day, part)
	solve()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			solve()
		}
	}
}
