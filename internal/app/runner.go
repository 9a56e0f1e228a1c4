// Package app wires the puzzle registry to the answer cache, file watcher and
// logging. The CLI and the language server both go through a Runner.
package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/corey/adco/internal/domain/puzzle"
	"github.com/corey/adco/internal/ports"
	"github.com/tliron/commonlog"
)

// Result is one solved part.
type Result struct {
	Day     int
	Part    puzzle.Part
	Answer  string
	Cached  bool
	Elapsed time.Duration
}

// Runner solves registered problems, memoizing answers in an optional cache.
type Runner struct {
	problems *puzzle.Registry
	cache    ports.AnswerCache // nil disables caching
	log      commonlog.Logger
}

// NewRunner creates a runner. cache may be nil.
func NewRunner(problems *puzzle.Registry, cache ports.AnswerCache) *Runner {
	return &Runner{
		problems: problems,
		cache:    cache,
		log:      commonlog.GetLogger("adco.app"),
	}
}

// Problems exposes the registry the runner solves from.
func (r *Runner) Problems() *puzzle.Registry { return r.problems }

// CacheKey identifies input for day and part. The input is normalized first
// so line-ending differences share one entry.
func CacheKey(day int, part puzzle.Part, input string) ports.AnswerKey {
	sum := sha256.Sum256([]byte(puzzle.NormalizeInput(input)))
	return ports.AnswerKey{Day: day, Part: string(part), InputHash: hex.EncodeToString(sum[:])}
}

// Solve answers one part of a day. A cached answer is returned without
// running the solver. Cache failures are logged and otherwise ignored.
// Cancelling ctx abandons the wait; the solver itself is not interruptible.
func (r *Runner) Solve(ctx context.Context, day int, part puzzle.Part, input string) (Result, error) {
	res := Result{Day: day, Part: part}
	p, err := r.problems.Get(day)
	if err != nil {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	key := CacheKey(day, part, input)
	if r.cache != nil {
		answer, ok, err := r.cache.Get(key)
		switch {
		case err != nil:
			r.log.Warningf("cache lookup %s: %s", key, err)
		case ok:
			r.log.Debugf("cache hit %s", key)
			res.Answer, res.Cached = answer, true
			return res, nil
		}
	}

	type outcome struct {
		answer string
		err    error
	}
	done := make(chan outcome, 1)
	start := time.Now()
	go func() {
		answer, err := puzzle.Solve(p, part, input)
		done <- outcome{answer, err}
	}()

	select {
	case <-ctx.Done():
		return res, ctx.Err()
	case out := <-done:
		res.Elapsed = time.Since(start)
		if out.err != nil {
			r.log.Infof("%s part %s failed after %s: %s", p.Title(), part, res.Elapsed, out.err)
			return res, out.err
		}
		res.Answer = out.answer
		r.log.Infof("%s part %s solved in %s", p.Title(), part, res.Elapsed)
	}

	if r.cache != nil {
		if err := r.cache.Put(key, res.Answer); err != nil {
			r.log.Warningf("cache store %s: %s", key, err)
		}
	}
	return res, nil
}

// Check runs only the day's input grammar. A parse failure unwraps to
// *parsec.Error.
func (r *Runner) Check(day int, input string) error {
	p, err := r.problems.Get(day)
	if err != nil {
		return err
	}
	if err := p.Check(input); err != nil {
		r.log.Debugf("%s: input rejected: %s", p.Title(), err)
		return err
	}
	return nil
}

// ClearCache drops every cached answer.
func (r *Runner) ClearCache() error {
	if r.cache == nil {
		return fmt.Errorf("answer cache is disabled")
	}
	return r.cache.Clear()
}
