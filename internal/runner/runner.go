package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danmuck/aocctl/internal/logging"
	"github.com/danmuck/aocctl/internal/observability"
	"github.com/danmuck/aocctl/internal/puzzle"
)

var ErrInvalidParallelism = errors.New("runner: parallelism must be at least 1")

// Job is one exercise part to answer from one input file.
type Job struct {
	Solver puzzle.Solver
	Part   puzzle.Part
	File   string
}

// Result is the outcome of a single job.
type Result struct {
	Exercise string        `yaml:"exercise"`
	Part     puzzle.Part   `yaml:"part"`
	File     string        `yaml:"file"`
	Answer   int64         `yaml:"answer"`
	Elapsed  time.Duration `yaml:"elapsed"`
}

// Run opens path and answers part of s from it.
func Run(ctx context.Context, s puzzle.Solver, path string, part puzzle.Part) (Result, error) {
	res := Result{Exercise: s.Name(), Part: part, File: path}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	f, err := os.Open(path)
	if err != nil {
		return res, fmt.Errorf("%s: open input: %w", s.Name(), err)
	}
	defer f.Close()

	start := time.Now()
	answer, err := observability.Instrument(logging.Logger(), s).Solve(f, part)
	res.Elapsed = time.Since(start)
	if err != nil {
		return res, fmt.Errorf("%s part %s (%s): %w", s.Name(), part, path, err)
	}
	res.Answer = answer
	return res, nil
}

// RunAll runs jobs with at most parallelism in flight. Results keep job order.
// The first failure cancels jobs that have not started yet.
func RunAll(ctx context.Context, jobs []Job, parallelism int) ([]Result, error) {
	if parallelism < 1 {
		return nil, ErrInvalidParallelism
	}
	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, job := range jobs {
		g.Go(func() error {
			res, err := Run(gctx, job.Solver, job.File, job.Part)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logging.Debugf("runner.RunAll done jobs=%d parallelism=%d", len(jobs), parallelism)
	return results, nil
}
