package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/danmuck/aocctl/internal/puzzle"
	"github.com/danmuck/aocctl/internal/testutil/testlog"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// lineCounter answers with the number of lines times the part.
func lineCounter(name string) puzzle.SolverFunc {
	return puzzle.SolverFunc{
		ID:   name,
		Desc: "count lines",
		Fn: func(r io.Reader, part puzzle.Part) (int64, error) {
			lines, err := puzzle.Lines(r)
			if err != nil {
				return 0, err
			}
			return int64(len(lines)) * int64(part), nil
		},
	}
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunReadsFile(t *testing.T) {
	testlog.Start(t)
	path := writeInput(t, "one.txt", "a\nb\nc\n")

	res, err := Run(context.Background(), lineCounter("one"), path, puzzle.PartTwo)
	require.NoError(t, err)
	require.Equal(t, int64(6), res.Answer)
	require.Equal(t, "one", res.Exercise)
	require.Equal(t, puzzle.PartTwo, res.Part)
	require.Equal(t, path, res.File)
}

func TestRunMissingFile(t *testing.T) {
	testlog.Start(t)
	_, err := Run(context.Background(), lineCounter("one"), filepath.Join(t.TempDir(), "nope.txt"), puzzle.PartOne)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunWrapsSolverError(t *testing.T) {
	testlog.Start(t)
	sentinel := errors.New("bad input")
	failing := puzzle.SolverFunc{
		ID: "broken",
		Fn: func(io.Reader, puzzle.Part) (int64, error) { return 0, sentinel },
	}
	path := writeInput(t, "broken.txt", "x\n")
	_, err := Run(context.Background(), failing, path, puzzle.PartOne)
	require.ErrorIs(t, err, sentinel)
	require.Contains(t, err.Error(), "broken part 1")
}

func TestRunHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, lineCounter("one"), "unused", puzzle.PartOne)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunAllKeepsJobOrder(t *testing.T) {
	testlog.Start(t)
	jobs := []Job{
		{Solver: lineCounter("a"), Part: puzzle.PartOne, File: writeInput(t, "a.txt", "1\n")},
		{Solver: lineCounter("b"), Part: puzzle.PartOne, File: writeInput(t, "b.txt", "1\n2\n")},
		{Solver: lineCounter("c"), Part: puzzle.PartTwo, File: writeInput(t, "c.txt", "1\n2\n3\n")},
	}
	for _, parallelism := range []int{1, 3} {
		results, err := RunAll(context.Background(), jobs, parallelism)
		require.NoError(t, err)
		require.Len(t, results, 3)
		got := make([]string, 0, len(results))
		for _, r := range results {
			got = append(got, r.Exercise)
		}
		require.Equal(t, "a,b,c", strings.Join(got, ","))
		require.Equal(t, []int64{1, 2, 6}, []int64{results[0].Answer, results[1].Answer, results[2].Answer})
	}
}

func TestRunAllStopsOnFirstError(t *testing.T) {
	testlog.Start(t)
	var calls atomic.Int32
	counting := puzzle.SolverFunc{
		ID: "counting",
		Fn: func(io.Reader, puzzle.Part) (int64, error) {
			calls.Add(1)
			return 1, nil
		},
	}
	good := writeInput(t, "good.txt", "x\n")
	jobs := []Job{
		{Solver: counting, Part: puzzle.PartOne, File: filepath.Join(t.TempDir(), "missing.txt")},
		{Solver: counting, Part: puzzle.PartOne, File: good},
		{Solver: counting, Part: puzzle.PartOne, File: good},
	}
	results, err := RunAll(context.Background(), jobs, 1)
	require.Error(t, err)
	require.Nil(t, results)
	require.Zero(t, calls.Load(), "jobs after the failure should be canceled")
}

func TestRunAllRejectsBadParallelism(t *testing.T) {
	_, err := RunAll(context.Background(), nil, 0)
	require.ErrorIs(t, err, ErrInvalidParallelism)
}
