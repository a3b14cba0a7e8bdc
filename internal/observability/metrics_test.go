package observability

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/danmuck/aocctl/internal/logging"
	"github.com/danmuck/aocctl/internal/puzzle"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	before := testutil.ToFloat64(solverRuns.WithLabelValues("metrics-test", "1", statusOK))
	RecordSolve("metrics-test", "1", 42, 12*time.Millisecond, nil)
	RecordSolve("metrics-test", "1", 0, time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(solverRuns.WithLabelValues("metrics-test", "1", statusOK)); got != before+1 {
		t.Fatalf("ok counter = %v, want %v", got, before+1)
	}
	if got := testutil.ToFloat64(solverAnswer.WithLabelValues("metrics-test", "1")); got != 42 {
		t.Fatalf("answer gauge = %v, want 42 (errors must not overwrite it)", got)
	}
	logging.Logf("observability/metrics: registration idempotent and recording paths executed")
}

func TestWriteTextfile(t *testing.T) {
	RecordSolve("textfile-test", "2", 7, time.Millisecond, nil)
	path := filepath.Join(t.TempDir(), "aocctl.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("write textfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(data), `aocctl_solver_runs_total{exercise="textfile-test",part="2",status="ok"}`) {
		t.Fatalf("textfile missing run counter:\n%s", data)
	}
	if err := WriteTextfile(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestInstrumentLogsAndRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	inner := puzzle.SolverFunc{
		ID:   "instrument-test",
		Desc: "wrapped",
		Fn: func(r io.Reader, part puzzle.Part) (int64, error) {
			if part == puzzle.PartTwo {
				return 0, errors.New("no part two")
			}
			return 99, nil
		},
	}
	s := Instrument(logger, inner)
	if s.Name() != "instrument-test" || s.Title() != "wrapped" {
		t.Fatalf("instrumented solver must keep identity")
	}

	got, err := s.Solve(strings.NewReader(""), puzzle.PartOne)
	if err != nil || got != 99 {
		t.Fatalf("solve = %d, %v", got, err)
	}
	if _, err := s.Solve(strings.NewReader(""), puzzle.PartTwo); err == nil {
		t.Fatalf("expected inner error to pass through")
	}

	out := buf.String()
	if !strings.Contains(out, `"answer":99`) || !strings.Contains(out, `"level":"error"`) {
		t.Fatalf("unexpected log output: %s", out)
	}
	if got := testutil.ToFloat64(solverRuns.WithLabelValues("instrument-test", "2", statusError)); got != 1 {
		t.Fatalf("error counter = %v, want 1", got)
	}
}
