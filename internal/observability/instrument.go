package observability

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/danmuck/aocctl/internal/puzzle"
)

type instrumented struct {
	next   puzzle.Solver
	logger zerolog.Logger
}

// Instrument wraps s so every Solve emits a log event and solver metrics.
func Instrument(logger zerolog.Logger, s puzzle.Solver) puzzle.Solver {
	return instrumented{next: s, logger: logger}
}

func (i instrumented) Name() string  { return i.next.Name() }
func (i instrumented) Title() string { return i.next.Title() }

func (i instrumented) Solve(r io.Reader, part puzzle.Part) (int64, error) {
	start := time.Now()
	answer, err := i.next.Solve(r, part)
	elapsed := time.Since(start)

	event := i.logger.Info()
	if err != nil {
		event = i.logger.Error().Err(err)
	}
	event.
		Str("exercise", i.next.Name()).
		Stringer("part", part).
		Int64("answer", answer).
		Dur("duration", elapsed).
		Msg("solve")

	RecordSolve(i.next.Name(), part.String(), answer, elapsed, err)
	return answer, err
}
