package puzzle

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/danmuck/aocctl/internal/logging"
	"github.com/danmuck/aocctl/internal/testutil/testlog"
)

func fixedSolver(name string, answer int64) SolverFunc {
	return SolverFunc{
		ID:   name,
		Desc: "fixed " + name,
		Fn: func(r io.Reader, part Part) (int64, error) {
			return answer * int64(part), nil
		},
	}
}

func TestRegistrySnapshotSemantics(t *testing.T) {
	testlog.Start(t)
	registry := NewRegistry()
	registry.Register(fixedSolver("one", 7))
	logging.Logf("puzzle/registry: registered solver=one")

	got, ok := registry.Get("one")
	if !ok || got == nil {
		t.Fatalf("expected solver one to exist")
	}
	answer, err := got.Solve(strings.NewReader(""), PartTwo)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if answer != 14 {
		t.Fatalf("expected 14, got %d", answer)
	}

	snapshot := registry.All()
	delete(snapshot, "one")
	if _, stillThere := registry.Get("one"); !stillThere {
		t.Fatalf("expected registry to be unaffected by snapshot mutation")
	}
}

func TestRegistryKeepsRegistrationOrder(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"three", "one", "two"} {
		registry.Register(fixedSolver(name, 1))
	}
	registry.Register(fixedSolver("one", 2))

	names := registry.Names()
	want := []string{"three", "one", "two"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected order: %v", names)
	}
	s, _ := registry.Get("one")
	if v, _ := s.Solve(nil, PartOne); v != 2 {
		t.Fatalf("expected replaced solver, got answer %d", v)
	}
}

func TestRegistryLookupNormalizesAndReportsMiss(t *testing.T) {
	registry := NewRegistry()
	registry.Register(fixedSolver("five", 1))

	if _, err := registry.Lookup("  FIVE "); err != nil {
		t.Fatalf("expected normalized lookup to succeed: %v", err)
	}
	_, err := registry.Lookup("eight")
	if !errors.Is(err, ErrUnknownExercise) {
		t.Fatalf("expected ErrUnknownExercise, got %v", err)
	}
}

func TestParsePart(t *testing.T) {
	for raw, want := range map[string]Part{"1": PartOne, "one": PartOne, " TWO": PartTwo, "2": PartTwo} {
		got, err := ParsePart(raw)
		if err != nil || got != want {
			t.Fatalf("ParsePart(%q) = %v,%v", raw, got, err)
		}
	}
	if _, err := ParsePart("3"); !errors.Is(err, ErrInvalidPart) {
		t.Fatalf("expected ErrInvalidPart, got %v", err)
	}
	if PartTwo.String() != "2" {
		t.Fatalf("unexpected part string %q", PartTwo.String())
	}
}
