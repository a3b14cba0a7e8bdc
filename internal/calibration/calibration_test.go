package calibration

import (
	_ "embed"
	"errors"
	"strings"
	"testing"

	"github.com/danmuck/aocctl/internal/puzzle"
	"github.com/danmuck/aocctl/internal/testutil/testlog"
)

//go:embed testdata/sample_one.txt
var sampleOne string

//go:embed testdata/sample_two.txt
var sampleTwo string

func TestSolveSamples(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		name  string
		input string
		part  puzzle.Part
		want  int64
	}{
		{"digits only", sampleOne, puzzle.PartOne, 142},
		{"digits only on word sample", sampleTwo, puzzle.PartOne, 209},
		{"words", sampleTwo, puzzle.PartTwo, 281},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New().Solve(strings.NewReader(tc.input), tc.part)
			if err != nil {
				t.Fatalf("solve: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestValueOverlappingWords(t *testing.T) {
	cases := map[string]int{
		"eightwo":  82,
		"oneight":  18,
		"7":        77,
		"sevenine": 79,
		"x0y":      0,
	}
	for line, want := range cases {
		got, err := Value(line, true)
		if err != nil {
			t.Fatalf("Value(%q): %v", line, err)
		}
		if got != want {
			t.Fatalf("Value(%q) = %d, want %d", line, got, want)
		}
	}
}

func TestValueNoDigits(t *testing.T) {
	if _, err := Value("eightwothree", false); !errors.Is(err, ErrNoDigits) {
		t.Fatalf("expected ErrNoDigits, got %v", err)
	}
	if _, err := Value("", true); !errors.Is(err, ErrNoDigits) {
		t.Fatalf("expected ErrNoDigits for empty line, got %v", err)
	}
}
