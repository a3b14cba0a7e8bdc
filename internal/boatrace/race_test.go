package boatrace

import (
	_ "embed"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danmuck/aocctl/internal/puzzle"
)

//go:embed testdata/sample.txt
var sample string

func bruteWays(r Race) int64 {
	var n int64
	for h := int64(0); h <= r.Time; h++ {
		if h*(r.Time-h) > r.Record {
			n++
		}
	}
	return n
}

func TestWaysMatchesBruteForce(t *testing.T) {
	races := []Race{
		{Time: 7, Record: 9},
		{Time: 15, Record: 40},
		{Time: 30, Record: 200},
		{Time: 10, Record: 24},
		{Time: 10, Record: 25},
		{Time: 1, Record: 0},
		{Time: 0, Record: 0},
		{Time: 41, Record: 214},
		{Time: 96, Record: 1789},
	}
	for _, r := range races {
		assert.Equal(t, bruteWays(r), r.Ways(), "race %+v", r)
	}
}

func TestWaysLargeRace(t *testing.T) {
	assert.Equal(t, int64(71503), Race{Time: 71530, Record: 940200}.Ways())
}

func TestSolveSample(t *testing.T) {
	one, err := New().Solve(strings.NewReader(sample), puzzle.PartOne)
	require.NoError(t, err)
	assert.Equal(t, int64(288), one)

	two, err := New().Solve(strings.NewReader(sample), puzzle.PartTwo)
	require.NoError(t, err)
	assert.Equal(t, int64(71503), two)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(strings.NewReader("Time: 1 2\n"), false)
	require.True(t, errors.Is(err, ErrMissingLine), "got %v", err)

	_, err = Parse(strings.NewReader("Time: 1 2\nDistance: 3\n"), false)
	require.ErrorIs(t, err, ErrCountMismatch)

	_, err = Parse(strings.NewReader("Time: 1 a\nDistance: 3 4\n"), false)
	require.ErrorIs(t, err, ErrMalformedValue)

	races, err := Parse(strings.NewReader("Time: 1 2\nDistance: 3 4\n"), true)
	require.NoError(t, err)
	require.Equal(t, []Race{{Time: 12, Record: 34}}, races)
}
