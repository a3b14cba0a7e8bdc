// Package catalog wires every built-in exercise solver into a registry.
package catalog

import (
	"fmt"

	"github.com/danmuck/aocctl/internal/almanac"
	"github.com/danmuck/aocctl/internal/boatrace"
	"github.com/danmuck/aocctl/internal/calibration"
	"github.com/danmuck/aocctl/internal/camelcards"
	"github.com/danmuck/aocctl/internal/cubegame"
	"github.com/danmuck/aocctl/internal/puzzle"
	"github.com/danmuck/aocctl/internal/schematic"
	"github.com/danmuck/aocctl/internal/scratchcard"
)

// Options tunes solvers that take parameters.
type Options struct {
	Bag cubegame.Draw
}

func DefaultOptions() Options {
	return Options{Bag: cubegame.DefaultBag}
}

// Builtin returns a registry holding every exercise in day order.
func Builtin(opts Options) *puzzle.Registry {
	reg := puzzle.NewRegistry()
	reg.Register(calibration.New())
	reg.Register(cubegame.NewWithBag(opts.Bag))
	reg.Register(schematic.New())
	reg.Register(scratchcard.New())
	reg.Register(almanac.New())
	reg.Register(boatrace.New())
	reg.Register(camelcards.New())
	return reg
}

// Select returns a registry restricted to names, in the order given.
func Select(opts Options, names []string) (*puzzle.Registry, error) {
	all := Builtin(opts)
	reg := puzzle.NewRegistry()
	for _, name := range names {
		s, ok := all.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", puzzle.ErrUnknownExercise, name)
		}
		reg.Register(s)
	}
	return reg, nil
}
