// Package runner executes solvers against input files.
//
// Ownership boundary:
// - input file resolution and opening
//
// - instrumentation of every solve
//
// - bounded fan-out over independent jobs
package runner
