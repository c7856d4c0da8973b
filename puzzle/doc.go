// Package puzzle is the shared frame for the daily solvers: a registry
// filled by each day package's init, typed access to per-day parameters,
// a Runner that times and logs each part, and small input parsing helpers.
//
// Day packages return answers as strings and report bad input with errors
// wrapping ErrMalformedInput (see Malformedf) or ErrNoSolution.
package puzzle
