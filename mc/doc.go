// Package mc is the outer search: Run performs one hill-climbing pass over
// a pair of GridBoxes under a time budget, and Solve wraps Run in a
// restart loop that allocates a shrinking sub-budget to each attempt and
// keeps the best result seen across all of them.
//
// What:
//
//   - Options is the solver's flat configuration struct (restart cap,
//     erase thresholds, seed, time limit), modeled on the teacher's
//     tsp.Options/tsp.DefaultOptions.
//   - SolveBudget tracks a start time and limit against an injectable
//     Clock, so tests can swap in a deterministic fake instead of the wall
//     clock.
//   - rng.go mirrors tsp/rng.go's seeding and sub-stream derivation so each
//     restart gets an independent, reproducible RNG stream.
//   - Run drives one attempt: structural erase, snapshot, optional random
//     shared-block erase, fill.FillAll, strict-improvement accept/reject.
//   - Solve drives the restart loop and returns the best Result found.
//
// Why:
//
//   - Acceptance is strict hill-climbing, not Metropolis: the search
//     diversifies via random structural erasure rather than a temperature
//     schedule (spec.md §4.7's design note on the annealing variant it
//     replaces).
//
// Complexity: Run is O(iterations x average fill-pass cost); Solve is
// O(restarts) calls to Run plus O(D^3) per restart to reset grids via Hole.
package mc
