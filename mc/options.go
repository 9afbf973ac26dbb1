package mc

import "time"

// Clock returns the current time. Production code defaults to time.Now;
// tests inject a step-counting fake so iteration budgets are deterministic
// (spec.md §8, Boundary scenario 4), mirroring the teacher's bench-vs-
// production split.
type Clock func() time.Time

// Options configures a Solve call. The zero value is not useful; start
// from DefaultOptions.
type Options struct {
	// MCRun is the restart budget: Solve allocates at most this many Run
	// calls (fewer if the global deadline is reached first).
	MCRun uint64
	// EraseSmallThreshold: every accepted iteration removes shared blocks
	// of size <= this (spec.md §4.7 step 2).
	EraseSmallThreshold int
	// EraseSharedP is the per-iteration probability of additionally
	// erasing one random surviving shared block (spec.md §4.7 step 4).
	EraseSharedP float64
	// Seed seeds the restart RNG stream; Seed == 0 uses a fixed default,
	// matching tsp.Options' zero-seed policy.
	Seed int64
	// TimeLimit bounds the whole Solve call (wall-clock, via Clock).
	TimeLimit time.Duration
	// Clock is consulted for all time checks; nil defaults to time.Now.
	Clock Clock

	// An exact brute-force fallback for small D is out of scope (Non-goals).
	// No field reserved for it yet: unlike the teacher's tsp.BranchAndBound,
	// there is no dispatch enum here for it to slot into without a shape
	// change, so it is simply not represented until it exists.
}

// DefaultOptions returns the solver's default configuration, modeled on
// tsp.DefaultOptions.
func DefaultOptions() Options {
	return Options{
		MCRun:               64,
		EraseSmallThreshold: 2,
		EraseSharedP:        0.1,
		Seed:                0,
		TimeLimit:           5 * time.Second,
		Clock:               time.Now,
	}
}

// clock returns o.Clock, or time.Now if unset.
func (o Options) clock() Clock {
	if o.Clock == nil {
		return time.Now
	}

	return o.Clock
}

// SolveBudget tracks a deadline against an injectable Clock.
type SolveBudget struct {
	start time.Time
	limit time.Duration
	clock Clock
}

// NewSolveBudget starts a budget of limit against clock (time.Now if nil).
func NewSolveBudget(limit time.Duration, clock Clock) *SolveBudget {
	if clock == nil {
		clock = time.Now
	}

	return &SolveBudget{start: clock(), limit: limit, clock: clock}
}

// Deadline returns the absolute time the budget expires.
func (b *SolveBudget) Deadline() time.Time {
	return b.start.Add(b.limit)
}

// Remaining returns the time left before Deadline, which may be negative.
func (b *SolveBudget) Remaining() time.Duration {
	return b.Deadline().Sub(b.clock())
}

// Expired reports whether the current clock reading is at or past Deadline.
func (b *SolveBudget) Expired() bool {
	return !b.clock().Before(b.Deadline())
}
