// Package pure provides memoization utilities for pure functions.
//
// Memoizing is not just a way to save time.
// Wrapping a function in a Cacher *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The centerpiece is Cacher, which remembers the output of a single-argument
// function per distinct input. The computation runs at most once per input for
// the lifetime of a Cacher backed by the default table, so side effects inside
// it (logging, delays) only happen on a miss.
//
// Features:
//   - Cacher: per-argument memoization over a pluggable Table.
//   - FallibleCacher: failures are returned to the caller and never cached.
//   - SingleValueCacher: the first result answers every later call.
//   - TableizeI1O1, TableizeI2O1, TableizeI1O2, TableizeI1E: memoized function values.
//   - RotatingTable: bounded dual-generation table.
//
// A Cacher performs no locking of its own. Hosts that share one across
// goroutines must either protect it or back it with a concurrency-safe table
// such as tables.Sharded. With a shared table, concurrent first calls for the
// same input may each run the computation; all of them see the same result.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
package pure
