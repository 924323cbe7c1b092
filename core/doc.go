// Package core defines the shared types of the envlog ruleset model.
//
// It provides the Level type for verbosity thresholds, the Rule type
// binding a dotted logger-name prefix to a threshold, and the immutable
// Ruleset that orders rules for longest-prefix resolution.
//
// Resolution walks every rule and keeps the match with the most
// dot-separated segments, so "myapp.database=trace" beats "myapp=info"
// for the logger "myapp.database.pool" no matter where each appears in
// the configuration. Ties fall to the later rule, which preserves
// last-write-wins semantics for directives of equal precision.
//
// The query path is allocation-free: prefixes are compared in place by
// string slicing, never by splitting names into segment slices. A
// Ruleset is never mutated after construction, so every method is safe
// for unsynchronized concurrent use.
package core
