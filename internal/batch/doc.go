// Package batch drives sequential metadata generation over a set of images.
//
// The flow is intentionally simple: one outstanding service request at a
// time with a fixed pause between completions, which is the only rate
// limiting applied. Per-item failures are captured into the run result and
// reported as non-fatal notifications; they never abort the remaining items.
// A file lock in the data directory keeps two runs from interleaving.
package batch
