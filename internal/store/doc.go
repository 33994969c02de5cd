// Package store provides an optional SQLite archive of dumped keyframes.
//
// The archive lets keyframes from many template revisions be compared with
// plain SQL after the SVG plots have been thrown away.
//
// # Layout
//
//   - runs: one row per invocation, keyed by a UUIDv7 run ID
//   - dumps: one row per charted field, with the canonical JSON of the
//     transform it came from
//   - keyframes: one row per keyframe, in time order (seq)
//
// All reads order by seq so results are stable across runs.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
