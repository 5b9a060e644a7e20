// Package tasks runs the branch labeling pipeline with progress reporting.
//
// # Pipeline
//
// [BranchEngine.Run] performs three stages in order:
//
//  1. Load : reads the reference and master CSV files completely
//  2. Match : builds the reference set and labels every master row
//  3. Write : rewrites the master (or the configured output) with the branch column
//
// The output file is only opened after both inputs are in memory, so the master
// may be rewritten in place.
//
// # Progress Reporting
//
// Updates are sent on an optional channel with non-blocking sends; the
// [ProgressUpdate] struct carries the phase, step counters and a message.
// A nil channel disables reporting.
package tasks
