// Package models defines the in-memory data types shared by the songbranch pipeline.
//
// The package contains:
//
//   - [Table] : a CSV dataset held as an ordered header plus rows aligned to it
//   - [SongRecord] : a column-name keyed view of a single row
//   - [Columns] : the column names read from each input and the column written back
//   - [Summary] : counts reported after a run
//
// Branch labels are the two literals [BranchCentral] and [BranchCentralSouth].
package models
