package tasks

import (
	"fmt"

	"github.com/desertthunder/songbranch/internal/models"
)

// ProgressUpdate represents a progress event during a pipeline run.
//
// Used to send updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data
}

// Operation phase enumeration
type Phase int

const (
	LoadReference Phase = iota
	LoadMaster
	MatchRows
	WriteOutput
)

func (p Phase) String() string {
	switch p {
	case LoadReference:
		return "load_reference"
	case LoadMaster:
		return "load_master"
	case MatchRows:
		return "match_rows"
	case WriteOutput:
		return "write_output"
	default:
		return ""
	}
}

func loadReferenceUpdate(path string, rows int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   LoadReference,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Loaded %d reference rows from %s", rows, path),
	}
}

func loadMasterUpdate(path string, rows int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   LoadMaster,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Loaded %d masterlist rows from %s", rows, path),
	}
}

func matchRowsUpdate(s models.Summary) ProgressUpdate {
	return ProgressUpdate{
		Phase:   MatchRows,
		Step:    s.Total,
		Total:   s.Total,
		Message: fmt.Sprintf("Labeled %d rows (%d in both branches)", s.Total, s.BothBranches),
		Data:    s,
	}
}

func writeOutputUpdate(path string, rows int, dryRun bool) ProgressUpdate {
	msg := fmt.Sprintf("Wrote %d rows to %s", rows, path)
	if dryRun {
		msg = fmt.Sprintf("Dry run: %d rows not written to %s", rows, path)
	}
	return ProgressUpdate{
		Phase:   WriteOutput,
		Step:    1,
		Total:   1,
		Message: msg,
	}
}
