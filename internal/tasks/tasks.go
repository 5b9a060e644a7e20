// package tasks implements the branch labeling pipeline.
//
// The core abstraction is Engine, which loads both datasets, labels the master rows and writes them back.
package tasks

import (
	"context"
	"fmt"

	"github.com/desertthunder/songbranch/internal/formatter"
	"github.com/desertthunder/songbranch/internal/matching"
	"github.com/desertthunder/songbranch/internal/models"
	"github.com/desertthunder/songbranch/internal/shared"
)

// BranchOpts contains the inputs of a pipeline run.
type BranchOpts struct {
	ReferencePath string         // South-branch reference CSV
	MasterPath    string         // Masterlist CSV
	OutputPath    string         // Destination (default: MasterPath)
	Columns       models.Columns // Column names (zero value: models.DefaultColumns)
	DryRun        bool           // Label rows without writing
}

// BranchResult contains all data from a pipeline run.
type BranchResult struct {
	Table      *models.Table    // Master table with the branch column
	Matches    []matching.Match // Per-row match outcomes, in row order
	Summary    models.Summary   // Reported counts
	OutputPath string           // Where the table was (or would be) written
	Appended   bool             // False when an existing branch column was overwritten
	Written    bool             // False for dry runs
}

// Engine defines the pipeline operations.
type Engine interface {
	// Run loads both datasets, labels the master rows and writes the labeled table.
	Run(ctx context.Context, progress chan<- ProgressUpdate, opts BranchOpts) (*BranchResult, error)
}

// Loader reads a CSV dataset from a path.
type Loader func(path string) (*models.Table, error)

// Writer writes a CSV dataset to a path.
type Writer func(path string, t *models.Table) error

// BranchEngine implements Engine over the filesystem.
type BranchEngine struct {
	load  Loader
	write Writer
}

// NewBranchEngine creates a new BranchEngine. Nil functions default to the formatter CSV file helpers.
func NewBranchEngine(load Loader, write Writer) *BranchEngine {
	if load == nil {
		load = formatter.ReadCSVFile
	}
	if write == nil {
		write = formatter.WriteCSVFile
	}
	return &BranchEngine{load: load, write: write}
}

// sendProgress sends a progress update through the channel without blocking.
func (e *BranchEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Run labels the masterlist against the reference list.
//
// Both files are read in full before the output is opened. Rows keep their
// order and every original column; the branch column is appended, or
// overwritten when the master already has one.
func (e *BranchEngine) Run(ctx context.Context, progress chan<- ProgressUpdate, opts BranchOpts) (*BranchResult, error) {
	if opts.ReferencePath == "" {
		return nil, fmt.Errorf("%w: reference path", shared.ErrMissingArgument)
	}
	if opts.MasterPath == "" {
		return nil, fmt.Errorf("%w: master path", shared.ErrMissingArgument)
	}
	if opts.OutputPath == "" {
		opts.OutputPath = opts.MasterPath
	}
	if opts.Columns == (models.Columns{}) {
		opts.Columns = models.DefaultColumns()
	}

	reference, err := e.load(opts.ReferencePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference: %w", err)
	}
	e.sendProgress(progress, loadReferenceUpdate(opts.ReferencePath, reference.Len()))

	master, err := e.load(opts.MasterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load masterlist: %w", err)
	}
	e.sendProgress(progress, loadMasterUpdate(opts.MasterPath, master.Len()))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ref, err := matching.LoadReference(reference, opts.Columns)
	if err != nil {
		return nil, fmt.Errorf("reference %s: %w", opts.ReferencePath, err)
	}

	matches, err := matching.NewMatcher(ref).MatchTable(master, opts.Columns)
	if err != nil {
		return nil, fmt.Errorf("masterlist %s: %w", opts.MasterPath, err)
	}

	result := &BranchResult{
		Table:      master,
		Matches:    matches,
		OutputPath: opts.OutputPath,
		Summary: models.Summary{
			ReferenceNames: ref.Names(),
			ReferenceIDs:   ref.IDs(),
			ReferenceSkip:  ref.Skipped(),
		},
	}

	labels := make([]string, len(matches))
	for i, m := range matches {
		labels[i] = m.Label
		result.Summary.Count(m.Label)
		if m.ByName {
			result.Summary.MatchedByName++
		}
		if m.ByID {
			result.Summary.MatchedByID++
		}
	}

	if result.Appended, err = master.SetColumn(opts.Columns.Branch, labels); err != nil {
		return nil, err
	}
	e.sendProgress(progress, matchRowsUpdate(result.Summary))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !opts.DryRun {
		if err := e.write(opts.OutputPath, master); err != nil {
			return nil, fmt.Errorf("failed to write output: %w", err)
		}
		result.Written = true
	}
	e.sendProgress(progress, writeOutputUpdate(opts.OutputPath, master.Len(), opts.DryRun))

	return result, nil
}
