package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/songbranch/internal/formatter"
	"github.com/desertthunder/songbranch/internal/matching"
	"github.com/desertthunder/songbranch/internal/models"
	"github.com/desertthunder/songbranch/internal/shared"
	"github.com/desertthunder/songbranch/internal/tasks"
	"github.com/desertthunder/songbranch/internal/ui"
	"github.com/urfave/cli/v3"
)

// applyOutput is the JSON shape printed by apply --json.
type applyOutput struct {
	Output  string         `json:"output"`
	Written bool           `json:"written"`
	Summary models.Summary `json:"summary"`
}

// branchOpts merges command flags over the config file values.
//
// A --master flag without --output drops the configured output path, so the
// named masterlist is the file rewritten.
func branchOpts(cmd *cli.Command, config *shared.Config) tasks.BranchOpts {
	opts := tasks.BranchOpts{
		ReferencePath: config.Files.Reference,
		MasterPath:    config.Files.Master,
		OutputPath:    config.Files.Output,
		Columns:       models.ColumnsFromConfig(config),
	}

	if v := cmd.String("reference"); v != "" {
		opts.ReferencePath = v
	}
	if v := cmd.String("master"); v != "" {
		opts.MasterPath = v
		opts.OutputPath = ""
	}
	if v := cmd.String("output"); v != "" {
		opts.OutputPath = v
	}
	return opts
}

// runEngine runs the pipeline with a run-scoped logger and logs drained progress updates at debug level.
func (r *Runner) runEngine(ctx context.Context, logger *log.Logger, opts tasks.BranchOpts) (*tasks.BranchResult, error) {
	progress := make(chan tasks.ProgressUpdate, 8)

	output := opts.OutputPath
	if output == "" {
		output = opts.MasterPath
	}

	logger.Info("labeling masterlist", "reference", opts.ReferencePath, "master", opts.MasterPath, "output", output, "dry_run", opts.DryRun)
	result, err := r.engine.Run(ctx, progress, opts)
	close(progress)

	for update := range progress {
		logger.Debug(update.Message, "phase", update.Phase.String())
	}

	if err != nil {
		return nil, err
	}

	if !result.Appended {
		logger.Warn("masterlist already had a branch column, values were replaced", "column", opts.Columns.Branch)
	}
	return result, nil
}

// Apply adds the branch column to the masterlist and prints the summary counts.
func (r *Runner) Apply(ctx context.Context, cmd *cli.Command) error {
	config, err := r.resolveConfig(cmd)
	if err != nil {
		return err
	}

	opts := branchOpts(cmd, config)
	opts.DryRun = cmd.Bool("dry-run")
	verbose := cmd.Bool("verbose")

	logger := shared.WithLogger(r.logger, "run", shared.GenerateID())
	if verbose {
		shared.SetLogLevel(logger, log.DebugLevel)
	}

	result, err := r.runEngine(ctx, logger, opts)
	if err != nil {
		return err
	}

	logger.Info("labeling complete", "total", result.Summary.Total, "south", result.Summary.BothBranches, "written", result.Written)

	if cmd.Bool("json") {
		return r.writeJSON(applyOutput{
			Output:  result.OutputPath,
			Written: result.Written,
			Summary: result.Summary,
		}, true)
	}

	name := filepath.Base(result.OutputPath)
	if result.Written {
		err = r.writePlain("%s\n", ui.OK(fmt.Sprintf("✓ Branch column added to %s successfully!", name)))
	} else {
		err = r.writePlain("%s\n%s\n", ui.Warn(fmt.Sprintf("Dry run: %s not modified", name)), ui.Help("Run without --dry-run to write the branch column."))
	}
	if err != nil {
		return err
	}

	if err := r.writeBytes(formatter.ExportSummaryText(result.Summary)); err != nil {
		return err
	}

	if verbose {
		if err := r.writePlain("\n"); err != nil {
			return err
		}
		if err := r.writePlainHeader("Match Details"); err != nil {
			return err
		}
		return r.writeBytes(formatter.ExportMatchDetailsText(result.Summary))
	}
	return nil
}

// Match lists the label of every masterlist row without writing anything.
func (r *Runner) Match(ctx context.Context, cmd *cli.Command) error {
	config, err := r.resolveConfig(cmd)
	if err != nil {
		return err
	}

	opts := branchOpts(cmd, config)
	opts.DryRun = true

	logger := shared.WithLogger(r.logger, "run", shared.GenerateID())
	result, err := r.runEngine(ctx, logger, opts)
	if err != nil {
		return err
	}

	matches := result.Matches
	if cmd.Bool("only-south") {
		matches = southOnly(matches)
	}

	switch {
	case cmd.Bool("json"):
		return r.writeJSON(matches, true)
	case cmd.Bool("csv"):
		data, err := formatter.ExportMatchesCSV(matches)
		if err != nil {
			return err
		}
		return r.writeBytes(data)
	}

	if err := r.writePlainHeader(fmt.Sprintf("%s (%d rows)", filepath.Base(opts.MasterPath), result.Summary.Total)); err != nil {
		return err
	}
	if err := r.writeBytes(formatter.ExportMatchesTextStyled(matches, ui.Branch)); err != nil {
		return err
	}
	if err := r.writePlain("\n"); err != nil {
		return err
	}
	return r.writeBytes(formatter.ExportSummaryText(result.Summary))
}

func southOnly(matches []matching.Match) []matching.Match {
	filtered := make([]matching.Match, 0, len(matches))
	for _, m := range matches {
		if m.South() {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
