package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/songbranch/internal/matching"
	"github.com/desertthunder/songbranch/internal/shared"
	"github.com/urfave/cli/v3"
)

// Normalize prints the matching key used for a song name.
func (r *Runner) Normalize(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: name", shared.ErrMissingArgument)
	}
	return r.writePlain("%s\n", matching.NormalizeName(name))
}

// Extract prints the bare video id for a YouTube URL or id.
func (r *Runner) Extract(ctx context.Context, cmd *cli.Command) error {
	value := cmd.StringArg("value")
	if value == "" {
		return fmt.Errorf("%w: value", shared.ErrMissingArgument)
	}
	return r.writePlain("%s\n", matching.ExtractVideoID(value))
}
