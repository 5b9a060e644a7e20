// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
	}
}

func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "reference",
			Aliases: []string{"r"},
			Usage:   "South branch reference CSV (default from config)",
		},
		&cli.StringFlag{
			Name:    "master",
			Aliases: []string{"m"},
			Usage:   "Masterlist CSV (default from config)",
		},
		configFlag(),
	}
}

// applyCommand labels the masterlist and writes it back
func applyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "apply",
		Usage: "Add the Branch column to the masterlist",
		Flags: append(inputFlags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output path (default: rewrite the masterlist in place)",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Label rows without writing the output",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output the summary as JSON",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log progress and print match details",
			},
		),
		Action: r.Apply,
	}
}

// matchCommand previews labels without writing
func matchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "match",
		Usage: "List the label and match reason of every masterlist row",
		Flags: append(inputFlags(),
			&cli.BoolFlag{
				Name:  "only-south",
				Usage: "Only list rows that matched the reference",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "csv",
				Usage: "Output CSV",
			},
		),
		Action: r.Match,
	}
}

// normalizeCommand prints the matching key of a title
func normalizeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "normalize",
		Usage: "Print the normalized matching key for a song name",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "name",
			},
		},
		Action: r.Normalize,
	}
}

// extractCommand prints the video id of a URL
func extractCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "extract",
		Usage: "Print the YouTube video ID found in a URL or ID",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "value",
			},
		},
		Action: r.Extract,
	}
}

// configCommand handles configuration file operations
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the example configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   defaultConfigPath,
					},
				},
				Action: r.ConfigInit,
			},
			{
				Name:  "show",
				Usage: "Print the active configuration as JSON",
				Flags: []cli.Flag{
					configFlag(),
				},
				Action: r.ConfigShow,
			},
		},
	}
}
