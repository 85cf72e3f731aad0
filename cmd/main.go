package main

import (
	"bufio"
	"cgrep/internal"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "cgrep",
		Usage:     "Search files under a path for a literal or regex query",
		ArgsUsage: "QUERY PATH",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "ignore-case",
				Usage: "Case-insensitive matching for both literal and regex queries",
			},
			&cli.BoolFlag{
				Name:  "regex",
				Usage: "Treat QUERY as a regular expression instead of a literal substring",
			},
			&cli.IntFlag{
				Name:  "threads",
				Usage: "Number of search workers (0 - derive from CPU count)",
				Value: 0,
			},
			&cli.StringFlag{
				Name:  "logfile",
				Usage: "Write diagnostics into file instead of stderr",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error",
				Value: "info",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				cli.ShowAppHelp(c)
				return cli.Exit("expected exactly two arguments: QUERY PATH", 1)
			}

			opts := internal.Options{
				Query:      c.Args().Get(0),
				Root:       c.Args().Get(1),
				IgnoreCase: c.Bool("ignore-case"),
				Regex:      c.Bool("regex"),
				Threads:    c.Int("threads"),
				LogFile:    c.String("logfile"),
				LogLevel:   c.String("log-level"),
			}
			if err := opts.Validate(); err != nil {
				return cli.Exit(err.Error(), 1)
			}

			internal.InitLogger(opts.LogFile, opts.LogLevel)

			var stats internal.AppStats
			stats.Start()
			diag := internal.NewCountingReporter(internal.NewLogReporter(), &stats)

			files := internal.Collect(opts.Root, diag)
			stats.FilesFound.Store(int64(len(files)))

			engine := internal.NewEngine(opts.EngineConfig(), diag)
			logrus.Debugf("Searching %d files with %d workers", len(files), engine.Workers())

			matches, err := engine.Search(files, opts.Query)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			stats.Matches.Store(int64(len(matches)))

			// Matches go to stdout only; everything else rides the log stream.
			out := bufio.NewWriter(os.Stdout)
			for _, m := range matches {
				fmt.Fprintf(out, "%s:%d:%s\n", m.Path, m.LineNumber, m.Line)
			}
			if err := out.Flush(); err != nil {
				return cli.Exit(fmt.Sprintf("write output: %v", err), 1)
			}

			logrus.Infof("Finished in %s: files=%d matches=%d diagnostics=%d",
				stats.Elapsed(), stats.FilesFound.Load(), stats.Matches.Load(), stats.Diagnostics.Load())
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
