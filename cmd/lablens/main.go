// Command lablens extracts lab test results from a scanned PDF lab report
// and prints them as JSON on stdout. Every run, success or failure, emits
// exactly one JSON document; diagnostics go to stderr so the output stays
// machine-readable.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/uzii9/lablens"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "lablens",
		Usage:     "extract lab test results from a scanned AHS lab report PDF",
		ArgsUsage: "<report.pdf>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
			},
			&cli.IntFlag{
				Name:    "max-pages",
				Aliases: []string{"p"},
				Usage:   "maximum number of pages to process (0 = backend default)",
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "OCR language code, e.g. eng or eng+fra",
			},
			&cli.StringFlag{
				Name:  "renderer",
				Usage: "rendering backend: mupdf or poppler",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "suppress progress logging",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, out)
		},
	}
}

func run(c *cli.Context, out io.Writer) error {
	if c.NArg() != 1 {
		return fail(out, errors.New("usage: lablens [options] <report.pdf>"))
	}

	logger := newLogger(c.Bool("quiet"))
	parser := lablens.Open(c.Args().First()).Logger(logger)

	if path := c.String("config"); path != "" {
		cfg, err := lablens.LoadFileConfig(path)
		if err != nil {
			return fail(out, err)
		}
		parser = parser.WithFileConfig(cfg)
	}
	if n := c.Int("max-pages"); n > 0 {
		parser = parser.MaxPages(n)
	}
	if lang := c.String("lang"); lang != "" {
		parser = parser.Language(lang)
	}
	if name := c.String("renderer"); name != "" {
		parser = parser.Renderer(name)
	}

	result, warnings, err := parser.ResultContext(c.Context)
	if err != nil {
		return fail(out, err)
	}

	for _, w := range warnings {
		logger.Warn(w.Message, "code", w.Code)
	}
	return writeJSON(out, result)
}

// fail emits the failure envelope on the output stream. The returned error
// drives the non-zero exit code; the JSON document is the contract.
func fail(out io.Writer, err error) error {
	if writeErr := writeJSON(out, lablens.FailureResult(err)); writeErr != nil {
		return writeErr
	}
	return err
}

func newLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func writeJSON(w io.Writer, result *lablens.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
