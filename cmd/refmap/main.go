package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "refmap: %v\n", err)
}

func newApp(ui UI) *cli.App {
	logger := zap.NewNop()

	return &cli.App{
		Name:      "refmap",
		Usage:     "rewrite generic grammarRefId values of text documents to specific reference ids",
		UsageText: "refmap [global options] [command] [options] [file ...]",
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		// errors are printed by main
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging on stderr",
			},
		}, updateFlags()...),
		Before: func(c *cli.Context) error {
			logger = newLogger(ui.Err, c.Bool("verbose"))
			return nil
		},
		After: func(c *cli.Context) error {
			_ = logger.Sync()
			return nil
		},
		Action: func(c *cli.Context) error {
			return updateCommand(c, ui, logger)
		},
		Commands: []*cli.Command{
			{
				Name:      "update",
				Usage:     "remap the grammarRefId of every token and write the documents back",
				UsageText: "refmap update [options] [file ...]\n\nFile arguments are resolved against the working directory.\nWithout arguments the configured files are resolved against the data directory.",
				Flags:     updateFlags(),
				Action: func(c *cli.Context) error {
					return updateCommand(c, ui, logger)
				},
			},
			{
				Name:      "rules",
				Usage:     "list the remap rules",
				ArgsUsage: "[legacy-id]",
				Action: func(c *cli.Context) error {
					return rulesCommand(c.Args().First(), ui)
				},
			},
			{
				Name:  "explain",
				Usage: "interactive rule explorer",
				Action: func(c *cli.Context) error {
					return explainCommand(ui)
				},
			},
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(c *cli.Context) error {
					return versionCommand(ui)
				},
			},
		},
	}
}

// newLogger logs to w at warn level, or debug level when verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}
