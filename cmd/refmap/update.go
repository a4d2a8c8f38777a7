package main

import (
	"context"
	"path/filepath"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/kobun-yomi/refmap/config"
	"github.com/kobun-yomi/refmap/render"
	"github.com/kobun-yomi/refmap/rewrite"
	"github.com/kobun-yomi/refmap/storage/filesystem"
)

func updateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "data-dir",
			Aliases: []string{"d"},
			Usage:   "directory the document files are resolved against",
			EnvVars: []string{"REFMAP_DATA_DIR"},
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML file with data_dir and files",
			EnvVars: []string{"REFMAP_CONFIG"},
		},
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   "report the changes without writing the documents",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: render.DefaultFormat,
			Usage: "report format (text, json)",
		},
		&cli.BoolFlag{
			Name:  "progress",
			Usage: "show a progress bar on stderr",
		},
		&cli.BoolFlag{
			Name:  "color",
			Usage: "color the text report",
		},
	}
}

// flagContext returns the nearest context of the lineage where name was
// set. The update flags are declared both globally and on the update
// command, and the command's unset copy must not hide a global value.
func flagContext(c *cli.Context, name string) *cli.Context {
	for _, ctx := range c.Lineage() {
		if ctx.IsSet(name) {
			return ctx
		}
	}
	return c
}

func stringFlag(c *cli.Context, name string) string {
	return flagContext(c, name).String(name)
}

func boolFlag(c *cli.Context, name string) bool {
	return flagContext(c, name).Bool(name)
}

// updateConfig merges the config file, the flags and the positional
// arguments, in increasing order of precedence.
func updateConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()

	if path := stringFlag(c, "config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
	}

	if ctx := flagContext(c, "data-dir"); ctx.IsSet("data-dir") {
		cfg.DataDir = ctx.String("data-dir")
	}

	if c.Args().Len() > 0 {
		if err := cfg.SetArgs(c.Args().Slice()); err != nil {
			return config.Config{}, err
		}
	}

	return cfg, nil
}

func updateCommand(c *cli.Context, ui UI, logger *zap.Logger) error {
	cfg, err := updateConfig(c)
	if err != nil {
		return err
	}

	r, err := render.New(stringFlag(c, "format"), ui.Out)
	if err != nil {
		return err
	}

	if tr, ok := r.(*render.TextRenderer); ok {
		tr.HasColor = boolFlag(c, "color")
	}

	dryRun := boolFlag(c, "dry-run")

	locations := cfg.Locations()
	logger.Debug("starting run",
		zap.String("data_dir", cfg.DataDir),
		zap.Strings("locations", locations),
		zap.Bool("dry_run", dryRun))

	hdl := rewrite.NewHandler(filesystem.NewDocStore(), logger)
	hdl.DryRun = dryRun

	onFile := r.File

	if boolFlag(c, "progress") && len(locations) > 0 {
		p := uiprogress.New()
		p.Out = ui.Err
		bar := p.AddBar(len(locations))
		bar.AppendCompleted()
		bar.PrependElapsed()
		// Append the name of the last processed document
		bar.AppendFunc(func(b *uiprogress.Bar) string {
			if b.Current() == 0 {
				return ""
			}
			return filepath.Base(locations[b.Current()-1])
		})

		p.Start()
		defer p.Stop()

		onFile = func(res rewrite.FileResult) {
			r.File(res)
			bar.Incr()
		}
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}

	r.Begin()
	total, err := hdl.Run(ctx, locations, onFile)
	if err != nil {
		return err
	}

	return r.End(total)
}
