package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"flexlay/pkg/fixture"
	"flexlay/pkg/js"
	"flexlay/pkg/layout"
	"flexlay/pkg/render"
	"flexlay/pkg/snapshot"
)

var log *zap.Logger

func initLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error
	if cmd.Bool("verbose") {
		log, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.DisableCaller = true
		cfg.DisableStacktrace = true
		log, err = cfg.Build()
	}
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	return ctx, nil
}

func closeLogging(ctx context.Context, cmd *cli.Command) error {
	if log != nil {
		_ = log.Sync()
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            "flexlay",
		Usage:           "flexbox layout engine for YAML fixtures and JS scenes",
		HideHelpCommand: true,
		Before:          initLogging,
		After:           closeLogging,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug logging"},
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Lay out a fixture and emit its layout snapshot",
				Action:    runFixture,
				ArgsUsage: "FIXTURE",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"},
						Usage: "write the snapshot to `FILE` instead of stdout"},
					&cli.StringFlag{Name: "png",
						Usage: "additionally render the layout to `FILE`"},
					&cli.BoolFlag{Name: "outlines",
						Usage: "stroke box outlines in the rendered image"},
					&cli.IntFlag{Name: "max-depth", Value: layout.DefaultMaxDepth,
						Usage: "container nesting ceiling"},
				},
			},
			{
				Name:      "compare",
				Usage:     "Compare two layout snapshots",
				Action:    compareSnapshots,
				ArgsUsage: "ACTUAL EXPECTED",
				Flags: []cli.Flag{
					&cli.FloatFlag{Name: "tolerance", Value: 2,
						Usage: "allowed per-field drift in `PIXELS`"},
					&cli.FloatFlag{Name: "max-mismatch",
						Usage: "pass when at most `PERCENT` of elements mismatch"},
				},
			},
			{
				Name:      "script",
				Usage:     "Execute a JS scene file",
				Action:    runScript,
				ArgsUsage: "SCRIPT",
			},
		},
	}

	var err error
	defer func() {
		stop()
		if err != nil {
			fmt.Fprintf(os.Stderr, "flexlay: %v\n", err)
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func runFixture(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("run: exactly one FIXTURE argument expected")
	}
	path := cmd.Args().First()

	doc, err := fixture.LoadFile(path)
	if err != nil {
		return err
	}
	engine := layout.NewLayoutEngine()
	engine.SetMaxDepth(int(cmd.Int("max-depth")))

	tree, root, err := doc.Layout(engine)
	if err != nil {
		return fmt.Errorf("layout of %s: %w", path, err)
	}
	log.Debug("fixture laid out",
		zap.String("fixture", path), zap.Int("nodes", tree.Len()))

	snap, err := snapshot.Capture(tree, root)
	if err != nil {
		return err
	}

	if png := cmd.String("png"); png != "" {
		r := render.NewRenderer(
			imageSize(snap.Layout.Width), imageSize(snap.Layout.Height))
		r.DrawOutlines = cmd.Bool("outlines")
		r.Render(tree, root)
		if err := r.SavePNG(png); err != nil {
			return err
		}
		log.Info("image written", zap.String("path", png))
	}

	if out := cmd.String("out"); out != "" {
		if err := snapshot.Save(snap, out); err != nil {
			return err
		}
		log.Info("snapshot written", zap.String("path", out))
		return nil
	}
	return writeSnapshot(os.Stdout, snap)
}

func compareSnapshots(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 2 {
		return fmt.Errorf("compare: ACTUAL and EXPECTED arguments expected")
	}
	opts := snapshot.CompareOptions{
		Tolerance:          cmd.Float("tolerance"),
		MaxMismatchPercent: cmd.Float("max-mismatch"),
	}
	result, err := snapshot.CompareFiles(cmd.Args().Get(0), cmd.Args().Get(1), opts)
	if err != nil {
		return err
	}
	fmt.Println(result.Summary())
	if !result.Match {
		var errs error
		for _, m := range result.Mismatches {
			errs = multierr.Append(errs, fmt.Errorf("%s %s: got %.2f, want %.2f",
				m.Path, m.Field, m.Actual, m.Expected))
		}
		log.Debug("snapshot mismatch detail", zap.Error(errs))
		return fmt.Errorf("snapshots differ: %.1f%% matched", result.MatchPercent())
	}
	return nil
}

func runScript(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("script: exactly one SCRIPT argument expected")
	}
	path := cmd.Args().First()
	engine := js.New()
	if err := engine.RunFile(path); err != nil {
		return err
	}
	log.Info("script finished",
		zap.String("path", path), zap.Int("nodes", engine.Tree().Len()))
	return nil
}

// imageSize converts a layout extent to a canvas dimension, never below 1px.
func imageSize(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v + 0.5)
}

func writeSnapshot(f *os.File, snap *snapshot.Element) error {
	data, err := snapshot.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	return err
}
