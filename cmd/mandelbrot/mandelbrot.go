package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/willbeason/mandelbrot/pkg/config"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/logging"
	"github.com/willbeason/mandelbrot/pkg/pair"
	"github.com/willbeason/mandelbrot/pkg/plane"
	"github.com/willbeason/mandelbrot/pkg/render"
	"github.com/willbeason/mandelbrot/pkg/sink"
)

type flags struct {
	config  string
	envFile string
	workers int
	limit   int
	scale   int
	logFile string
	dev     bool
	julia   string
}

func mainCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   config.Usage,
		Short: "Render the Mandelbrot set as a grayscale image",
		Long: `Render the rectangle of the complex plane from UPPERLEFT to LOWERRIGHT as a
PIXELS-sized grayscale image written to FILE. Points in the set are black;
points outside are brighter the faster they escape.

PIXELS is <width>x<height>. Corners are <re>,<im>. The image format follows
FILE's extension: .png, .tif/.tiff or .bmp. Flags go before FILE.`,
		Example: config.Example,
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCmd(cmd, args, f)
		},
	}

	// Corners such as -1.20,0.35 would otherwise parse as shorthand flags.
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().StringVar(&f.config, "config", "", "YAML file with render settings")
	cmd.Flags().StringVar(&f.envFile, "env-file", ".env", "file of environment variables to load if present")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", render.DefaultWorkers, "number of bands rendered concurrently")
	cmd.Flags().IntVarP(&f.limit, "limit", "l", escape.DefaultLimit, "escape iteration limit per pixel")
	cmd.Flags().IntVar(&f.scale, "scale", 1, "shrink the written image by this factor")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "also write JSON logs to this file")
	cmd.Flags().BoolVar(&f.dev, "dev", false, "human-readable debug logging")
	cmd.Flags().StringVar(&f.julia, "julia", "", "render the filled Julia set of `re,im` instead")

	return cmd
}

func runCmd(cmd *cobra.Command, args []string, f *flags) error {
	err := renderFile(cmd, args, f)
	// Usage only helps with bad arguments and settings.
	cmd.SilenceUsage = !config.IsArgError(err)
	return err
}

func renderFile(cmd *cobra.Command, args []string, f *flags) error {
	j, err := parseArgs(args, f.julia)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Dev, cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() {
		// Syncing a console fails on some platforms and there is nothing left to report to.
		_ = logger.Sync()
	}()

	return run(cmd.OutOrStdout(), logger, j, cfg, sink.File{Path: j.file, Scale: cfg.Scale})
}

// job is what to render and where to put it.
type job struct {
	file      string
	bounds    plane.Bounds
	viewport  plane.Viewport
	evaluator escape.Evaluator
}

func parseArgs(args []string, julia string) (job, error) {
	j := job{file: args[0], evaluator: escape.Mandelbrot{}}

	bounds, ok := plane.ParseBounds(args[1])
	if !ok || bounds.Empty() {
		return job{}, &config.ArgError{Arg: "PIXELS", Value: args[1], Reason: "want <width>x<height> with both positive and a pixel count that fits in an int, like 1000x750"}
	}
	j.bounds = bounds

	upperLeft, ok := pair.ParseComplex(args[2])
	if !ok {
		return job{}, &config.ArgError{Arg: "UPPERLEFT", Value: args[2], Reason: "want <re>,<im>, like -1.20,0.35"}
	}
	lowerRight, ok := pair.ParseComplex(args[3])
	if !ok {
		return job{}, &config.ArgError{Arg: "LOWERRIGHT", Value: args[3], Reason: "want <re>,<im>, like -1,0.20"}
	}
	j.viewport = plane.Viewport{UpperLeft: upperLeft, LowerRight: lowerRight}

	if julia != "" {
		c, ok := pair.ParseComplex(julia)
		if !ok {
			return job{}, &config.ArgError{Arg: "--julia", Value: julia, Reason: "want <re>,<im>"}
		}
		j.evaluator = escape.Julia{C: c}
	}

	return j, nil
}

// loadConfig layers explicitly set flags over the file and environment settings.
func loadConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	cfg, err := config.Load(f.config, f.envFile)
	if err != nil {
		return config.Config{}, err
	}

	set := cmd.Flags()
	if set.Changed("workers") {
		cfg.Workers = f.workers
	}
	if set.Changed("limit") {
		cfg.Limit = f.limit
	}
	if set.Changed("scale") {
		cfg.Scale = f.scale
	}
	if set.Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if set.Changed("dev") {
		cfg.Dev = f.dev
	}

	return cfg, cfg.Validate()
}

func run(out io.Writer, logger *logging.Logger, j job, cfg config.Config, s sink.Sink) error {
	log := logger.With(zap.String("render_id", uuid.New().String()[:8]))
	log.Info("rendering",
		zap.String("file", j.file),
		zap.Stringer("bounds", j.bounds),
		zap.Complex128("upper_left", j.viewport.UpperLeft),
		zap.Complex128("lower_right", j.viewport.LowerRight),
		zap.Int("workers", cfg.Workers),
		zap.Int("limit", cfg.Limit))

	start := time.Now()
	pixels := render.Render(j.bounds, j.viewport, render.Options{
		Workers:   cfg.Workers,
		Limit:     cfg.Limit,
		Evaluator: j.evaluator,
		Logger:    log.Named("render").Zap(),
	})

	if err := s.Write(pixels, j.bounds); err != nil {
		log.Error("writing image", zap.Error(err))
		return fmt.Errorf("writing image: %w", err)
	}

	printSummary(out, j, time.Since(start))
	return nil
}

func printSummary(w io.Writer, j job, elapsed time.Duration) {
	color.New(color.FgGreen, color.Bold).Fprint(w, "✓ ")
	fmt.Fprintf(w, "wrote %s ", j.file)
	color.New(color.FgHiBlack).Fprintf(w, "(%v in %v)\n", j.bounds, elapsed.Round(time.Millisecond))
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
