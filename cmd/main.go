package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kievzenit/ylogo/internal/config"
	"github.com/kievzenit/ylogo/internal/interpreter"
	l "github.com/kievzenit/ylogo/internal/lexer"
	"github.com/kievzenit/ylogo/internal/logo_errors"
	"github.com/kievzenit/ylogo/internal/metrics"
	"github.com/kievzenit/ylogo/internal/render"
	"github.com/kievzenit/ylogo/internal/semantic_analyzer"
	"github.com/sanity-io/litter"
	"github.com/urfave/cli/v2"
)

const (
	exitUsage = 1
	exitParse = 2
	exitRun   = 3
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "ylogo",
		Usage:     "Run a turtle graphics program and render it to SVG",
		ArgsUsage: "<program.lg> <image.svg> <height> <width>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML configuration file",
			},
			&cli.StringFlag{
				Name:  "bounds",
				Usage: "What to do when the turtle leaves the canvas: none, clamp or error",
			},
			&cli.IntFlag{
				Name:  "max-iterations",
				Usage: "Abort after this many loop iterations, 0 for no limit",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: trace, debug, info, warn or error",
			},
			&cli.BoolFlag{
				Name:  "dump-ast",
				Usage: "Print the parsed program before running it",
			},
			&cli.BoolFlag{
				Name:  "tokens",
				Usage: "Print the token stream before running",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Report likely mistakes found without running the program",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write run metrics in the Prometheus text format to this file",
			},
		},
		Action: run,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 4 {
		cli.ShowAppHelp(c)
		return cli.Exit("expected 4 arguments: <program.lg> <image.svg> <height> <width>", exitUsage)
	}
	programPath, imagePath := c.Args().Get(0), c.Args().Get(1)

	height, err := dimension("height", c.Args().Get(2))
	if err != nil {
		return cli.Exit(err, exitUsage)
	}
	width, err := dimension("width", c.Args().Get(3))
	if err != nil {
		return cli.Exit(err, exitUsage)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err, exitUsage)
	}
	cfg.Canvas = config.Canvas{Width: width, Height: height}
	if err := cfg.Validate(); err != nil {
		return cli.Exit(err, exitUsage)
	}

	logger := cfg.Logger(os.Stderr)

	source, err := os.ReadFile(programPath)
	if err != nil {
		return cli.Exit(err, exitUsage)
	}

	if c.Bool("tokens") {
		tokens, err := l.NewLexer(source).Tokenize()
		if err != nil {
			return fail(source, err)
		}
		for _, token := range tokens {
			fmt.Println(token.String())
		}
	}

	if c.Bool("dump-ast") {
		program, err := interpreter.ParseSource(source)
		if err != nil {
			return fail(source, err)
		}
		litter.Dump(program)
	}

	if c.Bool("check") {
		program, err := interpreter.ParseSource(source)
		if err != nil {
			return fail(source, err)
		}
		warnings := semantic_analyzer.NewSemanticAnalyzer(program).Analyze()
		for _, w := range warnings {
			fmt.Fprintln(os.Stderr, w.String())
		}
		logger.Info().Int("warnings", len(warnings)).Msg("check finished")
	}

	collector := metrics.NewCollector()
	svg := render.NewSVG(width, height)

	result, runErr := interpreter.Run(source, interpreter.RunOptions{
		Sink:          svg,
		Canvas:        cfg.TurtleCanvas(),
		Bounds:        cfg.BoundsPolicy(),
		PenColor:      cfg.PenColorValue(),
		MaxIterations: cfg.MaxIterations,
		Logger:        logger,
		Observer:      collector,
	})

	if path := c.String("metrics-file"); path != "" {
		if err := collector.WriteFile(path); err != nil {
			logger.Error().Err(err).Msg("failed to write metrics")
		}
	}

	if runErr != nil {
		return fail(source, runErr)
	}

	if err := writeImage(imagePath, svg); err != nil {
		return cli.Exit(err, exitUsage)
	}

	logger.Info().
		Str("image", imagePath).
		Int("segments", result.Segments).
		Msg("image written")

	return nil
}

func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("bounds") {
		cfg.Bounds = c.String("bounds")
	}
	if c.IsSet("max-iterations") {
		cfg.MaxIterations = c.Int("max-iterations")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	return cfg, nil
}

func dimension(name, arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, arg)
	}
	return v, nil
}

func writeImage(path string, svg *render.SVG) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := svg.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fail(source []byte, err error) error {
	d := logo_errors.FromError(err, source)
	logo_errors.Report(os.Stderr, d)

	code := exitRun
	if d.Phase != logo_errors.RunPhase {
		code = exitParse
	}
	return cli.Exit("", code)
}
