package interpreter

import (
	"time"

	"github.com/google/uuid"
	"github.com/kievzenit/ylogo/internal/ast"
	"github.com/kievzenit/ylogo/internal/environment"
	"github.com/kievzenit/ylogo/internal/lexer"
	"github.com/kievzenit/ylogo/internal/parser"
	"github.com/kievzenit/ylogo/internal/turtle"
	"github.com/oarkflow/log"
)

type RunOptions struct {
	Sink     turtle.Sink
	Canvas   turtle.Canvas
	Bounds   turtle.BoundsPolicy
	PenColor turtle.Color

	MaxIterations int

	Logger   *log.Logger
	Observer Observer

	// RunID tags every log line of the run. A random id is used when empty.
	RunID string
}

// ParseSource lexes and parses source. The error, if any, is a
// logo_errors.CompilerError of the lex or parse phase.
func ParseSource(source []byte) (*ast.Program, error) {
	tokens, err := lexer.NewLexer(source).Tokenize()
	if err != nil {
		return nil, err
	}

	return parser.NewParser(lexer.NewTokenScanner(tokens)).Parse()
}

// Run executes source from scratch: a fresh turtle at the origin facing up
// with the pen down and an empty environment. Nothing is executed unless the
// whole program lexes and parses.
func Run(source []byte, opts RunOptions) (*Result, error) {
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}
	if opts.Logger == nil {
		opts.Logger = discardLogger()
	}

	start := time.Now()
	program, err := ParseSource(source)
	if err != nil {
		opts.Logger.Error().
			Str("run_id", opts.RunID).
			Err(err).
			Msg("program rejected")
		if opts.Observer != nil {
			opts.Observer.RunFinished(nil, err, time.Since(start))
		}
		return nil, err
	}

	opts.Logger.Debug().
		Str("run_id", opts.RunID).
		Int("statements", len(program.Stmts)).
		Msg("program parsed")

	machine := turtle.NewMachine(
		turtle.NewState(opts.PenColor),
		opts.Sink,
		turtle.WithBounds(opts.Canvas, opts.Bounds),
	)

	in := New(machine, environment.New(),
		WithLogger(opts.Logger),
		WithObserver(opts.Observer),
		WithMaxIterations(opts.MaxIterations),
		WithRunID(opts.RunID),
	)

	return in.Execute(program)
}
