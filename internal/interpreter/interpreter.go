package interpreter

import (
	"io"
	"math"
	"time"

	"github.com/kievzenit/ylogo/internal/ast"
	"github.com/kievzenit/ylogo/internal/environment"
	"github.com/kievzenit/ylogo/internal/turtle"
	"github.com/oarkflow/log"
)

// Pen is the drawing capability a run is executed against. turtle.Machine
// implements it; tests substitute recorders.
type Pen interface {
	Forward(distance float64) error
	Back(distance float64) error
	Turn(degrees float64)
	SetHeading(degrees float64)
	SetPosition(x, y float64) error
	PenUp()
	PenDown()
	SetColor(color turtle.Color)
	State() turtle.State
}

// Observer is notified as a run progresses.
type Observer interface {
	StatementExecuted(kind string)
	RunFinished(result *Result, err error, elapsed time.Duration)
}

type Result struct {
	Final      turtle.State
	Segments   int
	Statements int
	Iterations int
	Variables  int
}

type Interpreter struct {
	pen Pen
	env *environment.Environment

	logger   *log.Logger
	observer Observer
	runID    string

	maxIterations int

	statements int
	iterations int
}

type Option func(*Interpreter)

func WithLogger(logger *log.Logger) Option {
	return func(in *Interpreter) {
		if logger != nil {
			in.logger = logger
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(in *Interpreter) {
		in.observer = observer
	}
}

// WithMaxIterations caps the total number of loop iterations of a run.
// Zero means unlimited.
func WithMaxIterations(n int) Option {
	return func(in *Interpreter) {
		in.maxIterations = n
	}
}

func WithRunID(id string) Option {
	return func(in *Interpreter) {
		in.runID = id
	}
}

func discardLogger() *log.Logger {
	return &log.Logger{
		Level:  log.ErrorLevel,
		Writer: &log.IOWriter{Writer: io.Discard},
	}
}

func New(pen Pen, env *environment.Environment, opts ...Option) *Interpreter {
	if env == nil {
		env = environment.New()
	}

	in := &Interpreter{
		pen:    pen,
		env:    env,
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(in)
	}

	return in
}

func (in *Interpreter) Environment() *environment.Environment {
	return in.env
}

// Execute runs program top to bottom and stops at the first runtime error.
// The returned result is never nil and reflects the state at the point the
// run stopped.
func (in *Interpreter) Execute(program *ast.Program) (*Result, error) {
	start := time.Now()

	err := in.execStmts(program.Stmts)
	result := in.result()
	elapsed := time.Since(start)

	if in.observer != nil {
		in.observer.RunFinished(result, err, elapsed)
	}

	if err != nil {
		in.logger.Error().
			Str("run_id", in.runID).
			Int("statements", result.Statements).
			Err(err).
			Msg("run failed")
		return result, err
	}

	in.logger.Info().
		Str("run_id", in.runID).
		Int("statements", result.Statements).
		Int("segments", result.Segments).
		Int("iterations", result.Iterations).
		Dur("elapsed", elapsed).
		Msg("run finished")

	return result, nil
}

func (in *Interpreter) result() *Result {
	r := &Result{
		Final:      in.pen.State(),
		Statements: in.statements,
		Iterations: in.iterations,
		Variables:  in.env.Len(),
	}
	if counter, ok := in.pen.(interface{ Segments() int }); ok {
		r.Segments = counter.Segments()
	}

	return r
}

func (in *Interpreter) execStmts(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := in.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execStmt(stmt ast.Stmt) error {
	kind := statementKind(stmt)
	in.statements++
	if in.observer != nil {
		in.observer.StatementExecuted(kind)
	}

	if token := stmt.FirstToken(); token != nil {
		in.logger.Debug().
			Str("run_id", in.runID).
			Str("statement", kind).
			Int("line", token.Metadata.Line).
			Msg("executing statement")
	}

	switch s := stmt.(type) {
	case *ast.CommandStmt:
		return in.execCommand(s)
	case *ast.AssignStmt:
		return in.execAssign(s)
	case *ast.IfStmt:
		return in.execIf(s)
	case *ast.WhileStmt:
		return in.execWhile(s)
	case *ast.RepeatStmt:
		return in.execRepeat(s)
	}

	panic("unreachable: unknown statement type")
}

func statementKind(stmt ast.Stmt) string {
	switch s := stmt.(type) {
	case *ast.CommandStmt:
		return s.Kind.String()
	case *ast.AssignStmt:
		if s.Add {
			return "ADDASSIGN"
		}
		return "MAKE"
	case *ast.IfStmt:
		return "IF"
	case *ast.WhileStmt:
		return "WHILE"
	case *ast.RepeatStmt:
		return "REPEAT"
	}
	return "UNKNOWN"
}

func (in *Interpreter) execCommand(s *ast.CommandStmt) error {
	args := make([]float64, 0, len(s.Args()))
	for _, arg := range s.Args() {
		v, err := in.evalNumber(arg, s.Kind.String()+" argument")
		if err != nil {
			return err
		}
		args = append(args, v)
	}

	var err error
	switch s.Kind {
	case ast.PenUpCommand:
		in.pen.PenUp()
	case ast.PenDownCommand:
		in.pen.PenDown()
	case ast.ForwardCommand:
		err = in.pen.Forward(args[0])
	case ast.BackCommand:
		err = in.pen.Back(args[0])
	case ast.LeftCommand:
		in.pen.Turn(-args[0])
	case ast.RightCommand, ast.TurnCommand:
		in.pen.Turn(args[0])
	case ast.SetHeadingCommand:
		in.pen.SetHeading(args[0])
	case ast.SetXCommand:
		err = in.pen.SetPosition(args[0], in.pen.State().Position.Y)
	case ast.SetYCommand:
		err = in.pen.SetPosition(in.pen.State().Position.X, args[0])
	case ast.SetPosCommand:
		err = in.pen.SetPosition(args[0], args[1])
	case ast.HomeCommand:
		err = in.pen.SetPosition(0, 0)
		if err == nil {
			in.pen.SetHeading(0)
		}
	case ast.SetPenColorCommand:
		var color turtle.Color
		color, err = turtle.PaletteColor(args[0])
		if err == nil {
			in.pen.SetColor(color)
		}
	}

	if err != nil {
		return newRuntimeError(s.StartToken, err)
	}
	return nil
}

func (in *Interpreter) execAssign(s *ast.AssignStmt) error {
	value, err := in.evalNumber(s.Value, "assignment to "+s.Name)
	if err != nil {
		return err
	}

	if s.Add {
		current, err := in.env.Get(s.Name)
		if err != nil {
			return newRuntimeError(s.StartToken, err)
		}
		value += current
	}

	in.env.Set(s.Name, value)
	return nil
}

func (in *Interpreter) execIf(s *ast.IfStmt) error {
	cond, err := in.evalBool(s.Cond, "IF condition")
	if err != nil {
		return err
	}
	if !cond {
		return nil
	}

	return in.execStmts(s.Body.Stmts)
}

func (in *Interpreter) execWhile(s *ast.WhileStmt) error {
	for {
		cond, err := in.evalBool(s.Cond, "WHILE condition")
		if err != nil {
			return err
		}
		if !cond {
			return nil
		}

		if err := in.tick(s); err != nil {
			return err
		}
		if err := in.execStmts(s.Body.Stmts); err != nil {
			return err
		}
	}
}

// execRepeat evaluates the count once. Fractions truncate toward zero and
// counts below one run the body zero times.
func (in *Interpreter) execRepeat(s *ast.RepeatStmt) error {
	n, err := in.evalNumber(s.Count, "REPEAT count")
	if err != nil {
		return err
	}

	count := math.Trunc(n)
	for i := 0.0; i < count; i++ {
		if err := in.tick(s); err != nil {
			return err
		}
		if err := in.execStmts(s.Body.Stmts); err != nil {
			return err
		}
	}

	return nil
}

func (in *Interpreter) tick(loop ast.Stmt) error {
	in.iterations++
	if in.maxIterations > 0 && in.iterations > in.maxIterations {
		return newRuntimeError(loop.FirstToken(), &IterationLimitError{Limit: in.maxIterations})
	}
	return nil
}
