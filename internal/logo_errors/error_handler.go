package logo_errors

type Phase int

const (
	LexPhase Phase = iota
	ParsePhase
	RunPhase
)

func (p Phase) String() string {
	switch p {
	case LexPhase:
		return "lex"
	case ParsePhase:
		return "parse"
	case RunPhase:
		return "run"
	default:
		return "unknown"
	}
}

// CompilerError is implemented by every error the lexer, parser and
// interpreter produce, so a diagnostic can always be positioned.
type CompilerError interface {
	error

	GetMessage() string
	GetPhase() Phase
	GetLine() int
	GetColumn() int
	GetLength() int
}

// FirstErrorHandler keeps the first error it is given. FailNow unwinds the
// current phase, Catch turns the unwind back into an ordinary error.
type FirstErrorHandler struct {
	err CompilerError
}

type bailout struct{}

func NewErrorHandler() *FirstErrorHandler {
	return &FirstErrorHandler{}
}

func (eh *FirstErrorHandler) AddError(err CompilerError) {
	if eh.err == nil {
		eh.err = err
	}
}

func (eh *FirstErrorHandler) FailNow() {
	panic(bailout{})
}

func (eh *FirstErrorHandler) Err() CompilerError {
	return eh.err
}

func Catch(eh *FirstErrorHandler, fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(bailout); !ok {
			panic(r)
		}
		if e := eh.Err(); e != nil {
			err = e
		}
	}()

	fn()

	if e := eh.Err(); e != nil {
		return e
	}
	return nil
}
