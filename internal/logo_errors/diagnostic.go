package logo_errors

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Diagnostic is the single shape every lex, parse and run failure is
// reported in.
type Diagnostic struct {
	Phase   Phase
	Message string
	Line    int
	Column  int
	Length  int
	Excerpt string
}

func (d *Diagnostic) Error() string {
	if d.Line == 0 {
		return fmt.Sprintf("%s error: %s", d.Phase, d.Message)
	}
	return fmt.Sprintf("%s error at %d:%d: %s", d.Phase, d.Line, d.Column, d.Message)
}

// FromError builds a diagnostic for err. Errors that carry no position are
// reported as run errors without an excerpt.
func FromError(err error, source []byte) *Diagnostic {
	if err == nil {
		return nil
	}

	var d *Diagnostic
	if errors.As(err, &d) {
		return d
	}

	var ce CompilerError
	if !errors.As(err, &ce) {
		return &Diagnostic{
			Phase:   RunPhase,
			Message: err.Error(),
		}
	}

	return &Diagnostic{
		Phase:   ce.GetPhase(),
		Message: ce.GetMessage(),
		Line:    ce.GetLine(),
		Column:  ce.GetColumn(),
		Length:  ce.GetLength(),
		Excerpt: sourceLine(source, ce.GetLine()),
	}
}

func sourceLine(source []byte, line int) string {
	if line < 1 {
		return ""
	}

	lines := bytes.Split(source, []byte("\n"))
	if line > len(lines) {
		return ""
	}

	return strings.TrimRight(string(lines[line-1]), "\r")
}

func Report(w io.Writer, d *Diagnostic) {
	fmt.Fprintf(w, "Run failed with a %s error:\n", d.Phase)

	if d.Line == 0 {
		fmt.Fprintf(w, "ERROR: %s\n", d.Message)
		return
	}

	fmt.Fprintf(w, "ERROR: line %d, column %d: %s\n", d.Line, d.Column, d.Message)
	if d.Excerpt == "" {
		return
	}

	gutter := fmt.Sprintf("%4d | ", d.Line)
	fmt.Fprintf(w, "%s%s\n", gutter, d.Excerpt)

	width := d.Length
	if width < 1 {
		width = 1
	}
	pad := strings.Repeat(" ", len(gutter)+max(d.Column-1, 0))
	fmt.Fprintf(w, "%s%s\n", pad, strings.Repeat("^", width))
}
