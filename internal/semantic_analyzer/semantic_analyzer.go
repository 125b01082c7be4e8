package semantic_analyzer

import (
	"fmt"
	"math"

	"github.com/kievzenit/ylogo/internal/ast"
	"github.com/kievzenit/ylogo/internal/lexer"
	"github.com/kievzenit/ylogo/internal/turtle"
)

// SemanticWarning is a problem found without running the program. Each one
// is a runtime error, or dead code, waiting to happen.
type SemanticWarning struct {
	message string

	line   int
	column int
	length int
}

func (sw *SemanticWarning) GetMessage() string { return sw.message }
func (sw *SemanticWarning) GetLine() int       { return sw.line }
func (sw *SemanticWarning) GetColumn() int     { return sw.column }
func (sw *SemanticWarning) GetLength() int     { return sw.length }

func (sw *SemanticWarning) String() string {
	return fmt.Sprintf("WARNING: line %d, column %d: %s", sw.line, sw.column, sw.message)
}

func newSemanticWarning(message string, token *lexer.Token) *SemanticWarning {
	return &SemanticWarning{
		message: message,

		line:   token.Metadata.Line,
		column: token.Metadata.Column,
		length: token.Metadata.Length,
	}
}

// SemanticAnalyzer walks a parsed program in source order. Variables are
// global, so a name counts as assigned once any MAKE for it has been seen
// earlier in the text, whichever block it sits in.
type SemanticAnalyzer struct {
	program *ast.Program

	assigned map[string]bool
	warnings []*SemanticWarning

	types *TypeResolver
}

func NewSemanticAnalyzer(program *ast.Program) *SemanticAnalyzer {
	sa := &SemanticAnalyzer{
		program:  program,
		assigned: make(map[string]bool),
	}
	sa.types = NewTypeResolver(sa.typeMismatch)

	return sa
}

func (sa *SemanticAnalyzer) Analyze() []*SemanticWarning {
	sa.analyzeStmts(sa.program.Stmts)
	return sa.warnings
}

func (sa *SemanticAnalyzer) warn(token *lexer.Token, format string, args ...any) {
	sa.warnings = append(sa.warnings, newSemanticWarning(fmt.Sprintf(format, args...), token))
}

func (sa *SemanticAnalyzer) typeMismatch(token *lexer.Token, context string, expected, got Type) {
	sa.warn(token, "type mismatch in %s: expected %s, got %s", context, expected, got)
}

func (sa *SemanticAnalyzer) analyzeStmts(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		sa.analyzeStmt(stmt)
	}
}

func (sa *SemanticAnalyzer) analyzeStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.CommandStmt:
		sa.analyzeCommandStmt(s)
	case *ast.AssignStmt:
		sa.analyzeAssignStmt(s)
	case *ast.IfStmt:
		sa.analyzeExpr(s.Cond, BoolType, "IF condition")
		sa.analyzeStmts(s.Body.Stmts)
	case *ast.WhileStmt:
		sa.analyzeExpr(s.Cond, BoolType, "WHILE condition")
		sa.analyzeStmts(s.Body.Stmts)
	case *ast.RepeatStmt:
		sa.analyzeRepeatStmt(s)
	default:
		panic(fmt.Sprintf("semantic analyzer: unexpected statement %T", stmt))
	}
}

func (sa *SemanticAnalyzer) analyzeCommandStmt(s *ast.CommandStmt) {
	for _, arg := range s.Args() {
		sa.analyzeExpr(arg, NumberType, s.Kind.String()+" argument")
	}

	if s.Kind != ast.SetPenColorCommand {
		return
	}
	if value, ok := constantValue(s.Args()[0]); ok {
		if _, err := turtle.PaletteColor(value); err != nil {
			sa.warn(s.StartToken, "%s", err.Error())
		}
	}
}

func (sa *SemanticAnalyzer) analyzeAssignStmt(s *ast.AssignStmt) {
	sa.analyzeExpr(s.Value, NumberType, "assignment to "+s.Name)

	if s.Add && !sa.assigned[s.Name] {
		sa.warn(s.StartToken, "ADDASSIGN to '%s' before any MAKE of it", s.Name)
	}
	sa.assigned[s.Name] = true
}

func (sa *SemanticAnalyzer) analyzeRepeatStmt(s *ast.RepeatStmt) {
	sa.analyzeExpr(s.Count, NumberType, "REPEAT count")

	if count, ok := constantValue(s.Count); ok && math.Trunc(count) < 1 {
		sa.warn(s.StartToken, "REPEAT count %g never runs the body", count)
	}
	sa.analyzeStmts(s.Body.Stmts)
}

func (sa *SemanticAnalyzer) analyzeExpr(expr ast.Expr, expected Type, context string) {
	sa.types.Expect(expr, expected, context)
	sa.checkExpr(expr)
}

// checkExpr looks for reads of unassigned variables and divisions by a
// constant zero.
func (sa *SemanticAnalyzer) checkExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.VariableExpr:
		if !sa.assigned[e.Name] {
			sa.warn(e.StartToken, "variable '%s' is read before it is assigned", e.Name)
		}
	case *ast.PrefixExpr:
		sa.checkExpr(e.Right)
	case *ast.BinaryExpr:
		sa.checkExpr(e.Left)
		sa.checkExpr(e.Right)
		if e.Op.Kind == lexer.SLASH {
			if divisor, ok := constantValue(e.Right); ok && divisor == 0 {
				sa.warn(e.Op, "division by zero")
			}
		}
	}
}

// constantValue folds expressions built only from number literals.
func constantValue(expr ast.Expr) (float64, bool) {
	switch e := expr.(type) {
	case *ast.NumberExpr:
		return e.Value, true
	case *ast.PrefixExpr:
		v, ok := constantValue(e.Right)
		return -v, ok
	case *ast.BinaryExpr:
		l, lok := constantValue(e.Left)
		r, rok := constantValue(e.Right)
		if !lok || !rok {
			return 0, false
		}
		switch e.Op.Kind {
		case lexer.PLUS:
			return l + r, true
		case lexer.MINUS:
			return l - r, true
		case lexer.ASTERISK:
			return l * r, true
		case lexer.SLASH:
			if r == 0 {
				return 0, false
			}
			return l / r, true
		}
	}

	return 0, false
}
