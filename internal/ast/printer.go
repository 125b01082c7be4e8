package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders a program back to source. Binary and negated expressions are
// fully parenthesised, so parsing the output yields an equivalent tree.
func Format(p *Program) string {
	var sb strings.Builder
	formatStmts(&sb, p.Stmts, 0)
	return sb.String()
}

func formatStmts(sb *strings.Builder, stmts []Stmt, depth int) {
	for _, stmt := range stmts {
		sb.WriteString(strings.Repeat("  ", depth))
		formatStmt(sb, stmt, depth)
		sb.WriteByte('\n')
	}
}

func formatStmt(sb *strings.Builder, stmt Stmt, depth int) {
	switch s := stmt.(type) {
	case *CommandStmt:
		sb.WriteString(s.Kind.String())
		for _, arg := range s.Args() {
			sb.WriteByte(' ')
			sb.WriteString(FormatExpr(arg))
		}
	case *AssignStmt:
		keyword := "MAKE"
		if s.Add {
			keyword = "ADDASSIGN"
		}
		fmt.Fprintf(sb, "%s \"%s %s", keyword, s.Name, FormatExpr(s.Value))
	case *IfStmt:
		fmt.Fprintf(sb, "IF %s ", FormatExpr(s.Cond))
		formatBlock(sb, s.Body, depth)
	case *WhileStmt:
		fmt.Fprintf(sb, "WHILE %s ", FormatExpr(s.Cond))
		formatBlock(sb, s.Body, depth)
	case *RepeatStmt:
		fmt.Fprintf(sb, "REPEAT %s ", FormatExpr(s.Count))
		formatBlock(sb, s.Body, depth)
	default:
		panic(fmt.Sprintf("ast.Format: unexpected statement %T", stmt))
	}
}

func formatBlock(sb *strings.Builder, b *Block, depth int) {
	if len(b.Stmts) == 0 {
		sb.WriteString("[ ]")
		return
	}

	sb.WriteString("[\n")
	formatStmts(sb, b.Stmts, depth+1)
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteByte(']')
}

// FormatExpr renders a single expression. A leading minus is always wrapped
// in parentheses: after a complete argument a bare '-' reads as subtraction.
func FormatExpr(expr Expr) string {
	switch e := expr.(type) {
	case *NumberExpr:
		literal := strconv.FormatFloat(e.Value, 'f', -1, 64)
		if math.Signbit(e.Value) {
			return "(" + literal + ")"
		}
		return literal
	case *VariableExpr:
		return ":" + e.Name
	case *QueryExpr:
		return e.Query.String()
	case *PrefixExpr:
		return "(" + e.Op.Value + FormatExpr(e.Right) + ")"
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", FormatExpr(e.Left), e.Op.Value, FormatExpr(e.Right))
	}

	panic(fmt.Sprintf("ast.FormatExpr: unexpected expression %T", expr))
}
