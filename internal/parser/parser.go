package parser

import (
	"errors"
	"slices"
	"strconv"

	"github.com/kievzenit/ylogo/internal/ast"
	"github.com/kievzenit/ylogo/internal/lexer"
	"github.com/kievzenit/ylogo/internal/logo_errors"
)

type Parser struct {
	scanner lexer.TokenScanner
	eh      *logo_errors.FirstErrorHandler

	curr *lexer.Token
}

var bindingPowerLookup map[lexer.TokenKind]int = map[lexer.TokenKind]int{
	lexer.AND:      10,
	lexer.OR:       10,
	lexer.LT:       20,
	lexer.GT:       20,
	lexer.EQ:       20,
	lexer.NEQ:      20,
	lexer.PLUS:     30,
	lexer.MINUS:    30,
	lexer.ASTERISK: 40,
	lexer.SLASH:    40,
}

func NewParser(scanner lexer.TokenScanner) *Parser {
	return &Parser{
		scanner: scanner,
		eh:      logo_errors.NewErrorHandler(),
		curr:    scanner.Read(),
	}
}

// Parse consumes the whole token stream. Anything left over that does not
// form a statement is an error, nothing is silently dropped.
func (p *Parser) Parse() (*ast.Program, error) {
	var program *ast.Program

	err := logo_errors.Catch(p.eh, func() {
		program = p.parseProgram()
	})
	if err != nil {
		return nil, err
	}

	return program, nil
}

func (p *Parser) parseProgram() *ast.Program {
	stmts := make([]ast.Stmt, 0)
	for p.curr.Kind != lexer.EOF {
		stmts = append(stmts, p.parseStmt())
	}

	return &ast.Program{
		Stmts: stmts,
	}
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.curr.Kind {
	case lexer.MAKE, lexer.ADDASSIGN:
		return p.parseAssignStmt()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.REPEAT:
		return p.parseRepeatStmt()
	case lexer.IDENT:
		p.eh.AddError(&UnknownCommandError{
			position: positionOf(p.curr),
			Name:     p.curr.Value,
		})
		p.eh.FailNow()
	}

	if kind, ok := ast.CommandForKeyword(p.curr.Kind); ok {
		return p.parseCommandStmt(kind)
	}

	p.expectedButGot("statement")
	panic("unreachable")
}

func (p *Parser) parseCommandStmt(kind ast.CommandKind) *ast.CommandStmt {
	startToken := p.curr
	p.read()

	args := make([]ast.Expr, 0, kind.Arity())
	for len(args) < kind.Arity() {
		if !p.isExprStart() {
			p.eh.AddError(newArityMismatchError(startToken, kind.String(), kind.Arity(), len(args)))
			p.eh.FailNow()
		}

		args = append(args, p.parseExpr())
	}

	if p.isExprStart() {
		p.eh.AddError(newArityMismatchError(p.curr, kind.String(), kind.Arity(), kind.Arity()+1))
		p.eh.FailNow()
	}

	command, err := ast.NewCommand(startToken, kind, args)
	if err != nil {
		var arityErr *ast.ArityError
		if errors.As(err, &arityErr) {
			p.eh.AddError(arityErrorFromAst(startToken, arityErr))
		} else {
			p.eh.AddError(&UnexpectedError{
				position:   positionOf(startToken),
				Unexpected: *startToken,
			})
		}
		p.eh.FailNow()
	}

	return command
}

func (p *Parser) parseAssignStmt() *ast.AssignStmt {
	p.expectAny(lexer.MAKE, lexer.ADDASSIGN)
	startToken := p.curr
	isAdd := p.curr.Kind == lexer.ADDASSIGN
	p.read()

	p.expect(lexer.WORD)
	name := p.curr.Value
	p.read()

	if !p.isExprStart() {
		p.eh.AddError(newArityMismatchError(startToken, startToken.Value, 2, 1))
		p.eh.FailNow()
	}
	value := p.parseExpr()

	if p.isExprStart() {
		p.eh.AddError(newArityMismatchError(p.curr, startToken.Value, 2, 3))
		p.eh.FailNow()
	}

	return &ast.AssignStmt{
		StartToken: startToken,

		Name:  name,
		Value: value,
		Add:   isAdd,
	}
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	p.expect(lexer.IF)
	startToken := p.curr
	p.read()

	cond := p.parseRequiredExpr("condition")
	body := p.parseBlock()

	return &ast.IfStmt{
		StartToken: startToken,

		Cond: cond,
		Body: body,
	}
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	p.expect(lexer.WHILE)
	startToken := p.curr
	p.read()

	cond := p.parseRequiredExpr("condition")
	body := p.parseBlock()

	return &ast.WhileStmt{
		StartToken: startToken,

		Cond: cond,
		Body: body,
	}
}

func (p *Parser) parseRepeatStmt() *ast.RepeatStmt {
	p.expect(lexer.REPEAT)
	startToken := p.curr
	p.read()

	count := p.parseRequiredExpr("repeat count")
	body := p.parseBlock()

	return &ast.RepeatStmt{
		StartToken: startToken,

		Count: count,
		Body:  body,
	}
}

func (p *Parser) parseBlock() *ast.Block {
	p.expect(lexer.LBRACKET)
	startToken := p.curr
	p.read()

	stmts := make([]ast.Stmt, 0)
	for p.curr.Kind != lexer.RBRACKET {
		if p.curr.Kind == lexer.EOF {
			p.eh.AddError(&UnterminatedBlockError{
				position: positionOf(p.curr),
				OpenedAt: startToken.Metadata,
			})
			p.eh.FailNow()
		}

		stmts = append(stmts, p.parseStmt())
	}

	p.expect(lexer.RBRACKET)
	p.read()

	return &ast.Block{
		StartToken: startToken,

		Stmts: stmts,
	}
}

func (p *Parser) parseRequiredExpr(what string) ast.Expr {
	if !p.isExprStart() {
		p.expectedButGot(what)
	}

	return p.parseExpr()
}

func (p *Parser) parseExpr() ast.Expr {
	left := p.parseUnaryExpr()
	return p.parseBinaryExpr(left, 0)
}

func (p *Parser) parseUnaryExpr() ast.Expr {
	if p.curr.Kind == lexer.MINUS {
		op := p.curr
		p.read()

		right := p.parseUnaryExpr()

		return &ast.PrefixExpr{
			StartToken: op,

			Op:    op,
			Right: right,
		}
	}

	return p.parsePrimaryExpr()
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	switch p.curr.Kind {
	case lexer.NUMBER:
		return p.parseNumberExpr()
	case lexer.VARIABLE:
		return p.parseVariableExpr()
	case lexer.LPAREN:
		return p.parseParenExpr()
	}

	if query, ok := ast.QueryForKeyword(p.curr.Kind); ok {
		startToken := p.curr
		p.read()

		return &ast.QueryExpr{
			StartToken: startToken,

			Query: query,
		}
	}

	p.expectedButGot("expression")
	panic("unreachable")
}

func (p *Parser) parseParenExpr() ast.Expr {
	p.expect(lexer.LPAREN)
	p.read()

	expr := p.parseRequiredExpr("expression")

	p.expect(lexer.RPAREN)
	p.read()

	return expr
}

func (p *Parser) parseBinaryExpr(left ast.Expr, bindingPower int) ast.Expr {
	for {
		op := p.curr
		currentBindingPower, ok := bindingPowerLookup[op.Kind]
		if !ok || currentBindingPower < bindingPower {
			return left
		}
		p.read()

		right := p.parseUnaryExpr()

		nextBindingPower, ok := bindingPowerLookup[p.curr.Kind]
		if ok && currentBindingPower < nextBindingPower {
			right = p.parseBinaryExpr(right, currentBindingPower+10)
		}

		left = &ast.BinaryExpr{
			StartToken: left.FirstToken(),

			Left:  left,
			Op:    op,
			Right: right,
		}
	}
}

func (p *Parser) parseNumberExpr() *ast.NumberExpr {
	p.expect(lexer.NUMBER)
	startToken := p.curr

	value, err := strconv.ParseFloat(p.curr.Value, 64)
	if err != nil {
		p.eh.AddError(&InvalidNumberError{
			position: positionOf(p.curr),
			Literal:  p.curr.Value,
		})
		p.eh.FailNow()
	}
	p.read()

	return &ast.NumberExpr{
		StartToken: startToken,

		Value: value,
	}
}

func (p *Parser) parseVariableExpr() *ast.VariableExpr {
	p.expect(lexer.VARIABLE)
	startToken := p.curr
	p.read()

	return &ast.VariableExpr{
		StartToken: startToken,

		Name: startToken.Value,
	}
}

// isExprStart reports whether the current token can begin an expression.
// It is how command arity is checked without lookahead into the grammar.
func (p *Parser) isExprStart() bool {
	if _, ok := ast.QueryForKeyword(p.curr.Kind); ok {
		return true
	}

	return p.isCurrAny(lexer.NUMBER, lexer.VARIABLE, lexer.LPAREN, lexer.MINUS)
}

func (p *Parser) read() *lexer.Token {
	p.curr = p.scanner.Read()
	return p.curr
}

func (p *Parser) expect(kind lexer.TokenKind) {
	if p.curr.Kind != kind {
		p.expectedButGot(kind.String())
	}
}

func (p *Parser) expectAny(kinds ...lexer.TokenKind) {
	if p.isCurrAny(kinds...) {
		return
	}

	expected := ""
	for i, kind := range kinds {
		if i > 0 {
			expected += " or "
		}
		expected += kind.String()
	}
	p.expectedButGot(expected)
}

func (p *Parser) isCurrAny(kinds ...lexer.TokenKind) bool {
	return slices.Contains(kinds, p.curr.Kind)
}

func (p *Parser) expectedButGot(expected string) {
	p.eh.AddError(&UnexpectedExpectedError{
		position: positionOf(p.curr),

		Unexpected: *p.curr,
		Expected:   expected,
	})
	p.eh.FailNow()
}
