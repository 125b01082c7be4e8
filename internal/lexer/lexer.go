package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/kievzenit/ylogo/internal/logo_errors"
)

type LexerError struct {
	Message string

	Line   int
	Column int
}

func newUnexpectedError(unexpected rune, line, column int) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf("unexpected character: '%s'", string(unexpected)),
		Line:    line,
		Column:  column,
	}
}

func newExpectedError(expected string, line, column int) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf("expected %s", expected),
		Line:    line,
		Column:  column,
	}
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func (e *LexerError) GetMessage() string          { return e.Message }
func (e *LexerError) GetPhase() logo_errors.Phase { return logo_errors.LexPhase }
func (e *LexerError) GetLine() int                { return e.Line }
func (e *LexerError) GetColumn() int              { return e.Column }
func (e *LexerError) GetLength() int              { return 1 }

type Lexer struct {
	buf []byte
	pos int

	line      int
	lineStart int

	eh *logo_errors.FirstErrorHandler
}

func NewLexer(buf []byte) *Lexer {
	return &Lexer{
		buf: buf,
		pos: 0,

		line: 1,

		eh: logo_errors.NewErrorHandler(),
	}
}

// Tokenize returns the token stream terminated by a single EOF token.
// Whitespace and // comments only separate tokens.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0)

	err := logo_errors.Catch(l.eh, func() {
		tokens = l.tokenize(tokens)
	})
	if err != nil {
		return nil, err
	}

	return tokens, nil
}

func (l *Lexer) tokenize(tokens []Token) []Token {
	for l.hasChars() {
		start := l.pos
		line, col := l.line, l.column()

		switch {
		case l.isCurrSkippable():
			if l.isCurrNewline() {
				l.line++
				l.lineStart = l.pos + 1
			}

		case l.read() == '/' && l.hasNext() && l.next() == '/':
			l.skipComment()

		case l.isCurrDigit():
			tokens = append(tokens, l.finish(l.processNumber(), start, line, col))

		case l.isCurrIdentifier():
			tokens = append(tokens, l.finish(l.processIdentifier(), start, line, col))

		case l.read() == ':':
			tokens = append(tokens, l.finish(l.processVariable(), start, line, col))

		case l.read() == '"':
			tokens = append(tokens, l.finish(l.processWord(), start, line, col))

		case l.isCurrPunctuation():
			tokens = append(tokens, l.finish(l.processPunctuation(), start, line, col))

		default:
			r, _ := utf8.DecodeRune(l.buf[l.pos:])
			l.eh.AddError(newUnexpectedError(r, line, col))
			l.eh.FailNow()
		}

		l.advance()
	}

	tokens = append(tokens, Token{
		Kind:  EOF,
		Value: EOF.String(),
		Metadata: TokenMetadata{
			Line:   l.line,
			Column: l.column(),
			Offset: l.pos,
		},
	})

	return tokens
}

// finish stamps position metadata onto a token whose last byte is at l.pos.
func (l *Lexer) finish(token Token, start, line, col int) Token {
	token.Metadata = TokenMetadata{
		Line:   line,
		Column: col,
		Length: l.pos - start + 1,
		Offset: start,
	}
	return token
}

func (l *Lexer) column() int {
	return l.pos - l.lineStart + 1
}

func (l *Lexer) isCurrIdentifier() bool {
	return (l.read() >= 'a' && l.read() <= 'z') || (l.read() >= 'A' && l.read() <= 'Z') || l.read() == '_'
}

func (l *Lexer) isCurrDigit() bool {
	return l.read() >= '0' && l.read() <= '9'
}

func (l *Lexer) isCurrPunctuation() bool {
	switch l.read() {
	case '+', '-', '*', '/', '=', '<', '>', '(', ')', '[', ']':
		return true
	}
	return false
}

func (l *Lexer) isCurrNewline() bool {
	return l.read() == '\n'
}

func (l *Lexer) isCurrSkippable() bool {
	switch l.read() {
	case ' ', '\t', '\n', '\r':
		return true
	}

	return false
}

func (l *Lexer) skipComment() {
	for l.hasNext() && l.next() != '\n' {
		l.advance()
	}
}

func (l *Lexer) readName() string {
	nameBuf := make([]byte, 0)
	nameBuf = append(nameBuf, l.read())
	l.advance()

	for l.hasChars() {
		if !l.isCurrIdentifier() && !l.isCurrDigit() {
			break
		}

		nameBuf = append(nameBuf, l.read())
		l.advance()
	}
	l.unread()

	return string(nameBuf)
}

func (l *Lexer) processIdentifier() Token {
	identifier := l.readName()

	if kind, ok := LookupKeyword(identifier); ok {
		return Token{
			Kind:  kind,
			Value: identifier,
		}
	}

	return Token{
		Kind:  IDENT,
		Value: identifier,
	}
}

func (l *Lexer) processVariable() Token {
	line, col := l.line, l.column()

	l.advance()
	if !l.hasChars() || !l.isCurrIdentifier() {
		l.eh.AddError(newExpectedError("variable name after ':'", line, col))
		l.eh.FailNow()
	}

	return Token{
		Kind:  VARIABLE,
		Value: l.readName(),
	}
}

// processWord handles "NAME, "NAME" and quoted numbers such as "100 or "-2.5.
func (l *Lexer) processWord() Token {
	line, col := l.line, l.column()

	l.advance()
	if !l.hasChars() {
		l.eh.AddError(newExpectedError("word after '\"'", line, col))
		l.eh.FailNow()
	}

	var token Token
	switch {
	case l.isCurrDigit() || (l.read() == '-' && l.hasNext() && isDigit(l.next())):
		negative := l.read() == '-'
		if negative {
			l.advance()
		}
		token = l.processNumber()
		if negative {
			token.Value = "-" + token.Value
		}
	case l.isCurrIdentifier():
		token = Token{
			Kind:  WORD,
			Value: l.readName(),
		}
	default:
		l.eh.AddError(newExpectedError("word after '\"'", line, col))
		l.eh.FailNow()
	}

	if l.hasNext() && l.next() == '"' {
		l.advance()
	}

	return token
}

func (l *Lexer) processNumber() Token {
	numberBuf := make([]byte, 0)
	numberBuf = append(numberBuf, l.read())
	l.advance()

	var isFloat bool
	for l.hasChars() {
		if !isFloat && l.read() == '.' {
			if !l.hasNext() || !isDigit(l.next()) {
				break
			}

			isFloat = true
			numberBuf = append(numberBuf, l.read())
			l.advance()
			continue
		}

		if !l.isCurrDigit() {
			break
		}

		numberBuf = append(numberBuf, l.read())
		l.advance()
	}
	l.unread()

	return Token{
		Kind:  NUMBER,
		Value: string(numberBuf),
	}
}

func (l *Lexer) processLessThan() Token {
	if l.hasNext() && l.next() == '>' {
		l.advance()
		return Token{
			Kind:  NEQ,
			Value: "<>",
		}
	}

	return Token{
		Kind:  LT,
		Value: "<",
	}
}

func (l *Lexer) processPunctuation() Token {
	switch l.read() {
	case '+':
		return Token{Kind: PLUS, Value: "+"}
	case '-':
		return Token{Kind: MINUS, Value: "-"}
	case '*':
		return Token{Kind: ASTERISK, Value: "*"}
	case '/':
		return Token{Kind: SLASH, Value: "/"}
	case '=':
		return Token{Kind: EQ, Value: "="}
	case '<':
		return l.processLessThan()
	case '>':
		return Token{Kind: GT, Value: ">"}
	case '(':
		return Token{Kind: LPAREN, Value: "("}
	case ')':
		return Token{Kind: RPAREN, Value: ")"}
	case '[':
		return Token{Kind: LBRACKET, Value: "["}
	case ']':
		return Token{Kind: RBRACKET, Value: "]"}
	}

	panic("unreachable")
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.buf)
}

func (l *Lexer) hasNext() bool {
	return l.pos+1 < len(l.buf)
}

func (l *Lexer) advance()   { l.pos++ }
func (l *Lexer) next() byte { return l.buf[l.pos+1] }
func (l *Lexer) read() byte { return l.buf[l.pos] }
func (l *Lexer) unread()    { l.pos-- }
