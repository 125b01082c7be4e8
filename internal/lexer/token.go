package lexer

import (
	"fmt"
)

type TokenKind int

const (
	EOF TokenKind = iota

	NUMBER
	WORD     // "NAME
	VARIABLE // :NAME
	IDENT

	PLUS     // +
	MINUS    // -
	ASTERISK // *
	SLASH    // /

	EQ  // =
	NEQ // <>
	LT  // <
	GT  // >

	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]

	keywordsStart

	PENUP
	PENDOWN
	FORWARD
	BACK
	LEFT
	RIGHT
	TURN
	SETHEADING
	SETX
	SETY
	SETPOS
	HOME
	SETPENCOLOR
	MAKE
	ADDASSIGN
	IF
	WHILE
	REPEAT
	AND
	OR
	XCOR
	YCOR
	HEADING
	COLOR

	keywordsEnd
)

var tokenKindNames = map[TokenKind]string{
	EOF:         "EOF",
	NUMBER:      "NUMBER",
	WORD:        "WORD",
	VARIABLE:    "VARIABLE",
	IDENT:       "IDENT",
	PLUS:        "PLUS",
	MINUS:       "MINUS",
	ASTERISK:    "ASTERISK",
	SLASH:       "SLASH",
	EQ:          "EQ",
	NEQ:         "NEQ",
	LT:          "LT",
	GT:          "GT",
	LPAREN:      "LPAREN",
	RPAREN:      "RPAREN",
	LBRACKET:    "LBRACKET",
	RBRACKET:    "RBRACKET",
	PENUP:       "PENUP",
	PENDOWN:     "PENDOWN",
	FORWARD:     "FORWARD",
	BACK:        "BACK",
	LEFT:        "LEFT",
	RIGHT:       "RIGHT",
	TURN:        "TURN",
	SETHEADING:  "SETHEADING",
	SETX:        "SETX",
	SETY:        "SETY",
	SETPOS:      "SETPOS",
	HOME:        "HOME",
	SETPENCOLOR: "SETPENCOLOR",
	MAKE:        "MAKE",
	ADDASSIGN:   "ADDASSIGN",
	IF:          "IF",
	WHILE:       "WHILE",
	REPEAT:      "REPEAT",
	AND:         "AND",
	OR:          "OR",
	XCOR:        "XCOR",
	YCOR:        "YCOR",
	HEADING:     "HEADING",
	COLOR:       "COLOR",
}

// keywords are matched case-sensitively: "forward" is an IDENT, not FORWARD.
var keywords = func() map[string]TokenKind {
	m := make(map[string]TokenKind, int(keywordsEnd-keywordsStart))
	for kind := keywordsStart + 1; kind < keywordsEnd; kind++ {
		m[tokenKindNames[kind]] = kind
	}
	return m
}()

func (tk TokenKind) String() string {
	name, ok := tokenKindNames[tk]
	if !ok {
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
	return name
}

func LookupKeyword(ident string) (TokenKind, bool) {
	kind, ok := keywords[ident]
	return kind, ok
}

type TokenMetadata struct {
	Line   int
	Column int
	Length int
	Offset int
}

type Token struct {
	Kind     TokenKind
	Value    string
	Metadata TokenMetadata
}

func (t *Token) hasActualValue() bool {
	switch t.Kind {
	case NUMBER, WORD, VARIABLE, IDENT:
		return true
	}

	return false
}

func (t *Token) String() string {
	if !t.hasActualValue() {
		return fmt.Sprintf("%s()", t.Kind)
	}

	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}
