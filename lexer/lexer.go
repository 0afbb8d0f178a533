// Package lexer turns source text into a pull-based stream of tokens.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const eof rune = -1

type Lexer struct {
	input string

	curToken Token

	pos   int // Current position in input.
	line  int // Current line in input.
	width int // Width of the last rune read by next.

	start     int // Position of the start of the current token.
	startLine int // Line where the current token started.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{
		input:     input,
		line:      1,
		startLine: 1,
	}
}

// NextToken returns the next token. Once the input is exhausted,
// or after an error token, it keeps returning TokEOF.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Tokens drains the lexer, up to and including the first TokEOF.
func (l *Lexer) Tokens() []Token {
	var out []Token
	for {
		tok := l.NextToken()
		out = append(out, tok)
		if tok.Type == TokEOF {
			return out
		}
	}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = n
	l.pos += n
	if r == '\n' {
		l.line++
	}
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *Lexer) backup(r rune) {
	if r == eof {
		return
	}
	l.pos -= l.width
	if r == '\n' {
		l.line--
	}
}

// invalid reports whether r, just returned by next, stands for a byte
// that is not valid UTF-8.
func (l *Lexer) invalid(r rune) bool {
	return r == utf8.RuneError && l.width == 1
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup(r)
	return r
}

// peekN returns the rune n positions ahead without consuming anything.
func (l *Lexer) peekN(n int) rune {
	pos := l.pos
	for i := 0; i < n; i++ {
		if pos >= len(l.input) {
			return eof
		}
		_, w := utf8.DecodeRuneInString(l.input[pos:])
		pos += w
	}
	if pos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return r
}

func (l *Lexer) accept(valid string) bool {
	r := l.next()
	if r != eof && strings.ContainsRune(valid, r) {
		return true
	}
	l.backup(r)
	return false
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for l.accept(valid) {
		accepted = true
	}
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		Line:  l.startLine,
		Start: l.start,
		End:   l.pos,
	}
	l.start = l.pos
	l.startLine = l.line
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
	l.startLine = l.line
}

// errorf emits an error token and truncates the input so that
// every following call yields TokEOF.
func (l *Lexer) errorf(format string, args ...any) stateFn {
	l.curToken = Token{
		Type:  TokError,
		Value: fmt.Sprintf(format, args...),
		Line:  l.startLine,
		Start: l.start,
		End:   l.pos,
	}
	l.input = l.input[:l.pos]
	l.start = l.pos
	l.startLine = l.line
	return nil
}
