package lexer

import (
	"strings"
	"unicode"
)

type stateFn func(*Lexer) stateFn

const digits = "0123456789"

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentChar(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func lexText(l *Lexer) stateFn {
	for {
		switch r := l.peek(); {
		case r == eof:
			l.ignore()
			return l.emit(TokEOF)
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			l.acceptRun(" \t\r\n")
			l.ignore()
		case r == '/' && l.peekN(1) == '/':
			return lexComment
		case r == '"', r == '\'':
			return lexString(r)
		case r >= '0' && r <= '9':
			return lexNumber
		case isIdentStart(r):
			return lexIdentifier
		default:
			return lexOperator
		}
	}
}

func lexComment(l *Lexer) stateFn {
	for r := l.next(); r != '\n' && r != eof; r = l.next() {
	}
	l.ignore()
	return lexText
}

func lexOperator(l *Lexer) stateFn {
	r := l.next()
	if l.invalid(r) {
		return l.errorf("invalid UTF-8 encoding")
	}
	if tt, ok := doubles[string(r)+string(l.peek())]; ok {
		l.next()
		return l.emit(tt)
	}
	if tt, ok := singles[r]; ok {
		return l.emit(tt)
	}
	return l.errorf("unexpected character: %q", r)
}

func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digits)
	if l.peek() == '.' && strings.ContainsRune(digits, l.peekN(1)) {
		l.next()
		l.acceptRun(digits)
	}
	return l.emit(TokNumber)
}

func lexIdentifier(l *Lexer) stateFn {
	for isIdentChar(l.peek()) {
		l.next()
	}
	tok := l.thisToken(TokIdentifier)
	tok.Type = LookupIdent(tok.Value)
	return l.emitToken(tok)
}

var escapes = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
}

func lexString(quote rune) stateFn {
	return func(l *Lexer) stateFn {
		l.next() // Opening quote.
		var sb strings.Builder
		for {
			r := l.next()
			if l.invalid(r) {
				return l.errorf("invalid UTF-8 encoding")
			}
			switch r {
			case eof:
				return l.errorf("unterminated string")
			case quote:
				tok := l.thisToken(TokString)
				tok.Value = sb.String()
				return l.emitToken(tok)
			case '\\':
				esc := l.next()
				unescaped, ok := escapes[esc]
				if !ok {
					if esc == eof {
						return l.errorf("unterminated string")
					}
					return l.errorf("unknown escape sequence: \\%c", esc)
				}
				sb.WriteRune(unescaped)
			default:
				sb.WriteRune(r)
			}
		}
	}
}
