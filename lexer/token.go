package lexer

import (
	"fmt"
	"slices"

	"go.creack.net/yai/diag"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Identifiers + literals.
	TokIdentifier
	TokNumber
	TokString

	// Keywords.
	TokLet
	TokConst
	TokClass
	TokFunction
	TokPrint
	TokIf
	TokElse
	TokWhile
	TokFor
	TokReturn
	TokTrue
	TokFalse
	TokSuper
	TokThis

	// Operators.
	TokPlus
	TokMinus
	TokStar
	TokSlash
	TokPercent
	TokAmpersand
	TokPipe
	TokCaret
	TokBang
	TokEquals
	TokEqualEqual
	TokBangEqual
	TokLess
	TokLessEqual
	TokGreater
	TokGreaterEqual
	TokLogicalAnd
	TokLogicalOr

	// Compound assignments.
	TokPlusEquals
	TokMinusEquals
	TokStarEquals
	TokSlashEquals
	TokPercentEquals
	TokAmpersandEquals
	TokPipeEquals
	TokCaretEquals

	// Delimiters.
	TokComma
	TokDot
	TokSemicolon
	TokParenLeft
	TokParenRight
	TokBraceLeft
	TokBraceRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	if s, ok := tokenTypeStrings[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Map of token types to their string representation.
// Keywords and operators map to their source text.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokIdentifier: "IDENTIFIER",
	TokNumber:     "NUMBER",
	TokString:     "STRING",

	TokLet:      "let",
	TokConst:    "const",
	TokClass:    "class",
	TokFunction: "function",
	TokPrint:    "print",
	TokIf:       "if",
	TokElse:     "else",
	TokWhile:    "while",
	TokFor:      "for",
	TokReturn:   "return",
	TokTrue:     "true",
	TokFalse:    "false",
	TokSuper:    "super",
	TokThis:     "this",

	TokPlus:         "+",
	TokMinus:        "-",
	TokStar:         "*",
	TokSlash:        "/",
	TokPercent:      "%",
	TokAmpersand:    "&",
	TokPipe:         "|",
	TokCaret:        "^",
	TokBang:         "!",
	TokEquals:       "=",
	TokEqualEqual:   "==",
	TokBangEqual:    "!=",
	TokLess:         "<",
	TokLessEqual:    "<=",
	TokGreater:      ">",
	TokGreaterEqual: ">=",
	TokLogicalAnd:   "&&",
	TokLogicalOr:    "||",

	TokPlusEquals:      "+=",
	TokMinusEquals:     "-=",
	TokStarEquals:      "*=",
	TokSlashEquals:     "/=",
	TokPercentEquals:   "%=",
	TokAmpersandEquals: "&=",
	TokPipeEquals:      "|=",
	TokCaretEquals:     "^=",

	TokComma:      ",",
	TokDot:        ".",
	TokSemicolon:  ";",
	TokParenLeft:  "(",
	TokParenRight: ")",
	TokBraceLeft:  "{",
	TokBraceRight: "}",
}

var keywords = map[string]TokenType{
	"let":      TokLet,
	"const":    TokConst,
	"class":    TokClass,
	"function": TokFunction,
	"print":    TokPrint,
	"if":       TokIf,
	"else":     TokElse,
	"while":    TokWhile,
	"for":      TokFor,
	"return":   TokReturn,
	"true":     TokTrue,
	"false":    TokFalse,
	"super":    TokSuper,
	"this":     TokThis,
}

// Operators made of two runes. The first rune is always a valid single operator.
var doubles = map[string]TokenType{
	"==": TokEqualEqual,
	"!=": TokBangEqual,
	"<=": TokLessEqual,
	">=": TokGreaterEqual,
	"&&": TokLogicalAnd,
	"||": TokLogicalOr,
	"+=": TokPlusEquals,
	"-=": TokMinusEquals,
	"*=": TokStarEquals,
	"/=": TokSlashEquals,
	"%=": TokPercentEquals,
	"&=": TokAmpersandEquals,
	"|=": TokPipeEquals,
	"^=": TokCaretEquals,
}

var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokMinus,
	'*': TokStar,
	'/': TokSlash,
	'%': TokPercent,
	'&': TokAmpersand,
	'|': TokPipe,
	'^': TokCaret,
	'!': TokBang,
	'=': TokEquals,
	'<': TokLess,
	'>': TokGreater,
	',': TokComma,
	'.': TokDot,
	';': TokSemicolon,
	'(': TokParenLeft,
	')': TokParenRight,
	'{': TokBraceLeft,
	'}': TokBraceRight,
}

// LookupIdent returns the keyword token type for ident, or TokIdentifier.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return TokIdentifier
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token.
type Token struct {
	Type  TokenType
	Value string // Identifier name, number text, unescaped string or error message.

	Line  int // Line where the token starts.
	Start int // Byte offset of the first character.
	End   int // Byte offset after the last character.
}

// Span returns the location of the token.
func (t Token) Span() diag.Span {
	return diag.Span{Line: t.Line, Start: t.Start, End: t.End}
}

// Describe returns the token as it should appear in a diagnostic.
func (t Token) Describe() string {
	switch t.Type {
	case TokIdentifier, TokNumber:
		return t.Value
	case TokString:
		return fmt.Sprintf("%q", t.Value)
	}
	return t.Type.String()
}

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case t.Type == TokError:
		return t.errorString()
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d:%d]: %.16q", t.Type, t.Line, t.Start, t.Value)
	}
	return fmt.Sprintf("%s[%d:%d]: %q", t.Type, t.Line, t.Start, t.Value)
}

func (t Token) errorString() string {
	return fmt.Sprintf("ERROR [%d:%d]: %s", t.Line, t.Start, t.Value)
}
