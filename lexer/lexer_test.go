package lexer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to test the lexer. Spans are not compared.
func testLexer(t *testing.T, input string, expectedTokens []Token) {
	t.Helper()

	tokens := New(input).Tokens()
	if len(tokens) != len(expectedTokens) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expectedTokens), len(tokens), tokens)
	}
	for i, expectedToken := range expectedTokens {
		token := tokens[i]

		if token.Type != expectedToken.Type {
			t.Fatalf("tests[%d] - wrong type. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Type, expectedToken, token.Type, token)
		}

		if token.Value != expectedToken.Value {
			t.Fatalf("tests[%d] - wrong value. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Value, expectedToken, token.Value, token)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if len(tokenTypeStrings) != int(FinalToken) {
		t.Fatalf("Expected %d token types in tokenTypeStrings, got %d", FinalToken, len(tokenTypeStrings))
	}
	assert.Equal(t, "TokenType(999)", TokenType(999).String())
}

func TestLexerLetStatement(t *testing.T) {
	input := "let a = 1;"
	expectedTokens := []Token{
		{Type: TokLet, Value: "let"},
		{Type: TokIdentifier, Value: "a"},
		{Type: TokEquals, Value: "="},
		{Type: TokNumber, Value: "1"},
		{Type: TokSemicolon, Value: ";"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerKeywords(t *testing.T) {
	input := "let const class function print if else while for return true false super this lettuce"
	expectedTokens := []Token{
		{Type: TokLet, Value: "let"},
		{Type: TokConst, Value: "const"},
		{Type: TokClass, Value: "class"},
		{Type: TokFunction, Value: "function"},
		{Type: TokPrint, Value: "print"},
		{Type: TokIf, Value: "if"},
		{Type: TokElse, Value: "else"},
		{Type: TokWhile, Value: "while"},
		{Type: TokFor, Value: "for"},
		{Type: TokReturn, Value: "return"},
		{Type: TokTrue, Value: "true"},
		{Type: TokFalse, Value: "false"},
		{Type: TokSuper, Value: "super"},
		{Type: TokThis, Value: "this"},
		{Type: TokIdentifier, Value: "lettuce"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerOperators(t *testing.T) {
	input := "+ - * / % & | ^ ! = == != < <= > >= && || += -= *= /= %= &= |= ^= , . ; ( ) { }"
	expectedTokens := []Token{
		{Type: TokPlus, Value: "+"},
		{Type: TokMinus, Value: "-"},
		{Type: TokStar, Value: "*"},
		{Type: TokSlash, Value: "/"},
		{Type: TokPercent, Value: "%"},
		{Type: TokAmpersand, Value: "&"},
		{Type: TokPipe, Value: "|"},
		{Type: TokCaret, Value: "^"},
		{Type: TokBang, Value: "!"},
		{Type: TokEquals, Value: "="},
		{Type: TokEqualEqual, Value: "=="},
		{Type: TokBangEqual, Value: "!="},
		{Type: TokLess, Value: "<"},
		{Type: TokLessEqual, Value: "<="},
		{Type: TokGreater, Value: ">"},
		{Type: TokGreaterEqual, Value: ">="},
		{Type: TokLogicalAnd, Value: "&&"},
		{Type: TokLogicalOr, Value: "||"},
		{Type: TokPlusEquals, Value: "+="},
		{Type: TokMinusEquals, Value: "-="},
		{Type: TokStarEquals, Value: "*="},
		{Type: TokSlashEquals, Value: "/="},
		{Type: TokPercentEquals, Value: "%="},
		{Type: TokAmpersandEquals, Value: "&="},
		{Type: TokPipeEquals, Value: "|="},
		{Type: TokCaretEquals, Value: "^="},
		{Type: TokComma, Value: ","},
		{Type: TokDot, Value: "."},
		{Type: TokSemicolon, Value: ";"},
		{Type: TokParenLeft, Value: "("},
		{Type: TokParenRight, Value: ")"},
		{Type: TokBraceLeft, Value: "{"},
		{Type: TokBraceRight, Value: "}"},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerCases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "Empty input",
			input:    "",
			expected: []Token{{Type: TokEOF}},
		},
		{
			name:     "Only whitespace",
			input:    "   \t   \n  \r\n ",
			expected: []Token{{Type: TokEOF}},
		},
		{
			name:  "Adjacent operators",
			input: "a>=-b",
			expected: []Token{
				{Type: TokIdentifier, Value: "a"},
				{Type: TokGreaterEqual, Value: ">="},
				{Type: TokMinus, Value: "-"},
				{Type: TokIdentifier, Value: "b"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Decimal number",
			input: "3.25",
			expected: []Token{
				{Type: TokNumber, Value: "3.25"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Number followed by member access",
			input: "1.foo",
			expected: []Token{
				{Type: TokNumber, Value: "1"},
				{Type: TokDot, Value: "."},
				{Type: TokIdentifier, Value: "foo"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Double quoted string",
			input: `"hello world"`,
			expected: []Token{
				{Type: TokString, Value: "hello world"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Single quoted string",
			input: `'say "hi"'`,
			expected: []Token{
				{Type: TokString, Value: `say "hi"`},
				{Type: TokEOF},
			},
		},
		{
			name:  "Escaped quotes in string",
			input: `"String with \"escaped quotes\"\n"`,
			expected: []Token{
				{Type: TokString, Value: "String with \"escaped quotes\"\n"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Empty quotes",
			input: `"" ''`,
			expected: []Token{
				{Type: TokString, Value: ""},
				{Type: TokString, Value: ""},
				{Type: TokEOF},
			},
		},
		{
			name:  "Comment",
			input: "print 1; // the answer\nprint 2;",
			expected: []Token{
				{Type: TokPrint, Value: "print"},
				{Type: TokNumber, Value: "1"},
				{Type: TokSemicolon, Value: ";"},
				{Type: TokPrint, Value: "print"},
				{Type: TokNumber, Value: "2"},
				{Type: TokSemicolon, Value: ";"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Comment at end of input",
			input: "a // trailing",
			expected: []Token{
				{Type: TokIdentifier, Value: "a"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Slash equals is not a comment",
			input: "a /= 2",
			expected: []Token{
				{Type: TokIdentifier, Value: "a"},
				{Type: TokSlashEquals, Value: "/="},
				{Type: TokNumber, Value: "2"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Unicode identifier",
			input: "café_1",
			expected: []Token{
				{Type: TokIdentifier, Value: "café_1"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Unclosed double quotes",
			input: `print "This string is not closed`,
			expected: []Token{
				{Type: TokPrint, Value: "print"},
				{Type: TokError, Value: "unterminated string"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Unknown escape",
			input: `"a\qb" 1`,
			expected: []Token{
				{Type: TokError, Value: `unknown escape sequence: \q`},
				{Type: TokEOF},
			},
		},
		{
			name:  "Special characters",
			input: "a @ b",
			expected: []Token{
				{Type: TokIdentifier, Value: "a"},
				{Type: TokError, Value: "unexpected character: '@'"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Invalid UTF-8 byte",
			input: "\xff",
			expected: []Token{
				{Type: TokError, Value: "invalid UTF-8 encoding"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Invalid UTF-8 after identifier",
			input: "ab\xff",
			expected: []Token{
				{Type: TokIdentifier, Value: "ab"},
				{Type: TokError, Value: "invalid UTF-8 encoding"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Invalid UTF-8 in string",
			input: "print \"a\xffb\";",
			expected: []Token{
				{Type: TokPrint, Value: "print"},
				{Type: TokError, Value: "invalid UTF-8 encoding"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Invalid UTF-8 in comment",
			input: "a // \xff\nb",
			expected: []Token{
				{Type: TokIdentifier, Value: "a"},
				{Type: TokIdentifier, Value: "b"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Replacement character in string",
			input: "\"\uFFFD\" x",
			expected: []Token{
				{Type: TokString, Value: "\uFFFD"},
				{Type: TokIdentifier, Value: "x"},
				{Type: TokEOF},
			},
		},
		{
			name:  "Multibyte character after identifier",
			input: "ab€",
			expected: []Token{
				{Type: TokIdentifier, Value: "ab"},
				{Type: TokError, Value: "unexpected character: '€'"},
				{Type: TokEOF},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testLexer(t, tt.input, tt.expected)
		})
	}
}

func TestLexerSpans(t *testing.T) {
	input := "let a = 1;\nprint \"hi\";"
	tokens := New(input).Tokens()
	require.Len(t, tokens, 9)

	tests := []struct {
		tt                TokenType
		line, start, end int
	}{
		{TokLet, 1, 0, 3},
		{TokIdentifier, 1, 4, 5},
		{TokEquals, 1, 6, 7},
		{TokNumber, 1, 8, 9},
		{TokSemicolon, 1, 9, 10},
		{TokPrint, 2, 11, 16},
		{TokString, 2, 17, 21},
		{TokSemicolon, 2, 21, 22},
		{TokEOF, 2, 22, 22},
	}
	for i, tt := range tests {
		tok := tokens[i]
		assert.Equal(t, tt.tt, tok.Type, "token %d", i)
		assert.Equal(t, tt.line, tok.Line, "token %d line", i)
		assert.Equal(t, tt.start, tok.Start, "token %d start", i)
		assert.Equal(t, tt.end, tok.End, "token %d end", i)
		assert.Equal(t, input[tok.Start:tok.End], input[tt.start:tt.end])
	}
}

func TestLexerMultilineStringSpan(t *testing.T) {
	tokens := New("\"a\nb\" c").Tokens()
	require.Len(t, tokens, 3)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, "a\nb", tokens[0].Value)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 6, tokens[1].Start)
}

func TestLexerEOFRepeats(t *testing.T) {
	lex := New("x")
	require.Equal(t, TokIdentifier, lex.NextToken().Type)
	for i := 0; i < 3; i++ {
		tok := lex.NextToken()
		assert.Equal(t, TokEOF, tok.Type)
		assert.Equal(t, 1, tok.Start)
		assert.Equal(t, 1, tok.End)
	}
}

func TestLexerErrorThenEOF(t *testing.T) {
	lex := New("a $ b c")
	require.Equal(t, TokIdentifier, lex.NextToken().Type)

	tok := lex.NextToken()
	require.Equal(t, TokError, tok.Type)
	assert.Equal(t, 2, tok.Start)
	assert.Equal(t, 3, tok.End)

	for i := 0; i < 2; i++ {
		assert.Equal(t, TokEOF, lex.NextToken().Type)
	}
}

func TestLexerInvalidUTF8Spans(t *testing.T) {
	tests := []struct {
		input      string
		start, end int
	}{
		{"\xff", 0, 1},
		{"ab\xff", 2, 3},
		{"print 1;\xff", 8, 9},
		{"x\n\xfe\xff", 2, 3},
		{"print \"a\xffb\";", 6, 9},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			tokens := New(tt.input).Tokens()
			require.GreaterOrEqual(t, len(tokens), 2)

			tok := tokens[len(tokens)-2]
			assert.Equal(t, TokError, tok.Type)
			assert.Equal(t, "invalid UTF-8 encoding", tok.Value)
			assert.Equal(t, tt.start, tok.Start)
			assert.Equal(t, tt.end, tok.End)
			assert.Equal(t, TokEOF, tokens[len(tokens)-1].Type)
		})
	}
}

func TestTokenDescribe(t *testing.T) {
	assert.Equal(t, "foo", Token{Type: TokIdentifier, Value: "foo"}.Describe())
	assert.Equal(t, "1.5", Token{Type: TokNumber, Value: "1.5"}.Describe())
	assert.Equal(t, `"hi"`, Token{Type: TokString, Value: "hi"}.Describe())
	assert.Equal(t, ";", Token{Type: TokSemicolon, Value: ";"}.Describe())
	assert.Equal(t, "EOF", Token{Type: TokEOF}.Describe())
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, `IDENTIFIER[2:7]: "foo"`, Token{Type: TokIdentifier, Value: "foo", Line: 2, Start: 7}.String())
	assert.Equal(t, "EOF", Token{Type: TokEOF}.String())
	assert.Equal(t, "ERROR [1:0]: boom", Token{Type: TokError, Value: "boom", Line: 1}.String())
}
