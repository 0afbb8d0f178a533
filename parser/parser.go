// Package parser implements a single-token-lookahead recursive-descent
// parser producing an ast.Program from a token stream.
//
// Parsing is fail-fast: the first malformed construct aborts the parse and
// is returned as a *diag.Error of kind KindSyntax (token mismatch) or
// KindParse (structural violation). No partial tree is returned.
package parser

import (
	"io"

	"go.creack.net/yai/ast"
	"go.creack.net/yai/diag"
	"go.creack.net/yai/lexer"
)

// DefaultMaxDepth bounds statement and expression nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 256

// TokenSource produces tokens on demand. After the end of input it must
// keep returning a lexer.TokEOF token.
type TokenSource interface {
	NextToken() lexer.Token
}

// Options tunes the parser.
type Options struct {
	MaxDepth int // Maximum nesting of statements and expressions. 0 means DefaultMaxDepth.
}

type parser struct {
	src TokenSource

	prevToken lexer.Token
	curToken  lexer.Token

	maxDepth int
	depth    int
}

// Parser yields the statements of a program.
type Parser interface {
	// NextStatement returns the next top-level statement, or io.EOF once
	// the token source is exhausted.
	NextStatement() (ast.Stmt, error)
	// ParseProgram consumes the remaining statements.
	ParseProgram() (ast.Program, error)
}

func newParser(src TokenSource, opts Options) *parser {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &parser{
		src:       src,
		prevToken: lexer.Token{Type: lexer.TokEOF},
		curToken:  src.NextToken(),
		maxDepth:  opts.MaxDepth,
	}
}

// New creates a parser reading from src.
func New(src TokenSource, opts Options) Parser {
	return newParser(src, opts)
}

// Parse parses a whole program with default options.
func Parse(src TokenSource) (ast.Program, error) {
	return newParser(src, Options{}).ParseProgram()
}

// ParseString lexes and parses input.
func ParseString(input string) (ast.Program, error) {
	return Parse(lexer.New(input))
}

func (p *parser) NextStatement() (ast.Stmt, error) {
	if p.is(lexer.TokEOF) {
		return nil, io.EOF
	}
	return parseDeclaration(p)
}

func (p *parser) ParseProgram() (ast.Program, error) {
	var stmts []ast.Stmt
	for {
		stmt, err := p.NextStatement()
		if err == io.EOF {
			return ast.Program{Statements: stmts}, nil
		}
		if err != nil {
			return ast.Program{}, err
		}
		stmts = append(stmts, stmt)
	}
}

// is reports whether the current token is of the given type.
func (p *parser) is(kind lexer.TokenType) bool {
	return p.curToken.Type == kind
}

// advance consumes the current token and returns its type.
func (p *parser) advance() lexer.TokenType {
	p.prevToken = p.curToken
	p.curToken = p.src.NextToken()
	return p.prevToken.Type
}

// expect consumes the current token if it is of the expected type.
func (p *parser) expect(kind lexer.TokenType) (lexer.TokenType, error) {
	if p.is(kind) {
		return p.advance(), nil
	}
	return 0, p.unexpected("expected %q, found %q", kind.String(), p.curToken.Describe())
}

// identifier consumes an identifier and returns its name.
func (p *parser) identifier() (string, error) {
	if !p.is(lexer.TokIdentifier) {
		return "", p.unexpected("expected identifier, found %q", p.curToken.Describe())
	}
	p.advance()
	return p.prevToken.Value, nil
}

// unexpected reports a syntax error at the current token. A scanner error
// token takes precedence, its message being more precise.
func (p *parser) unexpected(format string, args ...any) error {
	if p.is(lexer.TokError) {
		return diag.Syntaxf(p.curToken.Span(), "%s", p.curToken.Value)
	}
	return diag.Syntaxf(p.curToken.Span(), format, args...)
}

// enter guards recursion depth. Every successful call must be paired with leave.
func (p *parser) enter() error {
	if p.depth >= p.maxDepth {
		return diag.Parsef(p.curToken.Span(), "maximum nesting depth exceeded")
	}
	p.depth++
	return nil
}

func (p *parser) leave() {
	p.depth--
}
