package parser

import (
	"go.creack.net/yai/lexer"
)

// bindingPower orders the expression grammar, lowest binding first.
type bindingPower int

const (
	bpAssignment bindingPower = iota
	bpLogicalOr
	bpLogicalAnd
	bpEquality
	bpComparison
	bpAdditive
	bpMultiplicative
	bpUnary
	bpCall
	bpPrimary
)

// binaryLevel describes one left-associative operator level.
type binaryLevel struct {
	ops     []lexer.TokenType
	logical bool // Fold into ast.LogicalExpr instead of ast.BinaryExpr.
}

var binaryLevels = map[bindingPower]binaryLevel{
	bpLogicalOr:      {ops: []lexer.TokenType{lexer.TokLogicalOr}, logical: true},
	bpLogicalAnd:     {ops: []lexer.TokenType{lexer.TokLogicalAnd}, logical: true},
	bpEquality:       {ops: []lexer.TokenType{lexer.TokEqualEqual, lexer.TokBangEqual}, logical: true},
	bpComparison:     {ops: []lexer.TokenType{lexer.TokGreater, lexer.TokGreaterEqual, lexer.TokLess, lexer.TokLessEqual}, logical: true},
	bpAdditive:       {ops: []lexer.TokenType{lexer.TokPlus, lexer.TokMinus, lexer.TokAmpersand, lexer.TokPipe, lexer.TokCaret}},
	bpMultiplicative: {ops: []lexer.TokenType{lexer.TokStar, lexer.TokSlash}},
}

var unaryOps = []lexer.TokenType{lexer.TokMinus, lexer.TokPlus, lexer.TokBang}

var assignmentOps = []lexer.TokenType{
	lexer.TokEquals,
	lexer.TokPlusEquals,
	lexer.TokMinusEquals,
	lexer.TokPercentEquals,
	lexer.TokSlashEquals,
	lexer.TokAmpersandEquals,
	lexer.TokPipeEquals,
	lexer.TokStarEquals,
	lexer.TokCaretEquals,
}
