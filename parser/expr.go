package parser

import (
	"strconv"

	"go.creack.net/yai/ast"
	"go.creack.net/yai/diag"
	"go.creack.net/yai/lexer"
)

func parseExpression(p *parser) (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	return parseExpr(p, bpAssignment)
}

// parseExpr parses an expression binding at least as tightly as bp.
func parseExpr(p *parser, bp bindingPower) (ast.Expr, error) {
	switch bp {
	case bpAssignment:
		return parseAssignmentExpr(p)
	case bpUnary:
		return parseUnaryExpr(p)
	case bpCall:
		return parseCallExpr(p)
	case bpPrimary:
		return parsePrimaryExpr(p)
	}
	return parseBinaryExpr(p, bp)
}

// parseAssignmentExpr parses both sides at logical-or level: assignments
// do not chain.
func parseAssignmentExpr(p *parser) (ast.Expr, error) {
	left, err := parseExpr(p, bpLogicalOr)
	if err != nil {
		return nil, err
	}
	if !p.curToken.Type.IsOneOf(assignmentOps...) {
		return left, nil
	}

	opToken := p.curToken
	operator := p.advance()
	value, err := parseExpr(p, bpLogicalOr)
	if err != nil {
		return nil, err
	}

	switch target := left.(type) {
	case ast.VariableExpr:
		return ast.AssignExpr{Name: target.Name, Operator: operator, Value: value}, nil
	case ast.GetExpr:
		return ast.SetExpr{Object: target.Object, Name: target.Name, Operator: operator, Value: value}, nil
	}
	return nil, diag.Parsef(opToken.Span(), "invalid assignment target")
}

func parseBinaryExpr(p *parser, bp bindingPower) (ast.Expr, error) {
	level := binaryLevels[bp]

	left, err := parseExpr(p, bp+1)
	if err != nil {
		return nil, err
	}
	for p.curToken.Type.IsOneOf(level.ops...) {
		operator := p.advance()
		right, err := parseExpr(p, bp+1)
		if err != nil {
			return nil, err
		}
		if level.logical {
			left = ast.LogicalExpr{Left: left, Operator: operator, Right: right}
		} else {
			left = ast.BinaryExpr{Left: left, Operator: operator, Right: right}
		}
	}
	return left, nil
}

func parseUnaryExpr(p *parser) (ast.Expr, error) {
	if !p.curToken.Type.IsOneOf(unaryOps...) {
		return parseExpr(p, bpCall)
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	operator := p.advance()
	right, err := parseUnaryExpr(p)
	if err != nil {
		return nil, err
	}
	return ast.UnaryExpr{Operator: operator, Right: right}, nil
}

func parseCallExpr(p *parser) (ast.Expr, error) {
	expr, err := parseExpr(p, bpPrimary)
	if err != nil {
		return nil, err
	}
	for {
		switch p.curToken.Type {
		case lexer.TokParenLeft:
			p.advance()
			args, err := parseArguments(p)
			if err != nil {
				return nil, err
			}
			expr = ast.CallExpr{Callee: expr, Args: args}
		case lexer.TokDot:
			p.advance()
			name, err := p.identifier()
			if err != nil {
				return nil, err
			}
			expr = ast.GetExpr{Object: expr, Name: name}
		default:
			return expr, nil
		}
	}
}

// parseArguments parses a comma separated list up to and including the closing paren.
func parseArguments(p *parser) ([]ast.Expr, error) {
	var args []ast.Expr
	if !p.is(lexer.TokParenRight) {
		for {
			arg, err := parseExpression(p)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.is(lexer.TokComma) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(lexer.TokParenRight); err != nil {
		return nil, err
	}
	return args, nil
}

func parsePrimaryExpr(p *parser) (ast.Expr, error) {
	tok := p.curToken
	switch tok.Type {
	case lexer.TokTrue, lexer.TokFalse:
		p.advance()
		return ast.BooleanExpr{Value: tok.Type == lexer.TokTrue}, nil
	case lexer.TokNumber:
		number, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, diag.Parsef(tok.Span(), "invalid number literal %q", tok.Value)
		}
		p.advance()
		return ast.NumberExpr{Value: number}, nil
	case lexer.TokString:
		p.advance()
		return ast.StringExpr{Value: tok.Value}, nil
	case lexer.TokIdentifier:
		p.advance()
		return ast.VariableExpr{Name: tok.Value}, nil
	case lexer.TokThis:
		p.advance()
		return ast.VariableExpr{Name: "this"}, nil
	case lexer.TokParenLeft:
		p.advance()
		expr, err := parseExpression(p)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokParenRight); err != nil {
			return nil, err
		}
		return ast.GroupingExpr{Expression: expr}, nil
	case lexer.TokSuper:
		p.advance()
		if _, err := p.expect(lexer.TokDot); err != nil {
			return nil, err
		}
		method, err := p.identifier()
		if err != nil {
			return nil, err
		}
		return ast.SuperExpr{Method: method}, nil
	case lexer.TokError:
		return nil, p.unexpected("")
	default:
		p.advance()
		return nil, diag.Parsef(tok.Span(), "expect expression")
	}
}
