package parser

import (
	"go.creack.net/yai/ast"
	"go.creack.net/yai/diag"
	"go.creack.net/yai/lexer"
)

func parseDeclaration(p *parser) (ast.Stmt, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.curToken.Type {
	case lexer.TokLet, lexer.TokConst:
		return parseLetDeclaration(p)
	case lexer.TokClass:
		return parseClassDeclaration(p)
	case lexer.TokFunction:
		p.advance()
		return parseFunction(p)
	}
	return parseStatement(p)
}

func parseLetDeclaration(p *parser) (ast.Stmt, error) {
	isConst := p.is(lexer.TokConst)
	p.advance()

	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	var value ast.Expr
	if p.is(lexer.TokEquals) {
		p.advance()
		if value, err = parseExpression(p); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.TokSemicolon); err != nil {
		return nil, err
	}
	return ast.LetStmt{Name: name, Value: value, IsConst: isConst}, nil
}

func parseClassDeclaration(p *parser) (ast.Stmt, error) {
	p.advance()

	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	var superclass string
	if p.is(lexer.TokLess) {
		p.advance()
		if superclass, err = p.identifier(); err != nil {
			return nil, err
		}
		if superclass == name {
			return nil, diag.Parsef(p.prevToken.Span(), "cannot inherit from itself")
		}
	}

	if _, err := p.expect(lexer.TokBraceLeft); err != nil {
		return nil, err
	}
	var methods []ast.FunctionStmt
	for !p.is(lexer.TokBraceRight) && !p.is(lexer.TokEOF) {
		method, err := parseFunction(p)
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	if _, err := p.expect(lexer.TokBraceRight); err != nil {
		return nil, err
	}
	return ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}, nil
}

// parseFunction parses `name(params) { body }`, shared by functions and methods.
func parseFunction(p *parser) (ast.FunctionStmt, error) {
	name, err := p.identifier()
	if err != nil {
		return ast.FunctionStmt{}, err
	}
	if _, err := p.expect(lexer.TokParenLeft); err != nil {
		return ast.FunctionStmt{}, err
	}
	var params []string
	if !p.is(lexer.TokParenRight) {
		for {
			param, err := p.identifier()
			if err != nil {
				return ast.FunctionStmt{}, err
			}
			params = append(params, param)
			if !p.is(lexer.TokComma) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(lexer.TokParenRight); err != nil {
		return ast.FunctionStmt{}, err
	}
	body, err := parseBlock(p)
	if err != nil {
		return ast.FunctionStmt{}, err
	}
	return ast.FunctionStmt{Name: name, Params: params, Body: body}, nil
}

func parseStatement(p *parser) (ast.Stmt, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.curToken.Type {
	case lexer.TokPrint:
		return parsePrintStatement(p)
	case lexer.TokIf:
		return parseIfStatement(p)
	case lexer.TokWhile:
		return parseWhileStatement(p)
	case lexer.TokFor:
		return parseForStatement(p)
	case lexer.TokReturn:
		return parseReturnStatement(p)
	case lexer.TokBraceLeft:
		return parseBlock(p)
	}
	return parseExpressionStatement(p)
}

func parseExpressionStatement(p *parser) (ast.Stmt, error) {
	expr, err := parseExpression(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokSemicolon); err != nil {
		return nil, err
	}
	return ast.ExpressionStmt{Expression: expr}, nil
}

func parsePrintStatement(p *parser) (ast.Stmt, error) {
	p.advance()
	expr, err := parseExpression(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokSemicolon); err != nil {
		return nil, err
	}
	return ast.PrintStmt{Expression: expr}, nil
}

func parseReturnStatement(p *parser) (ast.Stmt, error) {
	p.advance()
	var value ast.Expr
	if !p.is(lexer.TokSemicolon) {
		var err error
		if value, err = parseExpression(p); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.TokSemicolon); err != nil {
		return nil, err
	}
	return ast.ReturnStmt{Value: value}, nil
}

// parseForStatement keeps the three clauses; desugaring belongs to evaluation.
func parseForStatement(p *parser) (ast.Stmt, error) {
	p.advance()
	if _, err := p.expect(lexer.TokParenLeft); err != nil {
		return nil, err
	}

	var stmt ast.ForStmt
	var err error
	switch p.curToken.Type {
	case lexer.TokSemicolon:
		p.advance()
	case lexer.TokLet:
		stmt.Init, err = parseLetDeclaration(p)
	default:
		stmt.Init, err = parseExpressionStatement(p)
	}
	if err != nil {
		return nil, err
	}

	if !p.is(lexer.TokSemicolon) {
		if stmt.Condition, err = parseExpression(p); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.TokSemicolon); err != nil {
		return nil, err
	}

	if !p.is(lexer.TokParenRight) {
		if stmt.Increment, err = parseExpression(p); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.TokParenRight); err != nil {
		return nil, err
	}

	if stmt.Body, err = parseStatement(p); err != nil {
		return nil, err
	}
	return stmt, nil
}

func parseIfStatement(p *parser) (ast.Stmt, error) {
	p.advance()
	condition, err := parseCondition(p)
	if err != nil {
		return nil, err
	}
	stmt := ast.IfStmt{Condition: condition}
	if stmt.Then, err = parseStatement(p); err != nil {
		return nil, err
	}
	if p.is(lexer.TokElse) {
		p.advance()
		if stmt.Else, err = parseStatement(p); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func parseWhileStatement(p *parser) (ast.Stmt, error) {
	p.advance()
	condition, err := parseCondition(p)
	if err != nil {
		return nil, err
	}
	body, err := parseStatement(p)
	if err != nil {
		return nil, err
	}
	return ast.WhileStmt{Condition: condition, Body: body}, nil
}

// parseCondition parses a parenthesized condition.
func parseCondition(p *parser) (ast.Expr, error) {
	if _, err := p.expect(lexer.TokParenLeft); err != nil {
		return nil, err
	}
	condition, err := parseExpression(p)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokParenRight); err != nil {
		return nil, err
	}
	return condition, nil
}

func parseBlock(p *parser) (ast.BlockStmt, error) {
	if _, err := p.expect(lexer.TokBraceLeft); err != nil {
		return ast.BlockStmt{}, err
	}
	var stmts []ast.Stmt
	for !p.is(lexer.TokBraceRight) && !p.is(lexer.TokEOF) {
		stmt, err := parseDeclaration(p)
		if err != nil {
			return ast.BlockStmt{}, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(lexer.TokBraceRight); err != nil {
		return ast.BlockStmt{}, err
	}
	return ast.BlockStmt{Stmts: stmts}, nil
}
