package ast

import (
	"strconv"

	"go.creack.net/yai/lexer"
)

type BooleanExpr struct {
	Value bool
}

func (BooleanExpr) expr() {}

func (e BooleanExpr) Dump() string { return strconv.FormatBool(e.Value) }

type NumberExpr struct {
	Value float64
}

func (NumberExpr) expr() {}

func (e NumberExpr) Dump() string { return strconv.FormatFloat(e.Value, 'f', -1, 64) }

type StringExpr struct {
	Value string
}

func (StringExpr) expr() {}

func (e StringExpr) Dump() string { return quote(e.Value) }

// VariableExpr references a name. `this` is a VariableExpr named "this".
type VariableExpr struct {
	Name string
}

func (VariableExpr) expr() {}

func (e VariableExpr) Dump() string { return e.Name }

type UnaryExpr struct {
	Operator lexer.TokenType // -, + or !.
	Right    Expr
}

func (UnaryExpr) expr() {}

func (e UnaryExpr) Dump() string { return e.Operator.String() + e.Right.Dump() }

// BinaryExpr is an arithmetic or bitwise operation.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.TokenType
	Right    Expr
}

func (BinaryExpr) expr() {}

func (e BinaryExpr) Dump() string {
	return e.Left.Dump() + " " + e.Operator.String() + " " + e.Right.Dump()
}

// LogicalExpr is a short-circuit, equality or comparison operation.
type LogicalExpr struct {
	Left     Expr
	Operator lexer.TokenType
	Right    Expr
}

func (LogicalExpr) expr() {}

func (e LogicalExpr) Dump() string {
	return e.Left.Dump() + " " + e.Operator.String() + " " + e.Right.Dump()
}

type GroupingExpr struct {
	Expression Expr
}

func (GroupingExpr) expr() {}

func (e GroupingExpr) Dump() string { return "(" + e.Expression.Dump() + ")" }

// AssignExpr assigns to a variable. Operator is = or a compound assignment.
type AssignExpr struct {
	Name     string
	Operator lexer.TokenType
	Value    Expr
}

func (AssignExpr) expr() {}

func (e AssignExpr) Dump() string {
	return e.Name + " " + e.Operator.String() + " " + e.Value.Dump()
}

type GetExpr struct {
	Object Expr
	Name   string
}

func (GetExpr) expr() {}

func (e GetExpr) Dump() string { return e.Object.Dump() + "." + e.Name }

// SetExpr assigns to a property. Operator is = or a compound assignment.
type SetExpr struct {
	Object   Expr
	Name     string
	Operator lexer.TokenType
	Value    Expr
}

func (SetExpr) expr() {}

func (e SetExpr) Dump() string {
	return e.Object.Dump() + "." + e.Name + " " + e.Operator.String() + " " + e.Value.Dump()
}

// SuperExpr is `super.Method`.
type SuperExpr struct {
	Method string
}

func (SuperExpr) expr() {}

func (e SuperExpr) Dump() string { return "super." + e.Method }

type CallExpr struct {
	Callee Expr
	Args   []Expr
}

func (CallExpr) expr() {}

func (e CallExpr) Dump() string {
	return e.Callee.Dump() + "(" + dumpList(e.Args, ", ") + ")"
}
