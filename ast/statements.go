package ast

import "strings"

// LetStmt declares a variable. Value is nil when there is no initializer.
type LetStmt struct {
	Name    string
	Value   Expr
	IsConst bool
}

func (LetStmt) stmt() {}

func (s LetStmt) Dump() string {
	out := "let "
	if s.IsConst {
		out = "const "
	}
	out += s.Name
	if s.Value != nil {
		out += " = " + s.Value.Dump()
	}
	return out + ";"
}

// FunctionStmt is a function declaration, or a method inside a class.
type FunctionStmt struct {
	Name   string
	Params []string
	Body   BlockStmt
}

func (FunctionStmt) stmt() {}

func (s FunctionStmt) Dump() string { return "function " + s.signature() }

func (s FunctionStmt) signature() string {
	return s.Name + "(" + strings.Join(s.Params, ", ") + ") " + s.Body.Dump()
}

// ClassStmt declares a class. Superclass is empty when there is none.
type ClassStmt struct {
	Name       string
	Superclass string
	Methods    []FunctionStmt
}

func (ClassStmt) stmt() {}

func (s ClassStmt) Dump() string {
	out := "class " + s.Name
	if s.Superclass != "" {
		out += " < " + s.Superclass
	}
	if len(s.Methods) == 0 {
		return out + " {}"
	}
	methods := make([]string, 0, len(s.Methods))
	for _, m := range s.Methods {
		methods = append(methods, m.signature())
	}
	return out + " { " + strings.Join(methods, " ") + " }"
}

type ExpressionStmt struct {
	Expression Expr
}

func (ExpressionStmt) stmt() {}

func (s ExpressionStmt) Dump() string { return s.Expression.Dump() + ";" }

type PrintStmt struct {
	Expression Expr
}

func (PrintStmt) stmt() {}

func (s PrintStmt) Dump() string { return "print " + s.Expression.Dump() + ";" }

// ReturnStmt returns from a function. Value is nil for a bare return.
type ReturnStmt struct {
	Value Expr
}

func (ReturnStmt) stmt() {}

func (s ReturnStmt) Dump() string {
	if s.Value == nil {
		return "return;"
	}
	return "return " + s.Value.Dump() + ";"
}

type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // Nil without an else branch.
}

func (IfStmt) stmt() {}

func (s IfStmt) Dump() string {
	out := "if (" + s.Condition.Dump() + ") " + s.Then.Dump()
	if s.Else != nil {
		out += " else " + s.Else.Dump()
	}
	return out
}

type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (WhileStmt) stmt() {}

func (s WhileStmt) Dump() string {
	return "while (" + s.Condition.Dump() + ") " + s.Body.Dump()
}

// ForStmt keeps the three clauses as written; every clause is optional.
// Init is either a LetStmt or an ExpressionStmt.
type ForStmt struct {
	Init      Stmt
	Condition Expr
	Increment Expr
	Body      Stmt
}

func (ForStmt) stmt() {}

func (s ForStmt) Dump() string {
	out := "for ("
	if s.Init != nil {
		out += s.Init.Dump()
	} else {
		out += ";"
	}
	if s.Condition != nil {
		out += " " + s.Condition.Dump()
	}
	out += ";"
	if s.Increment != nil {
		out += " " + s.Increment.Dump()
	}
	return out + ") " + s.Body.Dump()
}

// BlockStmt is a braced sequence of statements.
type BlockStmt struct {
	Stmts []Stmt
}

func (BlockStmt) stmt() {}

func (s BlockStmt) Dump() string {
	if len(s.Stmts) == 0 {
		return "{}"
	}
	return "{ " + dumpList(s.Stmts, " ") + " }"
}
