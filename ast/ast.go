// Package ast defines the syntax tree built by the parser.
//
// Expressions and statements are closed sum types: every variant implements
// the unexported marker method of its family, so only this package can add
// variants. Each node can re-render itself as source text with Dump; since
// parenthesized sub-expressions are kept as GroupingExpr nodes, parsing the
// output of Dump yields an equal tree.
package ast

import "strings"

// Node is implemented by every expression and statement.
type Node interface {
	Dump() string
}

// Expr is an expression node.
type Expr interface {
	Node
	expr()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmt()
}

// Program represents the top-level program.
type Program struct {
	Statements []Stmt
}

// Dump renders one top-level statement per line.
func (p Program) Dump() string {
	var sb strings.Builder
	for _, stmt := range p.Statements {
		sb.WriteString(stmt.Dump())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func dumpList[T Node](nodes []T, sep string) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, n.Dump())
	}
	return strings.Join(parts, sep)
}

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

// quote renders s as a double quoted literal using only the escapes the lexer understands.
func quote(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}
