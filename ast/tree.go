package ast

import "fmt"

// Tree converts a node into nested maps and slices, tagging every node
// with its variant under the "type" key. The result is meant for generic
// encoders (JSON, YAML).
func Tree(node Node) any {
	switch n := node.(type) {
	case nil:
		return nil
	case Program:
		return map[string]any{
			"type":       "Program",
			"statements": treeList(n.Statements),
		}

	case BooleanExpr:
		return map[string]any{"type": "Boolean", "value": n.Value}
	case NumberExpr:
		return map[string]any{"type": "Number", "value": n.Value}
	case StringExpr:
		return map[string]any{"type": "String", "value": n.Value}
	case VariableExpr:
		return map[string]any{"type": "Variable", "name": n.Name}
	case UnaryExpr:
		return map[string]any{
			"type":     "Unary",
			"operator": n.Operator.String(),
			"right":    Tree(n.Right),
		}
	case BinaryExpr:
		return map[string]any{
			"type":     "Binary",
			"left":     Tree(n.Left),
			"operator": n.Operator.String(),
			"right":    Tree(n.Right),
		}
	case LogicalExpr:
		return map[string]any{
			"type":     "Logical",
			"left":     Tree(n.Left),
			"operator": n.Operator.String(),
			"right":    Tree(n.Right),
		}
	case GroupingExpr:
		return map[string]any{"type": "Grouping", "expression": Tree(n.Expression)}
	case AssignExpr:
		return map[string]any{
			"type":     "Assign",
			"name":     n.Name,
			"operator": n.Operator.String(),
			"value":    Tree(n.Value),
		}
	case GetExpr:
		return map[string]any{"type": "Get", "object": Tree(n.Object), "name": n.Name}
	case SetExpr:
		return map[string]any{
			"type":     "Set",
			"object":   Tree(n.Object),
			"name":     n.Name,
			"operator": n.Operator.String(),
			"value":    Tree(n.Value),
		}
	case SuperExpr:
		return map[string]any{"type": "Super", "method": n.Method}
	case CallExpr:
		return map[string]any{
			"type":   "Call",
			"callee": Tree(n.Callee),
			"args":   treeList(n.Args),
		}

	case LetStmt:
		m := map[string]any{"type": "Let", "name": n.Name, "const": n.IsConst}
		if n.Value != nil {
			m["value"] = Tree(n.Value)
		}
		return m
	case FunctionStmt:
		params := n.Params
		if params == nil {
			params = []string{}
		}
		return map[string]any{
			"type":   "Function",
			"name":   n.Name,
			"params": params,
			"body":   Tree(n.Body),
		}
	case ClassStmt:
		m := map[string]any{
			"type":    "Class",
			"name":    n.Name,
			"methods": treeList(n.Methods),
		}
		if n.Superclass != "" {
			m["superclass"] = n.Superclass
		}
		return m
	case ExpressionStmt:
		return map[string]any{"type": "Expression", "expression": Tree(n.Expression)}
	case PrintStmt:
		return map[string]any{"type": "Print", "expression": Tree(n.Expression)}
	case ReturnStmt:
		m := map[string]any{"type": "Return"}
		if n.Value != nil {
			m["value"] = Tree(n.Value)
		}
		return m
	case IfStmt:
		m := map[string]any{
			"type":      "If",
			"condition": Tree(n.Condition),
			"then":      Tree(n.Then),
		}
		if n.Else != nil {
			m["else"] = Tree(n.Else)
		}
		return m
	case WhileStmt:
		return map[string]any{
			"type":      "While",
			"condition": Tree(n.Condition),
			"body":      Tree(n.Body),
		}
	case ForStmt:
		m := map[string]any{"type": "For", "body": Tree(n.Body)}
		if n.Init != nil {
			m["init"] = Tree(n.Init)
		}
		if n.Condition != nil {
			m["condition"] = Tree(n.Condition)
		}
		if n.Increment != nil {
			m["increment"] = Tree(n.Increment)
		}
		return m
	case BlockStmt:
		return map[string]any{"type": "Block", "stmts": treeList(n.Stmts)}
	default:
		panic(fmt.Errorf("unsupported node type %T", n))
	}
}

func treeList[T Node](nodes []T) []any {
	out := make([]any, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Tree(n))
	}
	return out
}
