package lib

import "strings"

// AstPrinter renders an expression tree as fully parenthesized prefix
// notation, eg. "-123 * 45.67" comes out as "(* (- 123) 45.67)". Pure
// debug aid.
type AstPrinter struct{}

func (a AstPrinter) Print(expr Expr) string {
	switch e := expr.(type) {
	case BinaryExpr:
		return a.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case GroupingExpr:
		return a.parenthesize("group", e.Expression)
	case LiteralExpr:
		return stringify(e.Value)
	case UnaryExpr:
		return a.parenthesize(e.Operator.Lexeme, e.Right)
	}
	return ""
}

func (a AstPrinter) parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(name)
	for _, expr := range exprs {
		sb.WriteString(" ")
		sb.WriteString(a.Print(expr))
	}
	sb.WriteString(")")
	return sb.String()
}
