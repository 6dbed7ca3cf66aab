package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrinterRoundTrip(t *testing.T) {
	expr := parseExpression(t, "-123 * 45.67")
	require.Equal(t, "(* (- 123) 45.67)", AstPrinter{}.Print(expr))
}

func TestPrinterGrouping(t *testing.T) {
	expr := parseExpression(t, "(1 + 2) * 3")
	require.Equal(t, "(* (group (+ 1 2)) 3)", AstPrinter{}.Print(expr))
}

func TestPrinterHandBuiltTree(t *testing.T) {
	expr := BinaryExpr{
		Left: UnaryExpr{
			Operator: Token{Type: TokenTypeMinus, Lexeme: "-", Literal: Nil{}, Line: 1},
			Right:    LiteralExpr{Value: Number(123)},
		},
		Operator: Token{Type: TokenTypeStar, Lexeme: "*", Literal: Nil{}, Line: 1},
		Right: GroupingExpr{
			Expression: LiteralExpr{Value: Number(45.67)},
		},
	}
	require.Equal(t, "(* (- 123) (group 45.67))", AstPrinter{}.Print(expr))
}

func TestPrinterLiterals(t *testing.T) {
	require.Equal(t, "nil", AstPrinter{}.Print(LiteralExpr{Value: Nil{}}))
	require.Equal(t, "true", AstPrinter{}.Print(LiteralExpr{Value: Bool(true)}))
	require.Equal(t, "abc", AstPrinter{}.Print(LiteralExpr{Value: String("abc")}))
	require.Equal(t, "2", AstPrinter{}.Print(LiteralExpr{Value: Number(2)}))
}
