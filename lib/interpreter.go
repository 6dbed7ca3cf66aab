package lib

import (
	"fmt"
	"io"
)

// Interpreter executes statements by walking their trees directly.
// Print output goes to out; diagnostics never do.
type Interpreter struct {
	out io.Writer
}

func NewInterpreter(out io.Writer) *Interpreter {
	return &Interpreter{out: out}
}

// Interpret runs the statements top to bottom and stops at the first
// runtime error. Nothing after a failed statement executes.
func (i *Interpreter) Interpret(statements []Stmt) error {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(stmt Stmt) error {
	switch s := stmt.(type) {
	case ExpressionStmt:
		_, err := i.evaluate(s.Expression)
		return err
	case PrintStmt:
		value, err := i.evaluate(s.Expression)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(i.out, stringify(value))
		return err
	case VarStmt:
		// No environment exists yet, so declarations cannot bind
		// anything. Failing here beats silently dropping the statement.
		return runtimeError(s.Name, "Variable declarations are not supported yet.")
	}
	return fmt.Errorf("unknown statement %T", stmt)
}

func (i *Interpreter) evaluate(expr Expr) (Object, error) {
	switch e := expr.(type) {
	case LiteralExpr:
		return e.Value, nil
	case GroupingExpr:
		return i.evaluate(e.Expression)
	case UnaryExpr:
		return i.evaluateUnary(e)
	case BinaryExpr:
		return i.evaluateBinary(e)
	}
	return nil, fmt.Errorf("unknown expression %T", expr)
}

func (i *Interpreter) evaluateUnary(expr UnaryExpr) (Object, error) {
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case TokenTypeBang:
		b, ok := right.(Bool)
		if !ok {
			return nil, runtimeError(expr.Operator, "Operand of '!' must be a boolean.")
		}
		return Bool(!b), nil
	case TokenTypeMinus:
		n, ok := right.(Number)
		if !ok {
			return nil, runtimeError(expr.Operator, "Operand of '-' must be a number.")
		}
		return Number(-n), nil
	}

	return nil, runtimeError(expr.Operator, "Unexpected unary operator '%s'.", expr.Operator.Lexeme)
}

func (i *Interpreter) evaluateBinary(expr BinaryExpr) (Object, error) {
	// Operands evaluate left to right before the operator applies.
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	op := expr.Operator

	switch op.Type {
	case TokenTypeMinus:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, runtimeError(op, "Operands of '-' must be numbers.")
		}
		return l - r, nil
	case TokenTypeSlash:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, runtimeError(op, "Operands of '/' must be numbers.")
		}
		return l / r, nil
	case TokenTypeStar:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, runtimeError(op, "Operands of '*' must be numbers.")
		}
		return l * r, nil
	case TokenTypePlus:
		if l, r, ok := bothNumbers(left, right); ok {
			return l + r, nil
		}
		if l, ok := left.(String); ok {
			if r, ok := right.(String); ok {
				return l + r, nil
			}
		}
		return nil, runtimeError(op, "Operands of '+' must be two numbers or two strings.")
	case TokenTypeGreater:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, runtimeError(op, "Operands of '>' must be numbers.")
		}
		return Bool(l > r), nil
	case TokenTypeGreaterEqual:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, runtimeError(op, "Operands of '>=' must be numbers.")
		}
		return Bool(l >= r), nil
	case TokenTypeLess:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, runtimeError(op, "Operands of '<' must be numbers.")
		}
		return Bool(l < r), nil
	case TokenTypeLessEqual:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, runtimeError(op, "Operands of '<=' must be numbers.")
		}
		return Bool(l <= r), nil
	case TokenTypeBangEqual:
		return Bool(!isEqual(left, right)), nil
	case TokenTypeEqualEqual:
		return Bool(isEqual(left, right)), nil
	}

	return nil, runtimeError(op, "Unexpected binary operator '%s'.", op.Lexeme)
}

func bothNumbers(left Object, right Object) (Number, Number, bool) {
	l, ok := left.(Number)
	if !ok {
		return 0, 0, false
	}
	r, ok := right.(Number)
	if !ok {
		return 0, 0, false
	}
	return l, r, true
}
