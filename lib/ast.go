package lib

// Expressions and statements are two independent closed sets. An
// operation over either one is a type switch; a statement never shows
// up where an expression is expected.

type Expr interface {
	isExpr()
}

func (b BinaryExpr) isExpr()   {}
func (g GroupingExpr) isExpr() {}
func (l LiteralExpr) isExpr()  {}
func (u UnaryExpr) isExpr()    {}

// BinaryExpr is two operands around an infix operator token.
type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// GroupingExpr is a parenthesized expression. It only exists to
// override precedence.
type GroupingExpr struct {
	Expression Expr
}

type LiteralExpr struct {
	Value Object
}

// UnaryExpr is a prefix operator and its operand, eg. the '-' in '-1'.
type UnaryExpr struct {
	Operator Token
	Right    Expr
}

type Stmt interface {
	isStmt()
}

func (e ExpressionStmt) isStmt() {}
func (p PrintStmt) isStmt()      {}
func (v VarStmt) isStmt()        {}

// ExpressionStmt evaluates its expression and throws the value away.
type ExpressionStmt struct {
	Expression Expr
}

type PrintStmt struct {
	Expression Expr
}

// VarStmt is a variable declaration. Initializer is nil when the
// declaration has no '=' clause.
type VarStmt struct {
	Name        Token
	Initializer Expr
}
