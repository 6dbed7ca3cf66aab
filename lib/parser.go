package lib

import "errors"

// Parser is a recursive-descent consumer of the scanner's token slice.
// Parsing is best effort: a bad statement is reported, dropped, and the
// parser resynchronizes at the next statement boundary.
type Parser struct {
	tokens  []Token
	current int
	diags   []Diagnostic
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) Parse() ([]Stmt, []Diagnostic) {
	statements := []Stmt{}

	for !p.isAtEnd() {
		stmt, err := p.statement()
		if err != nil {
			p.report(err)
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}

	return statements, p.diags
}

type parseError struct {
	diag Diagnostic
}

func (e *parseError) Error() string {
	return e.diag.String()
}

func (p *Parser) errorAt(tok Token, message string) error {
	return &parseError{diag: diagnosticAt(tok, message)}
}

func (p *Parser) report(err error) {
	var pe *parseError
	if errors.As(err, &pe) {
		p.diags = append(p.diags, pe.diag)
		return
	}
	p.diags = append(p.diags, Diagnostic{Line: p.peek().Line, Message: err.Error()})
}

func (p *Parser) statement() (Stmt, error) {
	if p.match(TokenTypeVar) {
		return p.varDeclaration()
	}
	if p.match(TokenTypePrint) {
		return p.printStatement()
	}
	return p.expressionStatement()
}

// Reads after "var"
func (p *Parser) varDeclaration() (Stmt, error) {
	name, err := p.consume(TokenTypeIdentifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer Expr
	if p.match(TokenTypeEqual) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	_, err = p.consume(TokenTypeSemicolon, "Expect ';' after variable declaration.")
	if err != nil {
		return nil, err
	}
	return VarStmt{Name: name, Initializer: initializer}, nil
}

// Reads after "print"
func (p *Parser) printStatement() (Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}

	_, err = p.consume(TokenTypeSemicolon, "Expect ';' after value.")
	if err != nil {
		return nil, err
	}
	return PrintStmt{Expression: value}, nil
}

func (p *Parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	_, err = p.consume(TokenTypeSemicolon, "Expect ';' after expression.")
	if err != nil {
		return nil, err
	}
	return ExpressionStmt{Expression: expr}, nil
}

/*
 ______                              _
|  ____|                            (_)
| |__  __  ___ __  _ __ ___  ___ ___ _  ___  _ __  ___
|  __| \ \/ / '_ \| '__/ _ \/ __/ __| |/ _ \| '_ \/ __|
| |____ >  <| |_) | | |  __/\__ \__ \ | (_) | | | \__ \
|______/_/\_\ .__/|_|  \___||___/___/_|\___/|_| |_|___/
            | |
            |_|

Each level parses the next tighter level first, then loops folding
matching operators into a left-leaning Binary tree. The loop is what
makes every binary operator left-associative.
*/

func (p *Parser) expression() (Expr, error) {
	return p.equality()
}

func (p *Parser) equality() (Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}

	for p.match(TokenTypeBangEqual, TokenTypeEqualEqual) {
		operator := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

func (p *Parser) comparison() (Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.match(TokenTypeGreater, TokenTypeGreaterEqual, TokenTypeLess, TokenTypeLessEqual) {
		operator := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

func (p *Parser) term() (Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.match(TokenTypeMinus, TokenTypePlus) {
		operator := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

func (p *Parser) factor() (Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}

	for p.match(TokenTypeSlash, TokenTypeStar) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

// unary recurses on itself instead of looping so chained prefixes like
// "--x" and "!!x" nest right to left.
func (p *Parser) unary() (Expr, error) {
	if p.match(TokenTypeBang, TokenTypeMinus) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return UnaryExpr{Operator: operator, Right: right}, nil
	}

	return p.primary()
}

func (p *Parser) primary() (Expr, error) {
	if p.match(TokenTypeFalse) {
		return LiteralExpr{Value: Bool(false)}, nil
	}
	if p.match(TokenTypeTrue) {
		return LiteralExpr{Value: Bool(true)}, nil
	}
	if p.match(TokenTypeNil) {
		return LiteralExpr{Value: Nil{}}, nil
	}

	if p.match(TokenTypeNumber, TokenTypeString) {
		return LiteralExpr{Value: p.previous().Literal}, nil
	}

	if p.match(TokenTypeLeftParen) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		_, err = p.consume(TokenTypeRightParen, "Expect ')' after expression.")
		if err != nil {
			return nil, err
		}
		return GroupingExpr{Expression: expr}, nil
	}

	return nil, p.errorAt(p.peek(), "Expect expression.")
}

// consume takes the next token when it has the expected type and raises
// a parse error anchored at the current token when it doesn't. Every
// caller must surface that error; swallowing it would let malformed
// input slide through unreported.
func (p *Parser) consume(tokType TokenType, message string) (Token, error) {
	if p.check(tokType) {
		return p.advance(), nil
	}
	return Token{}, p.errorAt(p.peek(), message)
}

// synchronize discards tokens until a statement boundary: just past a
// ';' or right before a keyword that can start a statement. Bounds an
// error cascade to one statement per real mistake.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == TokenTypeSemicolon {
			return
		}

		switch p.peek().Type {
		case TokenTypeClass, TokenTypeFun, TokenTypeVar, TokenTypeFor,
			TokenTypeIf, TokenTypeWhile, TokenTypePrint, TokenTypeReturn:
			return
		}

		p.advance()
	}
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tokType := range types {
		if p.check(tokType) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(tokType TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tokType
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == TokenTypeEOF
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}
