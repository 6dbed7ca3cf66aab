package lib

import (
	"fmt"
	"strconv"
)

// Scanner walks the source left to right and turns it into tokens.
// Scanning never fails: a bad character or unterminated string becomes
// a diagnostic and the scan keeps going without it.
type Scanner struct {
	source  []rune
	length  int
	start   int
	current int
	line    int
	tokens  []Token
	diags   []Diagnostic
}

func NewScanner(source string) *Scanner {
	runes := []rune(source)
	return &Scanner{
		source: runes,
		length: len(runes),
		line:   1,
	}
}

// ScanTokens consumes the whole source and appends one final EOF token.
func (s *Scanner) ScanTokens() ([]Token, []Diagnostic) {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, Token{
		Type:    TokenTypeEOF,
		Lexeme:  "",
		Literal: Nil{},
		Line:    s.line,
	})
	return s.tokens, s.diags
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= s.length
}

func (s *Scanner) scanToken() {
	ch := s.advance()

	switch ch {
	case '(':
		s.addToken(TokenTypeLeftParen)
	case ')':
		s.addToken(TokenTypeRightParen)
	case '{':
		s.addToken(TokenTypeLeftBrace)
	case '}':
		s.addToken(TokenTypeRightBrace)
	case ',':
		s.addToken(TokenTypeComma)
	case '.':
		s.addToken(TokenTypeDot)
	case '-':
		s.addToken(TokenTypeMinus)
	case '+':
		s.addToken(TokenTypePlus)
	case ';':
		s.addToken(TokenTypeSemicolon)
	case '*':
		s.addToken(TokenTypeStar)
	case '!':
		if s.match('=') {
			s.addToken(TokenTypeBangEqual)
		} else {
			s.addToken(TokenTypeBang)
		}
	case '=':
		if s.match('=') {
			s.addToken(TokenTypeEqualEqual)
		} else {
			s.addToken(TokenTypeEqual)
		}
	case '<':
		if s.match('=') {
			s.addToken(TokenTypeLessEqual)
		} else {
			s.addToken(TokenTypeLess)
		}
	case '>':
		if s.match('=') {
			s.addToken(TokenTypeGreaterEqual)
		} else {
			s.addToken(TokenTypeGreater)
		}
	case '/':
		if s.match('/') {
			// comment runs to end of line and contributes no tokens
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(TokenTypeSlash)
		}
	case ' ', '\r', '\t':
		// ignore whitespace
	case '\n':
		s.line++
	case '"':
		s.scanString()
	default:
		if isDigit(ch) {
			s.scanNumber()
		} else if isAlpha(ch) {
			s.scanIdentifier()
		} else {
			s.diags = append(s.diags, Diagnostic{
				Line:    s.line,
				Message: fmt.Sprintf("Unexpected character '%c'.", ch),
			})
		}
	}
}

func (s *Scanner) advance() rune {
	ch := s.source[s.current]
	s.current++
	return ch
}

func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() {
		return false
	}
	if s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() rune {
	if s.current+1 >= s.length {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(tokType TokenType) {
	s.addTokenLiteral(tokType, Nil{})
}

func (s *Scanner) addTokenLiteral(tokType TokenType, literal Object) {
	s.tokens = append(s.tokens, Token{
		Type:    tokType,
		Lexeme:  string(s.source[s.start:s.current]),
		Literal: literal,
		Line:    s.line,
	})
}

func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.diags = append(s.diags, Diagnostic{
			Line:    s.line,
			Message: "Unterminated string.",
		})
		return
	}

	// closing "
	s.advance()

	value := string(s.source[s.start+1 : s.current-1])
	s.addTokenLiteral(TokenTypeString, String(value))
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// A fractional part only counts when a digit follows the dot, so
	// "123." lexes as the number 123 and then a dot token.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	value, _ := strconv.ParseFloat(string(s.source[s.start:s.current]), 64)
	s.addTokenLiteral(TokenTypeNumber, Number(value))
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := string(s.source[s.start:s.current])
	tokType, isKeyword := keywords[text]
	if !isKeyword {
		tokType = TokenTypeIdentifier
	}
	s.addToken(tokType)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isAlphaNumeric(ch rune) bool {
	return isAlpha(ch) || isDigit(ch)
}
