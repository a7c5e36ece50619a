// Package scanner turns Lox source text into a token stream, per
// spec.md §4.1.
package scanner

import (
	"strconv"

	"github.com/loxlang/golox/loxerr"
	"github.com/loxlang/golox/token"
)

// Scanner performs a single-pass scan of a source string with one character
// of lookahead (two for number fractions), grounded in sam-decook-lox's
// byte-indexed Scanner.
type Scanner struct {
	source   string
	reporter *loxerr.Reporter

	start   int
	current int
	line    int

	tokens []token.Token
}

func New(source string, reporter *loxerr.Reporter) *Scanner {
	return &Scanner{source: source, reporter: reporter, line: 1}
}

// Scan runs the scanner to completion and returns the token list, always
// terminated with a single EOF token at the final line.
func (s *Scanner) Scan() []token.Token {
	for !s.atEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.New(token.EOF, "", s.line))
	return s.tokens
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case ' ', '\t', '\r':
		// discard
	case '\n':
		s.line++
	case '(':
		s.addToken(token.LeftParen)
	case ')':
		s.addToken(token.RightParen)
	case '{':
		s.addToken(token.LeftBrace)
	case '}':
		s.addToken(token.RightBrace)
	case ',':
		s.addToken(token.Comma)
	case '.':
		s.addToken(token.Dot)
	case '-':
		s.addToken(token.Minus)
	case '+':
		s.addToken(token.Plus)
	case ';':
		s.addToken(token.Semicolon)
	case '*':
		s.addToken(token.Star)
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.atEnd() {
				s.advance()
			}
		} else {
			s.addToken(token.Slash)
		}
	case '!':
		if s.match('=') {
			s.addToken(token.BangEqual)
		} else {
			s.addToken(token.Bang)
		}
	case '=':
		if s.match('=') {
			s.addToken(token.EqualEqual)
		} else {
			s.addToken(token.Equal)
		}
	case '<':
		if s.match('=') {
			s.addToken(token.LessEqual)
		} else {
			s.addToken(token.Less)
		}
	case '>':
		if s.match('=') {
			s.addToken(token.GreaterEqual)
		} else {
			s.addToken(token.Greater)
		}
	case '"':
		s.string()
	default:
		switch {
		case isDigit(c):
			s.number()
		case isAlpha(c):
			s.identifier()
		default:
			s.reporter.Error(s.line, "Unexpected character.")
		}
	}
}

func (s *Scanner) string() {
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.atEnd() {
		s.reporter.Error(s.line, "Unterminated string.")
		return
	}

	// consume closing quote
	s.advance()

	value := s.source[s.start+1 : s.current-1]
	s.tokens = append(s.tokens, token.NewString(s.source[s.start:s.current], value, s.line))
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	lexeme := s.source[s.start:s.current]
	value, _ := strconv.ParseFloat(lexeme, 64)
	s.tokens = append(s.tokens, token.NewNumber(lexeme, value, s.line))
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := s.source[s.start:s.current]
	typ, ok := token.Keywords[text]
	if !ok {
		typ = token.Identifier
	}
	s.addToken(typ)
}

func (s *Scanner) addToken(typ token.Type) {
	s.tokens = append(s.tokens, token.New(typ, s.source[s.start:s.current], s.line))
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
