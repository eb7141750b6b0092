// Package parser implements a recursive-descent parser for tlox, turning a
// token stream into the AST in internal/ast. The grammar is the one in §4.2:
// precedence-climbing for expressions (assignment, or, and, equality,
// comparison, term, factor, unary, call, primary), and straight recursive
// descent for statements and declarations.
package parser

import (
	"fmt"

	"github.com/tlox-lang/tlox/internal/ast"
	"github.com/tlox-lang/tlox/internal/diagnostics"
	"github.com/tlox-lang/tlox/internal/lexer"
)

const maxArgs = 255

// Parser consumes a fixed token slice and produces a Program plus any
// accumulated diagnostics. Unlike the lexer it does not stream: the whole
// token slice is scanned up front, which keeps lookahead trivial.
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []diagnostics.Diagnostic
}

// New creates a Parser over tokens (which must end with an EOF token, as
// produced by lexer.Lexer.Tokens()).
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []diagnostics.Diagnostic { return p.errors }

// parseError is used internally to unwind to the nearest synchronize point.
// This is the classic recursive-descent idiom of treating a parse failure as
// an exception local to ParseProgram's call tree; it never crosses the
// package boundary; ParseProgram always returns a plain error-free value.
type parseError struct{}

// ParseProgram parses the entire token stream into a Program. Parse errors
// are collected (not returned individually); callers should check Errors()
// after this returns and treat any accumulated diagnostics as fatal per §7.1.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.isAtEnd() {
		if stmt := p.declarationSynchronized(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}
	return program
}

func (p *Parser) declarationSynchronized() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()
	return p.declaration()
}

// --- token cursor helpers -------------------------------------------------

func (p *Parser) peek() lexer.Token     { return p.tokens[p.current] }
func (p *Parser) previous() lexer.Token { return p.tokens[p.current-1] }
func (p *Parser) isAtEnd() bool         { return p.peek().Type == lexer.EOF }

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return t == lexer.EOF
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past a token of type t, or records a diagnostic and
// aborts the current declaration via parseError.
func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

func (p *Parser) errorAt(tok lexer.Token, message string) parseError {
	where := "at end"
	if tok.Type != lexer.EOF {
		where = fmt.Sprintf("at '%s'", tok.Lexeme)
	}
	p.errors = append(p.errors, diagnostics.Diagnostic{Line: tok.Line, Where: where, Message: message})
	return parseError{}
}

// synchronize discards tokens until it reaches a plausible statement
// boundary: just past a `;`, or right before a statement-starting keyword
// (§4.2 error recovery).
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		p.advance()
	}
}
