// File: parser.go
// Title: Recursive Descent Parser
// Description: Statement and expression rules producing ast nodes.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	mdwerror "github.com/dipakw/inside/foundation/core/error"
	mdwlog "github.com/dipakw/inside/foundation/core/log"
	"github.com/dipakw/inside/foundation/lang/ast"
	"github.com/dipakw/inside/foundation/lang/diag"
	"github.com/dipakw/inside/foundation/lang/token"
)

// DefaultMaxDepth bounds expression nesting when Options.MaxDepth is unset
const DefaultMaxDepth = 256

var binaryOps = []token.Kind{token.Plus, token.Minus, token.Star, token.Slash}

// Options configures a Parser
type Options struct {
	// Logger receives a trace entry per parsed statement; nil disables it
	Logger *mdwlog.Logger
	// MaxDepth limits nested expressions; zero or less means DefaultMaxDepth
	MaxDepth int
}

// Parser turns token sequences into programs. It holds only options, so
// one Parser can serve any number of parses.
type Parser struct {
	logger   *mdwlog.Logger
	maxDepth int
}

// New creates a parser
func New(opts Options) *Parser {
	p := &Parser{logger: opts.Logger, maxDepth: opts.MaxDepth}
	if p.logger == nil {
		p.logger = mdwlog.Nop()
	}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}
	return p
}

// Parse parses toks with default options
func Parse(name string, toks []token.Token) (*ast.Program, error) {
	return New(Options{}).Parse(name, toks)
}

// MaxDepth returns the nesting limit in effect
func (p *Parser) MaxDepth() int {
	return p.maxDepth
}

// Parse builds the program for toks. A sequence missing its trailing EOF
// is treated as if it had one. On failure no program is returned.
func (p *Parser) Parse(name string, toks []token.Token) (*ast.Program, error) {
	s := &state{cursor: newCursor(name, toks), maxDepth: p.maxDepth}
	prog := &ast.Program{Name: name, Body: []ast.Stmt{}}

	for {
		s.burn(multilineSpace)

		switch tok := s.current(0); tok.Kind {
		case token.EOF:
			return prog, nil

		case token.Var, token.Fix:
			stmt, err := s.parseBinding()
			if err != nil {
				return nil, err
			}
			prog.Body = append(prog.Body, stmt)
			p.logger.Trace("statement parsed", mdwlog.Fields{"source": name, "line": tok.Line, "kind": tok.Kind.String()})

		default:
			return nil, s.unexpected(tok)
		}
	}
}

type state struct {
	*cursor
	depth    int
	maxDepth int
}

// parseBinding parses var|fix ident = expr
func (s *state) parseBinding() (ast.Stmt, error) {
	toks, err := s.grab(
		Match(SpacingInline, token.Var, token.Fix),
		Match(SpacingInline, token.Ident),
		Match(SpacingInline, token.Equal),
	)
	if err != nil {
		return nil, err
	}

	expr, err := s.parseExpr()
	if err != nil {
		return nil, err
	}

	if toks[0].Kind == token.Fix {
		return &ast.FixStmt{Name: toks[1].Text, Expr: expr}, nil
	}
	return &ast.VarStmt{Name: toks[1].Text, Expr: expr}, nil
}

// parseExpr parses an atom followed by any number of operator/atom pairs,
// folding left
func (s *state) parseExpr() (ast.Expr, error) {
	s.depth++
	defer func() { s.depth-- }()
	if s.depth > s.maxDepth {
		tok := s.current(0)
		return nil, diag.Parse(s.name, mdwerror.CodeParseTooDeep, tok.Line, tok.Column,
			"expression nesting exceeds maximum depth of %d", s.maxDepth)
	}

	left, err := s.parseAtom()
	if err != nil {
		return nil, err
	}

	for s.peekKind(0, binaryOps...) {
		op, err := s.grab(Match(SpacingMultiline, binaryOps...))
		if err != nil {
			return nil, err
		}
		right, err := s.parseAtom()
		if err != nil {
			return nil, err
		}
		left = &ast.BinExpr{Left: left, Op: op[0].Kind, Right: right}
	}
	return left, nil
}

// parseAtom tries each alternative in order; the first that applies wins
func (s *state) parseAtom() (ast.Expr, error) {
	switch {
	case s.peekKinds(0, token.Ident, token.LParen):
		return s.parseCall()

	case s.peekKind(0, token.LParen):
		if _, err := s.grab(Match(SpacingMultiline, token.LParen)); err != nil {
			return nil, err
		}
		inner, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := s.grab(Match(SpacingMultiline, token.RParen)); err != nil {
			return nil, err
		}
		return inner, nil

	case s.peekKinds(0, token.Int, token.Dot, token.Int):
		toks, err := s.grab(
			Match(SpacingInline, token.Int),
			Match(SpacingInline, token.Dot),
			Match(SpacingMultiline, token.Int),
		)
		if err != nil {
			return nil, err
		}
		return &ast.LitExpr{Kind: token.Float, Text: toks[0].Text + "." + toks[2].Text}, nil

	case s.peekKind(0, token.Bool, token.Str, token.Int):
		toks, err := s.grab(Match(SpacingMultiline, token.Bool, token.Str, token.Int))
		if err != nil {
			return nil, err
		}
		return &ast.LitExpr{Kind: toks[0].Kind, Text: toks[0].Text}, nil

	case s.peekKind(0, token.Ident):
		toks, err := s.grab(Match(SpacingMultiline, token.Ident))
		if err != nil {
			return nil, err
		}
		return &ast.IdentExpr{Name: toks[0].Text}, nil
	}

	return nil, s.unexpected(s.current(0))
}

// parseCall parses ident ( args )
func (s *state) parseCall() (ast.Expr, error) {
	toks, err := s.grab(Match(SpacingInline, token.Ident), Match(SpacingMultiline, token.LParen))
	if err != nil {
		return nil, err
	}
	args, err := s.parseArgs(token.Comma, token.RParen)
	if err != nil {
		return nil, err
	}
	return &ast.CallExpr{Name: toks[0].Text, Args: args}, nil
}

// parseArgs parses expressions up to end. Separators are optional between
// arguments, but one directly before end is an error at end.
func (s *state) parseArgs(sep, end token.Kind) ([]ast.Expr, error) {
	args := []ast.Expr{}

	for !s.peekKind(0, end) {
		expr, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, expr)

		if s.peekKind(0, sep) {
			if _, err := s.grab(Match(SpacingMultiline, sep)); err != nil {
				return nil, err
			}
			if s.peekKind(0, end) {
				return nil, s.unexpected(s.current(0))
			}
		}
	}

	if _, err := s.grab(Match(SpacingMultiline, end)); err != nil {
		return nil, err
	}
	return args, nil
}
