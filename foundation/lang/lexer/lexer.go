// File: lexer.go
// Title: Lexical Analyzer
// Description: Converts source text into tokens with 1-based line and
//              column positions.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package lexer

import (
	"strings"
	"unicode/utf8"

	mdwerror "github.com/dipakw/inside/foundation/core/error"
	"github.com/dipakw/inside/foundation/lang/diag"
	"github.com/dipakw/inside/foundation/lang/token"
)

// Input is a named piece of source text
type Input struct {
	Name string
	Code string
}

// Lexer tokenizes source text. It holds only its configuration and can be
// shared between goroutines.
type Lexer struct {
	cfg Config
}

// New creates a lexer with the given configuration
func New(cfg Config) *Lexer {
	return &Lexer{cfg: cfg}
}

// Config returns the lexer's configuration
func (l *Lexer) Config() Config {
	return l.cfg
}

// Tokenize lexes input with the default configuration
func Tokenize(input Input) ([]token.Token, error) {
	return New(DefaultConfig()).Tokenize(input)
}

// Tokenize scans input and returns its tokens terminated by a single EOF
// token. The first failure aborts the scan and no tokens are returned.
func (l *Lexer) Tokenize(input Input) ([]token.Token, error) {
	s := &scanner{
		cfg:  &l.cfg,
		name: input.Name,
		line: 1,
		toks: make([]token.Token, 0, len(input.Code)/3+1),
	}
	if err := s.run(input.Code); err != nil {
		return nil, err
	}
	return s.toks, nil
}

type scanner struct {
	cfg  *Config
	name string
	toks []token.Token

	line, col int

	buf             strings.Builder
	bufLine, bufCol int
	inString        bool
	closer          rune
	strLine, strCol int
}

func (s *scanner) run(code string) error {
	for _, r := range code {
		s.col++

		if !s.cfg.Allowed(r, s.inString) {
			return diag.Lex(s.name, mdwerror.CodeLexDisallowedChar, s.line, s.col, "character not allowed: %q", r)
		}

		if s.inString {
			s.stringRune(r)
			continue
		}

		kind, sep := token.Invalid, false
		if r < utf8.RuneSelf {
			kind, sep = token.ClassifyByte(byte(r))
		}

		switch {
		case kind == token.DQuote || kind == token.Backtick:
			if err := s.flush(); err != nil {
				return err
			}
			s.inString, s.closer = true, r
			s.strLine, s.strCol = s.line, s.col

		case sep:
			if err := s.flush(); err != nil {
				return err
			}
			if !kind.IsWhitespace() {
				s.emit(kind, string(r), s.line, s.col)
			}
			if kind == token.EOL {
				s.line++
				s.col = 0
			}

		default:
			if s.buf.Len() == 0 {
				s.bufLine, s.bufCol = s.line, s.col
			}
			s.buf.WriteRune(r)
		}
	}

	if s.inString {
		return diag.Lex(s.name, mdwerror.CodeLexUnterminatedString, s.strLine, s.strCol, "unexpected end of file")
	}
	if err := s.flush(); err != nil {
		return err
	}

	s.emit(token.EOF, "", s.line, s.col+1)
	return nil
}

// stringRune handles one character while a string literal is open
func (s *scanner) stringRune(r rune) {
	if r == s.closer {
		s.emit(token.Str, s.buf.String(), s.strLine, s.strCol+1)
		s.buf.Reset()
		s.inString = false
		return
	}
	s.buf.WriteRune(r)
	if r == '\n' {
		s.line++
		s.col = 0
	}
}

// flush classifies and emits the buffered text, if any
func (s *scanner) flush() error {
	if s.buf.Len() == 0 {
		return nil
	}
	text := s.buf.String()
	s.buf.Reset()

	kind, _ := token.Classify(text)
	if kind == token.Invalid {
		return diag.Lex(s.name, mdwerror.CodeLexInvalidToken, s.bufLine, s.bufCol, "invalid token: %s", text)
	}
	if !kind.IsWhitespace() {
		s.emit(kind, text, s.bufLine, s.bufCol)
	}
	return nil
}

func (s *scanner) emit(kind token.Kind, text string, line, col int) {
	s.toks = append(s.toks, token.Token{Kind: kind, Text: text, Line: line, Column: col})
}
