// File: engine.go
// Title: Front End Engine
// Description: Coordinates tokenizing and parsing with logging, timing and
//              source length limits.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package lang

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	mdwerror "github.com/dipakw/inside/foundation/core/error"
	mdwlog "github.com/dipakw/inside/foundation/core/log"
	mdwast "github.com/dipakw/inside/foundation/lang/ast"
	"github.com/dipakw/inside/foundation/lang/diag"
	mdwlexer "github.com/dipakw/inside/foundation/lang/lexer"
	mdwparser "github.com/dipakw/inside/foundation/lang/parser"
	"github.com/dipakw/inside/foundation/lang/token"
)

// DefaultMaxSourceLength bounds source text size in bytes
const DefaultMaxSourceLength = 1 << 20

// Options configures an Engine
type Options struct {
	// Logger for engine operations; defaults to the package default logger
	Logger *mdwlog.Logger

	// Lexer overrides the character permission table; nil uses
	// lexer.DefaultConfig
	Lexer *mdwlexer.Config

	// MaxDepth limits expression nesting (default parser.DefaultMaxDepth)
	MaxDepth int

	// MaxSourceLength limits source size in bytes (default 1 MiB)
	MaxSourceLength int
}

// Engine runs the front end. It is safe for concurrent use.
type Engine struct {
	lexer   *mdwlexer.Lexer
	parser  *mdwparser.Parser
	logger  *mdwlog.Logger
	options Options
}

// Result describes one compile run, successful or not
type Result struct {
	Name     string
	Digest   string
	Tokens   []token.Token
	Program  *mdwast.Program
	Err      error
	Duration time.Duration
}

// OK reports whether the run produced a program
func (r *Result) OK() bool {
	return r.Err == nil
}

// Diagnostic returns the positioned error of a failed run, if it has one
func (r *Result) Diagnostic() (*diag.Error, bool) {
	if r.Err == nil {
		return nil, false
	}
	return diag.As(r.Err)
}

// NewEngine creates an engine; zero option fields take their defaults
func NewEngine(opts ...Options) *Engine {
	options := Options{
		Logger:          mdwlog.GetDefault(),
		MaxDepth:        mdwparser.DefaultMaxDepth,
		MaxSourceLength: DefaultMaxSourceLength,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.Lexer != nil {
			cfg := *provided.Lexer
			options.Lexer = &cfg
		}
		if provided.MaxDepth > 0 {
			options.MaxDepth = provided.MaxDepth
		}
		if provided.MaxSourceLength > 0 {
			options.MaxSourceLength = provided.MaxSourceLength
		}
	}
	if options.Lexer == nil {
		cfg := mdwlexer.DefaultConfig()
		options.Lexer = &cfg
	}

	logger := options.Logger.WithField("component", "lang-engine")

	return &Engine{
		lexer:   mdwlexer.New(*options.Lexer),
		parser:  mdwparser.New(mdwparser.Options{Logger: logger, MaxDepth: options.MaxDepth}),
		logger:  logger,
		options: options,
	}
}

// Options returns the effective options
func (e *Engine) Options() Options {
	return e.options
}

// Tokenize lexes code
func (e *Engine) Tokenize(ctx context.Context, name, code string) ([]token.Token, error) {
	logger := e.scoped(ctx, name)
	if err := e.validate(ctx, name, code); err != nil {
		logger.LogError(err)
		return nil, err
	}

	timer := logger.StartTimer("tokenize").WithField("bytes", len(code))
	toks, err := e.lexer.Tokenize(mdwlexer.Input{Name: name, Code: code})
	if err != nil {
		timer.WithFields(diagFields(err)).StopWithError(err)
		return nil, err
	}
	timer.WithField("tokens", len(toks)).Stop()
	return toks, nil
}

// ParseTokens parses an already tokenized source
func (e *Engine) ParseTokens(ctx context.Context, name string, toks []token.Token) (*mdwast.Program, error) {
	logger := e.scoped(ctx, name)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timer := logger.StartTimer("parse").WithField("tokens", len(toks))
	prog, err := e.parser.Parse(name, toks)
	if err != nil {
		timer.WithFields(diagFields(err)).StopWithError(err)
		return nil, err
	}
	timer.WithField("statements", len(prog.Body)).Stop()
	return prog, nil
}

// Parse tokenizes and parses code
func (e *Engine) Parse(ctx context.Context, name, code string) (*mdwast.Program, error) {
	toks, err := e.Tokenize(ctx, name, code)
	if err != nil {
		return nil, err
	}
	return e.ParseTokens(ctx, name, toks)
}

// Compile runs both stages and records the outcome instead of returning
// an error
func (e *Engine) Compile(ctx context.Context, name, code string) *Result {
	start := time.Now()
	res := &Result{Name: name, Digest: Digest(code)}

	res.Tokens, res.Err = e.Tokenize(ctx, name, code)
	if res.Err == nil {
		res.Program, res.Err = e.ParseTokens(ctx, name, res.Tokens)
	}
	res.Duration = time.Since(start)
	return res
}

// Digest returns the hex SHA-256 of code
func Digest(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

func (e *Engine) validate(ctx context.Context, name, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(code) > e.options.MaxSourceLength {
		return mdwerror.Newf("source exceeds maximum length of %d bytes", e.options.MaxSourceLength).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("lang.Tokenize").
			WithDetail("source", name).
			WithDetail("length", len(code))
	}
	return nil
}

func (e *Engine) scoped(ctx context.Context, name string) *mdwlog.Logger {
	logger := e.logger.WithField("source", name)
	if id := RequestID(ctx); id != "" {
		logger = logger.WithRequestID(id)
	}
	return logger
}

func diagFields(err error) mdwlog.Fields {
	d, ok := diag.As(err)
	if !ok {
		return nil
	}
	return mdwlog.Fields{
		"stage":  string(d.Stage),
		"code":   string(d.Code),
		"line":   d.Line,
		"column": d.Column,
	}
}

type requestIDKey struct{}

// WithRequestID returns a context carrying a request ID for log entries
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request ID stored in ctx, or ""
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
