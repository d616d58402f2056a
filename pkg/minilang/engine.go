// Package minilang is the public facade over the tokenizer, parser,
// and type checker: the single front door for running the pipeline
// over a piece of source text.
package minilang

import (
	"github.com/mlang/minilang/internal/ast"
	"github.com/mlang/minilang/internal/checker"
	"github.com/mlang/minilang/internal/diag"
	"github.com/mlang/minilang/internal/lexer"
	"github.com/mlang/minilang/internal/parser"
	"github.com/mlang/minilang/internal/symtab"
	"github.com/mlang/minilang/internal/token"
	"github.com/mlang/minilang/internal/types"
)

// Engine runs the tokenize -> parse -> typecheck pipeline. It holds no
// mutable state between calls, so a single Engine is safe to share
// across goroutines.
type Engine struct{}

// New constructs an Engine. There is currently no configuration to
// supply, but New exists (rather than using the zero value directly)
// so the facade can grow options without a breaking signature change.
func New() (*Engine, error) {
	return &Engine{}, nil
}

// Tokenize scans source into a token slice.
func (e *Engine) Tokenize(source string) ([]token.Token, *diag.Diagnostic) {
	toks, lexErr := lexer.Tokenize(source)
	if lexErr != nil {
		return nil, diag.New(diag.Lex, lexErr.Pos, "%s", lexErr.Message)
	}
	return toks, nil
}

// Parse tokenizes and parses source into the program's top-level
// Expression.
func (e *Engine) Parse(source string) (ast.Expression, *diag.Diagnostic) {
	toks, derr := e.Tokenize(source)
	if derr != nil {
		return nil, derr
	}
	tree, err := parser.Parse(toks)
	if err != nil {
		if synErr, ok := err.(*parser.SyntaxError); ok {
			return nil, diag.New(diag.Parse, synErr.Pos, "%s", synErr.Message)
		}
		return nil, diag.New(diag.Parse, token.Position{Line: 1, Column: 1}, "%s", err.Error())
	}
	return tree, nil
}

// Typecheck infers tree's type against a fresh, built-in-seeded symbol
// table — every call gets its own table, so no binding from a previous
// call can leak into this one.
func (e *Engine) Typecheck(tree ast.Expression) (types.Type, *diag.Diagnostic) {
	return checker.Typecheck(tree, symtab.New())
}

// Check runs the composed pipeline, halting at the first diagnostic
// from any stage.
func (e *Engine) Check(source string) (ast.Expression, types.Type, *diag.Diagnostic) {
	tree, derr := e.Parse(source)
	if derr != nil {
		return nil, nil, derr
	}
	typ, derr := e.Typecheck(tree)
	if derr != nil {
		return tree, nil, derr
	}
	return tree, typ, nil
}
