// Package parser implements minilang's recursive-descent parser. Binary
// operator precedence is encoded as an ordered list of operator groups,
// from tightest- to loosest-binding, climbed recursively: since no
// operator's precedence depends on runtime state, a fixed level list is
// simpler than a full Pratt prefix/infix dispatch table.
package parser

import (
	"github.com/mlang/minilang/internal/ast"
	"github.com/mlang/minilang/internal/token"
)

// binaryOperatorLevels lists left-associative binary operator groups
// from tightest to loosest precedence. Assignment and unary operators
// are handled outside this table.
var binaryOperatorLevels = [][]string{
	{"*", "/", "%"},
	{"+", "-"},
	{"<", "<=", ">", ">="},
	{"==", "!="},
	{"and"},
	{"or"},
}

// Parser turns a token slice into a single top-level Expression.
type Parser struct {
	cursor   *Cursor
	previous *token.Token
}

// New creates a Parser over an already-tokenized input.
func New(tokens []token.Token) *Parser {
	return &Parser{cursor: NewCursor(tokens)}
}

// Parse tokenizes nothing itself — it parses an already-scanned token
// slice into the program's single top-level Expression.
func Parse(tokens []token.Token) (ast.Expression, error) {
	return New(tokens).parseTopLevel()
}

func (p *Parser) peek() token.Token {
	return p.cursor.Peek()
}

// consume advances past the current token. If literals is non-empty,
// the current token's literal must match one of them or a SyntaxError
// is returned and nothing is consumed.
func (p *Parser) consume(literals ...string) (token.Token, error) {
	tok := p.peek()
	if len(literals) > 0 && !containsString(literals, tok.Literal) {
		if len(literals) == 1 {
			return token.Token{}, newSyntaxError(tok.Pos, "expected %q instead of %q", literals[0], tok.Literal)
		}
		return token.Token{}, newSyntaxError(tok.Pos, "expected one of %v instead of %q", literals, tok.Literal)
	}
	p.cursor.Advance()
	p.previous = &tok
	return tok, nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func isPunct(tok token.Token, lit string) bool {
	return tok.Kind == token.Punctuation && tok.Literal == lit
}

func isKeyword(tok token.Token, lit string) bool {
	return tok.Kind == token.Keyword && tok.Literal == lit
}

func isOperator(tok token.Token, lits ...string) bool {
	return tok.Kind == token.Operator && containsString(lits, tok.Literal)
}

func (p *Parser) parseIntLiteral() (*ast.Literal, error) {
	tok := p.peek()
	if tok.Kind != token.IntLit {
		return nil, newSyntaxError(tok.Pos, "expected integer literal instead of %q", tok.Literal)
	}
	p.consume()
	value, err := parseDecimal(tok.Literal)
	if err != nil {
		return nil, newSyntaxError(tok.Pos, "invalid integer literal %q", tok.Literal)
	}
	return &ast.Literal{Token: tok, Value: value}, nil
}

// parseDecimal avoids pulling in strconv's full surface for a
// constrained digit string already validated by the lexer.
func parseDecimal(s string) (int64, error) {
	var n int64
	for _, r := range s {
		n = n*10 + int64(r-'0')
	}
	return n, nil
}

func (p *Parser) parseBoolLiteral() (*ast.Literal, error) {
	tok := p.peek()
	if tok.Kind != token.BoolLit {
		return nil, newSyntaxError(tok.Pos, "expected boolean literal instead of %q", tok.Literal)
	}
	p.consume()
	return &ast.Literal{Token: tok, Value: tok.Literal == "true"}, nil
}

func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	tok := p.peek()
	if tok.Kind != token.Identifier {
		return nil, newSyntaxError(tok.Pos, "expected identifier instead of %q", tok.Literal)
	}
	p.consume()
	return &ast.Identifier{Token: tok, Name: tok.Literal}, nil
}

// parseBlock parses `{ statements... }` applying the optional-semicolon
// termination rule: a statement ending in `}` needs no following `;`
// before the next statement (or the closing brace); any other statement
// does. A trailing `;` directly before `}` yields an implicit Unit
// literal as the block's final statement.
func (p *Parser) parseBlock() (*ast.Block, error) {
	openTok, err := p.consume("{")
	if err != nil {
		return nil, err
	}
	statements := []ast.Expression{}
	if !isPunct(p.peek(), "}") {
		stmt, err := p.parseExpression(true)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)

		for !isPunct(p.peek(), "}") {
			if p.previous != nil && !isPunct(*p.previous, "}") {
				if _, err := p.consume(";"); err != nil {
					return nil, err
				}
				if isPunct(p.peek(), "}") {
					statements = append(statements, &ast.Literal{Token: *p.previous, Value: nil})
					break
				}
			} else if isPunct(p.peek(), ";") {
				semi, err := p.consume(";")
				if err != nil {
					return nil, err
				}
				if isPunct(p.peek(), "}") {
					statements = append(statements, &ast.Literal{Token: semi, Value: nil})
					break
				}
			}
			stmt, err := p.parseExpression(true)
			if err != nil {
				return nil, err
			}
			statements = append(statements, stmt)
		}
	}
	if _, err := p.consume("}"); err != nil {
		return nil, err
	}
	return &ast.Block{Token: openTok, Statements: statements}, nil
}

func (p *Parser) parseParenthesized() (ast.Expression, error) {
	if _, err := p.consume("("); err != nil {
		return nil, err
	}
	exp, err := p.parseExpression(false)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(")"); err != nil {
		return nil, err
	}
	return exp, nil
}

func (p *Parser) parseFunctionCall(callee ast.Expression) (ast.Expression, error) {
	openTok, err := p.consume("(")
	if err != nil {
		return nil, err
	}
	var arguments []ast.Expression
	if !isPunct(p.peek(), ")") {
		arg, err := p.parseExpression(false)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, arg)
		for isPunct(p.peek(), ",") {
			if _, err := p.consume(","); err != nil {
				return nil, err
			}
			arg, err := p.parseExpression(false)
			if err != nil {
				return nil, err
			}
			arguments = append(arguments, arg)
		}
	}
	if _, err := p.consume(")"); err != nil {
		return nil, err
	}
	return &ast.FunctionCall{Token: openTok, Callee: callee, Arguments: arguments}, nil
}

// parseTerm parses a primary expression, then zero or more trailing
// call suffixes, so `f(x)(y)` parses as nested FunctionCalls.
func (p *Parser) parseTerm() (ast.Expression, error) {
	var exp ast.Expression
	var err error

	tok := p.peek()
	switch {
	case isPunct(tok, "{"):
		exp, err = p.parseBlock()
	case isPunct(tok, "("):
		exp, err = p.parseParenthesized()
	case tok.Kind == token.IntLit:
		exp, err = p.parseIntLiteral()
	case tok.Kind == token.BoolLit:
		exp, err = p.parseBoolLiteral()
	case tok.Kind == token.Identifier:
		exp, err = p.parseIdentifier()
	default:
		return nil, newSyntaxError(tok.Pos, "expected expression instead of %q", tok.Literal)
	}
	if err != nil {
		return nil, err
	}

	for isPunct(p.peek(), "(") {
		exp, err = p.parseFunctionCall(exp)
		if err != nil {
			return nil, err
		}
	}
	return exp, nil
}

func (p *Parser) parseWhileExpression() (ast.Expression, error) {
	if !isKeyword(p.peek(), "while") {
		return p.parseTerm()
	}
	whileTok, err := p.consume("while")
	if err != nil {
		return nil, err
	}
	condition, err := p.parseExpression(false)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume("do"); err != nil {
		return nil, err
	}
	body, err := p.parseExpression(false)
	if err != nil {
		return nil, err
	}
	return &ast.While{Token: whileTok, Condition: condition, Body: body}, nil
}

func (p *Parser) parseIfExpression() (ast.Expression, error) {
	if !isKeyword(p.peek(), "if") {
		return p.parseWhileExpression()
	}
	ifTok, err := p.consume("if")
	if err != nil {
		return nil, err
	}
	condition, err := p.parseExpression(false)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume("then"); err != nil {
		return nil, err
	}
	thenBranch, err := p.parseExpression(false)
	if err != nil {
		return nil, err
	}
	if isKeyword(p.peek(), "else") {
		if _, err := p.consume("else"); err != nil {
			return nil, err
		}
		elseBranch, err := p.parseExpression(false)
		if err != nil {
			return nil, err
		}
		return &ast.If{Token: ifTok, Condition: condition, Then: thenBranch, ElseBranch: elseBranch}, nil
	}
	return &ast.If{Token: ifTok, Condition: condition, Then: thenBranch}, nil
}

func (p *Parser) parseUnaryExpression() (ast.Expression, error) {
	tok := p.peek()
	if isOperator(tok, "-", "not") {
		if _, err := p.consume(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnaryExpression()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Token: tok, Op: tok.Literal, Operand: operand}, nil
	}
	return p.parseIfExpression()
}

// parseBinaryExpression climbs binaryOperatorLevels from `level` down to
// 0, so the outermost call with len(binaryOperatorLevels) binds loosest
// ("or") and level 0 falls through to unary expressions.
func (p *Parser) parseBinaryExpression(level int) (ast.Expression, error) {
	if level == 0 {
		return p.parseUnaryExpression()
	}
	exp, err := p.parseBinaryExpression(level - 1)
	if err != nil {
		return nil, err
	}
	ops := binaryOperatorLevels[level-1]
	for isOperator(p.peek(), ops...) {
		opTok, err := p.consume()
		if err != nil {
			return nil, err
		}
		right, err := p.parseBinaryExpression(level - 1)
		if err != nil {
			return nil, err
		}
		exp = &ast.BinaryOp{Token: opTok, Left: exp, Op: opTok.Literal, Right: right}
	}
	return exp, nil
}

func (p *Parser) parseAssignment() (ast.Expression, error) {
	exp, err := p.parseBinaryExpression(len(binaryOperatorLevels))
	if err != nil {
		return nil, err
	}
	if isOperator(p.peek(), "=") {
		opTok, err := p.consume("=")
		if err != nil {
			return nil, err
		}
		right, err := p.parseAssignment() // right-associative
		if err != nil {
			return nil, err
		}
		exp = &ast.BinaryOp{Token: opTok, Left: exp, Op: opTok.Literal, Right: right}
	}
	return exp, nil
}

func (p *Parser) parseVariableDeclaration() (ast.Expression, error) {
	varTok, err := p.consume("var")
	if err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	var typeAnnotation *ast.Identifier
	if isPunct(p.peek(), ":") {
		if _, err := p.consume(":"); err != nil {
			return nil, err
		}
		typeAnnotation, err = p.parseIdentifier()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume("="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(false)
	if err != nil {
		return nil, err
	}
	return &ast.VariableDeclaration{Token: varTok, Name: name, TypeAnnotation: typeAnnotation, Value: value}, nil
}

// parseExpression is the grammar's entry point. topLevel gates
// `var` declarations: they are legal directly inside a block or at the
// program's top level, nowhere else.
func (p *Parser) parseExpression(topLevel bool) (ast.Expression, error) {
	if isKeyword(p.peek(), "var") {
		if !topLevel {
			tok := p.peek()
			return nil, newSyntaxError(tok.Pos, "variable declaration is only allowed directly inside blocks and in top-level expressions")
		}
		return p.parseVariableDeclaration()
	}
	return p.parseAssignment()
}

// parseTopLevel parses the entire program as one expression, applying
// the same optional-semicolon statement-separation rule as parseBlock,
// wrapping multiple top-level statements in a synthetic Block.
func (p *Parser) parseTopLevel() (ast.Expression, error) {
	startTok := p.peek()
	if startTok.Kind == token.EOF {
		return &ast.Literal{Token: startTok, Value: nil}, nil
	}

	exp, err := p.parseExpression(true)
	if err != nil {
		return nil, err
	}
	if p.peek().Kind == token.EOF {
		return exp, nil
	}

	statements := []ast.Expression{exp}
	for p.peek().Kind != token.EOF {
		if p.previous != nil && !isPunct(*p.previous, "}") {
			if _, err := p.consume(";"); err != nil {
				return nil, err
			}
			if p.peek().Kind == token.EOF {
				statements = append(statements, &ast.Literal{Token: *p.previous, Value: nil})
				break
			}
		} else if isPunct(p.peek(), ";") {
			semi, err := p.consume(";")
			if err != nil {
				return nil, err
			}
			if p.peek().Kind == token.EOF {
				statements = append(statements, &ast.Literal{Token: semi, Value: nil})
				break
			}
		}
		stmt, err := p.parseExpression(true)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return &ast.Block{Token: startTok, Statements: statements}, nil
}
