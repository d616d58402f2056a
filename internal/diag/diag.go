// Package diag collects errors from every compiler stage into a single
// Diagnostic shape, so callers never have to switch on stage-specific
// error types. Context rendering adds a header line, the offending
// source line, and a caret under the column.
package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/mlang/minilang/internal/token"
)

// Stage identifies which compiler phase produced a Diagnostic.
type Stage int

const (
	Lex Stage = iota
	Parse
	Type
)

func (s Stage) String() string {
	switch s {
	case Lex:
		return "lex"
	case Parse:
		return "parse"
	case Type:
		return "type"
	default:
		return "unknown"
	}
}

// Diagnostic is the single error shape produced by every stage: one
// kind rather than one exception type per stage. There is no error
// recovery: the first Diagnostic a stage produces aborts the pipeline.
type Diagnostic struct {
	Stage   Stage
	Pos     token.Position
	Message string
}

// New builds a Diagnostic for the given stage.
func New(stage Stage, pos token.Position, format string, args ...any) *Diagnostic {
	return &Diagnostic{Stage: stage, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface with a one-line "line L, column
// C: message" form, suitable for log output or test assertions.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", d.Pos.Line, d.Pos.Column, d.Message)
}

// WithContext renders the diagnostic with a source excerpt: a header
// line, the offending line of source, and a caret pointing at the
// column. For CLI presentation only — the internal pipeline contract
// always uses Error() and halts on the first diagnostic.
func (d *Diagnostic) WithContext(source string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s error at %s\n", d.Stage, d.Pos)

	if line := sourceLine(source, d.Pos.Line); line != "" {
		gutter := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(gutter)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(gutter)+d.Pos.Column-1))
		sb.WriteString("^\n")
	}

	sb.WriteString(d.Message)
	return sb.String()
}

// WithContextColor renders the same output as WithContext, but with the
// stage header bold, the caret red, and the message bold.
func (d *Diagnostic) WithContextColor(source string) string {
	header := color.New(color.Bold).Sprintf("%s error at %s", d.Stage, d.Pos)
	caret := color.New(color.FgRed, color.Bold).Sprint("^")
	message := color.New(color.Bold).Sprint(d.Message)

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")

	if line := sourceLine(source, d.Pos.Line); line != "" {
		gutter := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(gutter)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(gutter)+d.Pos.Column-1))
		sb.WriteString(caret)
		sb.WriteString("\n")
	}

	sb.WriteString(message)
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
