package parser

import (
	"fmt"

	"github.com/mlang/minilang/internal/token"
)

// SyntaxError reports a parse failure and the position at which it
// occurred. Parsing aborts on the first SyntaxError — there is no error
// recovery.
type SyntaxError struct {
	Pos     token.Position
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

func newSyntaxError(pos token.Position, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
