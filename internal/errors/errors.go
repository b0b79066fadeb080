// Package errors provides sentinel errors and error types for the othello player.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that is not legal for the side on that board.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoCandidates indicates a search was asked to choose among zero moves.
	ErrNoCandidates = errors.New("no candidate moves")

	// ErrInvalidPosition indicates a malformed board diagram.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidMove indicates move text or coordinates that cannot name a square.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// TurnError wraps errors with turn context: the turn number, the side whose
// move failed and the move itself. It supports unwrapping via errors.Is()
// and errors.As().
type TurnError struct {
	Err  error  // The underlying error
	Turn int    // 1-based turn number of the player (0 if not applicable)
	Side string // Side whose move failed
	Move string // The move text (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *TurnError) Error() string {
	var parts []string

	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}
	if e.Side != "" {
		parts = append(parts, strings.ToLower(e.Side))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case context == "":
		return "turn error"
	}
	return context
}

// Unwrap returns the underlying error.
func (e *TurnError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
