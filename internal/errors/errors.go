// Package errors provides sentinel errors and error types for the rules engine.
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
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrAmbiguousMove indicates a move request that matches more than one legal move.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrImpreciseMove indicates a resolved move that no longer matches what
	// the current position resolves it to.
	ErrImpreciseMove = errors.New("imprecise move")

	// ErrInvalidPlacement indicates a malformed or unplayable piece placement.
	ErrInvalidPlacement = errors.New("invalid piece placement")

	// ErrInconsistentBoard indicates corrupted board state. It is a defect,
	// never a consequence of user input.
	ErrInconsistentBoard = errors.New("inconsistent board state")

	// ErrNotation indicates move text that cannot be read.
	ErrNotation = errors.New("unreadable move notation")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GameError wraps errors with game context, including game number,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameNum  int    // 1-based game number in the input
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	File     string // Source file name (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}

	parts = append(parts, fmt.Sprintf("game %d", e.GameNum))

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// PlacementError reports where a piece placement went wrong.
type PlacementError struct {
	Err    error  // The underlying error
	Square string // Square involved, in algebraic notation (if known)
	Detail string // What was wrong
}

// Error returns a formatted error message with location and detail.
func (e *PlacementError) Error() string {
	var parts []string
	if e.Square != "" {
		parts = append(parts, e.Square)
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "placement error"
}

// Unwrap returns the underlying error.
func (e *PlacementError) Unwrap() error {
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

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
