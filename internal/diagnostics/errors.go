package diagnostics

import (
	"fmt"
	"strconv"
)

// The typed errors below are the evaluator's error taxonomy. They are raised
// at the point of detection and propagate up through the control loop
// unmodified; FromError (builders.go) matches them at the top level to choose
// the user-facing message. None of them are recoverable mid-evaluation.

// InvalidLexemeError reports accumulated text that matches neither a number
// nor an operator. Offset is the byte offset of the lexeme's first rune.
type InvalidLexemeError struct {
	Text   string
	Offset int
}

func (e *InvalidLexemeError) Error() string {
	return "invalid expression: " + e.Text
}

// UnderflowError reports a pop from an empty value stack: an operator with
// fewer than two operands, or an empty expression at the final pop.
type UnderflowError struct {
	Context string // optional, may be empty
}

func (e *UnderflowError) Error() string {
	if e.Context != "" {
		return "invalid input: " + e.Context
	}
	return "invalid input"
}

// DivisionByZeroError reports a division whose right operand is exactly zero.
// The dividend (left operand) is carried for the error message.
type DivisionByZeroError struct {
	Dividend float64
}

func (e *DivisionByZeroError) Error() string {
	return "division by zero: " + strconv.FormatFloat(e.Dividend, 'g', -1, 64) + " / 0"
}

// ConversionError reports a number-shaped lexeme that failed to parse to a
// float64. Defensive: should not occur when classification is correct.
type ConversionError struct {
	Text string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("could not convert %q to a number", e.Text)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// StreamError reports an unrecoverable read failure on the input stream that
// is not ordinary end-of-stream.
type StreamError struct {
	Err error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("input stream failure: %v", e.Err)
}

func (e *StreamError) Unwrap() error { return e.Err }
