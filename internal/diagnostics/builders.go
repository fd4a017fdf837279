package diagnostics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Common diagnostic builders for the tokenizer

// InvalidLexeme creates a diagnostic for text that is neither a number nor an
// operator
func InvalidLexeme(text string, offset int) *Diagnostic {
	return NewError("invalid expression: " + text).
		WithCode(ErrInvalidLexeme).
		WithNote(fmt.Sprintf("near input offset %d", offset)).
		WithHelp("expected a decimal number or one of + - * /")
}

// StreamFailure creates a diagnostic for an unrecoverable input read failure
func StreamFailure(cause error) *Diagnostic {
	return NewError(fmt.Sprintf("input stream failure: %v", cause)).
		WithCode(ErrStreamFailure)
}

// Common diagnostic builders for the evaluator

// StackUnderflow creates a diagnostic for a pop from an empty value stack
func StackUnderflow(context string) *Diagnostic {
	msg := "invalid input"
	if context != "" {
		msg += ": " + context
	}
	return NewError(msg).
		WithCode(ErrStackUnderflow).
		WithHelp("each operator needs two operands before it")
}

// DivisionByZero creates a diagnostic for a zero right operand to /
func DivisionByZero(dividend float64) *Diagnostic {
	return NewError("division by zero: " + formatOperand(dividend) + " / 0").
		WithCode(ErrDivisionByZero)
}

// NumericConversion creates a diagnostic for a number lexeme that failed to
// parse
func NumericConversion(text string, cause error) *Diagnostic {
	d := NewError(fmt.Sprintf("could not convert %q to a number", text)).
		WithCode(ErrNumericConversion)
	if cause != nil {
		d = d.WithNote(cause.Error())
	}
	return d
}

// LeftoverStack creates a warning for values remaining on the stack after the
// final pop. The expression was improper but a result was still produced.
func LeftoverStack(values []float64) *Diagnostic {
	return NewWarning("the input was improper; the stack is not empty").
		WithCode(WarnLeftoverStack).
		WithNote("remaining: " + formatOperands(values)).
		WithHelp("check the balance of operands and operators")
}

// FromError converts a typed evaluation error into its diagnostic. Unknown
// error values are rendered verbatim as plain errors.
func FromError(err error) *Diagnostic {
	var (
		invalid    *InvalidLexemeError
		underflow  *UnderflowError
		divByZero  *DivisionByZeroError
		conversion *ConversionError
		stream     *StreamError
	)
	switch {
	case errors.As(err, &invalid):
		return InvalidLexeme(invalid.Text, invalid.Offset)
	case errors.As(err, &underflow):
		return StackUnderflow(underflow.Context)
	case errors.As(err, &divByZero):
		return DivisionByZero(divByZero.Dividend)
	case errors.As(err, &conversion):
		return NumericConversion(conversion.Text, conversion.Err)
	case errors.As(err, &stream):
		return StreamFailure(stream.Err)
	default:
		return NewError(err.Error())
	}
}

func formatOperand(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatOperands(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatOperand(v)
	}
	return strings.Join(parts, " ")
}
