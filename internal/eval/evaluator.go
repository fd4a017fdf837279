// Package eval drives the stack evaluation of a postfix expression: numbers
// are pushed, operators pop two values, combine them and push the result.
package eval

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"rpncalc/internal/diagnostics"
	"rpncalc/internal/frontend/lexer"
)

// Evaluator is the control loop of the push-down automaton. It repeatedly
// invokes the tokenizer and mutates the value stack; the tokenizer never
// calls back into it. Trace, when non-nil, receives the step-by-step working
// (tokens, stack contents, per-operation equations); tracing is
// presentational only and never affects the outcome.
type Evaluator struct {
	tok   *lexer.Tokenizer
	stack Stack
	trace io.Writer
}

// New creates an Evaluator over the given tokenizer
func New(tok *lexer.Tokenizer) *Evaluator {
	return &Evaluator{tok: tok}
}

// WithTrace sets the writer for the verbose working trace
func (e *Evaluator) WithTrace(w io.Writer) *Evaluator {
	e.trace = w
	return e
}

// Run evaluates the expression to its final value. The second result holds
// any values left on the stack after the final pop, bottom to top: a
// non-empty leftover means the expression had too many operands, which is
// reported as a warning by the caller, not an error. The returned value is
// still the answer.
func (e *Evaluator) Run() (float64, []float64, error) {
	for {
		tok, eoi, err := e.tok.NextToken()
		if err != nil {
			return 0, nil, err
		}

		// An end-of-input signal may still carry a final lexeme.
		if !eoi || tok.Value != "" {
			if tok.Kind == lexer.OPERATOR_TOKEN {
				if err := e.applyOperator(tok.Value); err != nil {
					return 0, nil, err
				}
			} else {
				if err := e.pushNumber(tok.Value); err != nil {
					return 0, nil, err
				}
			}
		}

		if eoi {
			break
		}
	}

	// The stack should be empty after popping the result if the input was a
	// correct and complete postfix expression.
	result, ok := e.stack.Pop()
	if !ok {
		return 0, nil, &diagnostics.UnderflowError{Context: "empty expression"}
	}
	return result, e.stack.Values(), nil
}

// pushNumber parses a number lexeme and pushes its value
func (e *Evaluator) pushNumber(text string) error {
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return &diagnostics.ConversionError{Text: text, Err: err}
	}
	if e.trace != nil {
		fmt.Fprintf(e.trace, "Number %s\n", FormatValue(n))
	}
	e.stack.Push(n)
	return nil
}

// applyOperator pops two operands, applies op and pushes the result. The top
// of the stack is the second (right) operand; the one below it is the first.
func (e *Evaluator) applyOperator(op string) error {
	if e.trace != nil {
		fmt.Fprintf(e.trace, "Operator %s\n", op)
		fmt.Fprintf(e.trace, "Stack: %s\n", formatValues(e.stack.Values()))
	}

	n2, ok := e.stack.Pop()
	if !ok {
		return &diagnostics.UnderflowError{}
	}
	n1, ok := e.stack.Pop()
	if !ok {
		return &diagnostics.UnderflowError{}
	}

	if op == string(lexer.Div) && n2 == 0.0 {
		return &diagnostics.DivisionByZeroError{Dividend: n1}
	}

	var res float64
	switch op {
	case string(lexer.Plus):
		res = n1 + n2
	case string(lexer.Minus):
		res = n1 - n2
	case string(lexer.Mult):
		res = n1 * n2
	case string(lexer.Div):
		res = n1 / n2
	}

	if e.trace != nil {
		fmt.Fprintf(e.trace, "%s %s %s = %s\n", FormatValue(n1), op, FormatValue(n2), FormatValue(res))
	}

	e.stack.Push(res)

	if e.trace != nil {
		fmt.Fprintf(e.trace, "Stack: %s\n\n", formatValues(e.stack.Values()))
	}
	return nil
}

// FormatValue renders a value the way the result is printed
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatValue(v)
	}
	return strings.Join(parts, " ")
}
