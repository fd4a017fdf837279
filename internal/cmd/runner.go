package cmd

import (
	"fmt"

	"rpncalc/internal/diagnostics"
	"rpncalc/internal/eval"
	"rpncalc/internal/frontend/lexer"
	"rpncalc/internal/session"
)

// Run evaluates the session's input stream and prints the result.
//
// This is the evaluation phase runner - it is stateless and operates on the
// session. Errors are converted to diagnostics and collected in the
// session's bag; the caller decides when to emit them. The returned error
// mirrors the bag for callers that want to short-circuit.
func Run(sess *session.EvalSession) error {
	tokenizer := lexer.New(sess.In)

	evaluator := eval.New(tokenizer)
	if sess.Options.Verbose {
		evaluator = evaluator.WithTrace(sess.Out)
	}

	result, leftover, err := evaluator.Run()
	if err != nil {
		sess.Diagnostics.Add(diagnostics.FromError(err))
		return fmt.Errorf("evaluation failed: %w", err)
	}

	// Print the final result
	if sess.Options.Verbose {
		fmt.Fprint(sess.Out, "Result: ")
	}
	fmt.Fprintln(sess.Out, eval.FormatValue(result))

	// Values still on the stack after the final pop mean the expression had
	// too many operands. The result above still stands; report and move on.
	if len(leftover) > 0 {
		sess.Diagnostics.Add(diagnostics.LeftoverStack(leftover))
	}

	return nil
}
