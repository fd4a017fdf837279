// Package session provides the shared state for one evaluation run.
//
// The tokenizer and evaluator are stateless workers that receive an
// EvalSession and operate on its streams. All run-wide state (options,
// collected diagnostics, the I/O endpoints) lives here and nowhere else, so
// entry points (CLI, wasm, tests) differ only in how they construct the
// session.
package session

import (
	"io"
	"os"

	"rpncalc/internal/diagnostics"
)

// Options holds evaluator configuration. Passed to the session at creation
// time and remains immutable.
type Options struct {
	// Verbose enables the step-by-step working trace on the output stream
	Verbose bool
}

// EvalSession is the central hub for one evaluation run.
type EvalSession struct {
	// Diagnostics - centralized error and warning collection.
	// All phases report here instead of printing their own errors.
	Diagnostics *diagnostics.DiagnosticBag

	// Options - evaluator configuration
	Options *Options

	// In is the expression stream; Out receives the result (and the verbose
	// trace); ErrOut receives rendered diagnostics.
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// New creates a session bound to the process streams. This is the entry
// point for starting a new evaluation run.
func New(options *Options) *EvalSession {
	if options == nil {
		options = &Options{}
	}

	return &EvalSession{
		Diagnostics: diagnostics.NewDiagnosticBag(),
		Options:     options,
		In:          os.Stdin,
		Out:         os.Stdout,
		ErrOut:      os.Stderr,
	}
}

// HasErrors returns true if any errors have been reported during the run
func (s *EvalSession) HasErrors() bool {
	return s.Diagnostics.HasErrors()
}

// EmitDiagnostics outputs all collected diagnostics to the error stream.
// Typically called once at the end of the run.
func (s *EvalSession) EmitDiagnostics() {
	s.Diagnostics.EmitAllToWriter(s.ErrOut)
}
