package diagnostics

import (
	"fmt"
	"io"
	"os"
)

// Emitter handles the rendering and output of diagnostics. The input is an
// anonymous stream, so there are no file/line spans to render; each
// diagnostic is a header line plus optional note and help lines.
type Emitter struct {
	out io.Writer
}

func NewEmitter() *Emitter {
	return NewEmitterWithWriter(os.Stderr)
}

func NewEmitterWithWriter(w io.Writer) *Emitter {
	return &Emitter{out: w}
}

// Emit renders and prints a single diagnostic
func (e *Emitter) Emit(diag *Diagnostic) {
	e.printHeader(diag)

	for _, note := range diag.Notes {
		fmt.Fprintf(e.out, "  note: %s\n", note.Message)
	}

	if diag.Help != "" {
		fmt.Fprintf(e.out, "  help: %s\n", diag.Help)
	}
}

// printHeader prints the severity, code and message, e.g.
//
//	error[E0003]: division by zero: 1 / 0
func (e *Emitter) printHeader(diag *Diagnostic) {
	if diag.Code != "" {
		fmt.Fprintf(e.out, "%s[%s]: %s\n", diag.Severity, diag.Code, diag.Message)
		return
	}
	fmt.Fprintf(e.out, "%s: %s\n", diag.Severity, diag.Message)
}
