// Package diagnostics provides error and warning reporting for the evaluator.
//
// All fallible phases return typed error values (errors.go); the runner
// converts them into Diagnostic records via the builders (builders.go),
// collects them in a DiagnosticBag (bag.go), and renders them at the end of
// the run with an Emitter (emitter.go). Evaluation state never lives here;
// this package only describes what went wrong.
package diagnostics

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Diagnostic codes. E-codes are fatal evaluation errors, W-codes are
// non-fatal conditions reported after the result.
const (
	ErrInvalidLexeme     = "E0001"
	ErrStackUnderflow    = "E0002"
	ErrDivisionByZero    = "E0003"
	ErrNumericConversion = "E0004"
	ErrStreamFailure     = "E0005"

	WarnLeftoverStack = "W0001"
)

// Note represents additional information attached to a diagnostic
type Note struct {
	Message string
}

// Diagnostic represents a single reportable condition (error, warning, etc.)
type Diagnostic struct {
	Severity Severity
	Message  string
	Code     string // Diagnostic code like "E0001"
	Notes    []Note
	Help     string // Suggestion for fixing the error
}

// NewError creates a new error diagnostic
func NewError(message string) *Diagnostic {
	return &Diagnostic{
		Severity: Error,
		Message:  message,
		Notes:    make([]Note, 0),
	}
}

// NewWarning creates a new warning diagnostic
func NewWarning(message string) *Diagnostic {
	return &Diagnostic{
		Severity: Warning,
		Message:  message,
		Notes:    make([]Note, 0),
	}
}

// NewInfo creates a new info diagnostic
func NewInfo(message string) *Diagnostic {
	return &Diagnostic{
		Severity: Info,
		Message:  message,
		Notes:    make([]Note, 0),
	}
}

// WithCode sets the diagnostic code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message})
	return d
}

// WithHelp sets a helpful suggestion for fixing the error
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}
