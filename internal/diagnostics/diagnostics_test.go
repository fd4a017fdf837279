package diagnostics

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// TestFromErrorMapping tests that each typed error maps to its diagnostic
// kind and code
func TestFromErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		code     string
		contains string
	}{
		{"invalid lexeme", &InvalidLexemeError{Text: "@", Offset: 4}, ErrInvalidLexeme, "invalid expression: @"},
		{"underflow", &UnderflowError{}, ErrStackUnderflow, "invalid input"},
		{"underflow with context", &UnderflowError{Context: "empty expression"}, ErrStackUnderflow, "empty expression"},
		{"division by zero", &DivisionByZeroError{Dividend: 1}, ErrDivisionByZero, "division by zero: 1 / 0"},
		{"conversion", &ConversionError{Text: "-."}, ErrNumericConversion, `could not convert "-." to a number`},
		{"stream", &StreamError{Err: errors.New("broken pipe")}, ErrStreamFailure, "broken pipe"},
	}

	for _, c := range cases {
		diag := FromError(c.err)
		if diag.Code != c.code {
			t.Errorf("%s: expected code %s, got %s", c.name, c.code, diag.Code)
		}
		if diag.Severity != Error {
			t.Errorf("%s: expected Error severity, got %v", c.name, diag.Severity)
		}
		if !strings.Contains(diag.Message, c.contains) {
			t.Errorf("%s: expected message to contain %q, got %q", c.name, c.contains, diag.Message)
		}
	}
}

// TestFromErrorUnknown tests that unrecognized errors are rendered verbatim
func TestFromErrorUnknown(t *testing.T) {
	diag := FromError(errors.New("something else"))
	if diag.Severity != Error || diag.Message != "something else" {
		t.Errorf("Expected a plain error diagnostic, got %v %q", diag.Severity, diag.Message)
	}
}

// TestLeftoverStackWarning tests the non-fatal leftover-operands diagnostic
func TestLeftoverStackWarning(t *testing.T) {
	diag := LeftoverStack([]float64{3})
	if diag.Severity != Warning {
		t.Errorf("Expected Warning severity, got %v", diag.Severity)
	}
	if diag.Code != WarnLeftoverStack {
		t.Errorf("Expected code %s, got %s", WarnLeftoverStack, diag.Code)
	}

	found := false
	for _, note := range diag.Notes {
		if strings.Contains(note.Message, "remaining: 3") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a note listing the remaining value 3, got %v", diag.Notes)
	}
}

// TestBagCounts tests error and warning counting
func TestBagCounts(t *testing.T) {
	bag := NewDiagnosticBag()

	bag.Add(NewError("first"))
	bag.Add(NewWarning("second"))
	bag.Add(NewError("third"))

	if !bag.HasErrors() {
		t.Errorf("Expected HasErrors to be true")
	}
	if bag.ErrorCount() != 2 {
		t.Errorf("Expected 2 errors, got %d", bag.ErrorCount())
	}
	if bag.WarningCount() != 1 {
		t.Errorf("Expected 1 warning, got %d", bag.WarningCount())
	}
	if len(bag.Diagnostics()) != 3 {
		t.Errorf("Expected 3 diagnostics, got %d", len(bag.Diagnostics()))
	}

	bag.Clear()
	if bag.HasErrors() || len(bag.Diagnostics()) != 0 {
		t.Errorf("Expected an empty bag after Clear")
	}
}

// TestEmitterFormat tests the rendered form of a diagnostic
func TestEmitterFormat(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewEmitterWithWriter(&buf)

	emitter.Emit(
		NewError("division by zero: 1 / 0").
			WithCode(ErrDivisionByZero),
	)

	got := buf.String()
	want := "error[E0003]: division by zero: 1 / 0\n"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestEmitterNotesAndHelp tests the indented note and help lines
func TestEmitterNotesAndHelp(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewEmitterWithWriter(&buf)

	emitter.Emit(
		NewWarning("the input was improper; the stack is not empty").
			WithCode(WarnLeftoverStack).
			WithNote("remaining: 3").
			WithHelp("check the balance of operands and operators"),
	)

	got := buf.String()
	for _, want := range []string{
		"warning[W0001]: the input was improper; the stack is not empty\n",
		"  note: remaining: 3\n",
		"  help: check the balance of operands and operators\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, got)
		}
	}
}
