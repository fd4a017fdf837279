package diagnostics

import (
	"bytes"
	"io"
	"os"
	"sync"
)

// DiagnosticBag collects diagnostics during an evaluation run
type DiagnosticBag struct {
	diagnostics []*Diagnostic
	mu          sync.Mutex
	errorCount  int
	warnCount   int
}

// NewDiagnosticBag creates a new, empty diagnostic bag
func NewDiagnosticBag() *DiagnosticBag {
	return &DiagnosticBag{
		diagnostics: make([]*Diagnostic, 0),
	}
}

// Add adds a diagnostic to the bag
func (db *DiagnosticBag) Add(diag *Diagnostic) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.diagnostics = append(db.diagnostics, diag)

	switch diag.Severity {
	case Error:
		db.errorCount++
	case Warning:
		db.warnCount++
	}
}

// HasErrors returns true if there are any errors
func (db *DiagnosticBag) HasErrors() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount > 0
}

// ErrorCount returns the number of errors
func (db *DiagnosticBag) ErrorCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount
}

// WarningCount returns the number of warnings
func (db *DiagnosticBag) WarningCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.warnCount
}

// Diagnostics returns all collected diagnostics
func (db *DiagnosticBag) Diagnostics() []*Diagnostic {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.diagnostics
}

// EmitAll renders every collected diagnostic to stderr
func (db *DiagnosticBag) EmitAll() {
	db.EmitAllToWriter(os.Stderr)
}

// EmitAllToWriter renders every collected diagnostic to a specific writer
func (db *DiagnosticBag) EmitAllToWriter(w io.Writer) {
	emitter := NewEmitterWithWriter(w)

	db.mu.Lock()
	diagnostics := make([]*Diagnostic, len(db.diagnostics))
	copy(diagnostics, db.diagnostics)
	db.mu.Unlock()

	for _, diag := range diagnostics {
		emitter.Emit(diag)
	}
}

// EmitAllToString renders every collected diagnostic to a string. Used by the
// wasm entry point, which has no stderr to write to.
func (db *DiagnosticBag) EmitAllToString() string {
	var buf bytes.Buffer
	db.EmitAllToWriter(&buf)
	return buf.String()
}

// Clear removes all diagnostics
func (db *DiagnosticBag) Clear() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.diagnostics = make([]*Diagnostic, 0)
	db.errorCount = 0
	db.warnCount = 0
}
