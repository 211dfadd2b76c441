// Package diag collects and formats compiler diagnostics. A Sink is the
// single accumulator every stage of the pipeline appends to; the driver
// gates progression on Sink.HadError between stages.
package diag

import (
	"fmt"
	"strings"

	"github.com/novalang/nova/internal/token"
)

// Diagnostic is one reported problem. Pos is the zero value when a stage
// (semantic analysis, in practice) has no source position to attach.
type Diagnostic struct {
	Message string
	Pos     token.Position
	HasPos  bool
}

// Sink is an append-only diagnostic accumulator, with a sticky "had error"
// flag. It is not safe for concurrent use, which matches the compiler's
// single-threaded, strictly sequential execution model.
type Sink struct {
	diagnostics []Diagnostic
	hadError    bool
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Add appends a diagnostic carrying a source position.
func (s *Sink) Add(message string, pos token.Position) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Message: message, Pos: pos, HasPos: true})
	s.hadError = true
}

// AddWithoutPosition appends a diagnostic with no source position attached,
// for passes (semantic analysis) that don't track spans on every node.
func (s *Sink) AddWithoutPosition(message string) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Message: message})
	s.hadError = true
}

// HadError reports whether any diagnostic has ever been added.
func (s *Sink) HadError() bool { return s.hadError }

// Diagnostics returns the diagnostics collected so far, in report order.
func (s *Sink) Diagnostics() []Diagnostic { return s.diagnostics }

// Clear empties the sink so it can be reused across compilations.
func (s *Sink) Clear() {
	s.diagnostics = nil
	s.hadError = false
}

// Format renders one diagnostic as "Error at line L, column C: MSG", eliding
// the position when the diagnostic doesn't carry one. This is the exact
// wording spec.md's S4/S5 scenarios assert.
func Format(d Diagnostic) string {
	if !d.HasPos {
		return fmt.Sprintf("Error: %s", d.Message)
	}
	return fmt.Sprintf("Error at line %d, column %d: %s", d.Pos.Line, d.Pos.Column, d.Message)
}

// FormatAll renders every diagnostic in s, one per line, with a trailing
// newline after each (matching the driver's line-at-a-time stderr output).
func FormatAll(s *Sink) string {
	var sb strings.Builder
	for _, d := range s.Diagnostics() {
		sb.WriteString(Format(d))
		sb.WriteByte('\n')
	}
	return sb.String()
}
