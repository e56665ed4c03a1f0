package diagnostic

import (
	"errors"
	"strings"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

var severityNames = [...]string{
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}

	return severityNames[s]
}

// Diagnostic is one finding about a declaration.
type Diagnostic struct {
	Severity Severity
	// Code is a stable machine-readable identifier, e.g. "duplicate_name".
	Code    string
	Message string
	// Chunk and Field name the surface name and declared field concerned.
	// Either may be empty.
	Chunk string
	Field string
	// Position is "file:line:col" for findings read from source.
	Position string
}

// String renders "pos [Chunk] field: [code] message", leaving out the
// parts that are empty.
func (d Diagnostic) String() string {
	var b strings.Builder

	for _, part := range []string{d.Position, bracket(d.Chunk), d.Field} {
		if part == "" {
			continue
		}

		if b.Len() > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(part)
	}

	if b.Len() > 0 {
		b.WriteString(": ")
	}

	if d.Code != "" {
		b.WriteString(bracket(d.Code))
		b.WriteByte(' ')
	}

	b.WriteString(d.Message)

	return b.String()
}

func bracket(s string) string {
	if s == "" {
		return ""
	}

	return "[" + s + "]"
}

// Diagnostics collects the findings of one validation or reflection pass,
// split by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

func (d *Diagnostics) add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError records an error. Any error makes the pass fail.
func (d *Diagnostics) AddError(code, message, chunk, field string) {
	d.add(Diagnostic{Severity: SeverityError, Code: code, Message: message, Chunk: chunk, Field: field})
}

// AddWarning records a warning. Warnings never fail a pass.
func (d *Diagnostics) AddWarning(code, message, chunk, field string) {
	d.add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Chunk: chunk, Field: field})
}

// AddWarningAt records a warning anchored at a source position.
func (d *Diagnostics) AddWarningAt(position, code, message, chunk string) {
	d.add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Chunk: chunk, Position: position})
}

// AddInfo records a note that is only logged.
func (d *Diagnostics) AddInfo(code, message, chunk, field string) {
	d.add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Chunk: chunk, Field: field})
}

// HasErrors reports whether any error was recorded.
func (d Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid is the negation of HasErrors.
func (d Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// All returns every diagnostic, errors first, then warnings, then infos.
func (d Diagnostics) All() []Diagnostic {
	return append(append(append(
		make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos)),
		d.Errors...), d.Warnings...), d.Infos...)
}

// Error joins the error diagnostics into one error, or returns nil.
func (d Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	msgs := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		msgs[i] = e.String()
	}

	return errors.New(strings.Join(msgs, "; "))
}
