package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"syntaxa/internal/common"
)

// Severity orders findings: an error makes a reference table unusable, a
// warning marks a code that will not translate as expected and an info is
// a data-quality note.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic is one finding about a code of a vegetation type table or a
// translation rule.
type Diagnostic struct {
	Severity Severity
	// Code identifies the kind of finding, e.g. "unknown_rule_code".
	Code    string
	Message string
	// System is the short name of the classification system, empty when
	// the finding is not tied to one.
	System   string
	Syntaxon string
	// Suggestions are existing codes close to Syntaxon.
	Suggestions []string
}

// Diagnostics collects the findings of loading reference tables, grouped by
// severity in the order they were found.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

func (d *Diagnostics) AddError(code, message, system, syntaxon string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, system, syntaxon, nil))
}

// AddWarning records a warning about syntaxon. Near codes go in suggestions.
func (d *Diagnostics) AddWarning(code, message, system, syntaxon string, suggestions ...string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, system, syntaxon, suggestions))
}

func (d *Diagnostics) AddInfo(code, message, system, syntaxon string) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, system, syntaxon, nil))
}

func newDiagnostic(sev Severity, code, message, system, syntaxon string, suggestions []string) Diagnostic {
	return Diagnostic{
		Severity:    sev,
		Code:        code,
		Message:     message,
		System:      system,
		Syntaxon:    syntaxon,
		Suggestions: suggestions,
	}
}

// HasErrors reports whether any finding is an error.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge appends the findings of other, keeping the severity groups.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// WithCode returns the findings of one kind.
func (d *Diagnostics) WithCode(code string) []Diagnostic {
	var out []Diagnostic
	for _, diag := range d.All() {
		if diag.Code == code {
			out = append(out, diag)
		}
	}

	return out
}

// Error joins the error findings into one error; nil without errors.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String formats the finding as "[system] code: [kind] message".
func (d Diagnostic) String() string {
	var prefix []string
	if d.System != "" {
		prefix = append(prefix, "["+d.System+"]")
	}

	if d.Syntaxon != "" {
		prefix = append(prefix, d.Syntaxon)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) == 0 {
		return msg
	}

	return strings.Join(prefix, " ") + ": " + msg
}
