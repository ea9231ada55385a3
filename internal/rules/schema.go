package rules

import (
	"errors"
	"fmt"

	"syntaxa/internal/syntaxon"
)

// ErrUnknownSystem is returned when a translation is requested for a system
// that has no code column in the rule table.
var ErrUnknownSystem = fmt.Errorf("classification system without rule column: %w", syntaxon.ErrUnknownReference)

// ErrNoColumns is returned when a rule source has none of the code columns.
var ErrNoColumns = errors.New("rule table has no code columns")

// Code column of each classification system in the rule table.
var codeColumns = map[syntaxon.Reference]string{
	syntaxon.RefCatalogus: "code_sbb",
	syntaxon.RefVVN:       "code_vvn_1998",
	syntaxon.RefRevision:  "code_rvvn_2018",
}

// CodeColumn returns the rule-table column holding codes of ref.
func CodeColumn(ref syntaxon.Reference) (string, bool) {
	col, ok := codeColumns[ref]
	return col, ok
}

// Row is one line of the rule table.
type Row struct {
	// ID is the row position; it is stable only within one loaded table.
	ID int
	// Codes holds the canonical code per system; absent systems are missing.
	Codes map[syntaxon.Reference]string
	// Notes holds all non-code columns verbatim.
	Notes map[string]string
}

// Rule is a single translation pair from a source to a target system.
type Rule struct {
	ID     int
	Source string
	Target string
	// Correction marks pairs that come from a correction list.
	Correction bool
	Notes      map[string]string
}

// Correction is a hand-verified Catalogus/Revision pair.
type Correction struct {
	Catalogus string `yaml:"sbbcat"`
	Revision  string `yaml:"rvvn"`
	Comment   string `yaml:"comment,omitempty"`
}

// CorrectionFile is the root of a YAML correction file.
type CorrectionFile struct {
	Version     string       `yaml:"version,omitempty"`
	Corrections []Correction `yaml:"corrections"`
}

// EntryCount is a code with the number of rule rows it appears on.
type EntryCount struct {
	Code  string
	Count int
}
