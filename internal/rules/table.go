package rules

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.uber.org/zap"

	"syntaxa/internal/diagnostic"
	"syntaxa/internal/syntaxon"
)

// Table is an immutable rule table with its correction list.
type Table struct {
	rows        []Row
	corrections []Correction
	nextID      int
	diags       diagnostic.Diagnostics
}

// NewTable builds a rule table from header-keyed records, as produced by a
// CSV reader. The record position is the rule id. Corrections are
// canonicalized like rule codes; pass DefaultCorrections() for the
// built-in list.
func NewTable(
	records []map[string]string,
	corrections []Correction,
	engine *syntaxon.Engine,
	log *zap.Logger,
) (*Table, error) {
	if log == nil {
		log = zap.NewNop()
	}

	t := &Table{}

	if len(records) > 0 && !hasCodeColumn(records[0]) {
		return nil, fmt.Errorf("%w: expected one of %v", ErrNoColumns, slices.Sorted(maps.Values(codeColumns)))
	}

	for i, rec := range records {
		t.rows = append(t.rows, t.parseRow(i, rec, engine))
	}

	t.nextID = len(records)

	for _, c := range corrections {
		cat, okCat := engine.Validate(c.Catalogus)
		rev, okRev := engine.Validate(c.Revision)
		if !okCat || !okRev {
			t.diags.AddWarning("invalid_correction",
				fmt.Sprintf("correction %s -> %s skipped", c.Catalogus, c.Revision), "", c.Catalogus)

			continue
		}

		t.corrections = append(t.corrections, Correction{Catalogus: cat, Revision: rev, Comment: c.Comment})
	}

	log.Debug("rule table built",
		zap.Int("rows", len(t.rows)),
		zap.Int("corrections", len(t.corrections)),
		zap.Int("warnings", len(t.diags.Warnings)))

	return t, nil
}

func hasCodeColumn(rec map[string]string) bool {
	for _, col := range codeColumns {
		if _, ok := rec[col]; ok {
			return true
		}
	}

	return false
}

// parseRow splits a record into canonical codes and notes. A code cell that
// matches no pattern holds a remark instead of a code; it is kept as the
// note "remark_<column>".
func (t *Table) parseRow(id int, rec map[string]string, engine *syntaxon.Engine) Row {
	row := Row{
		ID:    id,
		Codes: make(map[syntaxon.Reference]string),
		Notes: make(map[string]string),
	}

	isCode := make(map[string]bool, len(codeColumns))
	for ref, col := range codeColumns {
		isCode[col] = true

		raw := strings.TrimSpace(rec[col])
		if raw == "" {
			continue
		}

		code, ok := engine.Validate(raw)
		if !ok {
			row.Notes["remark_"+col] = raw
			t.diags.AddInfo("remark_in_code_column",
				fmt.Sprintf("row %d: %q is not a syntaxon code", id, raw), ref.String(), "")

			continue
		}

		row.Codes[ref] = code
	}

	for col, val := range rec {
		if isCode[col] || strings.TrimSpace(val) == "" {
			continue
		}

		row.Notes[col] = val
	}

	return row
}

// Len returns the number of rule rows, corrections excluded.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the rule rows.
func (t *Table) Rows() []Row {
	return slices.Clone(t.rows)
}

// Corrections returns the canonical correction pairs of the table.
func (t *Table) Corrections() []Correction {
	return slices.Clone(t.corrections)
}

// Diagnostics returns the findings collected while building the table.
func (t *Table) Diagnostics() diagnostic.Diagnostics {
	return t.diags
}

// Translations returns every rule with codes for both from and to. When the
// two systems are Catalogus and Revision, the corrections are appended with
// ids continuing after the last row.
func (t *Table) Translations(from, to syntaxon.Reference) ([]Rule, error) {
	if _, ok := codeColumns[from]; !ok {
		return nil, fmt.Errorf("%w: from %v", ErrUnknownSystem, from)
	}

	if _, ok := codeColumns[to]; !ok {
		return nil, fmt.Errorf("%w: to %v", ErrUnknownSystem, to)
	}

	var out []Rule
	for _, row := range t.rows {
		src, dst := row.Codes[from], row.Codes[to]
		if src == "" || dst == "" {
			continue
		}

		out = append(out, Rule{ID: row.ID, Source: src, Target: dst, Notes: row.Notes})
	}

	if !isCatalogusRevision(from, to) {
		return out, nil
	}

	id := t.nextID
	for _, c := range t.corrections {
		src, dst := c.Catalogus, c.Revision
		if from == syntaxon.RefRevision {
			src, dst = dst, src
		}

		var notes map[string]string
		if c.Comment != "" {
			notes = map[string]string{"comment": c.Comment}
		}

		out = append(out, Rule{ID: id, Source: src, Target: dst, Correction: true, Notes: notes})
		id++
	}

	return out, nil
}

func isCatalogusRevision(from, to syntaxon.Reference) bool {
	return (from == syntaxon.RefCatalogus && to == syntaxon.RefRevision) ||
		(from == syntaxon.RefRevision && to == syntaxon.RefCatalogus)
}

// MultipleEntries returns the codes of system that appear on more than one
// rule row, with their row count, sorted by code.
func (t *Table) MultipleEntries(system syntaxon.Reference) ([]EntryCount, error) {
	if _, ok := codeColumns[system]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownSystem, system)
	}

	counts := make(map[string]int)
	for _, row := range t.rows {
		if code := row.Codes[system]; code != "" {
			counts[code]++
		}
	}

	var out []EntryCount
	for _, code := range slices.Sorted(maps.Keys(counts)) {
		if counts[code] > 1 {
			out = append(out, EntryCount{Code: code, Count: counts[code]})
		}
	}

	return out, nil
}
