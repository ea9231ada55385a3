package main

import (
	"fmt"

	"go.uber.org/zap"

	"syntaxa/internal/diagnostic"
	"syntaxa/internal/rules"
	"syntaxa/internal/source"
	"syntaxa/internal/syntaxon"
	"syntaxa/internal/translate"
	"syntaxa/internal/vegtype"
)

// dataset is everything loaded from the configured reference tables.
type dataset struct {
	tables     map[syntaxon.Reference]*vegtype.Table
	rules      *rules.Table
	reconciler *translate.Reconciler
}

// diagnostics merges the findings of every loaded table.
func (d *dataset) diagnostics() diagnostic.Diagnostics {
	var all diagnostic.Diagnostics
	for _, ref := range syntaxon.References() {
		if t, ok := d.tables[ref]; ok {
			all.Merge(t.Diagnostics())
		}
	}

	all.Merge(d.rules.Diagnostics())
	all.Merge(d.reconciler.Diagnostics())

	return all
}

// load reads the vegetation types, rule tables and corrections named in
// the configuration and builds the reconciler.
func (a *app) load() (*dataset, error) {
	enc, err := source.ParseEncoding(a.cfg.Encoding)
	if err != nil {
		return nil, err
	}

	records, err := source.LoadVegetationTypes(a.cfg.VegetationTypes, enc)
	if err != nil {
		return nil, fmt.Errorf("load vegetation types: %w", err)
	}

	d := &dataset{tables: make(map[syntaxon.Reference]*vegtype.Table)}

	opts := vegtype.Options{IncludeMapCodes: a.cfg.IncludeMapCodes}
	tables := make([]*vegtype.Table, 0, len(syntaxon.References()))
	for _, ref := range syntaxon.References() {
		t, err := vegtype.NewTable(ref, records, a.engine, opts, a.log)
		if err != nil {
			return nil, err
		}

		d.tables[ref] = t
		tables = append(tables, t)
	}

	paths, err := source.ExpandGlobs("", a.cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("find rule tables: %w", err)
	}

	ruleRecords, err := source.LoadRules(paths, enc)
	if err != nil {
		return nil, fmt.Errorf("load rule tables: %w", err)
	}

	corrections, err := a.corrections()
	if err != nil {
		return nil, err
	}

	d.rules, err = rules.NewTable(ruleRecords, corrections, a.engine, a.log)
	if err != nil {
		return nil, err
	}

	d.reconciler, err = translate.NewReconciler(d.rules, tables, a.engine, a.log)
	if err != nil {
		return nil, err
	}

	a.log.Info("reference data loaded",
		zap.Int("vegetation_types", len(records)),
		zap.Int("rule_files", len(paths)),
		zap.Int("rules", d.rules.Len()),
		zap.Int("corrections", len(corrections)))

	return d, nil
}

// corrections returns the built-in corrections followed by those of the
// configured correction file.
func (a *app) corrections() ([]rules.Correction, error) {
	corrections := rules.DefaultCorrections()
	if a.cfg.Corrections == "" {
		return corrections, nil
	}

	cf, err := rules.LoadCorrections(a.cfg.Corrections)
	if err != nil {
		return nil, err
	}

	return append(corrections, cf.Corrections...), nil
}
