package translate

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.uber.org/zap"

	"syntaxa/internal/common"
	"syntaxa/internal/diagnostic"
	"syntaxa/internal/match"
	"syntaxa/internal/rules"
	"syntaxa/internal/syntaxon"
	"syntaxa/internal/vegtype"
)

var (
	// ErrNoTable is returned when a direction involves a system without a
	// vegetation type table.
	ErrNoTable = errors.New("no vegetation type table for system")
	// ErrSameSystem is returned when source and target system are equal.
	ErrSameSystem = errors.New("source and target system are the same")
)

// maxSuggestions limits the near codes reported for an unknown rule code.
const maxSuggestions = 3

// Reconciler holds one immutable snapshot of rules and vegetation types.
type Reconciler struct {
	engine *syntaxon.Engine
	rules  *rules.Table
	tables map[syntaxon.Reference]*vegtype.Table
	log    *zap.Logger
	diags  diagnostic.Diagnostics
}

// NewReconciler creates a Reconciler over a rule table and one vegetation
// type table per system. Rule codes missing from the table of their system
// are reported in Diagnostics.
func NewReconciler(
	rt *rules.Table,
	tables []*vegtype.Table,
	engine *syntaxon.Engine,
	log *zap.Logger,
) (*Reconciler, error) {
	if rt == nil {
		return nil, errors.New("rule table is required")
	}

	if log == nil {
		log = zap.NewNop()
	}

	r := &Reconciler{
		engine: engine,
		rules:  rt,
		tables: make(map[syntaxon.Reference]*vegtype.Table, len(tables)),
		log:    log.Named("translate"),
	}

	for _, t := range tables {
		if _, dup := r.tables[t.System()]; dup {
			return nil, fmt.Errorf("vegetation type table for %v given twice", t.System())
		}

		r.tables[t.System()] = t
	}

	r.checkRuleCodes()

	r.log.Debug("reconciler created",
		zap.Int("rules", rt.Len()),
		zap.Int("tables", len(r.tables)),
		zap.Int("warnings", len(r.diags.Warnings)))

	return r, nil
}

// checkRuleCodes warns about rule codes absent from their vegetation type table.
func (r *Reconciler) checkRuleCodes() {
	for _, ref := range syntaxon.References() {
		t, ok := r.tables[ref]
		if !ok {
			continue
		}

		var codes []string
		for _, row := range r.rules.Rows() {
			if code := row.Codes[ref]; code != "" {
				codes = append(codes, code)
			}
		}

		known := t.Codes()
		for _, code := range common.SortedUnique(codes) {
			if _, ok := t.Get(code); ok {
				continue
			}

			r.diags.AddWarning("unknown_rule_code", "rule code not in vegetation type table",
				ref.String(), code, match.Suggest(code, known, maxSuggestions, match.DefaultMinScore)...)
			r.log.Warn("rule code not in vegetation type table",
				zap.Stringer("system", ref), zap.String("code", code))
		}
	}
}

// Diagnostics returns the findings collected at construction.
func (r *Reconciler) Diagnostics() diagnostic.Diagnostics {
	return r.diags
}

// Translation is the translation of one source code.
type Translation struct {
	Code string
	// Current and Historic are the sorted distinct target codes. A
	// class-crossing current target appears as its '#'-joined form.
	Current  []string
	Historic []string
	// Back holds the source-system codes reached by translating every
	// current target back.
	Back []string
	// Identical marks a 1:1 correspondence in both directions.
	Identical bool
}

// CurrentString joins Current; nil when there is no current translation.
func (t Translation) CurrentString() *string { return common.JoinCodes(t.Current) }

// HistoricString joins Historic; nil when there is no historic translation.
func (t Translation) HistoricString() *string { return common.JoinCodes(t.Historic) }

// BackString joins Back; nil when there is no back translation.
func (t Translation) BackString() *string { return common.JoinCodes(t.Back) }

// Translate returns the translation of every source code that occurs in a
// rule of the from/to direction, sorted by code.
func (r *Reconciler) Translate(from, to syntaxon.Reference, cfg Config) ([]Translation, error) {
	fromTable, toTable, err := r.direction(from, to)
	if err != nil {
		return nil, err
	}

	forward, err := r.forward(from, to, toTable, cfg)
	if err != nil {
		return nil, err
	}

	reverse, err := r.forward(to, from, fromTable, cfg)
	if err != nil {
		return nil, err
	}

	reverseIndex := r.reverseIndex(reverse, to, toTable, cfg)

	for i := range forward {
		tr := &forward[i]
		tr.Back = r.back(tr.Current, reverseIndex, from, fromTable, cfg)
		tr.Identical = common.IsSingle(tr.Current) && common.IsSingle(tr.Back)
	}

	r.log.Debug("translated",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Int("codes", len(forward)))

	return forward, nil
}

func (r *Reconciler) direction(from, to syntaxon.Reference) (*vegtype.Table, *vegtype.Table, error) {
	for _, ref := range []syntaxon.Reference{from, to} {
		if !ref.IsValid() {
			return nil, nil, fmt.Errorf("%w: %v", syntaxon.ErrUnknownReference, ref)
		}
	}

	if from == to {
		return nil, nil, fmt.Errorf("%w: %v", ErrSameSystem, from)
	}

	fromTable, ok := r.tables[from]
	if !ok {
		return nil, nil, fmt.Errorf("%w %v", ErrNoTable, from)
	}

	toTable, ok := r.tables[to]
	if !ok {
		return nil, nil, fmt.Errorf("%w %v", ErrNoTable, to)
	}

	return fromTable, toTable, nil
}

// forward groups the rules of one direction by source code and resolves the
// current and historic targets of every group. Back is left empty.
func (r *Reconciler) forward(from, to syntaxon.Reference, toTable *vegtype.Table, cfg Config) ([]Translation, error) {
	pairs, err := r.rules.Translations(from, to)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]string)
	for _, p := range pairs {
		groups[p.Source] = append(groups[p.Source], p.Target)
	}

	out := make([]Translation, 0, len(groups))
	for _, code := range slices.Sorted(maps.Keys(groups)) {
		var current, historic []string
		for _, target := range groups[code] {
			if cfg.lowestOnly() && !toTable.IsLowest(target) {
				continue
			}

			if toTable.IsCurrent(target) {
				current = append(current, target)
			} else {
				historic = append(historic, target)
			}
		}

		out = append(out, Translation{
			Code:     code,
			Current:  r.resolve(current, to, toTable, cfg),
			Historic: common.SortedUnique(r.collapse(historic, to, toTable, cfg)),
		})
	}

	return out, nil
}

// reverseIndex maps every reverse source code to its current targets. The
// source codes are collapsed like forward targets, so an association collects
// the targets of all its sub-associations.
func (r *Reconciler) reverseIndex(
	reverse []Translation,
	ref syntaxon.Reference,
	t *vegtype.Table,
	cfg Config,
) map[string][]string {
	index := make(map[string][]string, len(reverse))
	for _, tr := range reverse {
		key := r.collapse([]string{tr.Code}, ref, t, cfg)[0]
		index[key] = append(index[key], tr.Current...)
	}

	return index
}

// back translates the current targets of one code back into the source
// system using the reverse translations.
func (r *Reconciler) back(
	current []string,
	reverse map[string][]string,
	from syntaxon.Reference,
	fromTable *vegtype.Table,
	cfg Config,
) []string {
	var codes []string
	for _, joined := range current {
		for _, target := range common.SplitCodes(joined) {
			for _, entry := range reverse[target] {
				for _, code := range common.SplitCodes(entry) {
					if cfg.lowestOnly() && !fromTable.IsLowest(code) {
						continue
					}

					codes = append(codes, code)
				}
			}
		}
	}

	return r.resolve(codes, from, fromTable, cfg)
}

// resolve collapses sub-associations, substitutes class-crossing codes and
// returns the sorted distinct result.
func (r *Reconciler) resolve(codes []string, ref syntaxon.Reference, t *vegtype.Table, cfg Config) []string {
	codes = r.collapse(codes, ref, t, cfg)

	return common.MapUnique(codes, t.CrossClassCode)
}

// collapse replaces sub-association codes by their association unless
// sub-associations are included.
func (r *Reconciler) collapse(codes []string, ref syntaxon.Reference, t *vegtype.Table, cfg Config) []string {
	if cfg.IncludeSubAssociations {
		return codes
	}

	out := make([]string, len(codes))
	for i, code := range codes {
		out[i] = code

		if r.level(code, ref, t) != syntaxon.LevelSubAssociation {
			continue
		}

		if parent, ok := r.engine.Parent(code, ref); ok {
			out[i] = parent
		}
	}

	return out
}

// level returns the level recorded in the table, falling back to the
// engine for codes the table does not know.
func (r *Reconciler) level(code string, ref syntaxon.Reference, t *vegtype.Table) syntaxon.Level {
	if lvl := t.Level(code); lvl != 0 {
		return lvl
	}

	lvl, _ := r.engine.Level(code, ref)

	return lvl
}

// CrossClassCodes returns every class-crossing code of system mapped to its
// '#'-joined sibling codes.
func (r *Reconciler) CrossClassCodes(system syntaxon.Reference) (map[string]string, error) {
	t, ok := r.tables[system]
	if !ok {
		return nil, fmt.Errorf("%w %v", ErrNoTable, system)
	}

	return t.CrossClassCodes(), nil
}

// RuleStatus is a rule pair with the status of both codes.
type RuleStatus struct {
	rules.Rule

	SourceCurrent bool
	SourceLowest  bool
	TargetCurrent bool
	TargetLowest  bool
}

// Rules returns the rule pairs of the from/to direction with the current
// and lowest-level status of both sides.
func (r *Reconciler) Rules(from, to syntaxon.Reference) ([]RuleStatus, error) {
	fromTable, toTable, err := r.direction(from, to)
	if err != nil {
		return nil, err
	}

	pairs, err := r.rules.Translations(from, to)
	if err != nil {
		return nil, err
	}

	out := make([]RuleStatus, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, RuleStatus{
			Rule:          p,
			SourceCurrent: fromTable.IsCurrent(p.Source),
			SourceLowest:  fromTable.IsLowest(p.Source),
			TargetCurrent: toTable.IsCurrent(p.Target),
			TargetLowest:  toTable.IsLowest(p.Target),
		})
	}

	return out, nil
}

// firstCode returns the first member of a joined entry.
func firstCode(entry string) string {
	code, _, _ := strings.Cut(entry, common.CrossClassSep)
	return code
}
