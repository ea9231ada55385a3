package vegtype

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"go.uber.org/zap"

	"syntaxa/internal/common"
	"syntaxa/internal/diagnostic"
	"syntaxa/internal/syntaxon"
)

// Table is an immutable set of vegetation types of one classification system.
type Table struct {
	system syntaxon.Reference
	types  []VegetationType
	// index maps a code to its position in types; a current row wins over
	// a historical row with the same code.
	index      map[string]int
	crossClass map[string]string
	diags      diagnostic.Diagnostics
}

type statusKey struct {
	code    string
	current bool
}

// NewTable builds the table for system from records. Records of other
// systems are skipped and recognized codes are stored in canonical form. A repeated (code, current-status) pair aborts with
// ErrDuplicateCode; codes the engine does not recognize are kept with an
// unknown level and reported in Diagnostics.
func NewTable(
	system syntaxon.Reference,
	records []Record,
	engine *syntaxon.Engine,
	opts Options,
	log *zap.Logger,
) (*Table, error) {
	if !system.IsValid() {
		return nil, fmt.Errorf("%w: %v", syntaxon.ErrUnknownReference, system)
	}

	if log == nil {
		log = zap.NewNop()
	}

	t := &Table{
		system: system,
		index:  make(map[string]int),
	}

	selected, err := t.selectRecords(records, engine, opts)
	if err != nil {
		return nil, err
	}

	t.types = selected
	if len(t.types) == 0 {
		t.diags.AddWarning("empty_table", "no vegetation types of typology "+TypologyName(system), system.String(), "")
	}
	t.deriveLowest(engine)
	t.deriveCrossClass()
	t.buildIndex()

	log.Debug("vegetation type table built",
		zap.Stringer("system", system),
		zap.Int("types", len(t.types)),
		zap.Int("cross_class", len(t.crossClass)),
		zap.Int("warnings", len(t.diags.Warnings)))

	return t, nil
}

// selectRecords filters records to this system, checks uniqueness and
// classifies every code.
func (t *Table) selectRecords(records []Record, engine *syntaxon.Engine, opts Options) ([]VegetationType, error) {
	sys := t.system.String()
	seen := make(map[statusKey]int)

	var duplicates []string

	out := make([]VegetationType, 0, len(records))
	for _, rec := range records {
		if rec.System != t.system {
			continue
		}

		rec.Code = strings.TrimSpace(rec.Code)
		if canonical, ok := engine.Validate(rec.Code); ok && canonical != rec.Code {
			t.diags.AddInfo("canonicalized_code", "code rewritten to "+canonical, sys, rec.Code)
			rec.Code = canonical
		}

		key := statusKey{rec.Code, rec.IsCurrent}
		seen[key]++
		if seen[key] == 2 {
			duplicates = append(duplicates, fmt.Sprintf("%s (current=%s)", rec.Code, Flag(rec.IsCurrent)))
		}

		vt := VegetationType{Record: rec}

		level, ok := engine.Level(rec.Code, t.system)
		if !ok {
			t.diags.AddWarning("unrecognized_code", "code matches no syntaxon pattern", sys, rec.Code)
		}

		if level == syntaxon.LevelNotApplicable && !opts.IncludeMapCodes {
			continue
		}

		vt.Level = level
		vt.Class, _ = engine.Class(rec.Code)
		out = append(out, vt)
	}

	if len(duplicates) > 0 {
		sort.Strings(duplicates)

		return nil, fmt.Errorf("%w in %s: %s", ErrDuplicateCode, sys, strings.Join(duplicates, ", "))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Code != out[j].Code {
			return out[i].Code < out[j].Code
		}

		return out[i].IsCurrent && !out[j].IsCurrent
	})

	return out, nil
}

// deriveLowest marks every type that is not an ancestor of another type with
// the same current status. Fragments and derivatives are always lowest;
// mapping and unrecognized codes never are.
func (t *Table) deriveLowest(engine *syntaxon.Engine) {
	ancestors := make(map[statusKey]struct{})
	for _, vt := range t.types {
		code := vt.Code
		for {
			parent, ok := engine.Parent(code, t.system)
			if !ok {
				break
			}

			ancestors[statusKey{parent, vt.IsCurrent}] = struct{}{}
			code = parent
		}
	}

	for i := range t.types {
		vt := &t.types[i]

		switch {
		case vt.Level.IsFragmentary():
			vt.IsLowest = true
		case vt.Level.IsTaxon():
			_, isAncestor := ancestors[statusKey{vt.Code, vt.IsCurrent}]
			vt.IsLowest = !isAncestor
		default:
			vt.IsLowest = false
		}
	}
}

// deriveCrossClass groups current types by exact scientific name. Every
// group of two or more codes is a class-crossing syntaxon.
func (t *Table) deriveCrossClass() {
	byName := make(map[string][]string)
	for _, vt := range t.types {
		if !vt.IsCurrent || vt.LongScientificName == "" {
			continue
		}

		byName[vt.LongScientificName] = append(byName[vt.LongScientificName], vt.Code)
	}

	t.crossClass = make(map[string]string)
	for _, codes := range byName {
		codes = common.SortedUnique(codes)
		if len(codes) < 2 {
			continue
		}

		joined := strings.Join(codes, common.CrossClassSep)
		for _, code := range codes {
			t.crossClass[code] = joined
		}
	}

	for i := range t.types {
		vt := &t.types[i]
		if !vt.IsCurrent {
			continue
		}

		if joined, ok := t.crossClass[vt.Code]; ok {
			vt.IsCrossClass = true
			vt.CrossClassCodes = joined
		}
	}
}

func (t *Table) buildIndex() {
	sys := t.system.String()
	for i, vt := range t.types {
		if j, ok := t.index[vt.Code]; ok {
			if t.types[j].IsCurrent != vt.IsCurrent {
				t.diags.AddInfo("current_and_historic", "code is listed as current and as historic", sys, vt.Code)
			}

			// types are sorted current-first within a code.
			continue
		}

		t.index[vt.Code] = i
	}
}

// System returns the classification system of the table.
func (t *Table) System() syntaxon.Reference {
	return t.system
}

// Len returns the number of vegetation types.
func (t *Table) Len() int {
	return len(t.types)
}

// Types returns a copy of all vegetation types, sorted by code.
func (t *Table) Types() []VegetationType {
	return slices.Clone(t.types)
}

// CurrentOnly returns the current vegetation types, sorted by code.
func (t *Table) CurrentOnly() []VegetationType {
	var out []VegetationType
	for _, vt := range t.types {
		if vt.IsCurrent {
			out = append(out, vt)
		}
	}

	return out
}

// Get returns the vegetation type with the given code.
func (t *Table) Get(code string) (VegetationType, bool) {
	i, ok := t.index[code]
	if !ok {
		return VegetationType{}, false
	}

	return t.types[i], true
}

// Codes returns every distinct code, sorted.
func (t *Table) Codes() []string {
	return slices.Sorted(maps.Keys(t.index))
}

// IsCurrent reports whether code is a current type. Unknown codes are not current.
func (t *Table) IsCurrent(code string) bool {
	vt, ok := t.Get(code)
	return ok && vt.IsCurrent
}

// IsLowest reports whether code is a lowest-level type. Unknown codes are not lowest.
func (t *Table) IsLowest(code string) bool {
	vt, ok := t.Get(code)
	return ok && vt.IsLowest
}

// Level returns the level of code, or the zero Level for unknown codes.
func (t *Table) Level(code string) syntaxon.Level {
	vt, _ := t.Get(code)
	return vt.Level
}

// CrossClassCodes returns every class-crossing code mapped to the
// '#'-joined set of its siblings.
func (t *Table) CrossClassCodes() map[string]string {
	return maps.Clone(t.crossClass)
}

// CrossClassCode returns the joined sibling representation of code when it
// is class-crossing, and code itself otherwise.
func (t *Table) CrossClassCode(code string) string {
	if joined, ok := t.crossClass[code]; ok {
		return joined
	}

	return code
}

// Diagnostics returns the findings collected while building the table.
func (t *Table) Diagnostics() diagnostic.Diagnostics {
	return t.diags
}

// ChangesByYear counts the types created and modified per year, ordered by
// year. Types without a known year are not counted.
func (t *Table) ChangesByYear() []YearChanges {
	byYear := make(map[int]*YearChanges)
	get := func(year int) *YearChanges {
		yc, ok := byYear[year]
		if !ok {
			yc = &YearChanges{Year: year}
			byYear[year] = yc
		}

		return yc
	}

	for _, vt := range t.types {
		if vt.Created != 0 {
			get(vt.Created).Created++
		}

		if vt.Modified != 0 {
			get(vt.Modified).Modified++
		}
	}

	out := make([]YearChanges, 0, len(byYear))
	for _, year := range slices.Sorted(maps.Keys(byYear)) {
		out = append(out, *byYear[year])
	}

	return out
}
