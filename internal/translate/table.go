package translate

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"syntaxa/internal/common"
	"syntaxa/internal/syntaxon"
	"syntaxa/internal/vegtype"
)

// ErrColumnMismatch is returned when a result row does not carry exactly
// the expected columns.
var ErrColumnMismatch = errors.New("unexpected result columns")

// Columns is the ordered column list of a reconciled table.
var Columns = []string{
	"Code",
	"Translation",
	"TranslationHistoric",
	"BackTranslation",
	"IsCurrent",
	"IsLowest",
	"IsCrossClass",
	"CrossClassCodes",
	"SynLevel",
	"SynClass",
	"TranslationLevel",
	"TranslationIsLowest",
	"Identical",
	"TranslationCount",
	"TranslationHistoricCount",
	"BackTranslationCount",
	"ShortScientificName",
	"LongScientificName",
	"ShortCommonName",
	"LongCommonName",
	"Created",
	"Modified",
}

// Row is one vegetation type of the source system with its translation.
// Translation strings are nil when there is nothing to report.
type Row struct {
	Code                string
	Translation         *string
	TranslationHistoric *string
	BackTranslation     *string
	IsCurrent           bool
	IsLowest            bool
	IsCrossClass        bool
	CrossClassCodes     string
	SynLevel            syntaxon.Level
	SynClass            string
	// TranslationLevel is set only for a single translation; the first
	// code of a class-crossing entry is classified.
	TranslationLevel    syntaxon.Level
	TranslationIsLowest bool
	Identical           bool

	TranslationCount         int
	TranslationHistoricCount int
	BackTranslationCount     int

	ShortScientificName string
	LongScientificName  string
	ShortCommonName     string
	LongCommonName      string
	Created             int
	Modified            int
}

// Fields renders the row as column name to text. Missing values are empty.
func (r Row) Fields() map[string]string {
	return map[string]string{
		"Code":                     r.Code,
		"Translation":              common.Deref(r.Translation),
		"TranslationHistoric":      common.Deref(r.TranslationHistoric),
		"BackTranslation":          common.Deref(r.BackTranslation),
		"IsCurrent":                vegtype.Flag(r.IsCurrent),
		"IsLowest":                 vegtype.Flag(r.IsLowest),
		"IsCrossClass":             vegtype.Flag(r.IsCrossClass),
		"CrossClassCodes":          r.CrossClassCodes,
		"SynLevel":                 r.SynLevel.Label(),
		"SynClass":                 r.SynClass,
		"TranslationLevel":         r.TranslationLevel.Label(),
		"TranslationIsLowest":      vegtype.Flag(r.TranslationIsLowest),
		"Identical":                vegtype.Flag(r.Identical),
		"TranslationCount":         strconv.Itoa(r.TranslationCount),
		"TranslationHistoricCount": strconv.Itoa(r.TranslationHistoricCount),
		"BackTranslationCount":     strconv.Itoa(r.BackTranslationCount),
		"ShortScientificName":      r.ShortScientificName,
		"LongScientificName":       r.LongScientificName,
		"ShortCommonName":          r.ShortCommonName,
		"LongCommonName":           r.LongCommonName,
		"Created":                  yearText(r.Created),
		"Modified":                 yearText(r.Modified),
	}
}

// Values returns the row fields in Columns order.
func (r Row) Values() []string {
	fields := r.Fields()

	values := make([]string, len(Columns))
	for i, col := range Columns {
		values[i] = fields[col]
	}

	return values
}

func yearText(year int) string {
	if year == 0 {
		return ""
	}

	return strconv.Itoa(year)
}

// checkColumns verifies that fields holds exactly the names in Columns.
func checkColumns(fields map[string]string) error {
	var missing, unexpected []string
	for _, col := range Columns {
		if _, ok := fields[col]; !ok {
			missing = append(missing, col)
		}
	}

	for col := range fields {
		if !slices.Contains(Columns, col) {
			unexpected = append(unexpected, col)
		}
	}

	if len(missing) > 0 || len(unexpected) > 0 {
		slices.Sort(unexpected)

		return fmt.Errorf("%w: missing %v, unexpected %v", ErrColumnMismatch, missing, unexpected)
	}

	return nil
}

// Table returns every vegetation type of the from system, sorted by code,
// joined with its translation into the to system. Types without rules get
// zero counts and no translation.
func (r *Reconciler) Table(from, to syntaxon.Reference, cfg Config) ([]Row, error) {
	translations, err := r.Translate(from, to, cfg)
	if err != nil {
		return nil, err
	}

	fromTable, toTable := r.tables[from], r.tables[to]

	byCode := make(map[string]Translation, len(translations))
	for _, tr := range translations {
		byCode[tr.Code] = tr
	}

	types := fromTable.Types()
	out := make([]Row, 0, len(types))
	for _, vt := range types {
		row := Row{
			Code:                vt.Code,
			IsCurrent:           vt.IsCurrent,
			IsLowest:            vt.IsLowest,
			IsCrossClass:        vt.IsCrossClass,
			CrossClassCodes:     vt.CrossClassCodes,
			SynLevel:            vt.Level,
			SynClass:            vt.Class,
			ShortScientificName: vt.ShortScientificName,
			LongScientificName:  vt.LongScientificName,
			ShortCommonName:     vt.ShortCommonName,
			LongCommonName:      vt.LongCommonName,
			Created:             vt.Created,
			Modified:            vt.Modified,
		}

		if tr, ok := byCode[vt.Code]; ok {
			row.Translation = tr.CurrentString()
			row.TranslationHistoric = tr.HistoricString()
			row.BackTranslation = tr.BackString()
			row.TranslationCount = len(tr.Current)
			row.TranslationHistoricCount = len(tr.Historic)
			row.BackTranslationCount = len(tr.Back)
			row.Identical = tr.Identical

			if common.IsSingle(tr.Current) {
				code := firstCode(tr.Current[0])
				row.TranslationLevel, _ = r.engine.Level(code, to)
				row.TranslationIsLowest = toTable.IsLowest(code)
			}
		}

		out = append(out, row)
	}

	if err := checkColumns(Row{}.Fields()); err != nil {
		return nil, err
	}

	return out, nil
}
