package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syntaxa/internal/rules"
	"syntaxa/internal/syntaxon"
	"syntaxa/internal/vegtype"
)

func current(system syntaxon.Reference, codes ...string) []vegtype.Record {
	out := make([]vegtype.Record, 0, len(codes))
	for _, code := range codes {
		out = append(out, vegtype.Record{System: system, Code: code, IsCurrent: true})
	}

	return out
}

func pair(sbb, rvvn string) map[string]string {
	return map[string]string{"code_sbb": sbb, "code_rvvn_2018": rvvn}
}

func newReconciler(t *testing.T, ruleRows []map[string]string, sbb, rvvn []vegtype.Record) *Reconciler {
	t.Helper()

	engine := syntaxon.NewEngine(nil)

	rt, err := rules.NewTable(ruleRows, nil, engine, nil)
	require.NoError(t, err)

	sbbTable, err := vegtype.NewTable(syntaxon.RefCatalogus, sbb, engine, vegtype.Options{}, nil)
	require.NoError(t, err)

	rvvnTable, err := vegtype.NewTable(syntaxon.RefRevision, rvvn, engine, vegtype.Options{}, nil)
	require.NoError(t, err)

	r, err := NewReconciler(rt, []*vegtype.Table{sbbTable, rvvnTable}, engine, nil)
	require.NoError(t, err)

	return r
}

func byCode(t *testing.T, translations []Translation, code string) Translation {
	t.Helper()

	for _, tr := range translations {
		if tr.Code == code {
			return tr
		}
	}

	require.Failf(t, "translation not found", "code %s", code)

	return Translation{}
}

func TestTranslateOneToMany(t *testing.T) {
	r := newReconciler(t,
		[]map[string]string{pair("05A1", "r05Aa01"), pair("05A1", "r05Aa02")},
		current(syntaxon.RefCatalogus, "05A1"),
		current(syntaxon.RefRevision, "r05Aa01", "r05Aa02"),
	)

	got, err := r.Translate(syntaxon.RefCatalogus, syntaxon.RefRevision, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, got, 1)

	tr := got[0]
	assert.Equal(t, "05A1", tr.Code)
	require.NotNil(t, tr.CurrentString())
	assert.Equal(t, "r05Aa01, r05Aa02", *tr.CurrentString())
	assert.Len(t, tr.Current, 2)
	assert.Nil(t, tr.HistoricString())
	assert.Equal(t, []string{"05A1"}, tr.Back)
	assert.False(t, tr.Identical)
}

func TestTranslateIdentity(t *testing.T) {
	r := newReconciler(t,
		[]map[string]string{
			pair("05A1", "r05Aa01"),
			pair("05A2", "r05Aa02"),
			pair("05A2", "r05Aa03"),
			pair("05A3", "r05Aa04"),
			pair("05A4", "r05Aa04"),
		},
		current(syntaxon.RefCatalogus, "05A1", "05A2", "05A3", "05A4"),
		current(syntaxon.RefRevision, "r05Aa01", "r05Aa02", "r05Aa03", "r05Aa04"),
	)

	tests := []struct {
		code      string
		identical bool
	}{
		{"05A1", true},  // 1:1
		{"05A2", false}, // 1:2
		{"05A3", false}, // 1:1 forward, 2 back
	}

	got, err := r.Translate(syntaxon.RefCatalogus, syntaxon.RefRevision, DefaultConfig())
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.identical, byCode(t, got, tt.code).Identical)
		})
	}

	back := byCode(t, got, "05A3")
	assert.Equal(t, []string{"05A3", "05A4"}, back.Back)

	reverse, err := r.Translate(syntaxon.RefRevision, syntaxon.RefCatalogus, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, byCode(t, reverse, "r05Aa01").Identical)
	assert.False(t, byCode(t, reverse, "r05Aa02").Identical)
	assert.Equal(t, []string{"r05Aa02", "r05Aa03"}, byCode(t, reverse, "r05Aa02").Back)
}

func TestTranslateHistoricTargets(t *testing.T) {
	rvvn := current(syntaxon.RefRevision, "r05Aa01")
	rvvn = append(rvvn, vegtype.Record{System: syntaxon.RefRevision, Code: "r05Aa09"})

	r := newReconciler(t,
		[]map[string]string{pair("05A1", "r05Aa09"), pair("05A2", "r05Aa01"), pair("05A2", "r05Aa09")},
		current(syntaxon.RefCatalogus, "05A1", "05A2"),
		rvvn,
	)

	got, err := r.Translate(syntaxon.RefCatalogus, syntaxon.RefRevision, DefaultConfig())
	require.NoError(t, err)

	only := byCode(t, got, "05A1")
	assert.Empty(t, only.Current)
	assert.Nil(t, only.CurrentString())
	assert.Equal(t, []string{"r05Aa09"}, only.Historic)
	assert.Empty(t, only.Back)
	assert.Nil(t, only.BackString())
	assert.False(t, only.Identical)

	mixed := byCode(t, got, "05A2")
	assert.Equal(t, []string{"r05Aa01"}, mixed.Current)
	assert.Equal(t, []string{"r05Aa09"}, mixed.Historic)
	assert.True(t, mixed.Identical)
}

func TestTranslateSubAssociations(t *testing.T) {
	r := newReconciler(t,
		[]map[string]string{
			pair("05A1", "r05Aa01a"),
			pair("05A1", "r05Aa01"),
			pair("05A2", "r05Aa01a"),
			pair("05A2", "r05Aa01"),
		},
		current(syntaxon.RefCatalogus, "05A1", "05A2"),
		current(syntaxon.RefRevision, "r05Aa01", "r05Aa01a"),
	)

	t.Run("included", func(t *testing.T) {
		got, err := r.Translate(syntaxon.RefCatalogus, syntaxon.RefRevision, DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, []string{"r05Aa01", "r05Aa01a"}, byCode(t, got, "05A1").Current)
	})

	t.Run("collapsed", func(t *testing.T) {
		cfg := Config{IncludeSubAssociations: false}

		got, err := r.Translate(syntaxon.RefCatalogus, syntaxon.RefRevision, cfg)
		require.NoError(t, err)

		tr := byCode(t, got, "05A1")
		assert.Equal(t, []string{"r05Aa01"}, tr.Current)
		assert.Equal(t, []string{"05A1", "05A2"}, tr.Back)
	})

	t.Run("sub-association and association as source", func(t *testing.T) {
		cfg := Config{IncludeSubAssociations: false}

		got, err := r.Translate(syntaxon.RefRevision, syntaxon.RefCatalogus, cfg)
		require.NoError(t, err)

		sub := byCode(t, got, "r05Aa01a")
		ass := byCode(t, got, "r05Aa01")
		assert.Equal(t, []string{"05A1", "05A2"}, sub.Current)
		assert.Equal(t, sub.Current, ass.Current)
		assert.Equal(t, sub.Back, ass.Back)
		assert.Equal(t, []string{"r05Aa01"}, sub.Back)
	})
}

func TestTranslateCollapsedBackTranslation(t *testing.T) {
	// Only the sub-association is named in the rules.
	r := newReconciler(t,
		[]map[string]string{pair("05A1", "r05Aa01a")},
		current(syntaxon.RefCatalogus, "05A1"),
		current(syntaxon.RefRevision, "r05Aa01", "r05Aa01a"),
	)

	tests := []struct {
		name    string
		cfg     Config
		current []string
	}{
		{"included", DefaultConfig(), []string{"r05Aa01a"}},
		{"collapsed", Config{IncludeSubAssociations: false}, []string{"r05Aa01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Translate(syntaxon.RefCatalogus, syntaxon.RefRevision, tt.cfg)
			require.NoError(t, err)

			tr := byCode(t, got, "05A1")
			assert.Equal(t, tt.current, tr.Current)
			assert.Equal(t, []string{"05A1"}, tr.Back)
			assert.True(t, tr.Identical)
		})
	}
}

func TestTranslateLowestOnly(t *testing.T) {
	r := newReconciler(t,
		[]map[string]string{pair("05A1", "r05Aa01"), pair("05A1", "r05Aa01a"), pair("05A1", "r05Aa02")},
		current(syntaxon.RefCatalogus, "05A1"),
		current(syntaxon.RefRevision, "r05Aa01", "r05Aa01a", "r05Aa02"),
	)

	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "ignored while sub-associations are kept",
			cfg:  Config{LowestOnly: true, IncludeSubAssociations: true},
			want: []string{"r05Aa01", "r05Aa01a", "r05Aa02"},
		},
		{
			name: "lowest then collapsed",
			cfg:  Config{LowestOnly: true, IncludeSubAssociations: false},
			want: []string{"r05Aa01", "r05Aa02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Translate(syntaxon.RefCatalogus, syntaxon.RefRevision, tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, byCode(t, got, "05A1").Current)
		})
	}
}

func TestTranslateCrossClass(t *testing.T) {
	sbb := []vegtype.Record{
		{System: syntaxon.RefCatalogus, Code: "05A1", IsCurrent: true, LongScientificName: "Caricetum nigrae"},
		{System: syntaxon.RefCatalogus, Code: "06B2", IsCurrent: true, LongScientificName: "Caricetum nigrae"},
		{System: syntaxon.RefCatalogus, Code: "07A1", IsCurrent: true, LongScientificName: "Other"},
	}

	r := newReconciler(t,
		[]map[string]string{pair("05A1", "r05Aa01"), pair("06B2", "r05Aa01"), pair("07A1", "r05Aa01")},
		sbb,
		current(syntaxon.RefRevision, "r05Aa01"),
	)

	codes, err := r.CrossClassCodes(syntaxon.RefCatalogus)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"05A1": "05A1#06B2", "06B2": "05A1#06B2"}, codes)

	fwd, err := r.Translate(syntaxon.RefCatalogus, syntaxon.RefRevision, DefaultConfig())
	require.NoError(t, err)

	for _, code := range []string{"05A1", "06B2"} {
		assert.Equal(t, []string{"05A1#06B2", "07A1"}, byCode(t, fwd, code).Back, code)
	}

	rev, err := r.Translate(syntaxon.RefRevision, syntaxon.RefCatalogus, DefaultConfig())
	require.NoError(t, err)

	tr := byCode(t, rev, "r05Aa01")
	assert.Equal(t, []string{"05A1#06B2", "07A1"}, tr.Current)
	assert.Equal(t, []string{"r05Aa01"}, tr.Back)
}

func TestTranslateCrossClassIdentity(t *testing.T) {
	sbb := []vegtype.Record{
		{System: syntaxon.RefCatalogus, Code: "05A1", IsCurrent: true, LongScientificName: "Caricetum nigrae"},
		{System: syntaxon.RefCatalogus, Code: "06B2", IsCurrent: true, LongScientificName: "Caricetum nigrae"},
	}

	r := newReconciler(t,
		[]map[string]string{pair("05A1", "r05Aa01"), pair("06B2", "r05Aa01")},
		sbb,
		current(syntaxon.RefRevision, "r05Aa01"),
	)

	fwd, err := r.Translate(syntaxon.RefCatalogus, syntaxon.RefRevision, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, byCode(t, fwd, "05A1").Identical)

	rows, err := r.Table(syntaxon.RefRevision, syntaxon.RefCatalogus, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "05A1#06B2", *row.Translation)
	assert.Equal(t, 1, row.TranslationCount)
	assert.Equal(t, syntaxon.LevelAssociation, row.TranslationLevel)
	assert.True(t, row.TranslationIsLowest)
	assert.True(t, row.Identical)
}

func TestTranslateErrors(t *testing.T) {
	r := newReconciler(t, nil, nil, nil)

	tests := []struct {
		name     string
		from, to syntaxon.Reference
		want     error
	}{
		{"unknown source", syntaxon.Reference(0), syntaxon.RefRevision, syntaxon.ErrUnknownReference},
		{"unknown target", syntaxon.RefCatalogus, syntaxon.Reference(9), syntaxon.ErrUnknownReference},
		{"same system", syntaxon.RefCatalogus, syntaxon.RefCatalogus, ErrSameSystem},
		{"missing table", syntaxon.RefVVN, syntaxon.RefRevision, ErrNoTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Translate(tt.from, tt.to, DefaultConfig())
			require.ErrorIs(t, err, tt.want)

			_, err = r.Table(tt.from, tt.to, DefaultConfig())
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := r.CrossClassCodes(syntaxon.RefVVN)
	require.ErrorIs(t, err, ErrNoTable)
}

func TestNewReconcilerReportsUnknownRuleCodes(t *testing.T) {
	r := newReconciler(t,
		[]map[string]string{pair("05A4", "r05Aa01"), pair("05A1", "r05Aa01")},
		current(syntaxon.RefCatalogus, "05A1", "05A2", "18C1"),
		current(syntaxon.RefRevision, "r05Aa01"),
	)

	diags := r.Diagnostics()
	unknown := diags.WithCode("unknown_rule_code")
	require.Len(t, unknown, 1)
	assert.Equal(t, "05A4", unknown[0].Syntaxon)
	assert.Equal(t, "sbbcat", unknown[0].System)
	assert.Equal(t, []string{"05A1", "05A2"}, unknown[0].Suggestions)
}

func TestTranslateNonCanonicalTableCodes(t *testing.T) {
	r := newReconciler(t,
		[]map[string]string{pair("5a1", "r5Aa1")},
		current(syntaxon.RefCatalogus, "5a1"),
		current(syntaxon.RefRevision, "r5Aa1"),
	)

	diags := r.Diagnostics()
	assert.Empty(t, diags.WithCode("unknown_rule_code"))

	got, err := r.Translate(syntaxon.RefCatalogus, syntaxon.RefRevision, DefaultConfig())
	require.NoError(t, err)

	tr := byCode(t, got, "05A1")
	assert.Equal(t, []string{"r05Aa1"}, tr.Current)
	assert.Empty(t, tr.Historic)
	assert.True(t, tr.Identical)
}

func TestNewReconcilerRejectsDuplicateTables(t *testing.T) {
	engine := syntaxon.NewEngine(nil)

	rt, err := rules.NewTable(nil, nil, engine, nil)
	require.NoError(t, err)

	sbb, err := vegtype.NewTable(syntaxon.RefCatalogus, nil, engine, vegtype.Options{}, nil)
	require.NoError(t, err)

	_, err = NewReconciler(rt, []*vegtype.Table{sbb, sbb}, engine, nil)
	require.Error(t, err)

	_, err = NewReconciler(nil, nil, engine, nil)
	require.Error(t, err)
}

func TestRulesStatus(t *testing.T) {
	rvvn := current(syntaxon.RefRevision, "r05Aa01", "r05Aa01a")
	rvvn = append(rvvn, vegtype.Record{System: syntaxon.RefRevision, Code: "r05Aa09"})

	r := newReconciler(t,
		[]map[string]string{pair("05A1", "r05Aa01"), pair("05A1", "r05Aa09")},
		current(syntaxon.RefCatalogus, "05A1"),
		rvvn,
	)

	got, err := r.Rules(syntaxon.RefCatalogus, syntaxon.RefRevision)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.True(t, got[0].SourceCurrent)
	assert.True(t, got[0].SourceLowest)
	assert.True(t, got[0].TargetCurrent)
	assert.False(t, got[0].TargetLowest)

	assert.Equal(t, "r05Aa09", got[1].Target)
	assert.False(t, got[1].TargetCurrent)
	assert.True(t, got[1].TargetLowest)
}
