package syntaxon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestValidate(t *testing.T) {
	e := NewEngine(nil)

	tests := []struct {
		input    string
		expected string
	}{
		// Catalogus
		{"05", "05"},
		{"5", "05"},
		{"5-A", "05-a"},
		{"5/A", "05/a"},
		{"5%A", "05%a"},
		{"5a", "05A"},
		{"05A", "05A"},
		{"5a-A", "05A-a"},
		{"5a/A", "05A/a"},
		{"5a%A", "05A%a"},
		{"5a1", "05A1"},
		{"05a10", "05A10"},
		{"5a1A", "05A1a"},
		{"50a", "50A"},
		{"400", "400"},

		// Revision
		{"r5", "r05"},
		{"R5", "r05"},
		{"r5a", "r05A"},
		{"r05Aa", "r05Aa"},
		{"r5aA1", "r05Aa1"},
		{"r5aA1A", "r05Aa1a"},
		{"r05Aa01a", "r05Aa01a"},
		{"r9rg1", "r09RG01"},
		{"r9dg01", "r09DG01"},
		{"r50a", "r50A"},
		{"r200", "r200"},

		// Legacy VVN keeps the absence of the r marker
		{"05Aa", "05Aa"},
		{"5aa1", "05Aa1"},
		{"9RG01", "09RG01"},

		// Surrounding whitespace
		{" 05A1 ", "05A1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := e.Validate(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidateUnrecognized(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	e := NewEngine(zap.New(core))

	for _, code := range []string{"rubbish", "", "50", "5A-1", "05A-", "r05Ag01"} {
		got, ok := e.Validate(code)
		assert.False(t, ok, code)
		assert.Empty(t, got, code)
	}

	assert.Equal(t, 6, logs.FilterMessage("no matching syntaxon pattern").Len())
}

func TestValidateIsIdempotent(t *testing.T) {
	e := NewEngine(nil)

	codes := append(append([]string{}, CatalogusTestCodes...), RevisionTestCodes...)
	for _, code := range codes {
		once, ok := e.Validate(code)
		if !ok {
			continue
		}

		twice, ok := e.Validate(once)
		require.True(t, ok, code)
		assert.Equal(t, once, twice, code)
	}
}

func TestValidateCaseAndPadding(t *testing.T) {
	e := NewEngine(nil)

	a, _ := e.Validate("5A")
	b, _ := e.Validate("05A")
	assert.Equal(t, "05A", a)
	assert.Equal(t, a, b)

	fromInt, ok, err := e.ValidateValue(5)
	require.NoError(t, err)
	require.True(t, ok)

	fromStr, _ := e.Validate("5")
	assert.Equal(t, fromStr, fromInt)
}

func TestValidateValue(t *testing.T) {
	e := NewEngine(nil)

	tests := []struct {
		name     string
		input    any
		expected string
		ok       bool
	}{
		{"int class", 42, "42", true},
		{"int mapping code", 400, "400", true},
		{"int64", int64(7), "07", true},
		{"uint8", uint8(9), "09", true},
		{"float whole", 5.0, "05", true},
		{"float32", float32(12), "12", true},
		{"string", "5a1", "05A1", true},
		{"nil", nil, "", false},
		{"NaN", math.NaN(), "", false},
		{"unrecognized", "xyz", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := e.ValidateValue(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, _, err := e.ValidateValue(struct{}{})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = e.ValidateValue([]string{"05"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateAllPreservesOrder(t *testing.T) {
	e := NewEngine(nil)

	got := e.ValidateAll([]string{"5a", "rubbish", "r5"})
	assert.Equal(t, []string{"05A", "", "r05"}, got)
}

func TestLevelCatalogus(t *testing.T) {
	e := NewEngine(nil)

	tests := []struct {
		code     string
		expected Level
	}{
		{"09", LevelClass},
		{"09-a", LevelClassFragment},
		{"09/b", LevelClassDerivative},
		{"09%b", LevelClassDerivative},
		{"09A", LevelAlliance},
		{"09A-a", LevelAllianceFragment},
		{"09A/a", LevelAllianceDerivative},
		{"09A1", LevelAssociation},
		{"09A2a", LevelSubAssociation},
		{"400", LevelNotApplicable},
		{"50B", LevelNotApplicable},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := e.Level(tt.code, RefCatalogus)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLevelRevision(t *testing.T) {
	e := NewEngine(nil)

	expected := []Level{
		LevelClass, LevelOrder, LevelAlliance, LevelAssociation,
		LevelSubAssociation, LevelFragment, LevelDerivative,
	}

	// The r marker does not change the level.
	for _, codes := range [][]string{
		{"r09", "r09A", "r09Aa", "r09Aa01", "r09Aa02a", "r9RG01", "r9DG01"},
		{"9", "9A", "9Aa", "9Aa01", "9Aa02a", "9RG01", "9DG01"},
	} {
		for i, code := range codes {
			got, ok := e.Level(code, RefRevision)
			require.True(t, ok, code)
			assert.Equal(t, expected[i], got, code)

			legacy, ok := e.Level(code, RefVVN)
			require.True(t, ok, code)
			assert.Equal(t, got, legacy, code)
		}
	}
}

func TestLevelDependsOnReference(t *testing.T) {
	e := NewEngine(nil)

	cat, _ := e.Level("05A", RefCatalogus)
	rev, _ := e.Level("05A", RefRevision)

	assert.Equal(t, LevelAlliance, cat)
	assert.Equal(t, LevelOrder, rev)
}

func TestLevelUnrecognized(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	e := NewEngine(zap.New(core))

	lvl, ok := e.Level("r05Aa01", RefCatalogus)
	assert.False(t, ok)
	assert.False(t, lvl.IsValid())
	assert.Equal(t, 1, logs.Len())

	_, ok = e.Level("05", Reference(0))
	assert.False(t, ok)
}

func TestCatalogusTestCodesCoverAllLevels(t *testing.T) {
	e := NewEngine(nil)

	seen := map[Level]bool{}
	for _, code := range CatalogusTestCodes {
		validated, ok := e.Validate(code)
		require.True(t, ok, code)

		lvl, ok := e.Level(validated, RefCatalogus)
		require.True(t, ok, code)
		require.True(t, lvl.IsValid(), code)

		if lvl.IsTaxon() {
			seen[lvl] = true
		}
	}

	var want []Level
	for _, lvl := range ReferenceLevels(RefCatalogus) {
		if lvl.IsTaxon() {
			want = append(want, lvl)
		}
	}

	var got []Level
	for lvl := range seen {
		got = append(got, lvl)
	}

	assert.ElementsMatch(t, want, got)
}

func TestFamilyExclusivity(t *testing.T) {
	codes := append(append([]string{}, CatalogusTestCodes...), RevisionTestCodes...)

	for _, code := range codes {
		for _, patterns := range [][]pattern{catalogusPatterns, revisionPatterns} {
			matches := 0
			for i := range patterns {
				if patterns[i].re.MatchString(code) {
					matches++
				}
			}

			assert.LessOrEqual(t, matches, 1, code)
		}
	}
}

func TestClass(t *testing.T) {
	e := NewEngine(nil)

	tests := []struct {
		code     string
		expected string
		ok       bool
	}{
		{"5", "05", true},
		{"05A1a", "05", true},
		{"42A-a", "42", true},
		{"r9RG01", "09", true},
		{"r14Bb02a", "14", true},
		{"14Bb02", "14", true},
		{"50A", "", false},
		{"r400", "", false},
		{"rubbish", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := e.Class(tt.code)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParent(t *testing.T) {
	e := NewEngine(nil)

	tests := []struct {
		code     string
		ref      Reference
		expected string
		ok       bool
	}{
		{"05A1a", RefCatalogus, "05A1", true},
		{"05A10", RefCatalogus, "05A", true},
		{"05A", RefCatalogus, "05", true},
		{"05", RefCatalogus, "", false},
		{"05A-a", RefCatalogus, "", false},
		{"200", RefCatalogus, "", false},
		{"r05Aa01a", RefRevision, "r05Aa01", true},
		{"r05Aa01", RefRevision, "r05Aa", true},
		{"r05Aa", RefRevision, "r05A", true},
		{"r05A", RefRevision, "r05", true},
		{"05Aa1a", RefVVN, "05Aa1", true},
		{"r05RG01", RefRevision, "", false},
		{"r5aa1A", RefRevision, "r05Aa1", true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := e.Parent(tt.code, tt.ref)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCodeTestDefaults(t *testing.T) {
	e := NewEngine(nil)

	results := e.CodeTest(nil, RefRevision)
	require.Len(t, results, len(RevisionTestCodes))

	last := results[len(results)-1]
	assert.Equal(t, "rubbish", last.Code)
	assert.Empty(t, last.Validated)
	assert.True(t, last.Corrected)
	assert.False(t, last.Level.IsValid())

	first := results[0]
	assert.Equal(t, "r05", first.Validated)
	assert.False(t, first.Corrected)
	assert.Equal(t, LevelClass, first.Level)
	assert.Equal(t, "05", first.Class)
}

func TestCodeTestCorrected(t *testing.T) {
	e := NewEngine(nil)

	results := e.CodeTest([]string{"5a1A", "05A1a"}, RefCatalogus)
	require.Len(t, results, 2)

	assert.True(t, results[0].Corrected)
	assert.False(t, results[1].Corrected)
	assert.Equal(t, LevelSubAssociation, results[0].Level)
	assert.Equal(t, results[0].Validated, results[1].Validated)
}
