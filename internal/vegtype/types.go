package vegtype

import (
	"errors"
	"fmt"
	"strings"

	"syntaxa/internal/syntaxon"
)

var (
	// ErrDuplicateCode is returned when a (code, current-status) pair occurs more than once.
	ErrDuplicateCode = errors.New("vegetation type codes not unique")
	// ErrUnknownTypology is returned for typology names that map to no classification system.
	ErrUnknownTypology = errors.New("unknown typology")
)

// Typology names as recorded by the source database.
var typologyNames = map[string]syntaxon.Reference{
	"TBO Nationale Vegetatie typologie":  syntaxon.RefCatalogus,
	"VVN Nationale Vegetatie typologie":  syntaxon.RefVVN,
	"RVVN Nationale Vegetatie typologie": syntaxon.RefRevision,
}

// ParseTypology maps a typology name to its classification system. Both the
// long database names and the short system names ("sbbcat") are accepted.
func ParseTypology(name string) (syntaxon.Reference, error) {
	if ref, ok := typologyNames[strings.TrimSpace(name)]; ok {
		return ref, nil
	}

	ref, err := syntaxon.ParseReference(name)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrUnknownTypology, name)
	}

	return ref, nil
}

// TypologyName returns the database typology name of a system.
func TypologyName(ref syntaxon.Reference) string {
	for name, r := range typologyNames {
		if r == ref {
			return name
		}
	}

	return ""
}

// Record is one raw vegetation-type row as supplied by a source reader.
type Record struct {
	System              syntaxon.Reference
	Code                string
	IsCurrent           bool
	ShortScientificName string
	LongScientificName  string
	ShortCommonName     string
	LongCommonName      string
	// Created and Modified are years; zero when unknown.
	Created  int
	Modified int
}

// VegetationType is a Record with the fields derived by NewTable.
type VegetationType struct {
	Record

	Level syntaxon.Level
	Class string
	// IsLowest is true when no more specific code exists below this one.
	IsLowest bool
	// IsCrossClass is true for current types sharing their scientific name
	// with another current type.
	IsCrossClass bool
	// CrossClassCodes is the '#'-joined set of sibling codes, this one included.
	CrossClassCodes string
}

// Options controls which records are kept in a Table.
type Options struct {
	// IncludeMapCodes keeps mapping codes (50A, 100, ...) in the table.
	IncludeMapCodes bool
}

// YearChanges counts the types created and modified in a year.
type YearChanges struct {
	Year     int
	Created  int
	Modified int
}

// Flag renders a boolean the way the reference tables do.
func Flag(b bool) string {
	if b {
		return "Yes"
	}

	return "No"
}

// ParseFlag parses a Yes/No style value. Empty input is false.
func ParseFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "ja", "true", "1", "y":
		return true, nil
	case "no", "nee", "false", "0", "n", "":
		return false, nil
	default:
		return false, fmt.Errorf("invalid yes/no value %q", s)
	}
}
