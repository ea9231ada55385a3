package syntaxon

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Reference -linecomment -output=reference_string.go

// Reference identifies a syntaxonomic classification system.
type Reference int

const (
	_ Reference = iota // zero value is not a valid reference

	RefCatalogus // sbbcat
	RefVVN       // vvn
	RefRevision  // rvvn
)

// ErrUnknownReference is returned for reference system names that are not supported.
var ErrUnknownReference = errors.New("unknown reference system")

// References lists all supported reference systems in a stable order.
func References() []Reference {
	return []Reference{RefCatalogus, RefVVN, RefRevision}
}

// ParseReference returns the Reference for a system name such as "sbbcat".
func ParseReference(name string) (Reference, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, ref := range References() {
		if ref.String() == key {
			return ref, nil
		}
	}

	return 0, fmt.Errorf("%w %q, must be one of %v", ErrUnknownReference, name, References())
}

// IsValid reports whether r is one of the supported reference systems.
func (r Reference) IsValid() bool {
	return r >= RefCatalogus && r <= RefRevision
}

// Set implements pflag.Value so a Reference can be bound to a CLI flag.
func (r *Reference) Set(s string) error {
	ref, err := ParseReference(s)
	if err != nil {
		return err
	}

	*r = ref

	return nil
}

// Type implements pflag.Value.
func (r *Reference) Type() string {
	return "reference"
}

// family returns the ordered pattern table for the reference system.
// Revision and legacy VVN share one table.
func (r Reference) family() []pattern {
	switch r {
	case RefCatalogus:
		return catalogusPatterns
	case RefVVN, RefRevision:
		return revisionPatterns
	default:
		return nil
	}
}
