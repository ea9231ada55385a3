package syntaxon

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Level -linecomment -output=level_string.go

// Level is the syntaxonomic level of a code. Values sort in the fixed
// syntaxonomic order; the zero value means "not recognized".
type Level int

const (
	_ Level = iota // zero value marks an unrecognized code

	LevelClass              // class
	LevelOrder              // order
	LevelAlliance           // alliance
	LevelAssociation        // association
	LevelSubAssociation     // sub-association
	LevelClassFragment      // class-fragment
	LevelAllianceFragment   // alliance-fragment
	LevelFragment           // fragment
	LevelClassDerivative    // class-derivative
	LevelAllianceDerivative // alliance-derivative
	LevelDerivative         // derivative
	LevelNotApplicable      // not-applicable
)

// IsValid reports whether the level was assigned by a pattern match.
func (l Level) IsValid() bool {
	return l >= LevelClass && l <= LevelNotApplicable
}

// IsTaxon reports whether the level belongs to a real vegetation type,
// i.e. it is neither unrecognized nor a mapping code.
func (l Level) IsTaxon() bool {
	return l.IsValid() && l != LevelNotApplicable
}

// IsFragmentary reports whether the level is a fragment (romp) or a
// derivative (derivaat) community. Those are always lowest-level.
func (l Level) IsFragmentary() bool {
	switch l {
	default:
		return false
	case LevelClassFragment, LevelAllianceFragment, LevelFragment,
		LevelClassDerivative, LevelAllianceDerivative, LevelDerivative:
		return true
	}
}

// Label returns the level name for output. Mapping and unrecognized codes
// have no level and render empty.
func (l Level) Label() string {
	if !l.IsTaxon() {
		return ""
	}

	return l.String()
}

// ParseLevel returns the Level with the given name.
func ParseLevel(name string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for l := LevelClass; l <= LevelNotApplicable; l++ {
		if l.String() == key {
			return l, nil
		}
	}

	return 0, fmt.Errorf("unknown syntaxon level %q", name)
}

// ReferenceLevels returns the levels declared for a reference system in
// pattern priority order. It returns nil for an invalid reference.
func ReferenceLevels(ref Reference) []Level {
	patterns := ref.family()
	if patterns == nil {
		return nil
	}

	levels := make([]Level, 0, len(patterns))
	for i := range patterns {
		levels = append(levels, patterns[i].level)
	}

	return levels
}
