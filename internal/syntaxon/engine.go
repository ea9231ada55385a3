package syntaxon

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ErrInvalidInput is returned when a value of an unsupported type is
// offered as a syntaxon code.
var ErrInvalidInput = errors.New("invalid syntaxon code input")

// Engine validates and classifies syntaxon codes. The pattern tables are
// fixed at package initialization, so an Engine only carries a logger and
// is safe for concurrent use.
type Engine struct {
	log *zap.Logger
}

// NewEngine creates an Engine that reports unrecognized codes to log.
// A nil logger discards all output.
func NewEngine(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{log: log.Named("syntaxon")}
}

// Validate returns the canonical form of code. The Catalogus patterns are
// tried first, then the Revision patterns. The second result is false when
// no pattern matches.
func (e *Engine) Validate(code string) (string, bool) {
	canonical, ok := canonicalize(code)
	if !ok {
		e.log.Warn("no matching syntaxon pattern", zap.String("code", code))
	}

	return canonical, ok
}

// ValidateAll validates every code in order. Unrecognized codes yield an
// empty string at their position.
func (e *Engine) ValidateAll(codes []string) []string {
	validated := make([]string, len(codes))
	for i, code := range codes {
		validated[i], _ = e.Validate(code)
	}

	return validated
}

// ValidateValue validates a scalar value read from a loosely typed source.
// Integers and floats are formatted before matching, so 400 and "400" give
// the same result. Nil and NaN are missing values: they return ok == false
// without an error. Any other type returns ErrInvalidInput.
func (e *Engine) ValidateValue(v any) (string, bool, error) {
	code, present, err := stringify(v)
	if err != nil {
		return "", false, err
	}

	if !present {
		return "", false, nil
	}

	canonical, ok := e.Validate(code)

	return canonical, ok, nil
}

// Level returns the level of code within the pattern family of ref. Mapping
// codes return LevelNotApplicable. The second result is false when nothing
// matches or ref is not a valid reference.
func (e *Engine) Level(code string, ref Reference) (Level, bool) {
	patterns := ref.family()
	if patterns == nil {
		e.log.Error("unsupported reference system", zap.Stringer("reference", ref))
		return 0, false
	}

	p, _ := matchFamily(patterns, strings.TrimSpace(code))
	if p == nil {
		e.log.Warn("no matching syntaxon level",
			zap.String("code", code), zap.Stringer("reference", ref))

		return 0, false
	}

	return p.level, true
}

// Class returns the zero-padded class number of code, independent of the
// reference system. Mapping codes and unrecognized codes return false; only
// the latter are logged.
func (e *Engine) Class(code string) (string, bool) {
	code = strings.TrimSpace(code)
	for _, patterns := range [][]pattern{catalogusPatterns, revisionPatterns} {
		p, m := matchFamily(patterns, code)
		if p == nil {
			continue
		}

		if p.classGroup == 0 {
			return "", false
		}

		return pad2(m[p.classGroup]), true
	}

	e.log.Warn("no matching syntaxon class", zap.String("code", code))

	return "", false
}

// Parent returns the code one level up from code within ref: the association
// of a sub-association, the alliance (Catalogus) or order (Revision) above
// it, and so on up to the class. Fragments, derivatives, classes and mapping
// codes have no parent.
func (e *Engine) Parent(code string, ref Reference) (string, bool) {
	patterns := ref.family()
	if patterns == nil {
		return "", false
	}

	p, m := matchFamily(patterns, strings.TrimSpace(code))
	if p == nil || p.parent == nil {
		return "", false
	}

	return p.parent(p.format(m)), true
}

// canonicalize is the logging-free core of Validate.
func canonicalize(code string) (string, bool) {
	code = strings.TrimSpace(code)
	for _, patterns := range [][]pattern{catalogusPatterns, revisionPatterns} {
		if p, m := matchFamily(patterns, code); p != nil {
			return p.format(m), true
		}
	}

	return "", false
}

// stringify converts a loosely typed value into a code string. The second
// result is false for missing values.
func stringify(v any) (string, bool, error) {
	switch x := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return x, true, nil
	case int:
		return strconv.Itoa(x), true, nil
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", x), true, nil
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x), true, nil
	case float32:
		return stringifyFloat(float64(x))
	case float64:
		return stringifyFloat(x)
	default:
		return "", false, fmt.Errorf("%w: unsupported type %T", ErrInvalidInput, v)
	}
}

func stringifyFloat(f float64) (string, bool, error) {
	if math.IsNaN(f) {
		return "", false, nil
	}

	return strconv.FormatFloat(f, 'f', -1, 64), true, nil
}
