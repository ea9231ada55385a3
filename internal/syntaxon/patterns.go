package syntaxon

import (
	"regexp"
	"strings"
)

// pattern is one row of a family's ordered pattern table.
type pattern struct {
	level Level
	re    *regexp.Regexp
	// classGroup is the submatch index of the class number, 0 if the
	// level has no class (mapping codes).
	classGroup int
	// format builds the canonical code from the submatches.
	format func(m []string) string
	// parent derives the next-higher code from a canonical code; nil when
	// the level has no hierarchical parent.
	parent func(canonical string) string
}

var catalogusPatterns = []pattern{
	{
		level: LevelClass, re: regexp.MustCompile(`(?i)^([0-4]?[0-9])$`), classGroup: 1, // 05
		format: func(m []string) string { return pad2(m[1]) },
	},
	{
		level: LevelClassFragment, re: regexp.MustCompile(`(?i)^([0-4]?[0-9])(-)([a-z])$`), classGroup: 1, // 05-a
		format: formatClassSuffix,
	},
	{
		level: LevelClassDerivative, re: regexp.MustCompile(`(?i)^([0-4]?[0-9])([/%])([a-z])$`), classGroup: 1, // 05/a
		format: formatClassSuffix,
	},
	{
		level: LevelAlliance, re: regexp.MustCompile(`(?i)^([0-4]?[0-9])([a-z])$`), classGroup: 1, // 05A
		format: func(m []string) string { return pad2(m[1]) + upper(m[2]) },
		parent: trimLast,
	},
	{
		level: LevelAllianceFragment, re: regexp.MustCompile(`(?i)^([0-4]?[0-9])([a-z])(-)([a-z])$`), classGroup: 1, // 05A-a
		format: formatAllianceSuffix,
	},
	{
		level: LevelAllianceDerivative, re: regexp.MustCompile(`(?i)^([0-4]?[0-9])([a-z])([/%])([a-z])$`), classGroup: 1, // 05A/a
		format: formatAllianceSuffix,
	},
	{
		level: LevelAssociation, re: regexp.MustCompile(`(?i)^([0-4]?[0-9])([a-z])([0-9]{1,2})$`), classGroup: 1, // 05A10
		format: func(m []string) string { return pad2(m[1]) + upper(m[2]) + m[3] },
		parent: trimDigits,
	},
	{
		level: LevelSubAssociation, re: regexp.MustCompile(`(?i)^([0-4]?[0-9])([a-z])([0-9]{1,2})([a-z])$`), classGroup: 1, // 05A10a
		format: func(m []string) string { return pad2(m[1]) + upper(m[2]) + m[3] + lower(m[4]) },
		parent: trimLast,
	},
	{
		level: LevelNotApplicable, re: regexp.MustCompile(`(?i)^(50[a-z]|400|300|200|100)$`), // 50A
		format: func(m []string) string { return upper(m[1]) },
	},
}

var revisionPatterns = []pattern{
	{
		level: LevelClass, re: regexp.MustCompile(`(?i)^(r?)([0-4]?[0-9])$`), classGroup: 2, // r05
		format: func(m []string) string { return lower(m[1]) + pad2(m[2]) },
	},
	{
		level: LevelOrder, re: regexp.MustCompile(`(?i)^(r?)([0-4]?[0-9])([a-z])$`), classGroup: 2, // r05A
		format: func(m []string) string { return lower(m[1]) + pad2(m[2]) + upper(m[3]) },
		parent: trimLast,
	},
	{
		level: LevelAlliance, re: regexp.MustCompile(`(?i)^(r?)([0-4]?[0-9])([a-z])([a-z])$`), classGroup: 2, // r05Aa
		format: func(m []string) string { return lower(m[1]) + pad2(m[2]) + upper(m[3]) + lower(m[4]) },
		parent: trimLast,
	},
	{
		level: LevelAssociation, re: regexp.MustCompile(`(?i)^(r?)([0-4]?[0-9])([a-z])([a-f])([0-9]?[0-9])$`), classGroup: 2, // r05Aa01
		format: func(m []string) string { return lower(m[1]) + pad2(m[2]) + upper(m[3]) + lower(m[4]) + m[5] },
		parent: trimDigits,
	},
	{
		level: LevelSubAssociation, re: regexp.MustCompile(`(?i)^(r?)([0-4]?[0-9])([a-z])([a-f])([0-9]?[0-9])([a-z])$`), classGroup: 2, // r05Aa01a
		format: func(m []string) string {
			return lower(m[1]) + pad2(m[2]) + upper(m[3]) + lower(m[4]) + m[5] + lower(m[6])
		},
		parent: trimLast,
	},
	{
		level: LevelFragment, re: regexp.MustCompile(`(?i)^(r?)([0-4]?[0-9])(rg)([0-9]?[0-9])$`), classGroup: 2, // r05RG01
		format: formatClassGroup,
	},
	{
		level: LevelDerivative, re: regexp.MustCompile(`(?i)^(r?)([0-4]?[0-9])(dg)([0-9]?[0-9])$`), classGroup: 2, // r05DG01
		format: formatClassGroup,
	},
	{
		level: LevelNotApplicable, re: regexp.MustCompile(`(?i)^(r?)(50[a-z]|400|300|200|100)$`), // r50A
		format: func(m []string) string { return lower(m[1]) + upper(m[2]) },
	},
}

func formatClassSuffix(m []string) string {
	return pad2(m[1]) + m[2] + lower(m[3])
}

func formatAllianceSuffix(m []string) string {
	return pad2(m[1]) + upper(m[2]) + m[3] + lower(m[4])
}

func formatClassGroup(m []string) string {
	return lower(m[1]) + pad2(m[2]) + upper(m[3]) + pad2(m[4])
}

// matchFamily returns the first pattern of the table that matches code
// together with its submatches.
func matchFamily(patterns []pattern, code string) (*pattern, []string) {
	for i := range patterns {
		p := &patterns[i]
		if m := p.re.FindStringSubmatch(code); m != nil {
			return p, m
		}
	}

	return nil, nil
}

func pad2(digits string) string {
	if len(digits) < 2 {
		return strings.Repeat("0", 2-len(digits)) + digits
	}

	return digits
}

func upper(s string) string { return strings.ToUpper(s) }

func lower(s string) string { return strings.ToLower(s) }

func trimLast(code string) string {
	return code[:len(code)-1]
}

func trimDigits(code string) string {
	return strings.TrimRight(code, "0123456789")
}
