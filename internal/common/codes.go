package common

import "strings"

const (
	// UnknownStr is rendered for enum values without a name.
	UnknownStr = "unknown"

	// JoinSep separates codes in a joined translation string.
	JoinSep = ", "

	// CrossClassSep joins the sibling codes of a class-crossing syntaxon.
	CrossClassSep = "#"
)

// JoinCodes joins codes with JoinSep. An empty list yields nil, which is the
// missing-value marker for translation strings.
func JoinCodes(codes []string) *string {
	if len(codes) == 0 {
		return nil
	}

	s := strings.Join(codes, JoinSep)

	return &s
}

// SplitCodes splits a joined translation string into single codes. Both
// JoinSep and CrossClassSep act as separators, so class-crossing entries
// are expanded into their member codes.
func SplitCodes(s string) []string {
	if s == "" {
		return nil
	}

	var codes []string
	for _, part := range strings.Split(s, JoinSep) {
		for _, code := range strings.Split(part, CrossClassSep) {
			if code = strings.TrimSpace(code); code != "" {
				codes = append(codes, code)
			}
		}
	}

	return codes
}

// Deref returns the string pointed to by s, or an empty string for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
