package syntaxon

// CatalogusTestCodes is the built-in set of Catalogus codes used by CodeTest
// when no codes are given. It contains every Catalogus level in both
// canonical and sloppy notation.
var CatalogusTestCodes = []string{
	"05", "05-a", "05/a", "05%a", "05A", "05A-a",
	"05A/a", "05A%a", "05A1", "05A1a", "5", "5-A", "5/A", "5%A",
	"5a", "5a-A", "5a/A", "5a%A", "5a1", "5a1A", "50A", "200",
}

// RevisionTestCodes is the built-in set of Revision and VVN codes used by
// CodeTest when no codes are given. It deliberately ends with a code that
// does not match anything.
var RevisionTestCodes = []string{
	"r05", "r05A", "r05Aa", "r05Aa1", "r05Aa1a",
	"r50A", "r200",
	"05", "05A", "05Aa", "05Aa1", "05Aa1a", "r5", "r5a",
	"50A", "200",
	"r5aA1", "r5aA1A", "rubbish",
}

// CodeTestResult reports how a single code is recognized.
type CodeTestResult struct {
	Code      string
	Validated string
	// Corrected is true when the canonical form differs from the input.
	Corrected bool
	Level     Level
	Class     string
}

// CodeTest validates and classifies each code against ref. When codes is
// empty the built-in test set for ref is used.
func (e *Engine) CodeTest(codes []string, ref Reference) []CodeTestResult {
	if len(codes) == 0 {
		switch ref {
		case RefCatalogus:
			codes = CatalogusTestCodes
		case RefVVN, RefRevision:
			codes = RevisionTestCodes
		default:
			return nil
		}
	}

	results := make([]CodeTestResult, 0, len(codes))
	for _, code := range codes {
		res := CodeTestResult{Code: code}

		var ok bool
		res.Validated, ok = e.Validate(code)
		res.Corrected = res.Validated != code
		if ok {
			res.Level, _ = e.Level(res.Validated, ref)
		}

		res.Class, _ = e.Class(code)
		results = append(results, res)
	}

	return results
}
