package match

import "sort"

// DefaultMinScore is the minimum folded similarity for a suggestion.
const DefaultMinScore = 0.6

// Candidate is a known code scored against an unknown one.
type Candidate struct {
	Code  string
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every known code against code and returns them sorted by
// score (descending), then by code for determinism.
func Rank(code string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))
	for _, k := range known {
		candidates = append(candidates, Candidate{Code: k, Score: FoldedScore(code, k)})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to n known codes whose similarity to code is at least
// minScore, best first. An exact match is never suggested.
func Suggest(code string, known []string, n int, minScore float64) []string {
	var out []string
	for _, c := range Rank(code, known).AboveThreshold(minScore) {
		if c.Code == code {
			continue
		}

		if len(out) == n {
			break
		}

		out = append(out, c.Code)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface (descending by score, then by code).
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Code < c[j].Code
}

// AboveThreshold returns candidates with a score of at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var out CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			out = append(out, cand)
		}
	}

	return out
}
