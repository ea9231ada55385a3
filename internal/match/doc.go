// Package match provides edit-distance scoring and near-code suggestions.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - FoldedScore: case-insensitive similarity between two codes
//   - Suggest: ranks known codes that are close to an unknown one
package match
