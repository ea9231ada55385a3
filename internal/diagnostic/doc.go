// Package diagnostic provides structured errors, warnings and notes
// collected while loading reference tables and reconciling translations.
//
// Key capabilities:
//   - Unknown or unrecognized code warnings, tagged with the classification system
//   - Near-code suggestions for codes that do not exist in a table
//   - Data-quality notes that do not abort a computation
package diagnostic
