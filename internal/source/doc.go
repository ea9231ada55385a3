// Package source reads the reference tables that feed the reconciler:
// vegetation types exported from the national vegetation database and
// expert translation rule tables. Both are CSV files with a header row.
// Legacy exports are latin-1 encoded.
package source
