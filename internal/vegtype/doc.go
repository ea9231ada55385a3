// Package vegtype holds the vegetation-type reference table of one
// classification system and the fields derived from it.
//
// A Table is an immutable snapshot built once from raw records. Building it
// enforces that (code, current-status) is unique, classifies every code with
// the syntaxon engine, derives the lowest-level flag from the code hierarchy
// and detects class-crossing syntaxa: current types that share an identical
// scientific name. Names are compared verbatim, so a difference in
// punctuation or whitespace hides a class-crossing pair.
package vegtype
