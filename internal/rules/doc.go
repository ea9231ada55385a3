// Package rules provides the translation-rule table between classification
// systems, the fixed correction list and YAML correction files.
//
// Each rule row holds one code column per classification system plus
// free-text provenance columns. A row is a possible translation, not a
// one-to-one correspondence: the same code may appear on many rows.
//
// # Correction file
//
// Pairs that are known to be missing from the expert table are appended by
// Translations whenever Catalogus and Revision are translated into each
// other. Besides the built-in list, extra pairs can be supplied:
//
//	version: "1"
//	corrections:
//	  - sbbcat: 14D4
//	    rvvn: r14Bb02a
//	  - sbbcat: 42-b
//	    rvvn: r45Aa05
//	    comment: checked 2021
//
// Codes in rule rows and corrections are canonicalized with the syntaxon
// engine. A code cell that matches no pattern is treated as empty and its
// text is kept as a note on the row.
package rules
