// Package syntaxon recognizes, canonicalizes and classifies syntaxon codes.
//
// Two pattern families are known:
//   - Catalogus: the Staatsbosbeheer Catalogus codes ("05", "05A", "05A1a",
//     "05A-a", "05/a", mapping codes "50A", "100".."400").
//   - Revision: the revised Vegetation of the Netherlands codes, with an
//     optional leading "r" ("r05", "r05A", "r05Aa", "r05Aa01a", "r05RG01").
//     The legacy VVN-1998 codes share this family without the "r".
//
// Each family is an ordered pattern table. The first matching pattern decides
// the level, and the level's entry in the table carries the canonicalization
// and parent functions, so adding a level is a single table entry.
//
// Key types:
//   - Reference: classification system (sbbcat, vvn, rvvn)
//   - Level: syntaxonomic level of a code
//   - Engine: Validate, Level, Class, Parent and CodeTest operations
package syntaxon
