// Package translate reconciles translations between two classification
// systems.
//
// Reconciliation pipeline, run once per direction:
//  1. Take the rule pairs of the requested direction (corrections included)
//  2. Group targets by source code
//  3. Split targets into current and historic by the target table
//  4. Optionally keep lowest-level targets only
//  5. Optionally collapse sub-associations into their association
//  6. Replace class-crossing targets by their '#'-joined sibling code
//  7. Translate every current target back and mark 1:1 pairs as identical
package translate
