// Package main provides the syntaxa command line tool.
//
// syntaxa validates and classifies Dutch vegetation type (syntaxon) codes
// and reconciles translations between the Staatsbosbeheer Catalogus and
// the revised national vegetation classification:
//   - validate, level, class and codetest work on codes given as arguments
//   - translate, crossclass, rules, vegtypes and check read the reference
//     tables named in syntaxa.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
