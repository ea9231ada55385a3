// Package report renders result tables as CSV, YAML or aligned text.
package report
