// Package config loads the syntaxa.yaml configuration file.
//
// Example:
//
//	vegetation_types: data/CMSiVegetationTypes.csv
//	rules: ["data/rules/*.csv"]
//	corrections: data/corrections.yaml
//	encoding: latin-1
//	include_mapcodes: false
//	translate:
//	  lowest_only: false
//	  include_subassociations: true
//	log:
//	  level: info
//	  format: console
//
// Relative paths are resolved against the directory of the file.
package config
