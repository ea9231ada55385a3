package rules

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// builtinCorrections are Catalogus/Revision pairs missing from the 2019
// expert translation table.
var builtinCorrections = []Correction{
	{Catalogus: "01A1", Revision: "r01Aa01a"},
	{Catalogus: "01A1", Revision: "r01Aa01b"},
	{Catalogus: "01A2", Revision: "r01Aa02a"},
	{Catalogus: "01A2", Revision: "r01Aa02b"},
	{Catalogus: "01B1", Revision: "r01Ab01b"},
	{Catalogus: "05D3a", Revision: "r05Bc03"},
	{Catalogus: "05D3b", Revision: "r05Bc03"},
	{Catalogus: "05D3c", Revision: "r05Bc03"},
	{Catalogus: "08B-b", Revision: "r10RG07"},
	{Catalogus: "11-j", Revision: "r09RG10"},
	{Catalogus: "14/d", Revision: "r32Ca03"},
	{Catalogus: "14D4", Revision: "r14Bb02a"},
	{Catalogus: "14D4", Revision: "r14Bb02"},
	{Catalogus: "19-h", Revision: "r16RG08"},
	{Catalogus: "31D3", Revision: "r32Ca03"},
	{Catalogus: "39A-f", Revision: "r43Aa02"},
	{Catalogus: "40A2", Revision: "r43Aa02"},
	{Catalogus: "42A-a", Revision: "r45Aa05"},
	{Catalogus: "42A-b", Revision: "r45Aa05"},
	{Catalogus: "42-b", Revision: "r45Aa05"},
}

// DefaultCorrections returns a copy of the built-in correction list.
func DefaultCorrections() []Correction {
	return slices.Clone(builtinCorrections)
}

// LoadCorrections loads and parses a YAML correction file from the given path.
func LoadCorrections(path string) (*CorrectionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read correction file %s: %w", path, err)
	}

	return ParseCorrections(data)
}

// ParseCorrections parses YAML data into a CorrectionFile.
func ParseCorrections(data []byte) (*CorrectionFile, error) {
	var cf CorrectionFile

	err := yaml.Unmarshal(data, &cf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse correction YAML: %w", err)
	}

	if cf.Version == "" {
		cf.Version = "1"
	}

	for i, c := range cf.Corrections {
		if c.Catalogus == "" || c.Revision == "" {
			return nil, fmt.Errorf("correction %d: both sbbcat and rvvn codes are required", i+1)
		}
	}

	return &cf, nil
}

// MarshalCorrections serializes a CorrectionFile to YAML.
func MarshalCorrections(cf *CorrectionFile) ([]byte, error) {
	return yaml.Marshal(cf)
}
