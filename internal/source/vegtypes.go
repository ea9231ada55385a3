package source

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"syntaxa/internal/vegtype"
)

// Columns of a vegetation type export.
const (
	colTypology  = "VegClas"
	colCode      = "Code"
	colIsCurrent = "IsCurrent"
	colCreated   = "Created"
	colModified  = "Modified"
)

// Timestamp layouts found in exports, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02-01-2006",
}

// ReadVegetationTypes reads a vegetation type export. Rows of every
// typology are returned; Created and Modified timestamps are reduced to
// their year.
func ReadVegetationTypes(r io.Reader, enc Encoding) ([]vegtype.Record, error) {
	rows, err := readRecords(r, enc)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	if err := requireColumns(rows[0], colTypology, colCode, colIsCurrent); err != nil {
		return nil, err
	}

	records := make([]vegtype.Record, 0, len(rows))
	for i, row := range rows {
		rec, err := parseVegetationType(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		records = append(records, rec)
	}

	return records, nil
}

// LoadVegetationTypes reads a vegetation type export from path.
func LoadVegetationTypes(path string, enc Encoding) ([]vegtype.Record, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := ReadVegetationTypes(f, enc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

func parseVegetationType(row map[string]string) (vegtype.Record, error) {
	system, err := vegtype.ParseTypology(row[colTypology])
	if err != nil {
		return vegtype.Record{}, err
	}

	current, err := vegtype.ParseFlag(row[colIsCurrent])
	if err != nil {
		return vegtype.Record{}, fmt.Errorf("%s: %w", colIsCurrent, err)
	}

	created, err := parseYear(row[colCreated])
	if err != nil {
		return vegtype.Record{}, fmt.Errorf("%s: %w", colCreated, err)
	}

	modified, err := parseYear(row[colModified])
	if err != nil {
		return vegtype.Record{}, fmt.Errorf("%s: %w", colModified, err)
	}

	return vegtype.Record{
		System:              system,
		Code:                row[colCode],
		IsCurrent:           current,
		ShortScientificName: row["ShortScientificName"],
		LongScientificName:  row["LongScientificName"],
		ShortCommonName:     row["ShortCommonName"],
		LongCommonName:      row["LongCommonName"],
		Created:             created,
		Modified:            modified,
	}, nil
}

// parseYear returns the year of a timestamp or a bare year. Empty input
// yields zero.
func parseYear(s string) (int, error) {
	if s == "" {
		return 0, nil
	}

	if len(s) == 4 {
		if year, err := strconv.Atoi(s); err == nil {
			return year, nil
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year(), nil
		}
	}

	return 0, fmt.Errorf("invalid date %q", s)
}
