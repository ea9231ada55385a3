package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format selects an output renderer.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// Formats lists the supported output formats.
func Formats() []Format {
	return []Format{FormatCSV, FormatYAML, FormatText}
}

// ParseFormat returns the Format with the given name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FormatCSV, FormatYAML, FormatText:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q, must be one of %v", name, Formats())
	}
}

// Write renders t to w in the given format.
func Write(w io.Writer, format Format, t *Table) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, t)
	case FormatYAML:
		return WriteYAML(w, t)
	case FormatText:
		return WriteText(w, t)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteCSV writes a header row followed by every row.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns); err != nil {
		return err
	}

	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	return nil
}

// WriteYAML writes a sequence of mappings, one per row, with keys in
// column order. Empty cells are omitted.
func WriteYAML(w io.Writer, t *Table) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range t.Rows {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for i, col := range t.Columns {
			if row[i] == "" {
				continue
			}

			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: col},
				&yaml.Node{Kind: yaml.ScalarNode, Value: row[i], Style: quoteStyle(row[i])},
			)
		}

		seq.Content = append(seq.Content, m)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{seq}}); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}

	return enc.Close()
}

// quoteStyle keeps codes such as "05" or "400" strings when read back.
func quoteStyle(v string) yaml.Style {
	var probe any
	if err := yaml.Unmarshal([]byte(v), &probe); err != nil {
		return yaml.DoubleQuotedStyle
	}

	if _, ok := probe.(string); ok {
		return 0
	}

	return yaml.DoubleQuotedStyle
}

// WriteText writes an aligned plain text table.
func WriteText(w io.Writer, t *Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(t.Columns, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}
