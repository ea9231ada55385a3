package main

import (
	"github.com/spf13/cobra"

	"syntaxa/internal/common"
	"syntaxa/internal/report"
	"syntaxa/internal/syntaxon"
	"syntaxa/internal/vegtype"
)

func newVegTypesCmd(a *app) *cobra.Command {
	var (
		changes     bool
		currentOnly bool
	)

	system := syntaxon.RefCatalogus

	cmd := &cobra.Command{
		Use:   "vegtypes",
		Short: "List vegetation types of a classification system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load()
			if err != nil {
				return err
			}

			tbl := d.tables[system]

			if changes {
				t := report.New("Year", "Created", "Modified")
				for _, yc := range tbl.ChangesByYear() {
					if err := t.AddRow(yc.Year, yc.Created, yc.Modified); err != nil {
						return err
					}
				}

				return a.write(cmd, t)
			}

			types := tbl.Types()
			if currentOnly {
				types = tbl.CurrentOnly()
			}

			t := report.New("Code", "IsCurrent", "IsLowest", "IsCrossClass", "CrossClassCodes",
				"SynLevel", "SynClass", "ShortScientificName", "LongScientificName", "Created", "Modified")
			for _, vt := range types {
				err := t.AddRow(vt.Code, vegtype.Flag(vt.IsCurrent), vegtype.Flag(vt.IsLowest),
					vegtype.Flag(vt.IsCrossClass), vt.CrossClassCodes, vt.Level.Label(), vt.Class,
					vt.ShortScientificName, vt.LongScientificName, year(vt.Created), year(vt.Modified))
				if err != nil {
					return err
				}
			}

			return a.write(cmd, t)
		},
	}

	cmd.Flags().VarP(&system, "system", "s", "Classification system (sbbcat, vvn, rvvn)")
	cmd.Flags().BoolVar(&changes, "changes", false, "Count created and modified types per year")
	cmd.Flags().BoolVar(&currentOnly, "current-only", false, "List current types only")

	return cmd
}

// year leaves unknown years empty.
func year(y int) any {
	if y == 0 {
		return nil
	}

	return y
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the reference data and report data-quality findings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load()
			if err != nil {
				return err
			}

			diags := d.diagnostics()

			t := report.New("Severity", "Code", "System", "Syntaxon", "Message", "Suggestions")
			for _, diag := range diags.All() {
				err := t.AddRow(diag.Severity, diag.Code, diag.System, diag.Syntaxon, diag.Message,
					common.Deref(common.JoinCodes(diag.Suggestions)))
				if err != nil {
					return err
				}
			}

			if err := a.write(cmd, t); err != nil {
				return err
			}

			return diags.Error()
		},
	}
}
