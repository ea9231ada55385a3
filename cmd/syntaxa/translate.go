package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"syntaxa/internal/report"
	"syntaxa/internal/syntaxon"
	"syntaxa/internal/vegtype"
)

// target parses the --to flag. Without it, sbbcat and rvvn translate into
// each other.
func target(from syntaxon.Reference, to string) (syntaxon.Reference, error) {
	if to != "" {
		return syntaxon.ParseReference(to)
	}

	switch from {
	case syntaxon.RefCatalogus:
		return syntaxon.RefRevision, nil
	case syntaxon.RefRevision:
		return syntaxon.RefCatalogus, nil
	default:
		return 0, fmt.Errorf("no default target for %v, use --to", from)
	}
}

func newTranslateCmd(a *app) *cobra.Command {
	var (
		toName       string
		lowestOnly   bool
		includeSubAs bool
	)

	from := syntaxon.RefCatalogus

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Reconcile translations from one classification system to another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := target(from, toName)
			if err != nil {
				return err
			}

			cfg := a.cfg.Translate
			if cmd.Flags().Changed("lowest-only") {
				cfg.LowestOnly = lowestOnly
			}

			if cmd.Flags().Changed("include-subassociations") {
				cfg.IncludeSubAssociations = includeSubAs
			}

			d, err := a.load()
			if err != nil {
				return err
			}

			rows, err := d.reconciler.Table(from, to, cfg)
			if err != nil {
				return err
			}

			return a.write(cmd, report.Translations(rows))
		},
	}

	cmd.Flags().Var(&from, "from", "Source system (sbbcat, vvn, rvvn)")
	cmd.Flags().StringVar(&toName, "to", "", "Target system (default: rvvn for sbbcat, sbbcat for rvvn)")
	cmd.Flags().BoolVar(&lowestOnly, "lowest-only", false, "Keep lowest-level targets only")
	cmd.Flags().BoolVar(&includeSubAs, "include-subassociations", true, "Keep sub-association targets")

	return cmd
}

func newCrossClassCmd(a *app) *cobra.Command {
	system := syntaxon.RefCatalogus

	cmd := &cobra.Command{
		Use:   "crossclass",
		Short: "List class-crossing syntaxa and their joined codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load()
			if err != nil {
				return err
			}

			codes, err := d.reconciler.CrossClassCodes(system)
			if err != nil {
				return err
			}

			t := report.New("Code", "CrossClassCodes")
			for _, code := range slices.Sorted(maps.Keys(codes)) {
				if err := t.AddRow(code, codes[code]); err != nil {
					return err
				}
			}

			return a.write(cmd, t)
		},
	}

	cmd.Flags().VarP(&system, "system", "s", "Classification system (sbbcat, vvn, rvvn)")

	return cmd
}

func newRulesCmd(a *app) *cobra.Command {
	var toName, multiple string

	from := syntaxon.RefCatalogus

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List translation rules with the status of both codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load()
			if err != nil {
				return err
			}

			if multiple != "" {
				system, err := syntaxon.ParseReference(multiple)
				if err != nil {
					return err
				}

				entries, err := d.rules.MultipleEntries(system)
				if err != nil {
					return err
				}

				t := report.New("Code", "Count")
				for _, e := range entries {
					if err := t.AddRow(e.Code, e.Count); err != nil {
						return err
					}
				}

				return a.write(cmd, t)
			}

			to, err := target(from, toName)
			if err != nil {
				return err
			}

			statuses, err := d.reconciler.Rules(from, to)
			if err != nil {
				return err
			}

			t := report.New("ID", "Source", "Target", "Correction",
				"SourceIsCurrent", "SourceIsLowest", "TargetIsCurrent", "TargetIsLowest")
			for _, s := range statuses {
				err := t.AddRow(s.ID, s.Source, s.Target, vegtype.Flag(s.Correction),
					vegtype.Flag(s.SourceCurrent), vegtype.Flag(s.SourceLowest),
					vegtype.Flag(s.TargetCurrent), vegtype.Flag(s.TargetLowest))
				if err != nil {
					return err
				}
			}

			return a.write(cmd, t)
		},
	}

	cmd.Flags().Var(&from, "from", "Source system (sbbcat, vvn, rvvn)")
	cmd.Flags().StringVar(&toName, "to", "", "Target system (default: rvvn for sbbcat, sbbcat for rvvn)")
	cmd.Flags().StringVar(&multiple, "multiple", "", "Report codes of this system that occur on more than one rule")

	return cmd
}
