package main

import (
	"github.com/spf13/cobra"

	"syntaxa/internal/report"
	"syntaxa/internal/syntaxon"
	"syntaxa/internal/vegtype"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate CODE...",
		Short: "Print the canonical form of syntaxon codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := report.New("Code", "Validated", "Corrected")
			for _, code := range args {
				canonical, ok := a.engine.Validate(code)
				if err := t.AddRow(code, canonical, vegtype.Flag(ok && canonical != code)); err != nil {
					return err
				}
			}

			return a.write(cmd, t)
		},
	}
}

func newLevelCmd(a *app) *cobra.Command {
	ref := syntaxon.RefCatalogus

	cmd := &cobra.Command{
		Use:   "level CODE...",
		Short: "Print the syntaxonomic level of codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := report.New("Code", "Reference", "Level")
			for _, code := range args {
				level, _ := a.engine.Level(code, ref)
				if err := t.AddRow(code, ref, level.Label()); err != nil {
					return err
				}
			}

			return a.write(cmd, t)
		},
	}

	cmd.Flags().VarP(&ref, "reference", "r", "Reference system (sbbcat, vvn, rvvn)")

	return cmd
}

func newClassCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "class CODE...",
		Short: "Print the class number of codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := report.New("Code", "Class")
			for _, code := range args {
				class, _ := a.engine.Class(code)
				if err := t.AddRow(code, class); err != nil {
					return err
				}
			}

			return a.write(cmd, t)
		},
	}
}

func newCodeTestCmd(a *app) *cobra.Command {
	ref := syntaxon.RefCatalogus

	cmd := &cobra.Command{
		Use:   "codetest [CODE...]",
		Short: "Validate and classify codes, or the built-in test codes of a reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := report.New("Code", "Validated", "Corrected", "Level", "Class")
			for _, res := range a.engine.CodeTest(args, ref) {
				err := t.AddRow(res.Code, res.Validated, vegtype.Flag(res.Corrected), res.Level.Label(), res.Class)
				if err != nil {
					return err
				}
			}

			return a.write(cmd, t)
		},
	}

	cmd.Flags().VarP(&ref, "reference", "r", "Reference system (sbbcat, vvn, rvvn)")

	return cmd
}
