package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"syntaxa/internal/rules"
)

func newCorrectionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "corrections",
		Short: "Print the effective correction list as a YAML correction file",
		Long: `corrections prints the built-in Catalogus/Revision corrections followed by
those of the configured correction file. The output can be edited and used
as the corrections file of a later run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			corrections, err := a.corrections()
			if err != nil {
				return err
			}

			data, err := rules.MarshalCorrections(&rules.CorrectionFile{
				Version:     "1",
				Corrections: corrections,
			})
			if err != nil {
				return err
			}

			if a.output != "" {
				if err := os.WriteFile(a.output, data, 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}

				return nil
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
