package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dbt-guide/internal/content"
	"dbt-guide/internal/i18n"
)

func newValidateCmd(paths *content.Paths) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate content files",
		Long:  `Loads every content source with the same checks the server applies at startup and prints a summary.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := content.Check(*paths)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, lang := range i18n.Supported {
				if n, ok := r.Intents[lang]; ok {
					fmt.Fprintf(out, "intents %s: %d responses\n", lang, n)
				}
			}
			fmt.Fprintf(out, "procedures: %d cases, %d steps\n", r.Cases, r.Steps)
			for _, w := range r.Warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}

			if strict && len(r.Warnings) > 0 {
				return fmt.Errorf("%d warnings", len(r.Warnings))
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
	return cmd
}
