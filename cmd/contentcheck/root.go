package main

import (
	"github.com/spf13/cobra"

	"dbt-guide/internal/content"
)

func newRootCmd() *cobra.Command {
	var paths content.Paths

	root := &cobra.Command{
		Use:           "contentcheck",
		Short:         "Check DBT guide content",
		Long:          `Validates chatbot tables, procedure cases and UI translations. Flags left empty use the built-in content.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&paths.Chatbot, "intents", "", "chatbot intents YAML file")
	root.PersistentFlags().StringVar(&paths.Procedure, "procedures", "", "procedure cases YAML file")
	root.PersistentFlags().StringVar(&paths.Translations, "translations", "", "directory of <lang>.yaml translations")

	root.AddCommand(newValidateCmd(&paths), newAskCmd(&paths))
	return root
}
