package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dbt-guide/internal/chatbot"
	"dbt-guide/internal/content"
	"dbt-guide/internal/i18n"
)

func newAskCmd(paths *content.Paths) *cobra.Command {
	var lang string
	var explain bool

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Answer a question with the chatbot",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := i18n.Parse(lang)
			if err != nil {
				return fmt.Errorf("--lang %q: %w", lang, err)
			}

			b, err := content.Load(*paths)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			res := b.Bot.Respond(l, text)

			out := cmd.OutOrStdout()
			if explain {
				fmt.Fprintf(out, "normalized: %q\n", chatbot.Normalize(text))
				fmt.Fprintf(out, "match: %s key=%q score=%.2f\n", res.Kind, res.Key, res.Score)
			}
			fmt.Fprintln(out, res.Response)
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", string(i18n.English), "answer language")
	cmd.Flags().BoolVar(&explain, "explain", false, "print how the answer was matched")
	return cmd
}
