package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwhite7112/cityform/internal/suggest"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <text>",
	Short: "Run one lookup and print the suggestions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, closeEngine := newEngine(nil, nil)
		defer closeEngine()

		q := strings.Join(args, " ")
		items := engine.Suggest(cmd.Context(), q)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s query %q\n", suggest.Classify(strings.TrimSpace(q)), q)
		if len(items) == 0 {
			fmt.Fprintln(out, "no suggestions")
			return nil
		}
		for _, s := range items {
			fmt.Fprintf(out, "%s\t%s\n", s.Value, s.Display)
		}
		return nil
	},
}
