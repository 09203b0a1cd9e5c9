package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwhite7112/cityform/internal/console"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Interactive autocomplete on the terminal",
	Long: "Each line typed is treated as the new content of the city field. " +
		"Type :N to pick suggestion N, :blur to leave the field, :q to quit.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		surface := console.NewSurface(out)
		input := console.NewInput(out)
		engine, closeEngine := newEngine(input, surface)
		defer closeEngine()

		fmt.Fprintln(out, "type a city name or postal code (:q to quit)")
		sc := bufio.NewScanner(cmd.InOrStdin())
		for sc.Scan() {
			line := sc.Text()
			switch {
			case line == ":q":
				return nil
			case line == ":blur":
				engine.OnBlur()
			case strings.HasPrefix(line, ":"):
				n, err := strconv.Atoi(strings.TrimPrefix(line, ":"))
				if err != nil || !surface.Activate(n) {
					fmt.Fprintln(out, "no such suggestion")
				}
			default:
				engine.OnInput(line)
			}
		}
		return sc.Err()
	},
}
