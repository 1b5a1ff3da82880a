package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/brewcalc/pkg/core"
	"github.com/spf13/cobra"
)

var enumsCmd = &cobra.Command{
	Use:   "enums [TYPE]",
	Short: "List the canonical tokens of the enum types",
	Long: `Print every enum type with its accepted tokens, default first.
With TYPE (e.g. HopUse), print only that type's tokens, one per line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, e := range core.Enums() {
			if len(args) == 0 {
				fmt.Fprintf(out, "%s: %s\n", e.Name, strings.Join(e.Tokens, ", "))
				continue
			}
			if e.Name == args[0] {
				for _, t := range e.Tokens {
					fmt.Fprintln(out, t)
				}
				return nil
			}
		}
		if len(args) > 0 {
			return fmt.Errorf("unknown enum type %q", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enumsCmd)
}
