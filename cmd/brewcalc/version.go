package main

import (
	"fmt"

	"github.com/aretw0/brewcalc"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of brewcalc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "brewcalc version %s\n", brewcalc.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
