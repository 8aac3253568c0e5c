// Package main provides the kickoff CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "kickoff",
		Short: "Statistics and match predictions for multi-season football leagues",
		Long: `Kickoff loads season CSV files into a league graph, answers statistical
queries over it, and predicts match outcomes from chains of historical results.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newPredictCmd(),
		newWinrateCmd(),
		newAveragesCmd(),
		newHomeVsAwayCmd(),
		newRecordsCmd(),
		newOptimalCmd(),
		newFairestRefereesCmd(),
		newTeamsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
