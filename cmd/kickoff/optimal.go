package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kickoff/kickoff/pkg/league"
	"github.com/kickoff/kickoff/pkg/stats"
	"github.com/kickoff/kickoff/pkg/surface"
)

func newOptimalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimal",
		Short: "Winning-side statistic ranges: fouls, yellow cards, referees",
	}

	cmd.AddCommand(
		newOptimalFoulsCmd(),
		newOptimalYellowCardsCmd(),
		newOptimalRefereesCmd(),
	)

	return cmd
}

func newOptimalFoulsCmd() *cobra.Command {
	var (
		team    string
		topX    int
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "fouls",
		Short: "Foul-count ranges that account for the most wins",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := optimalSetup(team, topX, dataDir)
			if err != nil {
				return err
			}
			ranges, err := stats.OptimalFoulRanges(l, team, topX)
			if err != nil {
				return err
			}
			renderRanges("Optimal foul ranges", team, ranges)
			return nil
		},
	}
	optimalFlags(cmd, &team, &topX, &dataDir)
	return cmd
}

func newOptimalYellowCardsCmd() *cobra.Command {
	var (
		team    string
		topX    int
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "yellowcards",
		Short: "Yellow-card ranges that account for the most wins",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := optimalSetup(team, topX, dataDir)
			if err != nil {
				return err
			}
			ranges, err := stats.OptimalYellowCardRanges(l, team, topX)
			if err != nil {
				return err
			}
			renderRanges("Optimal yellow card ranges", team, ranges)
			return nil
		},
	}
	optimalFlags(cmd, &team, &topX, &dataDir)
	return cmd
}

func newOptimalRefereesCmd() *cobra.Command {
	var (
		team    string
		topX    int
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "referees",
		Short: "Referees under whom a team wins most often",
		RunE: func(cmd *cobra.Command, args []string) error {
			if team == "" {
				return fmt.Errorf("--team is required")
			}
			l, err := optimalSetup(team, topX, dataDir)
			if err != nil {
				return err
			}
			records, err := stats.OptimalReferees(l, team, topX)
			if err != nil {
				return err
			}

			var rows [][]string
			for _, r := range records {
				rows = append(rows, []string{
					r.Referee, strconv.Itoa(r.Wins), strconv.Itoa(r.Games),
					fmt.Sprintf("%.2f", r.WinPercent),
				})
			}
			surface.Table(os.Stdout, fmt.Sprintf("Optimal referees for %s", team),
				[]string{"Referee", "Wins", "Games", "Win Percentage (%)"}, rows)
			return nil
		},
	}
	optimalFlags(cmd, &team, &topX, &dataDir)
	return cmd
}

func newFairestRefereesCmd() *cobra.Command {
	var (
		topX    int
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "fairestreferees",
		Short: "Referees with the smallest home/away winrate discrepancy",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateTopX(topX); err != nil {
				return err
			}
			l, err := loadLeague(dataDir)
			if err != nil {
				return err
			}
			fairness := stats.FairestReferees(l, topX)

			var rows [][]string
			for _, f := range fairness {
				rows = append(rows, []string{
					f.Referee, strconv.Itoa(f.Games), fmt.Sprintf("%.2f", f.Discrepancy),
				})
			}
			surface.Table(os.Stdout, "Fairest referees",
				[]string{"Referee", "Games", "Winrate Discrepancy (%)"}, rows)
			return nil
		},
	}
	cmd.Flags().IntVar(&topX, "top", 4, "Number of entries to show")
	cmd.Flags().StringVar(&dataDir, "data", "", "Directory of season CSV files")
	return cmd
}

func optimalFlags(cmd *cobra.Command, team *string, topX *int, dataDir *string) {
	cmd.Flags().StringVar(team, "team", "", "Restrict to one team's wins")
	cmd.Flags().IntVar(topX, "top", 4, "Number of entries to show")
	cmd.Flags().StringVar(dataDir, "data", "", "Directory of season CSV files")
}

func optimalSetup(team string, topX int, dataDir string) (*league.League, error) {
	if err := validateTopX(topX); err != nil {
		return nil, err
	}
	l, err := loadLeague(dataDir)
	if err != nil {
		return nil, err
	}
	if team != "" {
		if err := validateTeam(l, team, ""); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func renderRanges(title, team string, ranges []stats.RangeWins) {
	if team != "" {
		title = title + " for " + team
	}
	var rows [][]string
	for _, r := range ranges {
		rows = append(rows, []string{
			r.Range, strconv.Itoa(r.Wins), fmt.Sprintf("%.2f", r.WinPercent),
		})
	}
	surface.Table(os.Stdout, title, []string{"Range", "Wins", "Win Percentage (%)"}, rows)
}
