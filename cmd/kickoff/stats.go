package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kickoff/kickoff/pkg/stats"
	"github.com/kickoff/kickoff/pkg/surface"
)

func newWinrateCmd() *cobra.Command {
	var (
		team    string
		season  string
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "winrate",
		Short: "Show a team's win rate, overall or for one season",
		RunE: func(cmd *cobra.Command, args []string) error {
			if season != "" {
				if err := validateSeason(season); err != nil {
					return err
				}
			}

			l, err := loadLeague(dataDir)
			if err != nil {
				return err
			}
			if err := validateTeam(l, team, season); err != nil {
				return err
			}

			rate, err := stats.Winrate(l, team, season)
			if err != nil {
				return err
			}

			if season == "" {
				fmt.Printf("%s's winrate across all seasons is %.2f%%.\n", team, rate)
			} else {
				fmt.Printf("%s's winrate in the %s season is %.2f%%.\n", team, season, rate)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Team name (required)")
	cmd.Flags().StringVar(&season, "season", "", "Season, e.g. 2010-11")
	cmd.Flags().StringVar(&dataDir, "data", "", "Directory of season CSV files")
	_ = cmd.MarkFlagRequired("team")

	return cmd
}

func newAveragesCmd() *cobra.Command {
	var (
		team    string
		season  string
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "averages",
		Short: "Compare a team's per-game averages to the league's for one season",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateSeason(season); err != nil {
				return err
			}

			l, err := loadLeague(dataDir)
			if err != nil {
				return err
			}
			if err := validateTeam(l, team, season); err != nil {
				return err
			}

			teamAvg, err := stats.TeamAverages(l, team, season)
			if err != nil {
				return err
			}
			leagueAvg := stats.SeasonAverages(l, season)

			rows := [][]string{
				averageRow("Goals Scored / Game", teamAvg.GoalsScored, leagueAvg.GoalsScored),
				averageRow("Shot Accuracy (%)", teamAvg.ShotAccuracy, leagueAvg.ShotAccuracy),
				averageRow("Fouls Committed / Game", teamAvg.Fouls, leagueAvg.Fouls),
				averageRow("Card Offenses / Game", teamAvg.CardOffenses, leagueAvg.CardOffenses),
			}
			surface.Table(os.Stdout,
				fmt.Sprintf("%s vs league averages, %s season", team, season),
				[]string{"Statistic", team, "League", "Difference"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Team name (required)")
	cmd.Flags().StringVar(&season, "season", "", "Season, e.g. 2010-11 (required)")
	cmd.Flags().StringVar(&dataDir, "data", "", "Directory of season CSV files")
	_ = cmd.MarkFlagRequired("team")
	_ = cmd.MarkFlagRequired("season")

	return cmd
}

func averageRow(name string, team, lg float64) []string {
	diff := team - lg
	diffStr := fmt.Sprintf("%.2f", diff)
	if diff > 0 {
		diffStr = "+" + diffStr
	}
	return []string{name, fmt.Sprintf("%.2f", team), fmt.Sprintf("%.2f", lg), diffStr}
}

func newHomeVsAwayCmd() *cobra.Command {
	var (
		team    string
		season  string
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "homevsaway",
		Short: "Show home vs away win rates for a team or the whole league",
		RunE: func(cmd *cobra.Command, args []string) error {
			if season != "" {
				if err := validateSeason(season); err != nil {
					return err
				}
			}

			l, err := loadLeague(dataDir)
			if err != nil {
				return err
			}
			if team != "" {
				if err := validateTeam(l, team, season); err != nil {
					return err
				}
			}

			rates, err := stats.HomeVsAway(l, team, season)
			if err != nil {
				return err
			}

			subject := "the league"
			if team != "" {
				subject = team
			}
			surface.Table(os.Stdout,
				fmt.Sprintf("Home vs away win rates for %s", subject),
				[]string{"Home Win Rate (%)", "Away Win Rate (%)", "Draw Rate (%)"},
				[][]string{{
					fmt.Sprintf("%.2f", rates.HomeWinRate),
					fmt.Sprintf("%.2f", rates.AwayWinRate),
					fmt.Sprintf("%.2f", rates.DrawRate),
				}})
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Team name")
	cmd.Flags().StringVar(&season, "season", "", "Season, e.g. 2010-11")
	cmd.Flags().StringVar(&dataDir, "data", "", "Directory of season CSV files")

	return cmd
}

func newTeamsCmd() *cobra.Command {
	var (
		season  string
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List teams in the league, optionally for one season",
		RunE: func(cmd *cobra.Command, args []string) error {
			if season != "" {
				if err := validateSeason(season); err != nil {
					return err
				}
			}

			l, err := loadLeague(dataDir)
			if err != nil {
				return err
			}
			for _, name := range l.TeamNames(season) {
				fmt.Println(name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&season, "season", "", "Season, e.g. 2010-11")
	cmd.Flags().StringVar(&dataDir, "data", "", "Directory of season CSV files")

	return cmd
}
