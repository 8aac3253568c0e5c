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

func newRecordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "League record queries: winrates, streaks, comebacks, goals, fairplay, improvement",
	}

	cmd.AddCommand(
		newWinratesCmd(),
		newStreaksCmd(),
		newComebacksCmd(),
		newMostGoalsCmd(),
		newFairplayCmd(),
		newMostImprovedCmd(),
	)

	return cmd
}

// recordFlags wires the common --season/--top/--data flags.
func recordFlags(cmd *cobra.Command, season *string, topX *int, dataDir *string) {
	cmd.Flags().StringVar(season, "season", "", "Season, e.g. 2010-11")
	cmd.Flags().IntVar(topX, "top", 4, "Number of entries to show")
	cmd.Flags().StringVar(dataDir, "data", "", "Directory of season CSV files")
}

func newWinratesCmd() *cobra.Command {
	var (
		season  string
		topX    int
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "winrates",
		Short: "Teams with the highest win rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := recordSetup(season, topX, dataDir)
			if err != nil {
				return err
			}
			rates := stats.HighestWinRates(l, season, topX)

			var rows [][]string
			for _, r := range rates {
				rows = append(rows, []string{r.Team, fmt.Sprintf("%.2f", r.Rate)})
			}
			surface.Table(os.Stdout, recordTitle("Highest win rates", season),
				[]string{"Team", "Winrate (%)"}, rows)
			return nil
		},
	}
	recordFlags(cmd, &season, &topX, &dataDir)
	return cmd
}

func newStreaksCmd() *cobra.Command {
	var (
		season  string
		topX    int
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "streaks",
		Short: "Longest win streaks in a season",
		RunE: func(cmd *cobra.Command, args []string) error {
			if season == "" {
				return fmt.Errorf("--season is required")
			}
			l, err := recordSetup(season, topX, dataDir)
			if err != nil {
				return err
			}
			streaks := stats.LongestWinStreaks(l, season, topX)

			var rows [][]string
			for _, s := range streaks {
				rows = append(rows, []string{s.Team, strconv.Itoa(s.Length)})
			}
			surface.Table(os.Stdout, recordTitle("Longest win streaks", season),
				[]string{"Team", "Streak Length"}, rows)
			return nil
		},
	}
	recordFlags(cmd, &season, &topX, &dataDir)
	return cmd
}

func newComebacksCmd() *cobra.Command {
	var (
		season  string
		topX    int
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "comebacks",
		Short: "Biggest half-time deficits overturned",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := recordSetup(season, topX, dataDir)
			if err != nil {
				return err
			}
			comebacks := stats.BestComebacks(l, season, topX)

			var rows [][]string
			for _, c := range comebacks {
				rows = append(rows, []string{
					c.Team, c.HalfTimeScore, c.FullTimeScore, strconv.Itoa(c.Size),
				})
			}
			surface.Table(os.Stdout, recordTitle("Best comebacks", season),
				[]string{"Team", "Half-Time", "Full-Time", "Deficit Overturned"}, rows)
			return nil
		},
	}
	recordFlags(cmd, &season, &topX, &dataDir)
	return cmd
}

func newMostGoalsCmd() *cobra.Command {
	var (
		season  string
		topX    int
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "mostgoals",
		Short: "Most goals scored by one team in a single match",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := recordSetup(season, topX, dataDir)
			if err != nil {
				return err
			}
			records := stats.MostGoalsInMatch(l, season, topX)

			var rows [][]string
			for _, r := range records {
				rows = append(rows, []string{r.Team, r.Season, strconv.Itoa(r.Goals)})
			}
			surface.Table(os.Stdout, recordTitle("Most goals in a match", season),
				[]string{"Team", "Season", "Goals"}, rows)
			return nil
		},
	}
	recordFlags(cmd, &season, &topX, &dataDir)
	return cmd
}

func newFairplayCmd() *cobra.Command {
	var (
		season  string
		topX    int
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "fairplay",
		Short: "Teams with the fewest offenses per match",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := recordSetup(season, topX, dataDir)
			if err != nil {
				return err
			}
			scores := stats.MostFairplay(l, season, topX)

			var rows [][]string
			for _, s := range scores {
				rows = append(rows, []string{s.Team, fmt.Sprintf("%.2f", s.OffensesPerMatch)})
			}
			surface.Table(os.Stdout, recordTitle("Most fairplay teams", season),
				[]string{"Team", "Offenses / Match"}, rows)
			return nil
		},
	}
	recordFlags(cmd, &season, &topX, &dataDir)
	return cmd
}

func newMostImprovedCmd() *cobra.Command {
	var (
		season  string
		topX    int
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "mostimproved",
		Short: "Teams that recovered furthest from their worst running winrate",
		RunE: func(cmd *cobra.Command, args []string) error {
			if season == "" {
				return fmt.Errorf("--season is required")
			}
			l, err := recordSetup(season, topX, dataDir)
			if err != nil {
				return err
			}
			improvements := stats.MostImproved(l, season, topX)

			var rows [][]string
			for _, im := range improvements {
				rows = append(rows, []string{
					im.Team,
					fmt.Sprintf("%.2f", im.LowestWinrate),
					fmt.Sprintf("%.2f", im.FinalWinrate),
					fmt.Sprintf("%.2f", im.Gain),
				})
			}
			surface.Table(os.Stdout, recordTitle("Most improved teams", season),
				[]string{"Team", "Lowest Winrate (%)", "Final Winrate (%)", "Improvement (%)"}, rows)
			return nil
		},
	}
	recordFlags(cmd, &season, &topX, &dataDir)
	return cmd
}

func recordSetup(season string, topX int, dataDir string) (*league.League, error) {
	if season != "" {
		if err := validateSeason(season); err != nil {
			return nil, err
		}
	}
	if err := validateTopX(topX); err != nil {
		return nil, err
	}
	return loadLeague(dataDir)
}

func recordTitle(base, season string) string {
	if season == "" {
		return base + ", all seasons"
	}
	return base + ", " + season + " season"
}
