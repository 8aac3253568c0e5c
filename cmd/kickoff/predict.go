package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kickoff/kickoff/pkg/predict"
	"github.com/kickoff/kickoff/pkg/surface"
)

func newPredictCmd() *cobra.Command {
	var (
		home      string
		away      string
		season    string
		depth     int
		dataDir   string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the goal difference of a match between two teams",
		Long: `Predicts the outcome of a hypothetical match by enumerating chains of
historical results connecting the two teams in the given season and
averaging their goal differentials, weighted toward shorter chains.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if home == away {
				return fmt.Errorf("home and away teams cannot be the same")
			}
			if err := validateSeason(season); err != nil {
				return err
			}

			l, err := loadLeague(dataDir)
			if err != nil {
				return err
			}
			if err := validateTeam(l, home, season); err != nil {
				return err
			}
			if err := validateTeam(l, away, season); err != nil {
				return err
			}

			cfg := loadConfig()
			if depth == 0 {
				depth = cfg.Prediction.Depth
			}

			result, err := predict.Predict(l, home, away, season, predict.Options{
				Depth:     depth,
				MaxVisits: cfg.Prediction.MaxVisits,
			})
			if err != nil {
				return err
			}

			var renderer surface.Renderer
			if outputFmt == "json" {
				renderer = &surface.JSONRenderer{}
			} else {
				renderer = &surface.TerminalRenderer{}
			}
			return renderer.RenderPrediction(os.Stdout, result)
		},
	}

	cmd.Flags().StringVar(&home, "home", "", "Home team name (required)")
	cmd.Flags().StringVar(&away, "away", "", "Away team name (required)")
	cmd.Flags().StringVar(&season, "season", "", "Season to draw results from, e.g. 2010-11 (required)")
	cmd.Flags().IntVar(&depth, "depth", 0, "Maximum matches per chain (default from config)")
	cmd.Flags().StringVar(&dataDir, "data", "", "Directory of season CSV files")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("home")
	_ = cmd.MarkFlagRequired("away")
	_ = cmd.MarkFlagRequired("season")

	return cmd
}
