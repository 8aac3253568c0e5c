// Package predict implements the Kickoff match prediction engine. It turns
// the chains enumerated by leaguequery into a single weighted goal-differential
// estimate for a hypothetical match between two teams.
package predict

import (
	"errors"
	"fmt"

	"github.com/kickoff/kickoff/pkg/league"
	"github.com/kickoff/kickoff/pkg/leaguequery"
)

// ErrNoPath is returned when no chain connects the two teams within the
// depth bound. A prediction over zero chains is undefined, never 0.0.
var ErrNoPath = errors.New("no chain connects the teams")

// Options tunes a prediction.
type Options struct {
	// Depth is the chain search depth bound. Zero means leaguequery.DefaultDepth.
	Depth int
	// MaxVisits is the chain search node budget. Zero means unlimited.
	MaxVisits int
}

// ChainSignal is the per-chain evidence backing a prediction.
type ChainSignal struct {
	Length   int      `json:"length"`
	Signal   float64  `json:"signal"` // summed home-minus-away goal differential
	Weight   float64  `json:"weight"` // 1 / Length
	Matchups []string `json:"matchups"`
}

// Result is the complete output of a prediction. Positive GoalDifference
// favors the home (source) team, negative favors the away (destination) team.
type Result struct {
	HomeTeam       string        `json:"home_team"`
	AwayTeam       string        `json:"away_team"`
	Season         string        `json:"season"`
	GoalDifference float64       `json:"goal_difference"`
	ChainCount     int           `json:"chain_count"`
	Breakdown      []ChainSignal `json:"breakdown"`
}

// Predict estimates the goal difference of a match between home and away
// based on chains of results from the given season. The estimate is the
// weighted mean of per-chain goal differentials, with shorter chains
// weighted more (weight 1/length).
func Predict(l *league.League, home, away, season string, opts Options) (*Result, error) {
	chains, err := leaguequery.FindChains(l, home, away, season, leaguequery.Options{
		Depth:     opts.Depth,
		MaxVisits: opts.MaxVisits,
	})
	if err != nil {
		return nil, err
	}
	if len(chains) == 0 {
		return nil, fmt.Errorf("%w: %s vs %s in %s", ErrNoPath, home, away, season)
	}

	result := &Result{
		HomeTeam: home,
		AwayTeam: away,
		Season:   season,
	}

	var weightedSum, weightTotal float64
	for _, chain := range chains {
		cs := ChainSignal{
			Length: len(chain),
			Weight: 1 / float64(len(chain)),
		}
		for _, m := range chain {
			// Each match contributes its own home-minus-away differential,
			// regardless of which side is traveling.
			cs.Signal += float64(m.GoalDifference())
			cs.Matchups = append(cs.Matchups, m.HomeTeam+" v "+m.AwayTeam)
		}
		weightedSum += cs.Weight * cs.Signal
		weightTotal += cs.Weight
		result.Breakdown = append(result.Breakdown, cs)
	}

	result.ChainCount = len(chains)
	result.GoalDifference = weightedSum / weightTotal
	return result, nil
}
