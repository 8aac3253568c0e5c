package stats

import (
	"fmt"
	"sort"

	"github.com/kickoff/kickoff/pkg/league"
)

// rangeWidth is the bin width for foul and card range queries.
const rangeWidth = 4

// RangeWins is a bin of a per-match statistic with the wins it accounted for.
type RangeWins struct {
	Range      string  `json:"range"` // e.g. "8 - 11"
	Wins       int     `json:"wins"`
	WinPercent float64 `json:"win_percent"` // share of the examined matches
}

// OptimalFoulRanges bins the winning side's foul count into width-4 ranges
// and ranks the ranges by wins, descending. With a team, only that team's
// wins are counted; otherwise every winner's count contributes.
func OptimalFoulRanges(l *league.League, team string, topX int) ([]RangeWins, error) {
	return optimalRanges(l, team, topX, func(d league.MatchDetails) int {
		return d.Fouls
	})
}

// OptimalYellowCardRanges is OptimalFoulRanges over yellow cards.
func OptimalYellowCardRanges(l *league.League, team string, topX int) ([]RangeWins, error) {
	return optimalRanges(l, team, topX, func(d league.MatchDetails) int {
		return d.YellowCards
	})
}

func optimalRanges(l *league.League, team string, topX int, stat func(league.MatchDetails) int) ([]RangeWins, error) {
	matches, err := matchesFor(l, team, "")
	if err != nil {
		return nil, err
	}

	binWins := make(map[int]int)
	for _, m := range matches {
		if m.Draw() {
			continue
		}
		if team != "" && m.Winner != team {
			continue
		}
		side := m.Winner
		if team != "" {
			side = team
		}
		v := stat(m.Details[side])
		binWins[v/rangeWidth]++
	}

	var ranges []RangeWins
	for bin, wins := range binWins {
		lo := bin * rangeWidth
		ranges = append(ranges, RangeWins{
			Range:      fmt.Sprintf("%d - %d", lo, lo+rangeWidth-1),
			Wins:       wins,
			WinPercent: float64(wins) / float64(len(matches)) * 100,
		})
	}
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].Wins != ranges[j].Wins {
			return ranges[i].Wins > ranges[j].Wins
		}
		return ranges[i].Range < ranges[j].Range
	})
	return capTop(ranges, topX), nil
}
