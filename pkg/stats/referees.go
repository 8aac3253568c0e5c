package stats

import (
	"math"
	"sort"

	"github.com/kickoff/kickoff/pkg/league"
)

// RefereeRecord is a team's record under one referee.
type RefereeRecord struct {
	Referee    string  `json:"referee"`
	Wins       int     `json:"wins"`
	Games      int     `json:"games"`
	WinPercent float64 `json:"win_percent"`
}

// OptimalReferees ranks referees by the team's win rate in games they
// officiated, descending, capped at topX.
func OptimalReferees(l *league.League, team string, topX int) ([]RefereeRecord, error) {
	t, err := l.GetTeam(team)
	if err != nil {
		return nil, err
	}

	type tally struct{ wins, games int }
	byRef := make(map[string]*tally)
	for _, m := range t.Matches {
		ref := m.Details[team].Referee
		if ref == "" {
			continue
		}
		tl, ok := byRef[ref]
		if !ok {
			tl = &tally{}
			byRef[ref] = tl
		}
		tl.games++
		if m.Winner == team {
			tl.wins++
		}
	}

	var records []RefereeRecord
	for ref, tl := range byRef {
		records = append(records, RefereeRecord{
			Referee:    ref,
			Wins:       tl.wins,
			Games:      tl.games,
			WinPercent: float64(tl.wins) / float64(tl.games) * 100,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].WinPercent != records[j].WinPercent {
			return records[i].WinPercent > records[j].WinPercent
		}
		return records[i].Referee < records[j].Referee
	})
	return capTop(records, topX), nil
}

// RefereeFairness measures how evenly a referee's games split between home
// and away wins. Discrepancy 0 means perfectly balanced.
type RefereeFairness struct {
	Referee     string  `json:"referee"`
	Games       int     `json:"games"`
	Discrepancy float64 `json:"discrepancy"` // |home win rate - away win rate|, as %
}

// FairestReferees ranks referees by the home/away winrate discrepancy of the
// games they officiated, ascending, capped at topX.
func FairestReferees(l *league.League, topX int) []RefereeFairness {
	type tally struct{ games, homeWins, awayWins int }
	byRef := make(map[string]*tally)
	for _, m := range l.Matches {
		ref := m.Details[m.HomeTeam].Referee
		if ref == "" {
			continue
		}
		tl, ok := byRef[ref]
		if !ok {
			tl = &tally{}
			byRef[ref] = tl
		}
		tl.games++
		switch m.Winner {
		case m.HomeTeam:
			tl.homeWins++
		case m.AwayTeam:
			tl.awayWins++
		}
	}

	var fairness []RefereeFairness
	for ref, tl := range byRef {
		home := float64(tl.homeWins) / float64(tl.games) * 100
		away := float64(tl.awayWins) / float64(tl.games) * 100
		fairness = append(fairness, RefereeFairness{
			Referee:     ref,
			Games:       tl.games,
			Discrepancy: math.Abs(home - away),
		})
	}
	sort.Slice(fairness, func(i, j int) bool {
		if fairness[i].Discrepancy != fairness[j].Discrepancy {
			return fairness[i].Discrepancy < fairness[j].Discrepancy
		}
		return fairness[i].Referee < fairness[j].Referee
	})
	return capTop(fairness, topX)
}
