// Package stats implements the single-pass aggregation and ranking queries
// over a Kickoff league: win rates, per-statistic averages, records, binned
// optima, and referee rankings. Everything here is a linear scan or sort over
// the read-only league graph.
package stats

import (
	"sort"

	"github.com/kickoff/kickoff/pkg/league"
)

// TeamRate pairs a team name with a percentage value.
type TeamRate struct {
	Team string  `json:"team"`
	Rate float64 `json:"rate"`
}

// Winrate returns the percentage of the team's matches it won. If season is
// non-empty, only matches from that season count.
func Winrate(l *league.League, team, season string) (float64, error) {
	t, err := l.GetTeam(team)
	if err != nil {
		return 0, err
	}

	played, won := 0, 0
	for _, m := range t.Matches {
		if season != "" && m.Season != season {
			continue
		}
		played++
		if m.Winner == team {
			won++
		}
	}
	if played == 0 {
		return 0, nil
	}
	return float64(won) / float64(played) * 100, nil
}

// HomeAwayRates holds home and away win rates plus the overall draw rate,
// all as percentages.
type HomeAwayRates struct {
	HomeWinRate float64 `json:"home_win_rate"`
	AwayWinRate float64 `json:"away_win_rate"`
	DrawRate    float64 `json:"draw_rate"`
}

// HomeVsAway computes home/away win rates. With a team, rates are that
// team's; without, they are league-wide (home side wins vs away side wins).
// An empty season means all seasons.
func HomeVsAway(l *league.League, team, season string) (HomeAwayRates, error) {
	matches, err := matchesFor(l, team, season)
	if err != nil {
		return HomeAwayRates{}, err
	}

	var homeGames, awayGames, homeWins, awayWins, draws int
	for _, m := range matches {
		if m.Draw() {
			draws++
		}
		if team == "" {
			homeGames++
			awayGames++
			if m.Winner == m.HomeTeam {
				homeWins++
			} else if m.Winner == m.AwayTeam {
				awayWins++
			}
			continue
		}
		if m.IsHome(team) {
			homeGames++
			if m.Winner == team {
				homeWins++
			}
		} else {
			awayGames++
			if m.Winner == team {
				awayWins++
			}
		}
	}

	rates := HomeAwayRates{}
	if homeGames > 0 {
		rates.HomeWinRate = float64(homeWins) / float64(homeGames) * 100
	}
	if awayGames > 0 {
		rates.AwayWinRate = float64(awayWins) / float64(awayGames) * 100
	}
	if len(matches) > 0 {
		rates.DrawRate = float64(draws) / float64(len(matches)) * 100
	}
	return rates, nil
}

// HighestWinRates ranks teams by win rate, descending, capped at topX.
// An empty season ranks across all seasons.
func HighestWinRates(l *league.League, season string, topX int) []TeamRate {
	var rates []TeamRate
	for _, name := range l.TeamNames(season) {
		rate, err := Winrate(l, name, season)
		if err != nil {
			continue
		}
		rates = append(rates, TeamRate{Team: name, Rate: rate})
	}
	sort.Slice(rates, func(i, j int) bool {
		if rates[i].Rate != rates[j].Rate {
			return rates[i].Rate > rates[j].Rate
		}
		return rates[i].Team < rates[j].Team
	})
	return capTop(rates, topX)
}

// matchesFor returns the relevant match set: a team's matches when team is
// non-empty, otherwise every match in the league, filtered by season.
func matchesFor(l *league.League, team, season string) ([]*league.Match, error) {
	var matches []*league.Match
	if team != "" {
		t, err := l.GetTeam(team)
		if err != nil {
			return nil, err
		}
		matches = t.Matches
	} else {
		matches = l.Matches
	}
	if season == "" {
		return matches, nil
	}
	var filtered []*league.Match
	for _, m := range matches {
		if m.Season == season {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

func capTop[T any](items []T, topX int) []T {
	if topX > 0 && len(items) > topX {
		return items[:topX]
	}
	return items
}
