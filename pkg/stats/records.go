package stats

import (
	"sort"
	"strconv"

	"github.com/kickoff/kickoff/pkg/league"
)

// Streak is a team's longest run of consecutive wins within a season.
type Streak struct {
	Team   string `json:"team"`
	Length int    `json:"length"`
}

// LongestWinStreaks ranks teams by their longest win streak in the season,
// descending, capped at topX.
func LongestWinStreaks(l *league.League, season string, topX int) []Streak {
	var streaks []Streak
	for _, name := range l.TeamNames(season) {
		t := l.Teams[name]
		best, current := 0, 0
		for _, m := range t.SeasonMatches(season) {
			if m.Winner == name {
				current++
				if current > best {
					best = current
				}
			} else {
				current = 0
			}
		}
		streaks = append(streaks, Streak{Team: name, Length: best})
	}
	sort.Slice(streaks, func(i, j int) bool {
		if streaks[i].Length != streaks[j].Length {
			return streaks[i].Length > streaks[j].Length
		}
		return streaks[i].Team < streaks[j].Team
	})
	return capTop(streaks, topX)
}

// Comeback is a match a team won after trailing at half time.
type Comeback struct {
	Team          string `json:"team"`
	Season        string `json:"season"`
	HalfTimeScore string `json:"half_time_score"` // winner's goals first
	FullTimeScore string `json:"full_time_score"`
	Size          int    `json:"size"` // half-time deficit overturned
}

// BestComebacks ranks wins by the half-time deficit that was overturned,
// descending, capped at topX. An empty season searches all seasons.
func BestComebacks(l *league.League, season string, topX int) []Comeback {
	var comebacks []Comeback
	for _, m := range l.Matches {
		if season != "" && m.Season != season {
			continue
		}
		if m.Draw() {
			continue
		}
		winner := m.Winner
		loser := m.OtherTeam(winner)
		wd, ld := m.Details[winner], m.Details[loser]
		deficit := ld.HalfTimeGoals - wd.HalfTimeGoals
		if deficit <= 0 {
			continue
		}
		comebacks = append(comebacks, Comeback{
			Team:          winner,
			Season:        m.Season,
			HalfTimeScore: scoreline(wd.HalfTimeGoals, ld.HalfTimeGoals),
			FullTimeScore: scoreline(wd.FullTimeGoals, ld.FullTimeGoals),
			Size:          deficit,
		})
	}
	sort.Slice(comebacks, func(i, j int) bool {
		if comebacks[i].Size != comebacks[j].Size {
			return comebacks[i].Size > comebacks[j].Size
		}
		return comebacks[i].Team < comebacks[j].Team
	})
	return capTop(comebacks, topX)
}

// GoalRecord is a team's goal count in a single match.
type GoalRecord struct {
	Team   string `json:"team"`
	Season string `json:"season"`
	Goals  int    `json:"goals"`
}

// MostGoalsInMatch ranks the highest single-match goal tallies, descending,
// capped at topX. An empty season searches all seasons.
func MostGoalsInMatch(l *league.League, season string, topX int) []GoalRecord {
	best := make(map[string]GoalRecord)
	for _, m := range l.Matches {
		if season != "" && m.Season != season {
			continue
		}
		for _, name := range []string{m.HomeTeam, m.AwayTeam} {
			goals := m.Details[name].FullTimeGoals
			if r, ok := best[name]; !ok || goals > r.Goals {
				best[name] = GoalRecord{Team: name, Season: m.Season, Goals: goals}
			}
		}
	}
	var records []GoalRecord
	for _, r := range best {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Goals != records[j].Goals {
			return records[i].Goals > records[j].Goals
		}
		return records[i].Team < records[j].Team
	})
	return capTop(records, topX)
}

// FairplayScore is a team's offenses (fouls + cards) per match.
type FairplayScore struct {
	Team             string  `json:"team"`
	OffensesPerMatch float64 `json:"offenses_per_match"`
}

// MostFairplay ranks teams by offenses per match, ascending, capped at topX.
// An empty season searches all seasons.
func MostFairplay(l *league.League, season string, topX int) []FairplayScore {
	var scores []FairplayScore
	for _, name := range l.TeamNames(season) {
		t := l.Teams[name]
		games, offenses := 0, 0
		for _, m := range t.Matches {
			if season != "" && m.Season != season {
				continue
			}
			d := m.Details[name]
			games++
			offenses += d.Fouls + d.YellowCards + d.RedCards
		}
		if games == 0 {
			continue
		}
		scores = append(scores, FairplayScore{
			Team:             name,
			OffensesPerMatch: float64(offenses) / float64(games),
		})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].OffensesPerMatch != scores[j].OffensesPerMatch {
			return scores[i].OffensesPerMatch < scores[j].OffensesPerMatch
		}
		return scores[i].Team < scores[j].Team
	})
	return capTop(scores, topX)
}

// Improvement tracks a team's recovery within one season: the lowest running
// winrate it hit and the winrate it finished with.
type Improvement struct {
	Team          string  `json:"team"`
	LowestWinrate float64 `json:"lowest_winrate"`
	FinalWinrate  float64 `json:"final_winrate"`
	Gain          float64 `json:"gain"`
}

// MostImproved ranks teams by the gain from their lowest running winrate to
// their end-of-season winrate, descending, capped at topX.
func MostImproved(l *league.League, season string, topX int) []Improvement {
	var improvements []Improvement
	for _, name := range l.TeamNames(season) {
		t := l.Teams[name]
		played, won := 0, 0
		lowest, final := 100.0, 0.0
		for _, m := range t.SeasonMatches(season) {
			played++
			if m.Winner == name {
				won++
			}
			rate := float64(won) / float64(played) * 100
			if rate < lowest {
				lowest = rate
			}
			final = rate
		}
		if played == 0 {
			continue
		}
		improvements = append(improvements, Improvement{
			Team:          name,
			LowestWinrate: lowest,
			FinalWinrate:  final,
			Gain:          final - lowest,
		})
	}
	sort.Slice(improvements, func(i, j int) bool {
		if improvements[i].Gain != improvements[j].Gain {
			return improvements[i].Gain > improvements[j].Gain
		}
		return improvements[i].Team < improvements[j].Team
	})
	return capTop(improvements, topX)
}

func scoreline(a, b int) string {
	return strconv.Itoa(a) + " - " + strconv.Itoa(b)
}
