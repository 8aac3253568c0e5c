package stats

import "github.com/kickoff/kickoff/pkg/league"

// Averages holds per-game averages for a team or for a whole season.
type Averages struct {
	GoalsScored  float64 `json:"goals_scored"`
	ShotAccuracy float64 `json:"shot_accuracy"` // shots on target / shots, as %
	Fouls        float64 `json:"fouls"`
	CardOffenses float64 `json:"card_offenses"` // yellow + red per game
}

// TeamAverages computes a team's per-game averages in the given season.
func TeamAverages(l *league.League, team, season string) (Averages, error) {
	t, err := l.GetTeam(team)
	if err != nil {
		return Averages{}, err
	}

	var games, goals, shots, onTarget, fouls, cards int
	for _, m := range t.Matches {
		if m.Season != season {
			continue
		}
		d := m.Details[team]
		games++
		goals += d.FullTimeGoals
		shots += d.Shots
		onTarget += d.ShotsOnTarget
		fouls += d.Fouls
		cards += d.YellowCards + d.RedCards
	}
	return averagesFrom(games, goals, shots, onTarget, fouls, cards), nil
}

// SeasonAverages computes league-wide per-team-per-game averages for the
// given season. Each match contributes both sides' details.
func SeasonAverages(l *league.League, season string) Averages {
	var games, goals, shots, onTarget, fouls, cards int
	for _, m := range l.SeasonMatches(season) {
		for _, name := range []string{m.HomeTeam, m.AwayTeam} {
			d := m.Details[name]
			games++
			goals += d.FullTimeGoals
			shots += d.Shots
			onTarget += d.ShotsOnTarget
			fouls += d.Fouls
			cards += d.YellowCards + d.RedCards
		}
	}
	return averagesFrom(games, goals, shots, onTarget, fouls, cards)
}

func averagesFrom(games, goals, shots, onTarget, fouls, cards int) Averages {
	if games == 0 {
		return Averages{}
	}
	avg := Averages{
		GoalsScored:  float64(goals) / float64(games),
		Fouls:        float64(fouls) / float64(games),
		CardOffenses: float64(cards) / float64(games),
	}
	if shots > 0 {
		avg.ShotAccuracy = float64(onTarget) / float64(shots) * 100
	}
	return avg
}
