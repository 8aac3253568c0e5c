package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/kickoff/kickoff/pkg/league"
)

func fullMatch(season string, order int, home, away, referee string, hd, ad league.MatchDetails) *league.Match {
	hd.Referee = referee
	ad.Referee = referee
	winner := ""
	switch {
	case hd.FullTimeGoals > ad.FullTimeGoals:
		winner = home
	case ad.FullTimeGoals > hd.FullTimeGoals:
		winner = away
	}
	return &league.Match{
		Season:   season,
		HomeTeam: home,
		AwayTeam: away,
		Order:    order,
		Winner:   winner,
		Details: map[string]league.MatchDetails{
			home: hd,
			away: ad,
		},
	}
}

// testLeague is a five-match 2010-11 season over four teams.
//
//	Arsenal 2-0 Chelsea  (M Dean)    Arsenal led 1-0 at half time
//	Arsenal 3-1 Norwich  (M Dean)    Arsenal trailed 0-1 at half time
//	Chelsea 1-1 Fulham   (A Taylor)
//	Norwich 0-4 Chelsea  (A Taylor)
//	Fulham  2-1 Arsenal  (A Taylor)  Fulham trailed 0-1 at half time
func testLeague(t *testing.T) *league.League {
	t.Helper()
	l := league.New()
	for _, m := range []*league.Match{
		fullMatch("2010-11", 1, "Arsenal", "Chelsea", "M Dean",
			league.MatchDetails{Fouls: 10, Shots: 10, ShotsOnTarget: 5, YellowCards: 1, HalfTimeGoals: 1, FullTimeGoals: 2},
			league.MatchDetails{Fouls: 12, Shots: 8, ShotsOnTarget: 2, RedCards: 1, YellowCards: 2}),
		fullMatch("2010-11", 2, "Arsenal", "Norwich", "M Dean",
			league.MatchDetails{Fouls: 8, Shots: 20, ShotsOnTarget: 10, FullTimeGoals: 3},
			league.MatchDetails{Fouls: 2, Shots: 5, ShotsOnTarget: 1, HalfTimeGoals: 1, FullTimeGoals: 1}),
		fullMatch("2010-11", 3, "Chelsea", "Fulham", "A Taylor",
			league.MatchDetails{Fouls: 6, Shots: 9, ShotsOnTarget: 3, YellowCards: 1, HalfTimeGoals: 1, FullTimeGoals: 1},
			league.MatchDetails{Fouls: 7, Shots: 6, ShotsOnTarget: 2, YellowCards: 1, FullTimeGoals: 1}),
		fullMatch("2010-11", 4, "Norwich", "Chelsea", "A Taylor",
			league.MatchDetails{Fouls: 3, Shots: 4, ShotsOnTarget: 1, YellowCards: 1},
			league.MatchDetails{Fouls: 5, Shots: 15, ShotsOnTarget: 9, HalfTimeGoals: 2, FullTimeGoals: 4}),
		fullMatch("2010-11", 5, "Fulham", "Arsenal", "A Taylor",
			league.MatchDetails{Fouls: 9, Shots: 11, ShotsOnTarget: 4, YellowCards: 2, FullTimeGoals: 2},
			league.MatchDetails{Fouls: 12, Shots: 10, ShotsOnTarget: 5, RedCards: 1, YellowCards: 2, HalfTimeGoals: 1, FullTimeGoals: 1}),
	} {
		if err := l.AddMatch(m); err != nil {
			t.Fatalf("AddMatch: %v", err)
		}
	}
	return l
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWinrate(t *testing.T) {
	l := testLeague(t)

	t.Run("per team", func(t *testing.T) {
		for _, tc := range []struct {
			team string
			want float64
		}{
			{"Arsenal", 200.0 / 3},
			{"Chelsea", 100.0 / 3},
			{"Norwich", 0},
			{"Fulham", 50},
		} {
			got, err := Winrate(l, tc.team, "2010-11")
			if err != nil {
				t.Fatalf("Winrate(%s): %v", tc.team, err)
			}
			if !near(got, tc.want) {
				t.Errorf("Winrate(%s) = %v, want %v", tc.team, got, tc.want)
			}
		}
	})

	t.Run("no matches in season", func(t *testing.T) {
		got, err := Winrate(l, "Arsenal", "1999-00")
		if err != nil || got != 0 {
			t.Errorf("Winrate in empty season = %v, %v; want 0, nil", got, err)
		}
	})

	t.Run("unknown team", func(t *testing.T) {
		_, err := Winrate(l, "Leeds", "2010-11")
		if !errors.Is(err, league.ErrTeamNotFound) {
			t.Errorf("got %v, want ErrTeamNotFound", err)
		}
	})
}

func TestHomeVsAway(t *testing.T) {
	l := testLeague(t)

	t.Run("for a team", func(t *testing.T) {
		rates, err := HomeVsAway(l, "Arsenal", "2010-11")
		if err != nil {
			t.Fatalf("HomeVsAway: %v", err)
		}
		if !near(rates.HomeWinRate, 100) {
			t.Errorf("HomeWinRate = %v, want 100", rates.HomeWinRate)
		}
		if !near(rates.AwayWinRate, 0) {
			t.Errorf("AwayWinRate = %v, want 0", rates.AwayWinRate)
		}
		if !near(rates.DrawRate, 0) {
			t.Errorf("DrawRate = %v, want 0", rates.DrawRate)
		}
	})

	t.Run("league wide", func(t *testing.T) {
		rates, err := HomeVsAway(l, "", "2010-11")
		if err != nil {
			t.Fatalf("HomeVsAway: %v", err)
		}
		if !near(rates.HomeWinRate, 60) {
			t.Errorf("HomeWinRate = %v, want 60", rates.HomeWinRate)
		}
		if !near(rates.AwayWinRate, 20) {
			t.Errorf("AwayWinRate = %v, want 20", rates.AwayWinRate)
		}
		if !near(rates.DrawRate, 20) {
			t.Errorf("DrawRate = %v, want 20", rates.DrawRate)
		}
	})
}

func TestHighestWinRates(t *testing.T) {
	l := testLeague(t)

	rates := HighestWinRates(l, "2010-11", 2)
	if len(rates) != 2 {
		t.Fatalf("got %d entries, want 2", len(rates))
	}
	if rates[0].Team != "Arsenal" || !near(rates[0].Rate, 200.0/3) {
		t.Errorf("first = %+v, want Arsenal at 66.67", rates[0])
	}
	if rates[1].Team != "Fulham" || !near(rates[1].Rate, 50) {
		t.Errorf("second = %+v, want Fulham at 50", rates[1])
	}
}
