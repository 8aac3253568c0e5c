package predict

import (
	"errors"
	"math"
	"testing"

	"github.com/kickoff/kickoff/pkg/league"
	"github.com/kickoff/kickoff/pkg/leaguequery"
)

func testMatch(season string, order int, home, away string, homeGoals, awayGoals int) *league.Match {
	winner := ""
	switch {
	case homeGoals > awayGoals:
		winner = home
	case awayGoals > homeGoals:
		winner = away
	}
	return &league.Match{
		Season:   season,
		HomeTeam: home,
		AwayTeam: away,
		Order:    order,
		Winner:   winner,
		Details: map[string]league.MatchDetails{
			home: {FullTimeGoals: homeGoals},
			away: {FullTimeGoals: awayGoals},
		},
	}
}

// testLeague links Arsenal to Chelsea through a direct win (+2, weight 1)
// and a three-hop chain summing to +3 (weight 1/3). The weighted mean is
// (1*2 + 3/3) / (1 + 1/3) = 2.25.
func testLeague(t *testing.T) *league.League {
	t.Helper()
	l := league.New()
	for _, m := range []*league.Match{
		testMatch("2010-11", 1, "Arsenal", "Chelsea", 2, 0),
		testMatch("2010-11", 2, "Arsenal", "Norwich", 3, 1),
		testMatch("2010-11", 3, "Fulham", "Norwich", 1, 1),
		testMatch("2010-11", 4, "Fulham", "Chelsea", 2, 1),
		testMatch("2010-11", 5, "Everton", "Wigan", 0, 0),
	} {
		if err := l.AddMatch(m); err != nil {
			t.Fatalf("AddMatch: %v", err)
		}
	}
	return l
}

func TestPredict(t *testing.T) {
	l := testLeague(t)

	result, err := Predict(l, "Arsenal", "Chelsea", "2010-11", Options{})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	if result.HomeTeam != "Arsenal" || result.AwayTeam != "Chelsea" || result.Season != "2010-11" {
		t.Errorf("result header = %s v %s in %s", result.HomeTeam, result.AwayTeam, result.Season)
	}
	if result.ChainCount != 2 {
		t.Fatalf("ChainCount = %d, want 2", result.ChainCount)
	}
	if math.Abs(result.GoalDifference-2.25) > 1e-9 {
		t.Errorf("GoalDifference = %v, want 2.25", result.GoalDifference)
	}

	if len(result.Breakdown) != 2 {
		t.Fatalf("Breakdown has %d entries, want 2", len(result.Breakdown))
	}
	direct := result.Breakdown[0]
	if direct.Length != 1 || direct.Weight != 1 || direct.Signal != 2 {
		t.Errorf("direct chain = %+v, want length 1, weight 1, signal 2", direct)
	}
	long := result.Breakdown[1]
	if long.Length != 3 || math.Abs(long.Weight-1.0/3) > 1e-9 || long.Signal != 3 {
		t.Errorf("long chain = %+v, want length 3, weight 1/3, signal 3", long)
	}
	if len(long.Matchups) != 3 || long.Matchups[0] != "Arsenal v Norwich" {
		t.Errorf("long chain matchups = %v", long.Matchups)
	}
}

func TestPredictDepthOption(t *testing.T) {
	l := testLeague(t)

	// Depth 1 sees only the direct match, so the estimate is exactly +2.
	result, err := Predict(l, "Arsenal", "Chelsea", "2010-11", Options{Depth: 1})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if result.ChainCount != 1 {
		t.Fatalf("ChainCount = %d, want 1", result.ChainCount)
	}
	if result.GoalDifference != 2 {
		t.Errorf("GoalDifference = %v, want 2", result.GoalDifference)
	}
}

func TestPredictErrors(t *testing.T) {
	l := testLeague(t)

	t.Run("no connecting chain", func(t *testing.T) {
		_, err := Predict(l, "Everton", "Chelsea", "2010-11", Options{})
		if !errors.Is(err, ErrNoPath) {
			t.Errorf("got %v, want ErrNoPath", err)
		}
	})

	t.Run("unknown team", func(t *testing.T) {
		_, err := Predict(l, "Leeds", "Chelsea", "2010-11", Options{})
		if !errors.Is(err, league.ErrTeamNotFound) {
			t.Errorf("got %v, want ErrTeamNotFound", err)
		}
	})

	t.Run("invalid depth", func(t *testing.T) {
		_, err := Predict(l, "Arsenal", "Chelsea", "2010-11", Options{Depth: -2})
		if !errors.Is(err, leaguequery.ErrInvalidDepth) {
			t.Errorf("got %v, want ErrInvalidDepth", err)
		}
	})
}
