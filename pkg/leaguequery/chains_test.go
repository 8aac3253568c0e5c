package leaguequery

import (
	"errors"
	"testing"

	"github.com/kickoff/kickoff/pkg/league"
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

// testLeague builds a fixture where Arsenal reaches Chelsea two ways in
// 2010-11: directly (one match) and via Norwich and Fulham (three matches,
// roles alternating home/away/home). The Norwich home win over Chelsea is a
// decoy: it sits at the away-role hop, so no chain may use it.
func testLeague(t *testing.T) *league.League {
	t.Helper()
	l := league.New()
	for _, m := range []*league.Match{
		testMatch("2010-11", 1, "Arsenal", "Chelsea", 2, 0),
		testMatch("2010-11", 2, "Arsenal", "Norwich", 3, 1),
		testMatch("2010-11", 3, "Fulham", "Norwich", 1, 1),
		testMatch("2010-11", 4, "Fulham", "Chelsea", 2, 1),
		testMatch("2010-11", 5, "Norwich", "Chelsea", 1, 0),
		testMatch("2010-11", 6, "Everton", "Wigan", 0, 0),
		testMatch("2011-12", 1, "Arsenal", "Chelsea", 5, 0),
	} {
		if err := l.AddMatch(m); err != nil {
			t.Fatalf("AddMatch: %v", err)
		}
	}
	return l
}

func chainTeams(c Chain) []string {
	var out []string
	for _, m := range c {
		out = append(out, m.HomeTeam+" v "+m.AwayTeam)
	}
	return out
}

func TestFindChains(t *testing.T) {
	l := testLeague(t)

	t.Run("default depth finds both chains in order", func(t *testing.T) {
		chains, err := FindChains(l, "Arsenal", "Chelsea", "2010-11", Options{})
		if err != nil {
			t.Fatalf("FindChains: %v", err)
		}
		if len(chains) != 2 {
			t.Fatalf("got %d chains %v, want 2", len(chains), chains)
		}
		if len(chains[0]) != 1 || chains[0][0].Order != 1 {
			t.Errorf("first chain = %v, want the direct match", chainTeams(chains[0]))
		}
		if len(chains[1]) != 3 {
			t.Fatalf("second chain = %v, want 3 hops", chainTeams(chains[1]))
		}
		want := []string{"Arsenal v Norwich", "Fulham v Norwich", "Fulham v Chelsea"}
		for i, s := range chainTeams(chains[1]) {
			if s != want[i] {
				t.Errorf("second chain hop %d = %s, want %s", i, s, want[i])
			}
		}
	})

	t.Run("roles alternate at every hop", func(t *testing.T) {
		chains, err := FindChains(l, "Arsenal", "Chelsea", "2010-11", Options{})
		if err != nil {
			t.Fatalf("FindChains: %v", err)
		}
		for _, c := range chains {
			traveler := "Arsenal"
			for i, m := range c {
				home := i%2 == 0
				if m.IsHome(traveler) != home {
					t.Errorf("chain %v: hop %d traveler %s home=%v, want %v",
						chainTeams(c), i, traveler, m.IsHome(traveler), home)
				}
				traveler = m.OtherTeam(traveler)
			}
		}
	})

	t.Run("chains close on the destination's away side", func(t *testing.T) {
		chains, err := FindChains(l, "Arsenal", "Chelsea", "2010-11", Options{})
		if err != nil {
			t.Fatalf("FindChains: %v", err)
		}
		for _, c := range chains {
			if c[len(c)-1].AwayTeam != "Chelsea" {
				t.Errorf("chain %v does not end at Chelsea's away side", chainTeams(c))
			}
		}
	})

	t.Run("no team repeats within a chain", func(t *testing.T) {
		chains, err := FindChains(l, "Arsenal", "Chelsea", "2010-11", Options{})
		if err != nil {
			t.Fatalf("FindChains: %v", err)
		}
		for _, c := range chains {
			seen := map[string]int{}
			for _, m := range c {
				seen[m.HomeTeam]++
				seen[m.AwayTeam]++
			}
			// Each intermediate team appears in exactly two consecutive
			// matches; endpoints in one.
			for team, n := range seen {
				if n > 2 {
					t.Errorf("chain %v: team %s appears %d times", chainTeams(c), team, n)
				}
			}
		}
	})

	t.Run("depth bound excludes longer chains", func(t *testing.T) {
		chains, err := FindChains(l, "Arsenal", "Chelsea", "2010-11", Options{Depth: 2})
		if err != nil {
			t.Fatalf("FindChains: %v", err)
		}
		if len(chains) != 1 || len(chains[0]) != 1 {
			t.Errorf("depth 2 got %d chains, want only the direct one", len(chains))
		}
	})

	t.Run("season filter", func(t *testing.T) {
		chains, err := FindChains(l, "Arsenal", "Chelsea", "2011-12", Options{})
		if err != nil {
			t.Fatalf("FindChains: %v", err)
		}
		if len(chains) != 1 || chains[0][0].Season != "2011-12" {
			t.Errorf("2011-12 search got %v, want the single 2011-12 match", chains)
		}
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		chains, err := FindChains(l, "Everton", "Chelsea", "2010-11", Options{})
		if err != nil {
			t.Fatalf("FindChains: %v", err)
		}
		if len(chains) != 0 {
			t.Errorf("got %d chains, want none", len(chains))
		}
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		first, err := FindChains(l, "Arsenal", "Chelsea", "2010-11", Options{})
		if err != nil {
			t.Fatalf("FindChains: %v", err)
		}
		for i := 0; i < 5; i++ {
			again, err := FindChains(l, "Arsenal", "Chelsea", "2010-11", Options{})
			if err != nil {
				t.Fatalf("FindChains: %v", err)
			}
			if len(again) != len(first) {
				t.Fatalf("run %d: %d chains, want %d", i, len(again), len(first))
			}
			for j := range first {
				if len(again[j]) != len(first[j]) {
					t.Errorf("run %d: chain %d length changed", i, j)
				}
				for k := range first[j] {
					if again[j][k] != first[j][k] {
						t.Errorf("run %d: chain %d hop %d changed", i, j, k)
					}
				}
			}
		}
	})
}

func TestFindChainsErrors(t *testing.T) {
	l := testLeague(t)

	t.Run("unknown source", func(t *testing.T) {
		_, err := FindChains(l, "Leeds", "Chelsea", "2010-11", Options{})
		if !errors.Is(err, league.ErrTeamNotFound) {
			t.Errorf("got %v, want ErrTeamNotFound", err)
		}
	})

	t.Run("unknown destination", func(t *testing.T) {
		_, err := FindChains(l, "Arsenal", "Leeds", "2010-11", Options{})
		if !errors.Is(err, league.ErrTeamNotFound) {
			t.Errorf("got %v, want ErrTeamNotFound", err)
		}
	})

	t.Run("negative depth", func(t *testing.T) {
		_, err := FindChains(l, "Arsenal", "Chelsea", "2010-11", Options{Depth: -1})
		if !errors.Is(err, ErrInvalidDepth) {
			t.Errorf("got %v, want ErrInvalidDepth", err)
		}
	})

	t.Run("visit budget", func(t *testing.T) {
		_, err := FindChains(l, "Arsenal", "Chelsea", "2010-11", Options{MaxVisits: 1})
		if !errors.Is(err, ErrBudgetExceeded) {
			t.Errorf("got %v, want ErrBudgetExceeded", err)
		}
	})
}
