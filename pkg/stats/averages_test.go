package stats

import (
	"errors"
	"testing"

	"github.com/kickoff/kickoff/pkg/league"
)

func TestTeamAverages(t *testing.T) {
	l := testLeague(t)

	avg, err := TeamAverages(l, "Arsenal", "2010-11")
	if err != nil {
		t.Fatalf("TeamAverages: %v", err)
	}

	// Arsenal over three matches: 6 goals, 40 shots (20 on target),
	// 30 fouls, 4 cards.
	if !near(avg.GoalsScored, 2) {
		t.Errorf("GoalsScored = %v, want 2", avg.GoalsScored)
	}
	if !near(avg.ShotAccuracy, 50) {
		t.Errorf("ShotAccuracy = %v, want 50", avg.ShotAccuracy)
	}
	if !near(avg.Fouls, 10) {
		t.Errorf("Fouls = %v, want 10", avg.Fouls)
	}
	if !near(avg.CardOffenses, 4.0/3) {
		t.Errorf("CardOffenses = %v, want 4/3", avg.CardOffenses)
	}
}

func TestTeamAveragesErrors(t *testing.T) {
	l := testLeague(t)

	_, err := TeamAverages(l, "Leeds", "2010-11")
	if !errors.Is(err, league.ErrTeamNotFound) {
		t.Errorf("got %v, want ErrTeamNotFound", err)
	}

	avg, err := TeamAverages(l, "Arsenal", "1999-00")
	if err != nil || avg != (Averages{}) {
		t.Errorf("empty season = %+v, %v; want zero averages, nil", avg, err)
	}
}

func TestSeasonAverages(t *testing.T) {
	l := testLeague(t)

	avg := SeasonAverages(l, "2010-11")
	// 15 goals over 10 team-games.
	if !near(avg.GoalsScored, 1.5) {
		t.Errorf("GoalsScored = %v, want 1.5", avg.GoalsScored)
	}

	if got := SeasonAverages(l, "1999-00"); got != (Averages{}) {
		t.Errorf("empty season = %+v, want zero averages", got)
	}
}
