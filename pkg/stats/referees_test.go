package stats

import (
	"errors"
	"testing"

	"github.com/kickoff/kickoff/pkg/league"
)

func TestOptimalReferees(t *testing.T) {
	l := testLeague(t)

	// Arsenal won both M Dean games and lost the A Taylor one.
	records, err := OptimalReferees(l, "Arsenal", 0)
	if err != nil {
		t.Fatalf("OptimalReferees: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d referees, want 2: %+v", len(records), records)
	}
	if records[0].Referee != "M Dean" || records[0].Wins != 2 || records[0].Games != 2 || !near(records[0].WinPercent, 100) {
		t.Errorf("first = %+v, want M Dean 2/2", records[0])
	}
	if records[1].Referee != "A Taylor" || !near(records[1].WinPercent, 0) {
		t.Errorf("second = %+v, want A Taylor at 0", records[1])
	}

	_, err = OptimalReferees(l, "Leeds", 0)
	if !errors.Is(err, league.ErrTeamNotFound) {
		t.Errorf("got %v, want ErrTeamNotFound", err)
	}
}

func TestFairestReferees(t *testing.T) {
	l := testLeague(t)

	// A Taylor: one home win, one away win, one draw over three games.
	// M Dean: two home wins out of two.
	fairness := FairestReferees(l, 0)
	if len(fairness) != 2 {
		t.Fatalf("got %d referees, want 2: %+v", len(fairness), fairness)
	}
	if fairness[0].Referee != "A Taylor" || fairness[0].Games != 3 || !near(fairness[0].Discrepancy, 0) {
		t.Errorf("first = %+v, want A Taylor with discrepancy 0", fairness[0])
	}
	if fairness[1].Referee != "M Dean" || !near(fairness[1].Discrepancy, 100) {
		t.Errorf("second = %+v, want M Dean with discrepancy 100", fairness[1])
	}
}
