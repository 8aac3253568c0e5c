// Package league defines the core data model for Kickoff: a multi-season
// league of matches represented as an undirected multigraph where nodes are
// teams and edges are matches. These types are the shared vocabulary across
// all modules. The graph is built once by a loader and is read-only
// afterwards, so any number of concurrent queries may share it without
// locking.
package league

import (
	"errors"
	"fmt"
	"sort"
)

// ErrTeamNotFound is returned when a requested team name is absent
// from the league.
var ErrTeamNotFound = errors.New("team not found")

// MatchDetails is one team's performance record for a single match.
type MatchDetails struct {
	Fouls         int    `json:"fouls"`
	Shots         int    `json:"shots"`
	ShotsOnTarget int    `json:"shots_on_target"`
	RedCards      int    `json:"red_cards"`
	YellowCards   int    `json:"yellow_cards"`
	HalfTimeGoals int    `json:"half_time_goals"`
	FullTimeGoals int    `json:"full_time_goals"`
	Referee       string `json:"referee"`
}

// Match is a single game between two teams in one season. Teams are
// referenced by name (lookup key into League.Teams) rather than by pointer,
// which keeps the Team/Match reference graph acyclic.
type Match struct {
	Season   string                  `json:"season"`
	HomeTeam string                  `json:"home_team"`
	AwayTeam string                  `json:"away_team"`
	Order    int                     `json:"order"` // 1-based position within the season
	Details  map[string]MatchDetails `json:"details"`
	Winner   string                  `json:"winner,omitempty"` // home, away, or "" for a draw
}

// OtherTeam returns the name of the opponent of the given participant.
func (m *Match) OtherTeam(name string) string {
	if name == m.HomeTeam {
		return m.AwayTeam
	}
	return m.HomeTeam
}

// IsHome reports whether the named team played at home in this match.
func (m *Match) IsHome(name string) bool {
	return name == m.HomeTeam
}

// GoalDifference returns home full-time goals minus away full-time goals.
func (m *Match) GoalDifference() int {
	return m.Details[m.HomeTeam].FullTimeGoals - m.Details[m.AwayTeam].FullTimeGoals
}

// Draw reports whether the match ended level.
func (m *Match) Draw() bool {
	return m.Winner == ""
}

// Team is a node in the league graph. Matches holds every match the team
// participated in, in the order they were played across all seasons.
type Team struct {
	Name    string          `json:"name"`
	Matches []*Match        `json:"-"`
	Seasons map[string]bool `json:"seasons"`
}

// PlayedIn reports whether the team appeared in the given season.
func (t *Team) PlayedIn(season string) bool {
	return t.Seasons[season]
}

// SeasonMatches returns the team's matches for one season, in the order
// they were played.
func (t *Team) SeasonMatches(season string) []*Match {
	var out []*Match
	for _, m := range t.Matches {
		if m.Season == season {
			out = append(out, m)
		}
	}
	return out
}

// League owns every Team and Match. It is the arena for the whole graph:
// teams are keyed by name, and Matches holds every match in load order.
type League struct {
	Teams   map[string]*Team `json:"teams"`
	Matches []*Match         `json:"matches"`
}

// New creates an empty league.
func New() *League {
	return &League{Teams: make(map[string]*Team)}
}

// AddTeam adds a team with the given name and returns it. If the team
// already exists, the existing team is returned.
func (l *League) AddTeam(name string) *Team {
	if t, ok := l.Teams[name]; ok {
		return t
	}
	t := &Team{Name: name, Seasons: make(map[string]bool)}
	l.Teams[name] = t
	return t
}

// AddMatch appends a match to the league and to both participants' match
// lists, creating the teams if needed. Matches must be added in the order
// they were played.
func (l *League) AddMatch(m *Match) error {
	if m.HomeTeam == m.AwayTeam {
		return fmt.Errorf("match %s/%d: home and away are both %q", m.Season, m.Order, m.HomeTeam)
	}
	if m.Winner != "" && m.Winner != m.HomeTeam && m.Winner != m.AwayTeam {
		return fmt.Errorf("match %s/%d: winner %q is not a participant", m.Season, m.Order, m.Winner)
	}
	if _, ok := m.Details[m.HomeTeam]; !ok {
		return fmt.Errorf("match %s/%d: missing details for %q", m.Season, m.Order, m.HomeTeam)
	}
	if _, ok := m.Details[m.AwayTeam]; !ok {
		return fmt.Errorf("match %s/%d: missing details for %q", m.Season, m.Order, m.AwayTeam)
	}

	home := l.AddTeam(m.HomeTeam)
	away := l.AddTeam(m.AwayTeam)
	home.Matches = append(home.Matches, m)
	away.Matches = append(away.Matches, m)
	home.Seasons[m.Season] = true
	away.Seasons[m.Season] = true
	l.Matches = append(l.Matches, m)
	return nil
}

// TeamExists reports whether a team with the given name is in the league.
func (l *League) TeamExists(name string) bool {
	_, ok := l.Teams[name]
	return ok
}

// GetTeam returns the team with the given name, or ErrTeamNotFound.
func (l *League) GetTeam(name string) (*Team, error) {
	t, ok := l.Teams[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTeamNotFound, name)
	}
	return t, nil
}

// TeamNames returns the names of all teams, sorted. If season is non-empty,
// only teams that appeared in that season are returned.
func (l *League) TeamNames(season string) []string {
	var names []string
	for name, t := range l.Teams {
		if season != "" && !t.PlayedIn(season) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Seasons returns every season identifier present in the league, sorted.
func (l *League) Seasons() []string {
	seen := make(map[string]bool)
	for _, m := range l.Matches {
		seen[m.Season] = true
	}
	var out []string
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// SeasonMatches returns all matches in the given season, in play order.
func (l *League) SeasonMatches(season string) []*Match {
	var out []*Match
	for _, m := range l.Matches {
		if m.Season == season {
			out = append(out, m)
		}
	}
	return out
}
