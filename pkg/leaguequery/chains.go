// Package leaguequery provides the chain search over Kickoff league graphs.
// A chain is a simple sequence of matches linking a source team to a
// destination team via shared opponents, with the traveling team's home/away
// role alternating at every hop. Used by both the CLI and the hosted API.
package leaguequery

import (
	"errors"
	"fmt"

	"github.com/kickoff/kickoff/pkg/league"
)

// DefaultDepth is the default maximum number of matches in a chain.
// Depth 4 keeps enumeration fast while giving the predictor enough signal.
const DefaultDepth = 4

// ErrInvalidDepth is returned when the depth bound is not positive.
var ErrInvalidDepth = errors.New("depth must be positive")

// ErrBudgetExceeded is returned when the search expands more nodes than
// Options.MaxVisits allows.
var ErrBudgetExceeded = errors.New("chain search budget exceeded")

// Chain is an ordered sequence of matches from a source team to a
// destination team.
type Chain []*league.Match

// Options tunes a chain search.
type Options struct {
	// Depth is the maximum number of matches in a chain. Zero means
	// DefaultDepth; negative values are rejected.
	Depth int
	// MaxVisits caps the number of node expansions across the whole search.
	// Zero means unlimited. Depth alone does not bound wall-clock time when
	// the branching factor is high, so servers handling untrusted input
	// should set this.
	MaxVisits int
}

type search struct {
	league    *league.League
	dst       string
	season    string
	depth     int
	maxVisits int

	visited map[string]bool
	path    Chain
	chains  []Chain
	visits  int
}

// FindChains enumerates every chain of at most depth matches, all within the
// given season, that starts at src and ends at dst. The chain must start
// with src playing at home, alternate the traveling team's role at each hop,
// visit no team twice, and close on a match whose away side is dst.
//
// Each call owns its visited set and path buffer, so concurrent searches over
// a shared league are safe. The result may be empty; callers decide whether
// that is an error.
func FindChains(l *league.League, src, dst, season string, opts Options) ([]Chain, error) {
	depth := opts.Depth
	if depth == 0 {
		depth = DefaultDepth
	}
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, opts.Depth)
	}

	source, err := l.GetTeam(src)
	if err != nil {
		return nil, err
	}
	if _, err := l.GetTeam(dst); err != nil {
		return nil, err
	}

	s := &search{
		league:    l,
		dst:       dst,
		season:    season,
		depth:     depth,
		maxVisits: opts.MaxVisits,
		visited:   make(map[string]bool),
	}

	if err := s.dfs(source, true); err != nil {
		return nil, err
	}

	return s.chains, nil
}

// dfs is standard trial-and-undo backtracking. expectingHome is the role the
// current team must occupy in the next match taken; it inverts every hop.
func (s *search) dfs(team *league.Team, expectingHome bool) error {
	if len(s.path) > s.depth {
		return nil
	}

	// A chain closes exactly when the last edge was taken into the
	// destination's away side. Checked before expanding further, so a closed
	// chain is never extended.
	if len(s.path) > 0 && s.path[len(s.path)-1].AwayTeam == s.dst {
		chain := make(Chain, len(s.path))
		copy(chain, s.path)
		s.chains = append(s.chains, chain)
		return nil
	}

	if s.maxVisits > 0 {
		s.visits++
		if s.visits > s.maxVisits {
			return fmt.Errorf("%w: visited more than %d nodes", ErrBudgetExceeded, s.maxVisits)
		}
	}

	s.visited[team.Name] = true
	defer delete(s.visited, team.Name)

	for _, m := range team.Matches {
		if m.Season != s.season {
			continue
		}
		other := m.OtherTeam(team.Name)
		if s.visited[other] {
			continue
		}
		// Role alternation: when expecting home, the current team must be
		// the home side; when expecting away, the away side.
		if expectingHome != m.IsHome(team.Name) {
			continue
		}

		next, err := s.league.GetTeam(other)
		if err != nil {
			return err
		}

		s.path = append(s.path, m)
		if err := s.dfs(next, !expectingHome); err != nil {
			return err
		}
		s.path = s.path[:len(s.path)-1]
	}

	return nil
}
