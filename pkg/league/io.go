package league

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes a league to disk as JSON. Team match lists are not serialized;
// they are rebuilt from the match arena on load.
func Save(path string, l *League) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for league: %w", err)
	}

	data, err := Marshal(l)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing league: %w", err)
	}

	return nil
}

// Load reads a league from disk and re-links teams to their matches.
func Load(path string) (*League, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading league: %w", err)
	}
	return Unmarshal(data)
}

// Marshal serializes a league to JSON.
func Marshal(l *League) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling league: %w", err)
	}
	return data, nil
}

// Unmarshal deserializes a league from JSON and rebuilds each team's
// chronological match list from the match arena.
func Unmarshal(data []byte) (*League, error) {
	var l League
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("unmarshaling league: %w", err)
	}
	if l.Teams == nil {
		l.Teams = make(map[string]*Team)
	}
	for name, t := range l.Teams {
		if t.Name == "" {
			t.Name = name
		}
		if t.Seasons == nil {
			t.Seasons = make(map[string]bool)
		}
	}
	for _, m := range l.Matches {
		for _, name := range []string{m.HomeTeam, m.AwayTeam} {
			t, ok := l.Teams[name]
			if !ok {
				return nil, fmt.Errorf("match %s/%d references unknown team %q", m.Season, m.Order, name)
			}
			t.Matches = append(t.Matches, m)
		}
	}
	return &l, nil
}
