// Package loader builds Kickoff league graphs from season CSV files in the
// football-data.co.uk column layout. Columns are located by header name, so
// extra columns and reordered files load fine.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/kickoff/kickoff/pkg/league"
)

var requiredColumns = []string{
	"HomeTeam", "AwayTeam", "FTHG", "FTAG", "FTR", "HTHG", "HTAG",
	"HS", "AS", "HST", "AST", "HF", "AF", "HY", "AY", "HR", "AR",
}

// LoadSeason parses one season's CSV from r into the league. Row order in
// the file is the play order; Match.Order is the 1-based row index.
func LoadSeason(l *league.League, season string, r io.Reader) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // football-data files have trailing ragged columns

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("season %s: reading header: %w", season, err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return fmt.Errorf("season %s: missing column %q", season, name)
		}
	}
	refereeCol, hasReferee := cols["Referee"]

	order := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("season %s: row %d: %w", season, order+1, err)
		}
		if blankRow(row) {
			continue
		}
		order++

		field := func(name string) string {
			i := cols[name]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		num := func(name string) (int, error) {
			v := field(name)
			if v == "" {
				return 0, fmt.Errorf("season %s: row %d: empty %s", season, order, name)
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return 0, fmt.Errorf("season %s: row %d: %s: %w", season, order, name, err)
			}
			return n, nil
		}

		home, away := field("HomeTeam"), field("AwayTeam")
		if home == "" || away == "" {
			return fmt.Errorf("season %s: row %d: missing team name", season, order)
		}

		referee := ""
		if hasReferee && refereeCol < len(row) {
			referee = strings.TrimSpace(row[refereeCol])
		}

		var nums [14]int
		for i, name := range []string{
			"HF", "HS", "HST", "HR", "HY", "HTHG", "FTHG",
			"AF", "AS", "AST", "AR", "AY", "HTAG", "FTAG",
		} {
			nums[i], err = num(name)
			if err != nil {
				return err
			}
		}

		winner := ""
		switch field("FTR") {
		case "H":
			winner = home
		case "A":
			winner = away
		case "D":
		default:
			return fmt.Errorf("season %s: row %d: bad FTR %q", season, order, field("FTR"))
		}

		m := &league.Match{
			Season:   season,
			HomeTeam: home,
			AwayTeam: away,
			Order:    order,
			Winner:   winner,
			Details: map[string]league.MatchDetails{
				home: {
					Fouls:         nums[0],
					Shots:         nums[1],
					ShotsOnTarget: nums[2],
					RedCards:      nums[3],
					YellowCards:   nums[4],
					HalfTimeGoals: nums[5],
					FullTimeGoals: nums[6],
					Referee:       referee,
				},
				away: {
					Fouls:         nums[7],
					Shots:         nums[8],
					ShotsOnTarget: nums[9],
					RedCards:      nums[10],
					YellowCards:   nums[11],
					HalfTimeGoals: nums[12],
					FullTimeGoals: nums[13],
					Referee:       referee,
				},
			},
		}
		if err := l.AddMatch(m); err != nil {
			return fmt.Errorf("season %s: row %d: %w", season, order, err)
		}
	}

	return nil
}

// LoadFile loads a single season CSV file. The season identifier is the file
// name without extension (e.g. "2010-11.csv" -> "2010-11").
func LoadFile(l *league.League, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	season := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return LoadSeason(l, season, f)
}

// LoadDir builds a league from every .csv file in dir, loading seasons in
// lexical order so earlier seasons come first in each team's match list.
func LoadDir(dir string) (*league.League, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading data directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no season CSV files in %s", dir)
	}
	sort.Strings(files)

	l := league.New()
	for _, name := range files {
		if err := LoadFile(l, filepath.Join(dir, name)); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func blankRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
