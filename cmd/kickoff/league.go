package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/kickoff/kickoff/pkg/config"
	"github.com/kickoff/kickoff/pkg/league"
	"github.com/kickoff/kickoff/pkg/loader"
)

// seasonPattern matches identifiers like "2010-11".
var seasonPattern = regexp.MustCompile(`^20\d{2}-\d{2}$`)

// loadLeague builds the league from the --data directory, falling back to
// the config file's data dir.
func loadLeague(dataDir string) (*league.League, error) {
	if dataDir == "" {
		cfg := loadConfig()
		dataDir = cfg.Data.Dir
	}
	l, err := loader.LoadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("loading league data: %w", err)
	}
	return l, nil
}

func loadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return config.DefaultConfig()
	}
	cfgFile := config.FindConfigFile(cwd)
	if cfgFile == "" {
		return config.DefaultConfig()
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

// validateSeason checks the "20XX-XX" season identifier format.
func validateSeason(season string) error {
	if !seasonPattern.MatchString(season) {
		return fmt.Errorf("invalid season %q (expected format 2010-11)", season)
	}
	return nil
}

// validateTeam checks the team exists, and optionally that it appeared in
// the given season.
func validateTeam(l *league.League, team, season string) error {
	t, err := l.GetTeam(team)
	if err != nil {
		return err
	}
	if season != "" && !t.PlayedIn(season) {
		return fmt.Errorf("team %q did not play in season %s", team, season)
	}
	return nil
}

func validateTopX(topX int) error {
	if topX <= 0 {
		return fmt.Errorf("--top must be positive, got %d", topX)
	}
	return nil
}
