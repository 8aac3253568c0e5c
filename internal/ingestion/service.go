package ingestion

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/kickoff/kickoff/internal/dataset"
	"github.com/kickoff/kickoff/pkg/league"
	"github.com/kickoff/kickoff/pkg/loader"
)

// UploadResult summarizes a completed season upload.
type UploadResult struct {
	DatasetID  string `json:"datasetId"`
	Season     string `json:"season"`
	MatchCount int    `json:"matchCount"`
	LeagueID   string `json:"leagueId"`
	TeamCount  int    `json:"teamCount"`
	TotalGames int    `json:"totalGames"`
}

// Service orchestrates the ingestion pipeline.
type Service struct {
	db       *sql.DB
	datasets *dataset.Service
	storage  StorageClient
}

// NewService creates a new ingestion Service.
func NewService(db *sql.DB, datasets *dataset.Service, storage StorageClient) *Service {
	return &Service{db: db, datasets: datasets, storage: storage}
}

// UploadSeason runs the full pipeline for one season CSV: validate it parses,
// store the raw blob, upsert the season row, then rebuild the dataset's
// league graph from all stored seasons and record the new snapshot.
func (s *Service) UploadSeason(ctx context.Context, datasetID, season string, csvData []byte) (*UploadResult, error) {
	ds, err := s.datasets.GetDataset(ctx, datasetID)
	if err != nil {
		return nil, fmt.Errorf("lookup dataset: %w", err)
	}

	// 1. Parse in isolation first so a bad file never reaches storage.
	probe := league.New()
	if err := loader.LoadSeason(probe, season, bytes.NewReader(csvData)); err != nil {
		return nil, fmt.Errorf("parse season CSV: %w", err)
	}
	matchCount := len(probe.Matches)

	// 2. Store the raw CSV.
	if err := s.storage.PutSeasonCSV(ctx, ds.ID, season, csvData); err != nil {
		return nil, fmt.Errorf("put season blob: %w", err)
	}

	if _, err := s.datasets.UpsertSeason(ctx, ds.ID, season, matchCount, seasonRef(ds.ID, season)); err != nil {
		return nil, fmt.Errorf("upsert season row: %w", err)
	}

	// 3. Rebuild the league from every stored season.
	leagueID, built, err := s.rebuildLeague(ctx, ds.ID)
	if err != nil {
		return nil, fmt.Errorf("rebuild league: %w", err)
	}

	log.Printf("ingested season %s into dataset %s: matches=%d league=%s", season, ds.Name, matchCount, leagueID)
	return &UploadResult{
		DatasetID:  ds.ID,
		Season:     season,
		MatchCount: matchCount,
		LeagueID:   leagueID,
		TeamCount:  len(built.Teams),
		TotalGames: len(built.Matches),
	}, nil
}

// rebuildLeague reparses every stored season of the dataset in season order,
// stores the resulting league snapshot, and points the dataset at it.
func (s *Service) rebuildLeague(ctx context.Context, datasetID string) (string, *league.League, error) {
	seasons, err := s.datasets.ListSeasons(ctx, datasetID)
	if err != nil {
		return "", nil, fmt.Errorf("list seasons: %w", err)
	}
	if len(seasons) == 0 {
		return "", nil, fmt.Errorf("dataset %s has no seasons", datasetID)
	}

	l := league.New()
	for _, se := range seasons {
		data, err := s.storage.GetSeasonCSV(ctx, datasetID, se.Season)
		if err != nil {
			return "", nil, fmt.Errorf("load season %s blob: %w", se.Season, err)
		}
		if err := loader.LoadSeason(l, se.Season, bytes.NewReader(data)); err != nil {
			return "", nil, fmt.Errorf("parse season %s: %w", se.Season, err)
		}
	}

	data, err := league.Marshal(l)
	if err != nil {
		return "", nil, fmt.Errorf("marshal league: %w", err)
	}

	leagueID := uuid.NewString()
	if err := s.storage.PutLeague(ctx, datasetID, leagueID, data); err != nil {
		return "", nil, fmt.Errorf("put league blob: %w", err)
	}
	if err := s.datasets.SetLeagueRef(ctx, datasetID, leagueID); err != nil {
		return "", nil, fmt.Errorf("set league ref: %w", err)
	}
	return leagueID, l, nil
}

// LoadLeague fetches a dataset's current league snapshot from blob storage.
func (s *Service) LoadLeague(ctx context.Context, datasetID, leagueID string) (*league.League, error) {
	data, err := s.storage.GetLeague(ctx, datasetID, leagueID)
	if err != nil {
		return nil, fmt.Errorf("load league blob: %w", err)
	}
	l, err := league.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal league: %w", err)
	}
	return l, nil
}

func seasonRef(datasetID, season string) string {
	return fmt.Sprintf("%s/seasons/%s.csv", datasetID, season)
}
