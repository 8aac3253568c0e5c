// Package ingestion orchestrates the hosted Kickoff pipeline: season CSV
// upload, league rebuild, and blob storage of both.
package ingestion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// StorageClient abstracts blob storage for season CSVs and league snapshots.
type StorageClient interface {
	PutSeasonCSV(ctx context.Context, datasetID, season string, data []byte) error
	GetSeasonCSV(ctx context.Context, datasetID, season string) ([]byte, error)
	PutLeague(ctx context.Context, datasetID, leagueID string, data []byte) error
	GetLeague(ctx context.Context, datasetID, leagueID string) ([]byte, error)
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(datasetID, kind, id, ext string) string {
	return filepath.Join(s.BaseDir, datasetID, kind, id+ext)
}

func (s *LocalStorage) put(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// PutSeasonCSV stores a raw season CSV.
func (s *LocalStorage) PutSeasonCSV(ctx context.Context, datasetID, season string, data []byte) error {
	return s.put(s.path(datasetID, "seasons", season, ".csv"), data)
}

// GetSeasonCSV retrieves a raw season CSV.
func (s *LocalStorage) GetSeasonCSV(ctx context.Context, datasetID, season string) ([]byte, error) {
	return os.ReadFile(s.path(datasetID, "seasons", season, ".csv"))
}

// PutLeague stores a built league snapshot.
func (s *LocalStorage) PutLeague(ctx context.Context, datasetID, leagueID string, data []byte) error {
	return s.put(s.path(datasetID, "leagues", leagueID, ".json"), data)
}

// GetLeague retrieves a built league snapshot.
func (s *LocalStorage) GetLeague(ctx context.Context, datasetID, leagueID string) ([]byte, error) {
	return os.ReadFile(s.path(datasetID, "leagues", leagueID, ".json"))
}
