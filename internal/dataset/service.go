// Package dataset manages the hosted Kickoff registry: datasets (one per
// league data source) and the seasons uploaded into them.
package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Service provides dataset and season management backed by Postgres.
type Service struct {
	db *sql.DB
}

// Dataset represents one league data source (e.g. "premier-league").
type Dataset struct {
	ID          string
	Name        string
	Description *string
	LeagueRef   *string // blob storage ref of the built league snapshot
	CreatedAt   time.Time
}

// Season represents one uploaded season of a dataset.
type Season struct {
	ID         string
	DatasetID  string
	Season     string
	MatchCount int
	StorageRef string // blob storage ref of the raw CSV
	CreatedAt  time.Time
}

// NewService creates a new dataset Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// CreateDataset creates a new dataset.
func (s *Service) CreateDataset(ctx context.Context, name string, description *string) (*Dataset, error) {
	d := &Dataset{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO datasets (name, description)
		 VALUES ($1, $2)
		 RETURNING id, name, description, league_ref, created_at`,
		name, description,
	).Scan(&d.ID, &d.Name, &d.Description, &d.LeagueRef, &d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create dataset %s: %w", name, err)
	}
	return d, nil
}

// GetDataset retrieves a dataset by ID.
func (s *Service) GetDataset(ctx context.Context, id string) (*Dataset, error) {
	d := &Dataset{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, league_ref, created_at
		 FROM datasets WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.Name, &d.Description, &d.LeagueRef, &d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get dataset %s: %w", id, err)
	}
	return d, nil
}

// GetDatasetByName looks up a dataset by name.
func (s *Service) GetDatasetByName(ctx context.Context, name string) (*Dataset, error) {
	d := &Dataset{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, league_ref, created_at
		 FROM datasets WHERE name = $1`,
		name,
	).Scan(&d.ID, &d.Name, &d.Description, &d.LeagueRef, &d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get dataset by name %s: %w", name, err)
	}
	return d, nil
}

// EnsureDataset gets or creates a dataset by name.
func (s *Service) EnsureDataset(ctx context.Context, name string) (*Dataset, error) {
	d, err := s.GetDatasetByName(ctx, name)
	if err == nil {
		return d, nil
	}
	d, err = s.CreateDataset(ctx, name, nil)
	if err != nil {
		// Could be a race condition; try getting again
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return s.GetDatasetByName(ctx, name)
		}
		return nil, fmt.Errorf("ensure dataset: %w", err)
	}
	return d, nil
}

// ListDatasets returns all datasets, ordered by name.
func (s *Service) ListDatasets(ctx context.Context) ([]Dataset, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, league_ref, created_at
		 FROM datasets ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	defer rows.Close()

	var datasets []Dataset
	for rows.Next() {
		var d Dataset
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.LeagueRef, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan dataset: %w", err)
		}
		datasets = append(datasets, d)
	}
	return datasets, rows.Err()
}

// SetLeagueRef records the blob ref of a dataset's current league snapshot.
func (s *Service) SetLeagueRef(ctx context.Context, datasetID, ref string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE datasets SET league_ref = $1 WHERE id = $2`,
		ref, datasetID,
	)
	if err != nil {
		return fmt.Errorf("set league ref: %w", err)
	}
	return nil
}

// DeleteDataset removes a dataset and its seasons.
func (s *Service) DeleteDataset(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM datasets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete dataset %s: %w", id, err)
	}
	return nil
}

// UpsertSeason creates or replaces a season record for a dataset.
func (s *Service) UpsertSeason(ctx context.Context, datasetID, season string, matchCount int, storageRef string) (*Season, error) {
	se := &Season{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO seasons (dataset_id, season, match_count, storage_ref)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (dataset_id, season) DO UPDATE
		   SET match_count = EXCLUDED.match_count,
		       storage_ref = EXCLUDED.storage_ref
		 RETURNING id, dataset_id, season, match_count, storage_ref, created_at`,
		datasetID, season, matchCount, storageRef,
	).Scan(&se.ID, &se.DatasetID, &se.Season, &se.MatchCount, &se.StorageRef, &se.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert season %s/%s: %w", datasetID, season, err)
	}
	return se, nil
}

// ListSeasons returns all seasons of a dataset, ordered by identifier.
func (s *Service) ListSeasons(ctx context.Context, datasetID string) ([]Season, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, dataset_id, season, match_count, storage_ref, created_at
		 FROM seasons WHERE dataset_id = $1 ORDER BY season`,
		datasetID,
	)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	defer rows.Close()

	var seasons []Season
	for rows.Next() {
		var se Season
		if err := rows.Scan(&se.ID, &se.DatasetID, &se.Season, &se.MatchCount, &se.StorageRef, &se.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan season: %w", err)
		}
		seasons = append(seasons, se)
	}
	return seasons, rows.Err()
}
