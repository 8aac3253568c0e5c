package dataset

import (
	"testing"
)

func TestDatasetStruct(t *testing.T) {
	desc := "English top flight"
	ref := "abc-123"
	ds := Dataset{
		ID:          "ds-uuid-1",
		Name:        "premier-league",
		Description: &desc,
		LeagueRef:   &ref,
	}

	if ds.Name != "premier-league" {
		t.Errorf("Name = %q, want %q", ds.Name, "premier-league")
	}
	if *ds.Description != desc {
		t.Errorf("Description = %q, want %q", *ds.Description, desc)
	}
	if *ds.LeagueRef != ref {
		t.Errorf("LeagueRef = %q, want %q", *ds.LeagueRef, ref)
	}
}

func TestDatasetOptionalFields(t *testing.T) {
	ds := Dataset{ID: "ds-1", Name: "bundesliga"}
	if ds.Description != nil {
		t.Errorf("Description = %v, want nil", ds.Description)
	}
	if ds.LeagueRef != nil {
		t.Errorf("LeagueRef = %v, want nil", ds.LeagueRef)
	}
}

func TestSeasonStruct(t *testing.T) {
	se := Season{
		ID:         "se-uuid-1",
		DatasetID:  "ds-uuid-1",
		Season:     "2010-11",
		MatchCount: 380,
		StorageRef: "ds-uuid-1/seasons/2010-11.csv",
	}

	if se.Season != "2010-11" {
		t.Errorf("Season = %q, want %q", se.Season, "2010-11")
	}
	if se.MatchCount != 380 {
		t.Errorf("MatchCount = %d, want 380", se.MatchCount)
	}
	if se.StorageRef != "ds-uuid-1/seasons/2010-11.csv" {
		t.Errorf("StorageRef = %q", se.StorageRef)
	}
}

func TestNewService(t *testing.T) {
	// NewService should not panic with nil db (it just stores the reference).
	svc := NewService(nil)
	if svc == nil {
		t.Fatal("NewService returned nil")
	}
}

func TestServiceMethodSet(t *testing.T) {
	// The Service methods all require a real Postgres database; full
	// integration tests need a test instance. Pin the method set here so
	// signature changes surface at compile time.
	svc := &Service{}
	if svc.db != nil {
		t.Error("zero-value Service should have nil db")
	}

	_ = svc.CreateDataset
	_ = svc.GetDataset
	_ = svc.GetDatasetByName
	_ = svc.EnsureDataset
	_ = svc.ListDatasets
	_ = svc.SetLeagueRef
	_ = svc.DeleteDataset
	_ = svc.UpsertSeason
	_ = svc.ListSeasons
}
