// Package api implements the hosted Kickoff REST API.
// It provides dataset upload and query endpoints backed by Postgres and blob storage.
package api

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/kickoff/kickoff/internal/dataset"
	"github.com/kickoff/kickoff/internal/ingestion"
)

// Handler is the top-level API handler for the hosted Kickoff service.
type Handler struct {
	db           *sql.DB
	datasetSvc   *dataset.Service
	ingestionSvc *ingestion.Service
	cache        *LeagueCache
}

// NewHandler creates a new API handler.
func NewHandler(db *sql.DB, datasetSvc *dataset.Service, ingestionSvc *ingestion.Service, cache *LeagueCache) *Handler {
	if cache == nil {
		cache = NewLeagueCacheFromEnv()
	}
	return &Handler{
		db:           db,
		datasetSvc:   datasetSvc,
		ingestionSvc: ingestionSvc,
		cache:        cache,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Write endpoints (auth-protected)
	mux.HandleFunc("POST /api/v1/datasets", h.handleCreateDataset)
	mux.HandleFunc("POST /api/v1/datasets/{datasetID}/seasons", h.handleUploadSeason)
	mux.HandleFunc("DELETE /api/v1/datasets/{datasetID}", h.handleDeleteDataset)

	// Read endpoints
	mux.HandleFunc("GET /api/datasets", h.handleListDatasets)
	mux.HandleFunc("GET /api/datasets/{datasetID}", h.handleGetDataset)
	mux.HandleFunc("GET /api/datasets/{datasetID}/seasons", h.handleListSeasons)
	mux.HandleFunc("GET /api/datasets/{datasetID}/teams", h.handleTeams)
	mux.HandleFunc("GET /api/datasets/{datasetID}/predict", h.handlePredict)
	mux.HandleFunc("GET /api/datasets/{datasetID}/teams/{team}/winrate", h.handleWinrate)
	mux.HandleFunc("GET /api/datasets/{datasetID}/teams/{team}/averages", h.handleAverages)
	mux.HandleFunc("GET /api/datasets/{datasetID}/teams/{team}/homevsaway", h.handleHomeVsAway)
	mux.HandleFunc("GET /api/datasets/{datasetID}/records/{kind}", h.handleRecords)
	mux.HandleFunc("GET /api/datasets/{datasetID}/referees/fairest", h.handleFairestReferees)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
