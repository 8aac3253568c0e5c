package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/kickoff/kickoff/internal/dataset"
)

type createDatasetRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (h *Handler) handleCreateDataset(w http.ResponseWriter, r *http.Request) {
	var req createDatasetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	ds, err := h.datasetSvc.CreateDataset(r.Context(), req.Name, req.Description)
	if err != nil {
		writeError(w, http.StatusConflict, "create dataset: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, ds)
}

func (h *Handler) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	datasets, err := h.datasetSvc.ListDatasets(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list datasets")
		return
	}
	if datasets == nil {
		datasets = []dataset.Dataset{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"datasets": datasets})
}

func (h *Handler) handleGetDataset(w http.ResponseWriter, r *http.Request) {
	ds, err := h.datasetSvc.GetDataset(r.Context(), r.PathValue("datasetID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "dataset not found")
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

func (h *Handler) handleDeleteDataset(w http.ResponseWriter, r *http.Request) {
	if err := h.datasetSvc.DeleteDataset(r.Context(), r.PathValue("datasetID")); err != nil {
		writeError(w, http.StatusInternalServerError, "delete dataset")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.datasetSvc.ListSeasons(r.Context(), r.PathValue("datasetID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list seasons")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"seasons": seasons})
}

// handleUploadSeason ingests one season CSV. The request body is the raw CSV;
// the season identifier comes from the ?season= query parameter.
func (h *Handler) handleUploadSeason(w http.ResponseWriter, r *http.Request) {
	datasetID := r.PathValue("datasetID")
	season := r.URL.Query().Get("season")
	if season == "" {
		writeError(w, http.StatusBadRequest, "season parameter required")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 16<<20))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "read body: "+err.Error())
		return
	}
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, "empty body")
		return
	}

	result, err := h.ingestionSvc.UploadSeason(r.Context(), datasetID, season, body)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, result)
}
