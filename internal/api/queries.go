package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/kickoff/kickoff/pkg/league"
	"github.com/kickoff/kickoff/pkg/leaguequery"
	"github.com/kickoff/kickoff/pkg/predict"
	"github.com/kickoff/kickoff/pkg/stats"
)

// loadLeague loads a dataset's current league graph, checking the cache
// first, then falling back to registry lookup + storage client.
func (h *Handler) loadLeague(ctx context.Context, datasetID string) (*league.League, error) {
	ds, err := h.datasetSvc.GetDataset(ctx, datasetID)
	if err != nil {
		return nil, fmt.Errorf("dataset metadata: %w", err)
	}
	if ds.LeagueRef == nil || *ds.LeagueRef == "" {
		return nil, fmt.Errorf("dataset %s has no seasons uploaded", datasetID)
	}

	if l := h.cache.Get(*ds.LeagueRef); l != nil {
		return l, nil
	}

	l, err := h.ingestionSvc.LoadLeague(ctx, ds.ID, *ds.LeagueRef)
	if err != nil {
		return nil, err
	}

	h.cache.Put(*ds.LeagueRef, l)
	return l, nil
}

func (h *Handler) handleTeams(w http.ResponseWriter, r *http.Request) {
	l, err := h.loadLeague(r.Context(), r.PathValue("datasetID"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	season := r.URL.Query().Get("season")
	writeJSON(w, http.StatusOK, map[string]any{
		"season": season,
		"teams":  l.TeamNames(season),
	})
}

func (h *Handler) handlePredict(w http.ResponseWriter, r *http.Request) {
	l, err := h.loadLeague(r.Context(), r.PathValue("datasetID"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	q := r.URL.Query()
	home, away, season := q.Get("home"), q.Get("away"), q.Get("season")
	if home == "" || away == "" || season == "" {
		writeError(w, http.StatusBadRequest, "home, away and season parameters required")
		return
	}

	opts := predict.Options{}
	if v := q.Get("depth"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid depth")
			return
		}
		opts.Depth = parsed
	}
	if v := q.Get("max_visits"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			opts.MaxVisits = parsed
		}
	}

	result, err := predict.Predict(l, home, away, season, opts)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleWinrate(w http.ResponseWriter, r *http.Request) {
	l, err := h.loadLeague(r.Context(), r.PathValue("datasetID"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	team := r.PathValue("team")
	season := r.URL.Query().Get("season")
	rate, err := stats.Winrate(l, team, season)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"team":    team,
		"season":  season,
		"winrate": rate,
	})
}

func (h *Handler) handleAverages(w http.ResponseWriter, r *http.Request) {
	l, err := h.loadLeague(r.Context(), r.PathValue("datasetID"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	team := r.PathValue("team")
	season := r.URL.Query().Get("season")
	avg, err := stats.TeamAverages(l, team, season)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"team":     team,
		"season":   season,
		"averages": avg,
		"league":   stats.SeasonAverages(l, season),
	})
}

func (h *Handler) handleHomeVsAway(w http.ResponseWriter, r *http.Request) {
	l, err := h.loadLeague(r.Context(), r.PathValue("datasetID"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	team := r.PathValue("team")
	season := r.URL.Query().Get("season")
	rates, err := stats.HomeVsAway(l, team, season)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rates)
}

// handleRecords serves the league record boards. The {kind} path segment
// selects the board: winrates, streaks, comebacks, mostgoals, fairplay
// or mostimproved.
func (h *Handler) handleRecords(w http.ResponseWriter, r *http.Request) {
	l, err := h.loadLeague(r.Context(), r.PathValue("datasetID"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	season := r.URL.Query().Get("season")
	topX := 5
	if v := r.URL.Query().Get("top"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			topX = parsed
		}
	}

	kind := r.PathValue("kind")
	var board any
	switch kind {
	case "winrates":
		board = stats.HighestWinRates(l, season, topX)
	case "streaks":
		board = stats.LongestWinStreaks(l, season, topX)
	case "comebacks":
		board = stats.BestComebacks(l, season, topX)
	case "mostgoals":
		board = stats.MostGoalsInMatch(l, season, topX)
	case "fairplay":
		board = stats.MostFairplay(l, season, topX)
	case "mostimproved":
		board = stats.MostImproved(l, season, topX)
	default:
		writeError(w, http.StatusNotFound, "unknown record board "+kind)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"kind":    kind,
		"season":  season,
		"records": board,
	})
}

func (h *Handler) handleFairestReferees(w http.ResponseWriter, r *http.Request) {
	l, err := h.loadLeague(r.Context(), r.PathValue("datasetID"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	topX := 5
	if v := r.URL.Query().Get("top"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			topX = parsed
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"referees": stats.FairestReferees(l, topX),
	})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, league.ErrTeamNotFound):
		return http.StatusNotFound
	case errors.Is(err, predict.ErrNoPath):
		return http.StatusNotFound
	case errors.Is(err, leaguequery.ErrInvalidDepth):
		return http.StatusBadRequest
	case errors.Is(err, leaguequery.ErrBudgetExceeded):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
