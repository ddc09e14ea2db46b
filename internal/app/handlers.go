package app

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"prai/internal/coordinator"
	"prai/internal/diff"
	"prai/internal/store"
	"prai/internal/worker"
)

type triggerRequest struct {
	Repo        string `json:"repo"`
	PR          int    `json:"pr"`
	RequestedBy string `json:"requested_by"`
}

// triggerReview runs a review synchronously and returns the report.
// The webhook path goes through the queue instead; both end up in the
// same Processor.Process.
func (s *Server) triggerReview(w http.ResponseWriter, r *http.Request) {

	var req triggerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Repo == "" || req.PR <= 0 {
		http.Error(w, "expected {repo, pr}", http.StatusBadRequest)
		return
	}
	if req.RequestedBy == "" {
		req.RequestedBy = "api"
	}

	report, err := s.processor.Process(r.Context(), worker.Job{
		Repo:        req.Repo,
		PR:          req.PR,
		RequestedBy: req.RequestedBy,
	})
	if err != nil {
		writeTypedError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) latestReview(w http.ResponseWriter, r *http.Request) {

	repo := r.URL.Query().Get("repo")
	pr, _ := strconv.Atoi(r.URL.Query().Get("pr"))
	if repo == "" || pr <= 0 {
		http.Error(w, "expected repo and pr query params", http.StatusBadRequest)
		return
	}

	rec, err := s.store.Latest(r.Context(), repo, pr)
	if errors.Is(err, store.ErrNoReview) {
		http.Error(w, "no review recorded", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("store lookup failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func writeTypedError(w http.ResponseWriter, err error) {

	var notFound *coordinator.NotFoundError
	var fetch *coordinator.DiffFetchError
	var budgetErr *coordinator.BudgetError
	var malformed *diff.MalformedDiffError

	switch {
	case errors.Is(err, coordinator.ErrReviewInProgress):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &notFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &fetch) && fetch.RateLimited:
		http.Error(w, err.Error(), http.StatusTooManyRequests)
	case errors.As(err, &fetch):
		http.Error(w, err.Error(), http.StatusBadGateway)
	case errors.As(err, &budgetErr):
		http.Error(w, err.Error(), http.StatusTooManyRequests)
	case errors.As(err, &malformed):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
