package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jonathan/resume-matcher/internal/trends"
	"github.com/jonathan/resume-matcher/internal/types"
)

// AnalyzeRequest represents the request body for /api/analyze
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text"`
}

// MatchRequest represents the request body for /api/match
type MatchRequest struct {
	ResumeText string `json:"resume_text"`
	Limit      int    `json:"limit,omitempty"`
}

// MatchResponse represents the response for /api/match
type MatchResponse struct {
	Matches []types.MatchResult `json:"matches"`
	Total   int                 `json:"total"`
}

// JobsResponse represents the response for GET /api/jobs
type JobsResponse struct {
	Jobs  []types.JobPosting `json:"jobs"`
	Total int                `json:"total"`
}

// handleAnalyze analyzes resume text and returns the full analysis result
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		malformed := &ErrMalformedBody{Cause: err}
		s.errorResponse(w, HTTPStatus(malformed), malformed.Error())
		return
	}
	if req.ResumeText == "" {
		verr := &ErrValidation{Field: "resume_text", Message: "is required"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.analyzer.AnalyzeResume(req.ResumeText))
}

// handleMatch analyzes resume text and ranks the catalog against it
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		malformed := &ErrMalformedBody{Cause: err}
		s.errorResponse(w, HTTPStatus(malformed), malformed.Error())
		return
	}
	if req.ResumeText == "" {
		verr := &ErrValidation{Field: "resume_text", Message: "is required"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	jobs, err := s.store.ListActiveJobPostings(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list job postings")
		s.errorResponse(w, HTTPStatus(err), "failed to load job catalog")
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.matchLimit
	}

	result := s.analyzer.AnalyzeResume(req.ResumeText)
	matches := s.matcher.FindMatches(result.Profile, jobs, limit)

	s.jsonResponse(w, http.StatusOK, MatchResponse{Matches: matches, Total: len(matches)})
}

// handleListJobs returns all active job postings
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.store.ListActiveJobPostings(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list job postings")
		s.errorResponse(w, HTTPStatus(err), "failed to load job catalog")
		return
	}
	if jobs == nil {
		jobs = []types.JobPosting{}
	}

	s.jsonResponse(w, http.StatusOK, JobsResponse{Jobs: jobs, Total: len(jobs)})
}

// handleCreateJob validates and stores a new job posting
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	// New postings default to active unless the body says otherwise.
	job := types.JobPosting{IsActive: true}
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		malformed := &ErrMalformedBody{Cause: err}
		s.errorResponse(w, HTTPStatus(malformed), malformed.Error())
		return
	}
	if err := job.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job posting: "+err.Error())
		return
	}
	if job.PostedDate.IsZero() {
		job.PostedDate = time.Now().UTC()
	}

	if err := s.store.InsertJobPosting(r.Context(), &job); err != nil {
		s.log.Error().Err(err).Msg("failed to insert job posting")
		s.errorResponse(w, HTTPStatus(err), "failed to store job posting")
		return
	}

	s.jsonResponse(w, http.StatusCreated, job)
}

// handleTrends aggregates catalog-wide market statistics
func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.store.ListActiveJobPostings(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list job postings")
		s.errorResponse(w, HTTPStatus(err), "failed to load job catalog")
		return
	}

	report, err := trends.Report(jobs)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleHealth returns service health and the active catalog size
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.store.ListActiveJobPostings(r.Context())
	if err != nil {
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"status": "healthy", "jobs": len(jobs)})
}
