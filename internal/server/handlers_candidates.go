package server

import (
	"context"
	"net/http"

	"github.com/jonathan/talentdesk/internal/recruitment"
	"github.com/jonathan/talentdesk/internal/types"
)

// handleListCandidates lists candidates, most recent application first.
//
// @Summary      List candidates
// @Tags         candidates
// @Produce      json
// @Param        job_posting_id  query     string  false  "Job posting ID"
// @Param        status          query     string  false  "Candidate status"
// @Success      200             {object}  map[string]interface{}
// @Router       /candidates [get]
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := types.CandidateFilter{
		JobPostingID: q.Get("job_posting_id"),
		Status:       q.Get("status"),
	}

	candidates, err := s.svc.Candidates.List(r.Context(), filter)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, newList(candidates))
}

// handleCreateCandidate registers an applicant for a job posting.
//
// @Summary      Create a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      types.CreateCandidateRequest  true  "Applicant"
// @Success      201   {object}  MutationResponse
// @Failure      400   {object}  map[string]string
// @Router       /candidates [post]
func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCandidateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.serviceError(w, r, err)
		return
	}

	candidate, sync, err := s.svc.Candidates.Create(r.Context(), req)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.mutated(w, http.StatusCreated, candidate, sync)
}

// handleGetCandidate retrieves one candidate.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	candidate, err := s.svc.Candidates.Get(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleUpdateCandidateStatus moves a candidate to another hiring stage.
//
// @Summary      Update candidate status
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Candidate ID"
// @Param        body  body      types.UpdateStatusRequest  true  "Target status"
// @Success      200   {object}  MutationResponse
// @Failure      409   {object}  map[string]string
// @Router       /candidates/{id}/status [post]
func (s *Server) handleUpdateCandidateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	var req types.UpdateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		s.serviceError(w, r, err)
		return
	}

	candidate, sync, err := s.svc.Candidates.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.mutated(w, http.StatusOK, candidate, sync)
}

type candidateAction func(ctx context.Context, id string) (*types.Candidate, recruitment.SyncState, error)

// quickAction serves the accept, waiting-list and reject shortcuts.
func (s *Server) quickAction(action candidateAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			s.serviceError(w, r, err)
			return
		}

		candidate, sync, err := action(r.Context(), id)
		if err != nil {
			s.serviceError(w, r, err)
			return
		}

		s.mutated(w, http.StatusOK, candidate, sync)
	}
}

// handleRateCandidate sets the recruiter rating (0-5).
//
// @Summary      Rate a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Candidate ID"
// @Param        body  body      types.RateCandidateRequest  true  "Rating"
// @Success      200   {object}  MutationResponse
// @Router       /candidates/{id}/rate [post]
func (s *Server) handleRateCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	var req types.RateCandidateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.serviceError(w, r, err)
		return
	}

	candidate, sync, err := s.svc.Candidates.Rate(r.Context(), id, req.Rating)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.mutated(w, http.StatusOK, candidate, sync)
}

// handleListCandidateInterviews lists the interviews of a candidate or an
// imported CV, newest first.
func (s *Server) handleListCandidateInterviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	interviews, err := s.svc.Interviews.ListByCandidate(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, newList(interviews))
}
