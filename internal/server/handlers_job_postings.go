package server

import (
	"net/http"

	"github.com/jonathan/talentdesk/internal/types"
)

// handleListJobPostings lists job postings with optional filters
//
// @Summary      List job postings
// @Tags         job-postings
// @Produce      json
// @Param        department     query     string  false  "Department (case-insensitive)"
// @Param        status         query     string  false  "draft, open, closed or on_hold"
// @Param        position_type  query     string  false  "full_time, part_time, contract or internship"
// @Param        search         query     string  false  "Substring of title or description"
// @Success      200            {object}  map[string]interface{}
// @Router       /job-postings [get]
func (s *Server) handleListJobPostings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := types.JobPostingFilter{
		Department:   q.Get("department"),
		Status:       q.Get("status"),
		PositionType: q.Get("position_type"),
		Search:       q.Get("search"),
	}

	postings, err := s.svc.JobPostings.List(r.Context(), filter)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, newList(postings))
}

// handleCreateJobPosting creates a job posting
//
// @Summary      Create a job posting
// @Tags         job-postings
// @Accept       json
// @Produce      json
// @Param        body  body      types.JobPostingInput  true  "Posting"
// @Success      201   {object}  MutationResponse
// @Failure      400   {object}  map[string]string
// @Router       /job-postings [post]
func (s *Server) handleCreateJobPosting(w http.ResponseWriter, r *http.Request) {
	var in types.JobPostingInput
	if err := decodeJSON(r, &in); err != nil {
		s.serviceError(w, r, err)
		return
	}

	posting, sync, err := s.svc.JobPostings.Create(r.Context(), in)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.mutated(w, http.StatusCreated, posting, sync)
}

// handleGetJobPosting retrieves a job posting by its ID
func (s *Server) handleGetJobPosting(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	posting, err := s.svc.JobPostings.Get(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, posting)
}

// handleUpdateJobPosting replaces the editable fields of a job posting
//
// @Summary      Update a job posting
// @Tags         job-postings
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Job posting ID"
// @Param        body  body      types.JobPostingInput  true  "Posting"
// @Success      200   {object}  MutationResponse
// @Failure      404   {object}  map[string]string
// @Router       /job-postings/{id} [put]
func (s *Server) handleUpdateJobPosting(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	var in types.JobPostingInput
	if err := decodeJSON(r, &in); err != nil {
		s.serviceError(w, r, err)
		return
	}

	posting, sync, err := s.svc.JobPostings.Update(r.Context(), id, in)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.mutated(w, http.StatusOK, posting, sync)
}

// handleDeleteJobPosting deletes a job posting
//
// @Summary      Delete a job posting
// @Tags         job-postings
// @Param        id   path      string  true  "Job posting ID"
// @Success      200  {object}  MutationResponse
// @Failure      404  {object}  map[string]string
// @Router       /job-postings/{id} [delete]
func (s *Server) handleDeleteJobPosting(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	sync, err := s.svc.JobPostings.Delete(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.mutated(w, http.StatusOK, map[string]string{"id": id}, sync)
}
