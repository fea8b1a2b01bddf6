package server

import (
	"net/http"

	"github.com/jonathan/talentdesk/internal/types"
)

// handleScheduleInterview schedules an interview and advances the candidate.
//
// @Summary      Schedule an interview
// @Description  The candidate moves to interview_1, _2 or _3 by the number of completed interviews.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        body  body      types.ScheduleInterviewRequest  true  "Interview"
// @Success      201   {object}  MutationResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /interviews [post]
func (s *Server) handleScheduleInterview(w http.ResponseWriter, r *http.Request) {
	var req types.ScheduleInterviewRequest
	if err := decodeJSON(r, &req); err != nil {
		s.serviceError(w, r, err)
		return
	}

	interview, sync, err := s.svc.Interviews.Schedule(r.Context(), req)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.mutated(w, http.StatusCreated, interview, sync)
}

// handleGetInterview retrieves one interview.
func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	interview, err := s.svc.Interviews.Get(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, interview)
}

// handleCompleteInterview records the rating and feedback of a scheduled interview.
//
// @Summary      Complete an interview
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id    path      string                          true  "Interview ID"
// @Param        body  body      types.CompleteInterviewRequest  true  "Outcome"
// @Success      200   {object}  MutationResponse
// @Failure      409   {object}  map[string]string
// @Router       /interviews/{id}/complete [post]
func (s *Server) handleCompleteInterview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	var req types.CompleteInterviewRequest
	if err := decodeJSON(r, &req); err != nil {
		s.serviceError(w, r, err)
		return
	}

	interview, sync, err := s.svc.Interviews.Complete(r.Context(), id, req.Rating, req.Feedback)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.mutated(w, http.StatusOK, interview, sync)
}

// handleCancelInterview cancels a scheduled interview.
//
// @Summary      Cancel an interview
// @Tags         interviews
// @Param        id   path      string  true  "Interview ID"
// @Success      200  {object}  MutationResponse
// @Failure      409  {object}  map[string]string
// @Router       /interviews/{id}/cancel [post]
func (s *Server) handleCancelInterview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	interview, sync, err := s.svc.Interviews.Cancel(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.mutated(w, http.StatusOK, interview, sync)
}
