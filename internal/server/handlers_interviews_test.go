package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talentdesk/internal/types"
)

func scheduleInterview(t *testing.T, ts *testServer, candidateID, date string) types.Interview {
	t.Helper()
	w := ts.admin(t, http.MethodPost, "/interviews", types.ScheduleInterviewRequest{
		CandidateID:   candidateID,
		InterviewerID: "int-7",
		Date:          date,
		Time:          "10:30",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	i, _ := decodeData[types.Interview](t, w)
	return i
}

func candidateStatus(t *testing.T, ts *testServer, id string) types.CandidateStatus {
	t.Helper()
	w := ts.admin(t, http.MethodGet, "/candidates/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var c types.Candidate
	decodeJSONBody(t, w, &c)
	return c.Status
}

func TestHandleScheduleInterview_AdvancesCandidate(t *testing.T) {
	ts := newTestServer(t)
	posting := createPosting(t, ts, backendPosting())
	c := createCandidate(t, ts, posting.ID, "ada")

	first := scheduleInterview(t, ts, c.ID, "2026-03-02")
	assert.Equal(t, types.InterviewScheduled, first.Status)
	assert.Equal(t, types.InterviewPhone, first.InterviewType)
	assert.Equal(t, types.DefaultInterviewDuration, first.DurationMinutes)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC), first.ScheduledDate.UTC())
	assert.Equal(t, types.CandidateInterview1, candidateStatus(t, ts, c.ID))

	w := ts.admin(t, http.MethodPost, "/interviews/"+first.ID+"/complete", types.CompleteInterviewRequest{Rating: 4, Feedback: "strong"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	done, _ := decodeData[types.Interview](t, w)
	assert.Equal(t, types.InterviewCompleted, done.Status)
	assert.Equal(t, 4, done.Rating)

	scheduleInterview(t, ts, c.ID, "2026-03-05")
	assert.Equal(t, types.CandidateInterview2, candidateStatus(t, ts, c.ID))

	w = ts.admin(t, http.MethodGet, "/candidates/"+c.ID+"/interviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList[types.Interview](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, "2026-03-05", list[0].ScheduledDate.Format("2006-01-02"))
}

func TestHandleFinishInterview_TerminalStates(t *testing.T) {
	ts := newTestServer(t)
	posting := createPosting(t, ts, backendPosting())
	c := createCandidate(t, ts, posting.ID, "ada")
	i := scheduleInterview(t, ts, c.ID, "2026-03-02")

	w := ts.admin(t, http.MethodPost, "/interviews/"+i.ID+"/complete", types.CompleteInterviewRequest{Rating: 9})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.admin(t, http.MethodPost, "/interviews/"+i.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.admin(t, http.MethodPost, "/interviews/"+i.ID+"/complete", types.CompleteInterviewRequest{Rating: 3})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = ts.admin(t, http.MethodPost, "/interviews/"+i.ID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = ts.admin(t, http.MethodGet, "/interviews/"+i.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got types.Interview
	decodeJSONBody(t, w, &got)
	assert.Equal(t, types.InterviewCancelled, got.Status)
}

func TestHandleScheduleInterview_Errors(t *testing.T) {
	ts := newTestServer(t)
	posting := createPosting(t, ts, backendPosting())
	c := createCandidate(t, ts, posting.ID, "ada")

	tests := []struct {
		name       string
		req        types.ScheduleInterviewRequest
		wantStatus int
	}{
		{"unknown candidate", types.ScheduleInterviewRequest{CandidateID: "ghost", InterviewerID: "i", Date: "2026-03-02"}, http.StatusNotFound},
		{"bad date", types.ScheduleInterviewRequest{CandidateID: c.ID, InterviewerID: "i", Date: "02/03/2026"}, http.StatusBadRequest},
		{"missing interviewer", types.ScheduleInterviewRequest{CandidateID: c.ID, Date: "2026-03-02"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.admin(t, http.MethodPost, "/interviews", tt.req)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}

	assert.Equal(t, types.CandidateNew, candidateStatus(t, ts, c.ID))
	assert.Equal(t, http.StatusNotFound, ts.admin(t, http.MethodGet, "/interviews/ghost", nil).Code)
}
