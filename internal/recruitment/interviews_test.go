package recruitment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talentdesk/internal/ingestion"
	"github.com/jonathan/talentdesk/internal/localstore"
	"github.com/jonathan/talentdesk/internal/types"
)

func scheduleFor(candidateID, date string) types.ScheduleInterviewRequest {
	return types.ScheduleInterviewRequest{
		CandidateID:   candidateID,
		InterviewerID: "emp-1",
		Date:          date,
		Time:          "10:30",
	}
}

func TestSchedule_Defaults(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	c := seedCandidate(t, svc)

	i, _, err := svc.Interviews.Schedule(context.Background(), scheduleFor(c.ID, "2026-05-01"))
	require.NoError(t, err)

	assert.Equal(t, types.InterviewScheduled, i.Status)
	assert.Equal(t, types.DefaultInterviewDuration, i.DurationMinutes)
	assert.Equal(t, types.DefaultInterviewLocation, i.Location)
	assert.Equal(t, types.InterviewPhone, i.InterviewType)
	assert.Equal(t, "Ada Lovelace", i.CandidateName)
	assert.Equal(t, time.Date(2026, 5, 1, 10, 30, 0, 0, time.UTC), i.ScheduledDate)
}

func TestSchedule_ValidationWritesNothing(t *testing.T) {
	tests := []struct {
		name  string
		req   types.ScheduleInterviewRequest
		field string
	}{
		{"missing candidate", types.ScheduleInterviewRequest{InterviewerID: "emp-1", Date: "2026-05-01"}, "candidate_id"},
		{"missing interviewer", types.ScheduleInterviewRequest{CandidateID: "c", Date: "2026-05-01"}, "interviewer_id"},
		{"blank interviewer", types.ScheduleInterviewRequest{CandidateID: "c", InterviewerID: "  ", Date: "2026-05-01"}, "interviewer_id"},
		{"missing date", types.ScheduleInterviewRequest{CandidateID: "c", InterviewerID: "emp-1"}, "date"},
		{"bad date", types.ScheduleInterviewRequest{CandidateID: "c", InterviewerID: "emp-1", Date: "01/05/2026"}, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repos := newTestService(t, Options{})

			_, _, err := svc.Interviews.Schedule(context.Background(), tt.req)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)

			stored, err := repos.Interviews.All(context.Background())
			require.NoError(t, err)
			assert.Empty(t, stored)
		})
	}
}

func TestSchedule_AdvancesStageFromCompletedCount(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()
	c := seedCandidate(t, svc)

	first, _, err := svc.Interviews.Schedule(ctx, scheduleFor(c.ID, "2026-05-01"))
	require.NoError(t, err)
	got, err := svc.Candidates.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, types.CandidateInterview1, got.Status)

	_, _, err = svc.Interviews.Complete(ctx, first.ID, 4, "solid fundamentals")
	require.NoError(t, err)

	second, _, err := svc.Interviews.Schedule(ctx, scheduleFor(c.ID, "2026-05-08"))
	require.NoError(t, err)
	got, err = svc.Candidates.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, types.CandidateInterview2, got.Status)

	_, _, err = svc.Interviews.Complete(ctx, second.ID, 5, "")
	require.NoError(t, err)
	_, _, err = svc.Interviews.Schedule(ctx, scheduleFor(c.ID, "2026-05-15"))
	require.NoError(t, err)
	got, err = svc.Candidates.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, types.CandidateInterview3, got.Status)
}

func TestSchedule_CancelledInterviewsDoNotCount(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()
	c := seedCandidate(t, svc)

	first, _, err := svc.Interviews.Schedule(ctx, scheduleFor(c.ID, "2026-05-01"))
	require.NoError(t, err)
	_, _, err = svc.Interviews.Cancel(ctx, first.ID)
	require.NoError(t, err)

	_, _, err = svc.Interviews.Schedule(ctx, scheduleFor(c.ID, "2026-05-02"))
	require.NoError(t, err)
	got, err := svc.Candidates.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, types.CandidateInterview1, got.Status)
}

func TestSchedule_ImportedCVMustBeApproved(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()
	report, err := svc.CVs.Import(ctx, []ingestion.Upload{{FileName: "jane.txt", Data: []byte(janeCV)}}, nil)
	require.NoError(t, err)
	cv := report.Profiles[0]

	_, _, err = svc.Interviews.Schedule(ctx, scheduleFor(cv.ID, "2026-05-01"))
	assert.True(t, IsInvariant(err))

	_, _, err = svc.CVs.Review(ctx, cv.ID, true, "admin", "")
	require.NoError(t, err)

	req := scheduleFor(cv.ID, "2026-05-01")
	req.InterviewType = "Culture fit"
	i, _, err := svc.Interviews.Schedule(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", i.CandidateName)
	assert.Equal(t, types.InterviewType("Culture fit"), i.InterviewType)
}

func TestSchedule_UnknownCandidate(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	_, _, err := svc.Interviews.Schedule(context.Background(), scheduleFor("nobody", "2026-05-01"))

	assert.True(t, IsNotFound(err))
}

func TestInterviews_TerminalImmutability(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()
	c := seedCandidate(t, svc)

	completed, _, err := svc.Interviews.Schedule(ctx, scheduleFor(c.ID, "2026-05-01"))
	require.NoError(t, err)
	_, _, err = svc.Interviews.Complete(ctx, completed.ID, 3, "ok")
	require.NoError(t, err)

	cancelled, _, err := svc.Interviews.Schedule(ctx, scheduleFor(c.ID, "2026-05-02"))
	require.NoError(t, err)
	_, _, err = svc.Interviews.Cancel(ctx, cancelled.ID)
	require.NoError(t, err)

	for _, id := range []string{completed.ID, cancelled.ID} {
		_, _, err := svc.Interviews.Complete(ctx, id, 5, "again")
		assert.True(t, IsInvariant(err))
		_, _, err = svc.Interviews.Cancel(ctx, id)
		assert.True(t, IsInvariant(err))
	}

	stored, err := svc.Interviews.Get(ctx, completed.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Rating)
	assert.Equal(t, "ok", stored.Feedback)
}

func TestInterviews_CompleteRatingRange(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	c := seedCandidate(t, svc)
	i, _, err := svc.Interviews.Schedule(context.Background(), scheduleFor(c.ID, "2026-05-01"))
	require.NoError(t, err)

	for _, rating := range []int{0, 6} {
		_, _, err := svc.Interviews.Complete(context.Background(), i.ID, rating, "")
		assert.True(t, IsValidation(err), "rating %d", rating)
	}
}

func TestInterviews_ListByCandidateNewestFirst(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()
	c := seedCandidate(t, svc)
	other := seedCandidate(t, svc)

	for _, date := range []string{"2026-05-03", "2026-05-10", "2026-05-01"} {
		_, _, err := svc.Interviews.Schedule(ctx, scheduleFor(c.ID, date))
		require.NoError(t, err)
	}
	_, _, err := svc.Interviews.Schedule(ctx, scheduleFor(other.ID, "2026-06-01"))
	require.NoError(t, err)

	list, err := svc.Interviews.ListByCandidate(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 10, list[0].ScheduledDate.Day())
	assert.Equal(t, 3, list[1].ScheduledDate.Day())
	assert.Equal(t, 1, list[2].ScheduledDate.Day())
}

// putFailingRepo fails writes while fail is set and serves reads normally.
type putFailingRepo[T localstore.Record] struct {
	Repository[T]
	fail bool
}

func (r *putFailingRepo[T]) Put(ctx context.Context, item T) error {
	if r.fail {
		return errBackendDown
	}
	return r.Repository.Put(ctx, item)
}

func TestSchedule_RollsBackWhenCandidateCannotAdvance(t *testing.T) {
	repos := LocalRepositories(localstore.NewMemoryStore())
	candidates := &putFailingRepo[types.Candidate]{Repository: repos.Candidates}
	repos.Candidates = candidates
	svc := New(repos, Options{Clock: newSteppingClock().Now})
	ctx := context.Background()
	c := seedCandidate(t, svc)

	candidates.fail = true
	_, _, err := svc.Interviews.Schedule(ctx, scheduleFor(c.ID, "2026-05-01"))
	require.ErrorIs(t, err, errBackendDown)

	stored, err := repos.Interviews.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)

	got, err := svc.Candidates.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Status, got.Status)
}
