package export

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jonathan/talentdesk/internal/types"
)

func sampleData() Data {
	when := time.Date(2026, 5, 1, 10, 30, 0, 0, time.UTC)
	return Data{
		ImportedCVs: []types.ImportedCV{{
			ID:       "cv-1",
			FileName: "jane.txt",
			CandidateProfile: types.CandidateProfile{
				FullName:          "Jane Smith",
				Email:             "jane.smith@co.com",
				Skills:            []string{"Python", "React"},
				YearsOfExperience: 3,
			},
			Status: types.ImportedCVApproved,
		}},
		Candidates: []types.Candidate{{
			ID: "c-1", FirstName: "Ada", LastName: "Lovelace", Status: types.CandidateInterview1,
			Source: types.SourceReferral, Rating: 4, AppliedDate: when, LastUpdated: when,
		}},
		Interviews: []types.Interview{{
			ID: "i-1", CandidateID: "c-1", InterviewType: types.InterviewTechnical,
			Status: types.InterviewScheduled, ScheduledDate: when, DurationMinutes: 60,
			InterviewerID: "emp-1", Location: "Virtual",
		}},
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleData()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetImportedCVs, SheetCandidates, SheetInterviews}, f.GetSheetList())

	rows, err := f.GetRows(SheetImportedCVs)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, cvHeaders, rows[0])
	assert.Equal(t, "Jane Smith", rows[1][0])
	assert.Equal(t, "Python, React", rows[1][3])
	assert.Equal(t, "3", rows[1][4])
	assert.Equal(t, "approved", rows[1][6])

	rows, err = f.GetRows(SheetCandidates)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ada Lovelace", rows[1][0])
	assert.Equal(t, "interview_1", rows[1][3])

	rows, err = f.GetRows(SheetInterviews)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "c-1", rows[1][0], "falls back to the candidate id without a name")
	assert.Equal(t, "2026-05-01 10:30", rows[1][3])
}

func TestWrite_EmptyDataKeepsHeaders(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Data{}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetInterviews)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, interviewHeaders, rows[0])
}

func TestSaveAs_AddsExtension(t *testing.T) {
	path, err := SaveAs(filepath.Join(t.TempDir(), "report"), sampleData())
	require.NoError(t, err)
	assert.Equal(t, ".xlsx", filepath.Ext(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 3)
}
