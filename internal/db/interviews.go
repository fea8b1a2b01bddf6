package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talentdesk/internal/types"
)

const interviewColumns = `id, candidate_id, candidate_name, interview_type, status, scheduled_date,
	duration_minutes, interviewer_id, location, feedback, rating, expected_rating, created_at`

func scanInterview(row pgx.Row) (*types.Interview, error) {
	var i types.Interview
	err := row.Scan(&i.ID, &i.CandidateID, &i.CandidateName, &i.InterviewType, &i.Status,
		&i.ScheduledDate, &i.DurationMinutes, &i.InterviewerID, &i.Location, &i.Feedback,
		&i.Rating, &i.ExpectedRating, &i.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// GetInterview retrieves an interview by ID
func (db *DB) GetInterview(ctx context.Context, id string) (*types.Interview, error) {
	i, err := scanInterview(db.pool.QueryRow(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return i, nil
}

// UpsertInterview creates or replaces an interview keyed by ID
func (db *DB) UpsertInterview(ctx context.Context, i *types.Interview) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO interviews (`+interviewColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (id) DO UPDATE SET
		     candidate_id = $2,
		     candidate_name = $3,
		     interview_type = $4,
		     status = $5,
		     scheduled_date = $6,
		     duration_minutes = $7,
		     interviewer_id = $8,
		     location = $9,
		     feedback = $10,
		     rating = $11,
		     expected_rating = $12`,
		i.ID, i.CandidateID, i.CandidateName, string(i.InterviewType), string(i.Status),
		i.ScheduledDate, i.DurationMinutes, i.InterviewerID, i.Location, i.Feedback, i.Rating,
		i.ExpectedRating, i.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert interview: %w", err)
	}
	return nil
}

// ListInterviews returns interviews, optionally for one candidate, newest scheduled first
func (db *DB) ListInterviews(ctx context.Context, candidateID string) ([]types.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews`
	args := []any{}
	if candidateID != "" {
		query += ` WHERE candidate_id = $1`
		args = append(args, candidateID)
	}
	query += ` ORDER BY scheduled_date DESC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	interviews := []types.Interview{}
	for rows.Next() {
		i, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		interviews = append(interviews, *i)
	}
	return interviews, rows.Err()
}

// DeleteInterview removes an interview row
func (db *DB) DeleteInterview(ctx context.Context, id string) (bool, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete interview: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
