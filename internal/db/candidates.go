package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talentdesk/internal/types"
)

const candidateColumns = `id, job_posting_id, first_name, last_name, email, phone, resume,
	cover_letter, source, status, rating, notes, assigned_to, applied_date, last_updated`

func scanCandidate(row pgx.Row) (*types.Candidate, error) {
	var c types.Candidate
	err := row.Scan(&c.ID, &c.JobPostingID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.Resume, &c.CoverLetter, &c.Source, &c.Status, &c.Rating, &c.Notes, &c.AssignedTo,
		&c.AppliedDate, &c.LastUpdated)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCandidate retrieves a candidate by ID
func (db *DB) GetCandidate(ctx context.Context, id string) (*types.Candidate, error) {
	c, err := scanCandidate(db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

// UpsertCandidate creates or replaces a candidate keyed by ID
func (db *DB) UpsertCandidate(ctx context.Context, c *types.Candidate) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO candidates (`+candidateColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 ON CONFLICT (id) DO UPDATE SET
		     job_posting_id = $2,
		     first_name = $3,
		     last_name = $4,
		     email = $5,
		     phone = $6,
		     resume = $7,
		     cover_letter = $8,
		     source = $9,
		     status = $10,
		     rating = $11,
		     notes = $12,
		     assigned_to = $13,
		     applied_date = $14,
		     last_updated = $15`,
		c.ID, c.JobPostingID, c.FirstName, c.LastName, c.Email, c.Phone, c.Resume,
		c.CoverLetter, string(c.Source), string(c.Status), c.Rating, c.Notes, c.AssignedTo,
		c.AppliedDate, c.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert candidate: %w", err)
	}
	return nil
}

// ListCandidates returns candidates matching the filter, most recent applicants first
func (db *DB) ListCandidates(ctx context.Context, filter types.CandidateFilter) ([]types.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE 1=1`
	args := []any{}
	argNum := 1

	if filter.JobPostingID != "" {
		query += fmt.Sprintf(" AND job_posting_id = $%d", argNum)
		args = append(args, filter.JobPostingID)
		argNum++
	}
	if filter.Status != "" && filter.Status != "all" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filter.Status)
	}
	query += " ORDER BY applied_date DESC"

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates := []types.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}

// DeleteCandidate removes a candidate row. Only used when mirroring a local delete.
func (db *DB) DeleteCandidate(ctx context.Context, id string) (bool, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete candidate: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
