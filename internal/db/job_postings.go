package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talentdesk/internal/types"
)

const jobPostingColumns = `id, title, description, department, requirements, position_type,
	salary_range_min, salary_range_max, status, posted_date, closing_date, applications`

func scanJobPosting(row pgx.Row) (*types.JobPosting, error) {
	var p types.JobPosting
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Department, &p.Requirements,
		&p.PositionType, &p.SalaryRangeMin, &p.SalaryRangeMax, &p.Status, &p.PostedDate,
		&p.ClosingDate, &p.Applications)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetJobPosting retrieves a job posting by its ID
func (db *DB) GetJobPosting(ctx context.Context, id string) (*types.JobPosting, error) {
	p, err := scanJobPosting(db.pool.QueryRow(ctx,
		`SELECT `+jobPostingColumns+` FROM job_postings WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return p, nil
}

// UpsertJobPosting creates or replaces a job posting keyed by ID
func (db *DB) UpsertJobPosting(ctx context.Context, p *types.JobPosting) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO job_postings (`+jobPostingColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (id) DO UPDATE SET
		     title = $2,
		     description = $3,
		     department = $4,
		     requirements = $5,
		     position_type = $6,
		     salary_range_min = $7,
		     salary_range_max = $8,
		     status = $9,
		     posted_date = $10,
		     closing_date = $11,
		     applications = $12,
		     updated_at = NOW()`,
		p.ID, p.Title, p.Description, p.Department, p.Requirements, string(p.PositionType),
		p.SalaryRangeMin, p.SalaryRangeMax, string(p.Status), p.PostedDate, p.ClosingDate,
		p.Applications,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert job posting: %w", err)
	}
	return nil
}

// ListJobPostings returns postings matching the filter, newest first
func (db *DB) ListJobPostings(ctx context.Context, filter types.JobPostingFilter) ([]types.JobPosting, error) {
	query := `SELECT ` + jobPostingColumns + ` FROM job_postings WHERE 1=1`
	args := []any{}
	argNum := 1

	if filter.Department != "" {
		query += fmt.Sprintf(" AND LOWER(department) = LOWER($%d)", argNum)
		args = append(args, filter.Department)
		argNum++
	}
	if filter.Status != "" && filter.Status != "all" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filter.Status)
		argNum++
	}
	if filter.PositionType != "" {
		query += fmt.Sprintf(" AND position_type = $%d", argNum)
		args = append(args, filter.PositionType)
		argNum++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", argNum, argNum)
		args = append(args, "%"+filter.Search+"%")
	}
	query += " ORDER BY posted_date DESC"

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	postings := []types.JobPosting{}
	for rows.Next() {
		p, err := scanJobPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, *p)
	}
	return postings, rows.Err()
}

// DeleteJobPosting deletes a job posting and reports whether it existed
func (db *DB) DeleteJobPosting(ctx context.Context, id string) (bool, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job posting: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
