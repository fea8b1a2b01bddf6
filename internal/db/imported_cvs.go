package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talentdesk/internal/types"
)

const importedCVColumns = `id, file_name, profile, status, approved_by, approval_date, notes,
	archive_key, imported_at`

func scanImportedCV(row pgx.Row) (*types.ImportedCV, error) {
	var cv types.ImportedCV
	var profileJSON []byte
	err := row.Scan(&cv.ID, &cv.FileName, &profileJSON, &cv.Status, &cv.ApprovedBy,
		&cv.ApprovalDate, &cv.Notes, &cv.ArchiveKey, &cv.ImportedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(profileJSON, &cv.CandidateProfile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &cv, nil
}

// GetImportedCV retrieves an imported CV by ID
func (db *DB) GetImportedCV(ctx context.Context, id string) (*types.ImportedCV, error) {
	cv, err := scanImportedCV(db.pool.QueryRow(ctx,
		`SELECT `+importedCVColumns+` FROM imported_cvs WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get imported CV: %w", err)
	}
	return cv, nil
}

// UpsertImportedCV creates or replaces an imported CV keyed by ID
func (db *DB) UpsertImportedCV(ctx context.Context, cv *types.ImportedCV) error {
	profileJSON, err := json.Marshal(cv.CandidateProfile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO imported_cvs (`+importedCVColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO UPDATE SET
		     file_name = $2,
		     profile = $3,
		     status = $4,
		     approved_by = $5,
		     approval_date = $6,
		     notes = $7,
		     archive_key = $8`,
		cv.ID, cv.FileName, profileJSON, string(cv.Status), cv.ApprovedBy, cv.ApprovalDate,
		cv.Notes, cv.ArchiveKey, cv.ImportedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert imported CV: %w", err)
	}
	return nil
}

// ListImportedCVs returns CVs whose status matches filter, oldest import first
func (db *DB) ListImportedCVs(ctx context.Context, filter types.CVFilter) ([]types.ImportedCV, error) {
	return db.listImportedCVs(ctx, statusesFor(filter))
}

// ListAllImportedCVs returns every imported CV regardless of review state.
func (db *DB) ListAllImportedCVs(ctx context.Context) ([]types.ImportedCV, error) {
	return db.listImportedCVs(ctx, []string{
		string(types.ImportedCVPending), string(types.ImportedCVApproved), string(types.ImportedCVRejected),
	})
}

func (db *DB) listImportedCVs(ctx context.Context, statuses []string) ([]types.ImportedCV, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+importedCVColumns+` FROM imported_cvs
		 WHERE status = ANY($1)
		 ORDER BY imported_at, id`,
		statuses,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list imported CVs: %w", err)
	}
	defer rows.Close()

	cvs := []types.ImportedCV{}
	for rows.Next() {
		cv, err := scanImportedCV(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan imported CV: %w", err)
		}
		cvs = append(cvs, *cv)
	}
	return cvs, rows.Err()
}

// statusesFor expands a filter to the statuses it admits.
func statusesFor(filter types.CVFilter) []string {
	out := []string{}
	for _, s := range []types.ImportedCVStatus{types.ImportedCVPending, types.ImportedCVApproved, types.ImportedCVRejected} {
		if filter.Matches(s) {
			out = append(out, string(s))
		}
	}
	return out
}

// DeleteImportedCV removes an imported CV row
func (db *DB) DeleteImportedCV(ctx context.Context, id string) (bool, error) {
	result, err := db.pool.Exec(ctx, `DELETE FROM imported_cvs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete imported CV: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
