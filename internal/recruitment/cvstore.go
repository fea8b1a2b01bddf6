package recruitment

import (
	"context"
	"fmt"
	"sort"

	"github.com/jonathan/talentdesk/internal/ingestion"
	"github.com/jonathan/talentdesk/internal/pipeline"
	"github.com/jonathan/talentdesk/internal/types"
	"github.com/jonathan/talentdesk/internal/uploads"
)

// CVStore is the review queue of imported CVs.
type CVStore struct {
	base
	repo    Repository[types.ImportedCV]
	archive uploads.Archive
	refiner pipeline.ProfileRefiner
}

// FileError names an upload that could not be stored.
type FileError struct {
	FileName string `json:"file_name"`
	Error    string `json:"error"`
}

// ImportReport summarizes a batch import.
type ImportReport struct {
	Imported int                `json:"imported"`
	Profiles []types.ImportedCV `json:"profiles"`
	Failed   []FileError        `json:"failed,omitempty"`
	Sync     SyncState          `json:"sync"`
}

// Import processes every upload independently and appends one pending record
// per file. Unreadable files become scanned profiles rather than failures; a
// file is only reported in Failed when its record could not be saved.
// onProgress may be nil.
func (s *CVStore) Import(ctx context.Context, files []ingestion.Upload, onProgress pipeline.ProgressCallback) (ImportReport, error) {
	ctx, rec := trackSync(ctx)
	report := ImportReport{Profiles: []types.ImportedCV{}}
	opts := pipeline.Options{
		Archive:    s.archive,
		Refiner:    s.refiner,
		Logger:     s.log,
		OnProgress: onProgress,
	}

	for i, u := range files {
		if err := ctx.Err(); err != nil {
			report.Sync = rec.State()
			return report, err
		}
		pos := pipeline.Progress{Index: i, Total: len(files)}

		res := pipeline.ProcessFile(ctx, u, pos, opts)
		cv := types.ImportedCV{
			ID:               newID(),
			FileName:         u.FileName,
			CandidateProfile: res.Profile,
			Status:           types.ImportedCVPending,
			ArchiveKey:       res.ArchiveKey,
			ImportedAt:       s.now(),
		}

		s.mu.Lock()
		err := s.repo.Put(ctx, cv)
		s.mu.Unlock()
		if err != nil {
			s.log.Error("failed to store imported CV", "file", u.FileName, "error", err)
			report.Failed = append(report.Failed, FileError{FileName: u.FileName, Error: err.Error()})
			opts.Emit(pos, pipeline.StepFailed, pipeline.CategoryStorage, u.FileName, err.Error(), nil)
			continue
		}

		report.Imported++
		report.Profiles = append(report.Profiles, cv)
		opts.Emit(pos, pipeline.StepStored, pipeline.CategoryStorage, u.FileName, "Stored for review", cv)
	}

	report.Sync = rec.State()
	s.log.Info("imported CV batch", "files", len(files), "imported", report.Imported, "sync", report.Sync)
	return report, nil
}

// Get returns one imported CV.
func (s *CVStore) Get(ctx context.Context, id string) (*types.ImportedCV, error) {
	cv, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load imported CV: %w", err)
	}
	if cv == nil {
		return nil, &NotFoundError{Entity: "imported CV", ID: id}
	}
	return cv, nil
}

// List returns the CVs passing filter, oldest import first. The "all" filter
// is pending plus approved; rejected CVs only show under "rejected".
func (s *CVStore) List(ctx context.Context, filter types.CVFilter) ([]types.ImportedCV, error) {
	if filter == "" {
		filter = types.CVFilterAll
	}
	if !filter.IsValid() {
		return nil, &ValidationError{Field: "filter", Message: fmt.Sprintf("unknown filter %q", filter)}
	}

	return s.list(ctx, func(cv types.ImportedCV) bool { return filter.Matches(cv.Status) })
}

// All returns every imported CV regardless of status, oldest import first.
func (s *CVStore) All(ctx context.Context) ([]types.ImportedCV, error) {
	return s.list(ctx, func(types.ImportedCV) bool { return true })
}

func (s *CVStore) list(ctx context.Context, keep func(types.ImportedCV) bool) ([]types.ImportedCV, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load imported CVs: %w", err)
	}
	out := []types.ImportedCV{}
	for _, cv := range all {
		if keep(cv) {
			out = append(out, cv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ImportedAt.Before(out[j].ImportedAt)
	})
	return out, nil
}

// Review records an approval decision. Reviewing again replaces the previous
// decision, notes and approval date.
func (s *CVStore) Review(ctx context.Context, id string, approved bool, reviewer, notes string) (*types.ImportedCV, SyncState, error) {
	ctx, rec := trackSync(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	cv, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	now := s.now()
	cv.Status = types.ImportedCVRejected
	if approved {
		cv.Status = types.ImportedCVApproved
	}
	cv.ApprovedBy = reviewer
	cv.ApprovalDate = &now
	cv.Notes = notes

	if err := s.repo.Put(ctx, *cv); err != nil {
		return nil, "", fmt.Errorf("failed to save review: %w", err)
	}
	s.log.Info("reviewed imported CV", "id", id, "status", cv.Status, "reviewer", reviewer)
	return cv, rec.State(), nil
}

// Delete removes a rejected CV. Pending and approved CVs cannot be deleted.
func (s *CVStore) Delete(ctx context.Context, id string) (SyncState, error) {
	ctx, rec := trackSync(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	cv, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if cv.Status != types.ImportedCVRejected {
		return "", &InvariantError{Message: fmt.Sprintf("only rejected CVs can be deleted; %s is %s", id, cv.Status)}
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return "", fmt.Errorf("failed to delete imported CV: %w", err)
	}
	return rec.State(), nil
}
