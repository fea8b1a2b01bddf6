// Package pipeline runs uploaded CVs through extraction, field parsing,
// optional refinement and archiving, reporting progress per file.
package pipeline

import (
	"context"
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talentdesk/internal/ingestion"
	"github.com/jonathan/talentdesk/internal/logging"
	"github.com/jonathan/talentdesk/internal/parsing"
	"github.com/jonathan/talentdesk/internal/types"
	"github.com/jonathan/talentdesk/internal/uploads"
)

// Step names reported in progress events.
const (
	StepExtract = "extract"
	StepParse   = "parse"
	StepRefine  = "refine"
	StepArchive = "archive"
	StepStored  = "stored"
	StepFailed  = "failed"
)

// Event categories.
const (
	CategoryIngestion = "ingestion"
	CategoryParsing   = "parsing"
	CategoryStorage   = "storage"
)

// ProgressEvent represents a progress update while a batch is processed
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	FileName string `json:"file_name,omitempty"`
	Index    int    `json:"index"`
	Total    int    `json:"total"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs. Archive events
// arrive from a separate goroutine, so callbacks must be safe for concurrent use.
type ProgressCallback func(event ProgressEvent)

// ProfileRefiner fills empty profile fields. *parsing.Refiner implements it.
type ProfileRefiner interface {
	Refine(ctx context.Context, profile *types.CandidateProfile) error
}

// Options holds the optional collaborators of a run.
type Options struct {
	Archive    uploads.Archive
	Refiner    ProfileRefiner
	Logger     *logging.Logger
	OnProgress ProgressCallback
}

// FileResult is the processed form of one upload.
type FileResult struct {
	FileName   string
	Profile    types.CandidateProfile
	ArchiveKey string
	Failure    ingestion.FailureKind
}

// Progress carries the position of the current file within its batch.
type Progress struct {
	Index int
	Total int
}

func (o *Options) logger() *logging.Logger {
	if o.Logger == nil {
		return logging.Nop()
	}
	return o.Logger
}

// Emit calls the progress callback if configured.
func (o *Options) Emit(pos Progress, step, category, fileName, message string, content any) {
	if o.OnProgress != nil {
		o.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			FileName: fileName,
			Index:    pos.Index,
			Total:    pos.Total,
			Content:  content,
		})
	}
}

// ProcessFile extracts and parses one upload while archiving the original in
// parallel. It always yields a profile: a crash anywhere in extraction or
// parsing becomes a scanned profile named from the file. Archive and refine
// failures are logged and otherwise ignored.
func ProcessFile(ctx context.Context, u ingestion.Upload, pos Progress, opts Options) FileResult {
	log := opts.logger().With("file", u.FileName)
	result := FileResult{FileName: u.FileName}

	g, gCtx := errgroup.WithContext(ctx)

	// Branch 1: archive the original
	if opts.Archive != nil {
		g.Go(func() error {
			key, err := opts.Archive.Store(gCtx, u.FileName, u.ContentType, u.Data)
			if err != nil {
				log.Warn("failed to archive upload", "error", err)
				return nil
			}
			result.ArchiveKey = key
			opts.Emit(pos, StepArchive, CategoryStorage, u.FileName, "Archived original", key)
			return nil
		})
	}

	// Branch 2: extract, parse and refine
	var profile types.CandidateProfile
	var failure ingestion.FailureKind
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic while processing upload", "panic", r, "stack", string(debug.Stack()))
				err = fmt.Errorf("panic: %v", r)
			}
		}()

		res := ingestion.Extract(u)
		failure = res.Failure
		if res.OK() {
			opts.Emit(pos, StepExtract, CategoryIngestion, u.FileName,
				fmt.Sprintf("Extracted %d characters", len(res.Text)), nil)
		} else {
			opts.Emit(pos, StepExtract, CategoryIngestion, u.FileName, res.Sentinel(), nil)
		}

		profile = parsing.FromResult(res)
		opts.Emit(pos, StepParse, CategoryParsing, u.FileName,
			fmt.Sprintf("Parsed %d skills", len(profile.Skills)), nil)

		if opts.Refiner != nil && !profile.IsScanned && len(profile.MissingFields()) > 0 {
			if err := opts.Refiner.Refine(gCtx, &profile); err != nil {
				log.Warn("profile refinement failed", "error", err)
			} else {
				opts.Emit(pos, StepRefine, CategoryParsing, u.FileName, "Refined missing fields", nil)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("upload processing crashed", "error", err)
		res := ingestion.Unprocessable(u, err.Error())
		profile = parsing.FromResult(res)
		failure = res.Failure
	}

	result.Profile = profile
	result.Failure = failure
	return result
}
