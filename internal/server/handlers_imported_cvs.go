package server

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/jonathan/talentdesk/internal/export"
	"github.com/jonathan/talentdesk/internal/ingestion"
	"github.com/jonathan/talentdesk/internal/parsing"
	"github.com/jonathan/talentdesk/internal/pipeline"
	"github.com/jonathan/talentdesk/internal/server/middleware"
	"github.com/jonathan/talentdesk/internal/types"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExtractPreview is the result of parsing one upload without storing it.
type ExtractPreview struct {
	Extraction ingestion.Result       `json:"extraction"`
	Profile    types.CandidateProfile `json:"profile"`
	Missing    []string               `json:"missing_fields,omitempty"`
}

// handleImportCVs imports a batch of CV files into the review queue.
//
// @Summary      Import CVs
// @Description  Extracts and parses every file independently; each becomes a pending imported CV.
// @Tags         imported-cvs
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "CV files (.pdf, .docx, .doc, .txt)"
// @Success      201    {object}  recruitment.ImportReport
// @Failure      400    {object}  map[string]string
// @Router       /imported-cvs [post]
func (s *Server) handleImportCVs(w http.ResponseWriter, r *http.Request) {
	uploads, err := s.readUploads(w, r, "files")
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	report, err := s.svc.CVs.Import(r.Context(), uploads, nil)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	status := http.StatusCreated
	if report.Imported == 0 {
		status = http.StatusInternalServerError
	}
	s.jsonResponse(w, status, report)
}

// handleImportCVsStream imports a batch and streams per-file progress as SSE.
//
// @Summary      Import CVs with progress
// @Tags         imported-cvs
// @Accept       multipart/form-data
// @Produce      text/event-stream
// @Param        files  formData  file  true  "CV files"
// @Router       /imported-cvs/stream [post]
func (s *Server) handleImportCVsStream(w http.ResponseWriter, r *http.Request) {
	uploads, err := s.readUploads(w, r, "files")
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	report, err := s.svc.CVs.Import(r.Context(), uploads, sse.WriteProgress)
	if err != nil {
		s.log.Warn("streamed import stopped", "error", err, "imported", report.Imported)
		sse.WriteError(err.Error())
		return
	}

	sse.WriteComplete(report)
}

// handleListImportedCVs lists imported CVs, oldest first.
//
// @Summary      List imported CVs
// @Tags         imported-cvs
// @Produce      json
// @Param        filter  query     string  false  "all, pending, approved or rejected"
// @Success      200     {object}  map[string]interface{}
// @Router       /imported-cvs [get]
func (s *Server) handleListImportedCVs(w http.ResponseWriter, r *http.Request) {
	filter := types.CVFilter(r.URL.Query().Get("filter"))

	cvs, err := s.svc.CVs.List(r.Context(), filter)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, newList(cvs))
}

// handleGetImportedCV retrieves one imported CV.
func (s *Server) handleGetImportedCV(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	cv, err := s.svc.CVs.Get(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, cv)
}

// handleReviewImportedCV approves or rejects an imported CV. The reviewer is
// the authenticated admin.
//
// @Summary      Review an imported CV
// @Tags         imported-cvs
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Imported CV ID"
// @Param        body  body      types.ReviewRequest  true  "Decision"
// @Success      200   {object}  MutationResponse
// @Failure      404   {object}  map[string]string
// @Router       /imported-cvs/{id}/review [post]
func (s *Server) handleReviewImportedCV(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	var req types.ReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		s.serviceError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.serviceError(w, r, err)
		return
	}

	cv, sync, err := s.svc.CVs.Review(r.Context(), id, *req.Approved, middleware.Subject(r), req.Notes)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.mutated(w, http.StatusOK, cv, sync)
}

// handleDeleteImportedCV deletes a rejected imported CV.
//
// @Summary      Delete a rejected imported CV
// @Tags         imported-cvs
// @Param        id   path      string  true  "Imported CV ID"
// @Success      200  {object}  MutationResponse
// @Failure      409  {object}  map[string]string
// @Router       /imported-cvs/{id} [delete]
func (s *Server) handleDeleteImportedCV(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	sync, err := s.svc.CVs.Delete(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	s.mutated(w, http.StatusOK, map[string]string{"id": id}, sync)
}

// handleExportWorkbook downloads imported CVs, candidates and interviews as xlsx.
//
// @Summary      Export workbook
// @Tags         imported-cvs
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Router       /imported-cvs/export.xlsx [get]
func (s *Server) handleExportWorkbook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cvs, err := s.svc.CVs.All(ctx)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	candidates, err := s.svc.Candidates.List(ctx, types.CandidateFilter{})
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	interviews, err := s.svc.Interviews.List(ctx)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	var buf bytes.Buffer
	data := export.Data{ImportedCVs: cvs, Candidates: candidates, Interviews: interviews}
	if err := export.Write(&buf, data); err != nil {
		s.serviceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="talentdesk-%s.xlsx"`, s.svc.Now().Format("20060102")))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.log.Warn("failed to write workbook", "error", err)
	}
}

// handleExtractPreview extracts and parses one file without storing it.
//
// @Summary      Preview CV extraction
// @Tags         imported-cvs
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CV file"
// @Success      200   {object}  ExtractPreview
// @Router       /extract [post]
func (s *Server) handleExtractPreview(w http.ResponseWriter, r *http.Request) {
	uploads, err := s.readUploads(w, r, "file")
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	if len(uploads) != 1 {
		s.errorResponse(w, http.StatusBadRequest, "exactly one file is required")
		return
	}

	res := ingestion.Extract(uploads[0])
	profile := parsing.FromResult(res)
	preview := ExtractPreview{
		Extraction: res,
		Profile:    profile,
		Missing:    profile.MissingFields(),
	}
	s.log.Debug("extraction preview", "file", res.FileName, "failure", res.Failure, "step", pipeline.StepParse)

	s.jsonResponse(w, http.StatusOK, preview)
}
