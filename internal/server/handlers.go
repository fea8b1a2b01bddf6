package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/talentdesk/internal/ingestion"
	"github.com/jonathan/talentdesk/internal/recruitment"
)

// MutationResponse wraps the record a write produced with where it was saved.
type MutationResponse struct {
	Data any                   `json:"data,omitempty"`
	Sync recruitment.SyncState `json:"sync"`
}

// ListResponse wraps a list result.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func newList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}

// mutated writes the result of a write with its sync state.
func (s *Server) mutated(w http.ResponseWriter, status int, data any, sync recruitment.SyncState) {
	s.jsonResponse(w, status, MutationResponse{Data: data, Sync: sync})
}

// decodeJSON reads a JSON body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return &ErrBadRequest{Message: "request body is empty"}
		}
		return &ErrBadRequest{Message: "Invalid request body: " + err.Error()}
	}
	return nil
}

// readUploads reads every file of the multipart field. At least one file is required.
func (s *Server) readUploads(w http.ResponseWriter, r *http.Request, field string) ([]ingestion.Upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		return nil, &ErrBadRequest{Message: fmt.Sprintf("invalid multipart form (max %d MB): %v", s.maxUpload>>20, err)}
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil, &ErrBadRequest{Message: fmt.Sprintf("no files in form field %q", field)}
	}

	uploads := make([]ingestion.Upload, 0, len(headers))
	for _, fh := range headers {
		if !ingestion.AllowedExtension(fh.Filename) {
			return nil, &ErrBadRequest{Message: fmt.Sprintf("unsupported file type: %s (want .pdf, .docx, .doc or .txt)", fh.Filename)}
		}

		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read upload %s: %w", fh.Filename, err)
		}

		uploads = append(uploads, ingestion.Upload{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return uploads, nil
}

// pathID returns the trimmed {id} path value.
func pathID(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		return "", &ErrBadRequest{Message: "id is required"}
	}
	return id, nil
}
