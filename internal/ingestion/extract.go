// Package ingestion turns uploaded CV documents into plain text.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MediaType is the document format an upload is treated as.
type MediaType string

// Supported document formats. Anything unrecognized is read as text.
const (
	MediaPDF  MediaType = "pdf"
	MediaDOCX MediaType = "docx"
	MediaText MediaType = "text"
)

// Declared content types recognized on upload.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// AcceptedExtensions is the upload filter offered to users.
var AcceptedExtensions = []string{".pdf", ".doc", ".docx", ".txt"}

// Upload is one file handed to the extractor.
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// AllowedExtension reports whether name carries an accepted extension.
func AllowedExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range AcceptedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// DetectMediaType picks the format from the declared content type, falling
// back to the file extension.
func DetectMediaType(fileName, contentType string) MediaType {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	switch ct {
	case ContentTypePDF:
		return MediaPDF
	case ContentTypeDOCX:
		return MediaDOCX
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return MediaPDF
	case ".docx":
		return MediaDOCX
	}
	return MediaText
}

// Extract returns the document text or a tagged failure. It never panics and
// never returns an error; failures are carried in the Result.
func Extract(u Upload) (res Result) {
	mediaType := DetectMediaType(u.FileName, u.ContentType)
	meta := NewMetadata(u, mediaType)

	defer func() {
		if r := recover(); r != nil {
			res = failed(u.FileName, failureFor(mediaType), fmt.Sprint(r))
		}
		res.FileName = u.FileName
		res.Meta = meta
	}()

	switch mediaType {
	case MediaPDF:
		text, pages, err := extractPDF(u.Data)
		meta.Pages = pages
		if err != nil {
			return failed(u.FileName, FailurePDF, err.Error())
		}
		if text == "" {
			return failed(u.FileName, FailureScannedPDF, "")
		}
		return Result{Text: CleanText(text)}
	case MediaDOCX:
		text, err := extractDOCX(u.Data)
		if err != nil {
			return failed(u.FileName, FailureDOCX, err.Error())
		}
		return Result{Text: CleanText(text)}
	default:
		text, ok := decodeText(u.Data)
		if !ok {
			return failed(u.FileName, FailureText, "content is binary, not text")
		}
		return Result{Text: CleanText(text)}
	}
}

func failureFor(mediaType MediaType) FailureKind {
	switch mediaType {
	case MediaPDF:
		return FailurePDF
	case MediaDOCX:
		return FailureDOCX
	}
	return FailureText
}

// Unprocessable returns the failure result for an upload whose processing
// was aborted outside the extractor.
func Unprocessable(u Upload, detail string) Result {
	return failed(u.FileName, failureFor(DetectMediaType(u.FileName, u.ContentType)), detail)
}

// ReadUpload loads a file from disk as an Upload.
func ReadUpload(path string) (Upload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Upload{}, fmt.Errorf("file not found: %w", err)
		}
		return Upload{}, fmt.Errorf("failed to read file: %w", err)
	}
	return Upload{FileName: filepath.Base(path), Data: data}, nil
}
