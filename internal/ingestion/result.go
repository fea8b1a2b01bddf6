package ingestion

import (
	"fmt"
	"strings"
)

// FailureKind tags why a document yielded no usable text.
type FailureKind string

// Failure kinds. FailureNone marks a successful extraction.
const (
	FailureNone       FailureKind = ""
	FailureScannedPDF FailureKind = "scanned_pdf"
	FailurePDF        FailureKind = "pdf_error"
	FailureDOCX       FailureKind = "docx_error"
	FailureText       FailureKind = "text_error"
)

// Sentinel markers embedded in text that could not be extracted.
const (
	MarkerScannedPDF = "[SCANNED_PDF]"
	MarkerPDFError   = "[PDF_ERROR]"
	MarkerDOCXError  = "[DOCX_ERROR]"
	MarkerTextError  = "[TEXT_ERROR]"
)

var markers = []struct {
	marker string
	kind   FailureKind
}{
	{MarkerScannedPDF, FailureScannedPDF},
	{MarkerPDFError, FailurePDF},
	{MarkerDOCXError, FailureDOCX},
	{MarkerTextError, FailureText},
}

// Result is the outcome of extracting one document. Exactly one of Text or
// Failure is meaningful.
type Result struct {
	FileName string      `json:"file_name"`
	Text     string      `json:"text,omitempty"`
	Failure  FailureKind `json:"failure,omitempty"`
	Detail   string      `json:"detail,omitempty"`
	Meta     *Metadata   `json:"meta,omitempty"`
}

// OK reports whether text was extracted.
func (r Result) OK() bool {
	return r.Failure == FailureNone
}

// Sentinel renders the failure as its marker string, or "" on success.
func (r Result) Sentinel() string {
	switch r.Failure {
	case FailureScannedPDF:
		return fmt.Sprintf("%s Filename: %s", MarkerScannedPDF, r.FileName)
	case FailurePDF:
		return fmt.Sprintf("%s %s - Error: %s", MarkerPDFError, r.FileName, r.Detail)
	case FailureDOCX:
		return fmt.Sprintf("%s %s", MarkerDOCXError, r.FileName)
	case FailureText:
		return fmt.Sprintf("%s %s", MarkerTextError, r.FileName)
	}
	return ""
}

// Content returns the extracted text, or the sentinel when extraction failed.
func (r Result) Content() string {
	if r.OK() {
		return r.Text
	}
	return r.Sentinel()
}

// IsSentinel reports whether text carries any failure marker.
func IsSentinel(text string) bool {
	return SentinelKind(text) != FailureNone
}

// SentinelKind returns the failure kind of the first marker found in text.
func SentinelKind(text string) FailureKind {
	for _, m := range markers {
		if strings.Contains(text, m.marker) {
			return m.kind
		}
	}
	return FailureNone
}

func failed(name string, kind FailureKind, detail string) Result {
	return Result{FileName: name, Failure: kind, Detail: detail}
}
