package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata describes an ingested upload.
type Metadata struct {
	FileName  string    `json:"file_name"`
	MediaType MediaType `json:"media_type"`
	Size      int       `json:"size"`
	// Pages counts every page of a PDF, not only the ones read.
	Pages int `json:"pages,omitempty"`
	// Hash is the SHA256 hex digest of the raw bytes.
	Hash string `json:"hash"`
	// Timestamp is RFC3339 formatted.
	Timestamp string `json:"timestamp"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(u Upload, mediaType MediaType) *Metadata {
	return &Metadata{
		FileName:  u.FileName,
		MediaType: mediaType,
		Size:      len(u.Data),
		Hash:      computeHash(u.Data),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
