package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Metadata describes one ingested résumé document
type Metadata struct {
	Path      string `json:"path"`
	Format    string `json:"format"`    // Lowercased extension without the dot
	Timestamp string `json:"timestamp"` // RFC3339 format
	Hash      string `json:"hash"`      // SHA256 hex digest of the extracted text
	Chars     int    `json:"chars"`
	OCR       bool   `json:"ocr,omitempty"` // Text came from the OCR fallback
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content string, path string) *Metadata {
	return &Metadata{
		Path:      path,
		Format:    strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      ComputeHash(content),
		Chars:     len([]rune(content)),
	}
}

// ComputeHash computes SHA256 hash of content and returns hex string
func ComputeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
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
