package metadata

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"stockmeta/internal/keywords"
)

// Record captures the generated metadata for a single image.
type Record struct {
	ID              string    `json:"id"`
	SourcePath      string    `json:"sourcePath"`
	FileName        string    `json:"fileName"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Keywords        []string  `json:"keywords"`
	TopTenKeywords  []string  `json:"topTenKeywords"`
	AltText         string    `json:"altText"`
	Category        string    `json:"category"`
	Copyright       string    `json:"copyright,omitempty"`
	Artist          string    `json:"artist,omitempty"`
	Model           string    `json:"model,omitempty"`
	GeneratedAt     time.Time `json:"generatedAt"`
	finalized       bool
}

// NewRecord constructs a record with a fresh ID and timestamp.
func NewRecord(sourcePath, fileName string) Record {
	return Record{
		ID:          uuid.NewString(),
		SourcePath:  sourcePath,
		FileName:    fileName,
		GeneratedAt: time.Now().UTC(),
	}
}

// Finalize sanitizes the keyword list, resolves the top-ten subset, trims the
// free-text fields, and normalizes the category. Safe to call more than once.
func (r *Record) Finalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.AltText = strings.TrimSpace(r.AltText)

	r.Keywords = keywords.Sanitize(r.Keywords)
	r.TopTenKeywords = keywords.TopTen(r.TopTenKeywords, r.Keywords)
	r.Category = NormalizeCategory(r.Category)
	r.finalized = true
}

// Finalized reports whether Finalize has run on this record.
func (r *Record) Finalized() bool {
	return r.finalized
}
