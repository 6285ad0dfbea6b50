package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"stockmeta/internal/metadata"
)

// Header is the column layout of an export file.
var Header = []string{
	"Filename",
	"Title",
	"Description",
	"Keywords",
	"Top Ten Keywords",
	"Category",
	"Alt Text",
	"Copyright",
	"Artist",
}

// WriteCSV streams records as CSV. Keyword lists are joined with commas
// inside a single quoted field, the convention agency upload forms expect.
func WriteCSV(w io.Writer, records []metadata.Record) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, record := range records {
		row := []string{
			record.FileName,
			record.Title,
			record.Description,
			strings.Join(record.Keywords, ", "),
			strings.Join(record.TopTenKeywords, ", "),
			record.Category,
			record.AltText,
			record.Copyright,
			record.Artist,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("export: write row for %s: %w", record.FileName, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return nil
}

// WriteFile writes records to a timestamped CSV inside exportDir and returns
// the file path.
func WriteFile(exportDir string, records []metadata.Record) (string, error) {
	if len(records) == 0 {
		return "", errors.New("export: no records to write")
	}
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return "", fmt.Errorf("export: ensure export directory: %w", err)
	}

	name := fmt.Sprintf("stockmeta-%s.csv", time.Now().Format("20060102-150405"))
	path := filepath.Join(exportDir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: create %s: %w", path, err)
	}
	defer file.Close()

	if err := WriteCSV(file, records); err != nil {
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("export: close %s: %w", path, err)
	}
	return path, nil
}
