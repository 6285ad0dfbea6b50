package server

import (
	"fmt"
	"io"
	"net/http"

	"stockmeta/internal/export"
	"stockmeta/internal/imagefile"
	"stockmeta/internal/metadata"
)

// maxUploadSize caps multipart uploads slightly above the per-image limit so
// oversized files fail with a clear message instead of a truncated read.
const maxUploadSize = 25 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"model":  s.generator.Model(),
	})
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "parse upload: "+err.Error())
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, `missing "image" form file`)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "read upload: "+err.Error())
		return
	}

	img, err := imagefile.FromBytes(header.Filename, data)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if s.opts.SkipDuplicates && s.isDuplicate(img) {
		s.logger.Info("duplicate upload rejected", "file", img.FileName)
		respondError(w, http.StatusConflict, fmt.Sprintf("%s duplicates an image already processed this session", img.FileName))
		return
	}

	generated, err := s.generator.GenerateMetadata(r.Context(), img.MIMEType, img.Data)
	if err != nil {
		s.logger.Warn("metadata generation failed", "file", img.FileName, "error", err)
		respondError(w, http.StatusBadGateway, "generate metadata: "+err.Error())
		return
	}

	record := metadata.NewRecord(img.Path, img.FileName)
	record.Title = generated.Title
	record.Description = generated.Description
	record.Keywords = generated.Keywords
	record.TopTenKeywords = generated.TopTenKeywords
	record.AltText = generated.AltText
	record.Category = generated.Category
	record.Copyright = img.Attribution.Copyright
	record.Artist = img.Attribution.Artist
	record.Model = s.generator.Model()
	record.Finalize()

	s.mu.Lock()
	s.records = append(s.records, record)
	s.mu.Unlock()

	s.logger.Info("image processed", "file", img.FileName, "keywords", len(record.Keywords))
	respondJSON(w, http.StatusOK, record)
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	records := s.sessionRecords()
	respondJSON(w, http.StatusOK, map[string]any{
		"items": records,
		"total": len(records),
	})
}

func (s *Server) handleClearRecords(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	cleared := len(s.records)
	s.records = nil
	s.dedup = imagefile.NewDedupFilter()
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, map[string]int{"cleared": cleared})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	records := s.sessionRecords()
	if len(records) == 0 {
		respondError(w, http.StatusNotFound, "no records in session")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="stockmeta-export.csv"`)
	if err := export.WriteCSV(w, records); err != nil {
		s.logger.Warn("csv export failed", "error", err)
	}
}

func (s *Server) isDuplicate(img *imagefile.Image) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dedup.IsDuplicate(img)
}

func (s *Server) sessionRecords() []metadata.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]metadata.Record, len(s.records))
	copy(records, s.records)
	return records
}
