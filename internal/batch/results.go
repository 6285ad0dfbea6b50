package batch

import (
	"time"

	"stockmeta/internal/metadata"
)

// ItemStatus is the terminal state of one image within a run.
type ItemStatus string

const (
	ItemCompleted ItemStatus = "completed"
	ItemFailed    ItemStatus = "failed"
	ItemSkipped   ItemStatus = "skipped"
)

// Item records the outcome for a single image.
type Item struct {
	Path     string           `json:"path"`
	FileName string           `json:"fileName"`
	Status   ItemStatus       `json:"status"`
	Record   *metadata.Record `json:"record,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// Result summarizes a completed run.
type Result struct {
	RunID     string        `json:"runId"`
	Items     []Item        `json:"items"`
	Processed int           `json:"processed"`
	Failed    int           `json:"failed"`
	Skipped   int           `json:"skipped"`
	Duration  time.Duration `json:"duration"`
}

// Records returns the finalized metadata of every completed item, in run order.
func (r *Result) Records() []metadata.Record {
	records := make([]metadata.Record, 0, r.Processed)
	for _, item := range r.Items {
		if item.Status == ItemCompleted && item.Record != nil {
			records = append(records, *item.Record)
		}
	}
	return records
}
