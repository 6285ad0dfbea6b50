package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"stockmeta/internal/imagefile"
	"stockmeta/internal/metadata"
	"stockmeta/internal/notifications"
	"stockmeta/internal/services/vision"
)

// Generator produces metadata for one image. *vision.Client satisfies it;
// tests substitute a stub so no network is involved.
type Generator interface {
	GenerateMetadata(ctx context.Context, mimeType string, data []byte) (vision.ImageMetadata, error)
	Model() string
}

// Options configures a Processor.
type Options struct {
	// DataDir hosts the run lock file.
	DataDir string
	// ItemDelay is the fixed pause between item completions.
	ItemDelay time.Duration
	// SkipDuplicates drops images perceptually identical to one already
	// processed in the same run.
	SkipDuplicates bool
}

// Processor runs sequential metadata generation over image files.
type Processor struct {
	generator Generator
	notifier  notifications.Service
	logger    *slog.Logger
	opts      Options

	sleeper func(time.Duration)
}

// ProcessorOption customizes a Processor.
type ProcessorOption func(*Processor)

// WithSleeper overrides how inter-item pauses are performed (useful for tests).
func WithSleeper(sleeper func(time.Duration)) ProcessorOption {
	return func(p *Processor) {
		p.sleeper = sleeper
	}
}

// NewProcessor constructs a batch processor.
func NewProcessor(generator Generator, notifier notifications.Service, logger *slog.Logger, opts Options, procOpts ...ProcessorOption) (*Processor, error) {
	if generator == nil {
		return nil, errors.New("batch: generator required")
	}
	if notifier == nil {
		return nil, errors.New("batch: notifier required")
	}
	if logger == nil {
		return nil, errors.New("batch: logger required")
	}
	p := &Processor{
		generator: generator,
		notifier:  notifier,
		logger:    logger,
		opts:      opts,
	}
	for _, opt := range procOpts {
		opt(p)
	}
	return p, nil
}

// CollectImagePaths expands a mix of file and directory arguments into a
// sorted list of image file paths. Directories are walked recursively and
// filtered by extension; explicit file arguments are taken as-is so an
// unsupported file fails loudly at load time instead of vanishing.
func CollectImagePaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("batch: resolve path %q: %w", arg, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("batch: inspect %q: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, abs)
			continue
		}
		walkErr := filepath.WalkDir(abs, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			if imagefile.IsSupportedExt(entry.Name()) {
				paths = append(paths, path)
			}
			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("batch: walk %q: %w", arg, walkErr)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Run processes the given image files strictly in order. The returned error
// covers run-level problems only (lock contention, cancelled context);
// per-item failures are captured inside the Result.
func (p *Processor) Run(ctx context.Context, paths []string) (*Result, error) {
	if len(paths) == 0 {
		return nil, errors.New("batch: no image files to process")
	}

	unlock, err := p.acquireLock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	result := &Result{RunID: uuid.NewString()}
	started := time.Now()

	p.logger.Info("batch started", "run", result.RunID, "count", len(paths))
	if err := p.notifier.NotifyBatchStarted(ctx, len(paths)); err != nil {
		p.logger.Warn("batch start notification failed", "error", err)
	}

	dedup := imagefile.NewDedupFilter()

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("batch: run cancelled: %w", err)
		}

		item := p.processOne(ctx, path, dedup)
		result.Items = append(result.Items, item)
		switch item.Status {
		case ItemCompleted:
			result.Processed++
		case ItemFailed:
			result.Failed++
			if err := p.notifier.NotifyItemFailed(ctx, item.FileName, errors.New(item.Error)); err != nil {
				p.logger.Warn("item failure notification failed", "error", err)
			}
		case ItemSkipped:
			result.Skipped++
		}

		// Fixed pause between requests, skipped after the final item and for
		// items that never reached the service.
		if i < len(paths)-1 && item.Status != ItemSkipped {
			if err := p.sleep(ctx, p.opts.ItemDelay); err != nil {
				return result, fmt.Errorf("batch: run cancelled: %w", err)
			}
		}
	}

	result.Duration = time.Since(started)
	p.logger.Info("batch finished",
		"run", result.RunID,
		"processed", result.Processed,
		"failed", result.Failed,
		"skipped", result.Skipped,
		"duration", result.Duration.Round(time.Millisecond),
	)
	if err := p.notifier.NotifyBatchCompleted(ctx, result.Processed, result.Failed, result.Duration); err != nil {
		p.logger.Warn("batch completion notification failed", "error", err)
	}

	return result, nil
}

func (p *Processor) processOne(ctx context.Context, path string, dedup *imagefile.DedupFilter) Item {
	item := Item{Path: path, FileName: filepath.Base(path)}

	img, err := imagefile.Load(path)
	if err != nil {
		p.logger.Warn("image load failed", "file", item.FileName, "error", err)
		item.Status = ItemFailed
		item.Error = err.Error()
		return item
	}

	if p.opts.SkipDuplicates && dedup.IsDuplicate(img) {
		p.logger.Info("duplicate image skipped", "file", item.FileName)
		item.Status = ItemSkipped
		return item
	}

	generated, err := p.generator.GenerateMetadata(ctx, img.MIMEType, img.Data)
	if err != nil {
		p.logger.Warn("metadata generation failed", "file", item.FileName, "error", err)
		item.Status = ItemFailed
		item.Error = err.Error()
		return item
	}

	record := metadata.NewRecord(path, item.FileName)
	record.Title = generated.Title
	record.Description = generated.Description
	record.Keywords = generated.Keywords
	record.TopTenKeywords = generated.TopTenKeywords
	record.AltText = generated.AltText
	record.Category = generated.Category
	record.Copyright = img.Attribution.Copyright
	record.Artist = img.Attribution.Artist
	record.Model = p.generator.Model()
	record.Finalize()

	p.logger.Info("image processed",
		"file", item.FileName,
		"keywords", len(record.Keywords),
		"category", record.Category,
	)

	item.Status = ItemCompleted
	item.Record = &record
	return item
}

func (p *Processor) acquireLock() (func(), error) {
	if p.opts.DataDir == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(p.opts.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("batch: ensure data directory: %w", err)
	}
	lock := flock.New(filepath.Join(p.opts.DataDir, "batch.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("batch: acquire lock: %w", err)
	}
	if !ok {
		return nil, errors.New("batch: another batch run is already in progress")
	}
	return func() { _ = lock.Unlock() }, nil
}

func (p *Processor) sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	if p.sleeper != nil {
		p.sleeper(delay)
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
