package imagefile

import (
	"sync"

	"github.com/corona10/goimagehash"
)

// dedupThreshold is the maximum Hamming distance between two difference-hash
// values below which images are considered perceptually identical.
const dedupThreshold = 10

// DedupFilter detects perceptually identical images within a batch run.
// It is safe for concurrent use.
type DedupFilter struct {
	mu     sync.Mutex
	hashes []*goimagehash.ImageHash
}

// NewDedupFilter returns an empty filter.
func NewDedupFilter() *DedupFilter {
	return &DedupFilter{}
}

// IsDuplicate returns true if img is perceptually identical to a previously
// seen image. When hashing is impossible (undecodable pixels, hash failure)
// the image is accepted. Accepted images have their hash stored for future
// comparisons.
func (d *DedupFilter) IsDuplicate(img *Image) bool {
	if img == nil || img.Decoded == nil {
		return false
	}
	hash, err := goimagehash.DifferenceHash(img.Decoded)
	if err != nil {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, h := range d.hashes {
		dist, err := hash.Distance(h)
		if err == nil && dist < dedupThreshold {
			return true
		}
	}

	d.hashes = append(d.hashes, hash)
	return false
}
