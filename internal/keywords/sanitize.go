package keywords

import (
	"strings"

	"golang.org/x/text/cases"
)

// MaxKeywords is the marketplace cap on tags per asset.
const MaxKeywords = 25

// minKeywordLength rejects single-character noise tags after normalization.
const minKeywordLength = 2

var foldCaser = cases.Fold()

// Normalize trims surrounding whitespace and case-folds a candidate keyword.
func Normalize(keyword string) string {
	return foldCaser.String(strings.TrimSpace(keyword))
}

// Sanitize filters a raw candidate keyword list into a marketplace-safe one.
// Candidates are normalized, then dropped when shorter than two characters,
// already emitted, or colliding with an emitted member of the same stem
// group. Surviving keywords keep their first-occurrence order and the result
// never exceeds MaxKeywords entries. Sanitize has no error channel: a nil or
// empty input yields an empty, non-nil slice.
func Sanitize(candidates []string) []string {
	out := make([]string, 0, min(len(candidates), MaxKeywords))
	if len(candidates) == 0 {
		return out
	}

	seenExact := make(map[string]struct{}, len(candidates))
	seenStems := make(map[string]struct{})

	for _, candidate := range candidates {
		k := Normalize(candidate)
		if len([]rune(k)) < minKeywordLength {
			continue
		}
		if _, dup := seenExact[k]; dup {
			continue
		}
		if stem, ok := stemFor(k); ok {
			if _, claimed := seenStems[stem]; claimed {
				continue
			}
			seenStems[stem] = struct{}{}
		}
		seenExact[k] = struct{}{}
		out = append(out, k)
		if len(out) >= MaxKeywords {
			break
		}
	}

	if len(out) > MaxKeywords {
		out = out[:MaxKeywords]
	}
	return out
}
