// Package keywords cleans AI-generated keyword lists for stock-photo
// submissions.
//
// Stock marketplaces penalize keyword stuffing and near-duplicate tags, so
// Sanitize deduplicates a candidate list case-insensitively and collapses
// known word-variant collisions ("work"/"working"/"worker") using a static
// stem-group table. The filter is stable: surviving keywords keep their
// first-occurrence order, and the result is capped at MaxKeywords entries.
//
// TopTen applies the marketplace top-ten fallback: the model's top-ten subset
// is honoured only when it contains exactly ten entries, otherwise the first
// ten sanitized keywords stand in for it.
package keywords
