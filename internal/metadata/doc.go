// Package metadata defines the record produced for each processed image and
// the finalization step that makes service output marketplace-safe.
//
// Finalize is the only mutation applied to what the model returns: the
// keyword list is sanitized, the top-ten subset is backfilled when invalid,
// and the category is matched onto the known marketplace category list.
package metadata
