// Package export serializes finalized metadata records to the flat CSV
// layout stock agencies accept for bulk uploads.
package export
