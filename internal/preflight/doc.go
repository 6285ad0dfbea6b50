// Package preflight provides readiness checks for the filesystem paths and
// the metadata service stockmeta depends on.
//
// The CLI "stockmeta preflight" command runs RunAll before a batch and
// renders each Result as a pass/fail row, so a missing directory or an
// invalid API key surfaces before any image is uploaded.
package preflight
