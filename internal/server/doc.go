// Package server exposes the metadata workflow over a local HTTP API: upload
// an image, get finalized metadata back as JSON, and download the session's
// accumulated records as CSV. It is a single-user surface intended for
// 127.0.0.1 binds; records live in memory for the lifetime of the process.
package server
