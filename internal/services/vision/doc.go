// Package vision provides the HTTP client for the multimodal metadata
// service.
//
// The client posts an image as inline base64 data together with a fixed
// instruction prompt and expects the model to return free-form text
// containing one embedded JSON object with title, description, keywords,
// topTenKeywords, altText, and category fields. DecodeModelJSON tolerates the
// usual formatting quirks (code fences, surrounding prose) when extracting
// that object.
//
// Requests are single-shot: per-item failures are reported to the caller and
// the surrounding batch flow decides whether to continue. Rate limiting is
// handled there with a fixed inter-item delay, not here.
package vision
