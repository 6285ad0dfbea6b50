// Package notifications delivers non-fatal user notices over ntfy.
//
// Per-item failures in a batch never abort processing; they surface here
// instead, alongside batch start/completion summaries. When no ntfy topic is
// configured a noop implementation is returned so call sites never branch.
package notifications
