// Package main hosts the stockmeta CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into batch
// metadata runs, credential management, environment preflight checks,
// configuration scaffolding, and the local HTTP server. It centralizes
// configuration resolution, API key lookup, and structured logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
