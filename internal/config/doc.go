// Package config loads, normalizes, and validates stockmeta configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the STOCKMETA_API_KEY environment
// fallback. The Config type centralizes every knob the CLI and server need so
// downstream code receives sanitized paths, canonical log formats, and clear
// validation errors.
package config
