// Package secrets persists named secrets in a local SQLite database.
//
// It is the desktop analog of a browser's single-key local storage: the CLI
// keeps the metadata service API key here so it survives between runs without
// appearing in the config file. The database lives in the data directory with
// 0600 permissions.
package secrets
