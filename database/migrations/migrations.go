// Package migrations contains the versioned schema changes. Each file
// registers itself from init(); the package is imported by cmd/server so
// every migration is known before the CLI runs.
package migrations
