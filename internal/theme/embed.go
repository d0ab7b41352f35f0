// Package theme provides the embedded board themes and utilities for loading them.
package theme

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
