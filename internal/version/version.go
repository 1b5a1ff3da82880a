// Package version holds the release version embedded at build time.
package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var raw string

// String returns the release version, e.g. "0.3.0".
func String() string {
	return strings.TrimSpace(raw)
}
