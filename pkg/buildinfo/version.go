// Package buildinfo exposes the version stamped into the binary at build
// time via -ldflags -X.
package buildinfo

import "fmt"

var (
	// Version is the release version, "dev" for unstamped builds.
	Version = "dev"
	// Commit is the git revision the binary was built from.
	Commit = "none"
	// Date is the UTC build timestamp.
	Date = "unknown"
)

// String renders the full build information, one field per line.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template is the cobra version template, so `camo --version` prints the
// same fields as String with the binary name up front.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
