// Package constant defines immutable application-level identifiers and build metadata.
package constant

const (
	// Moodbuster is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	Moodbuster = "moodbuster"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is sent with every catalog request.
	UserAgent = Moodbuster + "/" + Version + " (+https://github.com/moodbuster/moodbuster)"
)

// Build metadata, overridden through -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
