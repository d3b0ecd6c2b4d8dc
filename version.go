package track

import _ "embed"

// Version is the release of track, read from the VERSION file.
//
//go:embed VERSION
var Version string
