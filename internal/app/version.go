package app

import "fmt"

// Stamped by the release build through -ldflags -X.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version reported in startup logs and GET /health.
// Unstamped fields are left out, so a local build reports just "dev".
func BuildVersion() string {
	return formatVersion(Version, Commit, BuildTime)
}

func formatVersion(version, commit, built string) string {
	switch {
	case commit == "unknown" && built == "unknown":
		return version
	case built == "unknown":
		return fmt.Sprintf("%s (commit: %s)", version, commit)
	default:
		return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
	}
}
