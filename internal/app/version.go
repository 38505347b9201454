package app

import "fmt"

// Set via -ldflags "-X github.com/heartmarshall/pentest-stories/internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version line printed at startup and by storyctl.
func BuildVersion() string {
	return fmt.Sprintf("%s+%s (%s)", Version, Commit, BuildTime)
}
