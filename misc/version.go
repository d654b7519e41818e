// Package misc provides build information.
package misc

// Set at link time with -ldflags "-X twc/misc.version=... -X twc/misc.gitHash=...".
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "twc"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
