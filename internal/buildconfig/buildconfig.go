// Package buildconfig exposes values injected at link time:
//
//	go build -ldflags "-X <module>/internal/buildconfig.version=v1.2.0 -X <module>/internal/buildconfig.commit=$(git rev-parse --short HEAD)"
package buildconfig

var (
	version = "dev"
	commit  = "unknown"
)

func Version() string {
	return version
}

func Commit() string {
	return commit
}

// String renders the build as "version (commit)".
func String() string {
	return version + " (" + commit + ")"
}
