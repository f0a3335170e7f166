package weave

// Release is the semantic version of this code base.
const Release = "v0.1.0-dev"

// GitCommit is set at build time with
// -ldflags "-X github.com/iov-one/weave-collect.GitCommit=<hash>".
var GitCommit = ""

// Version returns the release followed by the commit, when known.
func Version() string {
	if GitCommit == "" {
		return Release
	}
	return Release + " " + GitCommit
}
