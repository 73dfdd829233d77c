package preflight

import (
	"sync"

	"github.com/Masterminds/semver/v3"
)

const (
	minimumGitVersionLiteralConstant = "2.30.0"
)

var minimumGitVersion = sync.OnceValue(func() *semver.Version {
	parsedVersion, parseError := semver.StrictNewVersion(minimumGitVersionLiteralConstant)
	if parseError != nil {
		panic(parseError)
	}
	return parsedVersion
})

// MinimumGitVersion returns the oldest git release gitgate accepts.
func MinimumGitVersion() *semver.Version {
	return minimumGitVersion()
}
