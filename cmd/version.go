// cmd/version.go
package cmd

import (
	"github.com/hashicorp/go-version"
)

// Version will be set at build time
var Version = "dev"

// versionString returns Version in canonical semver form, or unchanged when
// it is not a version number (such as "dev").
func versionString() string {
	v, err := version.NewVersion(Version)
	if err != nil {
		return Version
	}
	return v.String()
}
