// This package is used to store the version of the client during runtime.
// The values are set during runtime in the main package.
package version

var (
	// Version is the version of the client.
	Version = ""

	// CommitSHA is the commit SHA of the client.
	CommitSHA = ""
)
