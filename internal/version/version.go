// Package version resolves the version string both services report in
// their responses.
package version

import "os"

// DefaultVersion is reported when SERVICE_VERSION is unset or empty.
const DefaultVersion = "v1"

// FromEnv returns the value of SERVICE_VERSION, or DefaultVersion when the
// variable is unset or empty. It is read per call so a test or operator can
// change it without restarting the process.
func FromEnv() string {
	if v := os.Getenv("SERVICE_VERSION"); v != "" {
		return v
	}
	return DefaultVersion
}
