// Package version holds the sciops release and component versions.
package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Release version of the sciops binary
	Platform = "0.3.0"

	// Component versions
	Units     = "1.1.0"
	Constants = "1.0.0"
	Notebook  = "1.0.0"

	// ConstantsSource names the dataset behind the constants table
	ConstantsSource = "CODATA 2018"
)

// Set at build time with -ldflags "-X github.com/msto63/sciops/pkg/core/version.Commit=..."
var (
	Commit = "unknown"
	Date   = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "units":
		return Units
	case "constants":
		return Constants
	case "notebook":
		return Notebook
	default:
		return Platform
	}
}

// String renders the one-line version banner.
func String() string {
	return fmt.Sprintf("sciops %s (commit %s, built %s, %s, constants %s)",
		Platform, Commit, Date, runtime.Version(), ConstantsSource)
}
