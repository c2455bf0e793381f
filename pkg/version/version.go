// Package version exposes the nordmenu build version.
package version

// version is overridden at build time via
// -ldflags "-X github.com/rshade/nordmenu/pkg/version.version=v1.2.3".
var version = "0.1.0-dev" //nolint:gochecknoglobals // Set by the linker at build time

// GetVersion returns the current nordmenu version string.
func GetVersion() string {
	return version
}
