// Package constants defines application-wide constants and version information.
package constants

import "runtime"

// Version holds the application version information
const Version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

// DefaultConfigFile is the configuration path the binaries look for when
// -config is not given. A missing file means built-in defaults.
const DefaultConfigFile = "daylight.yaml"
