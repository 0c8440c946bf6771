// Package client resolves the filesystem path of the native rendering client.
//
// The client ships next to the showviz install directory: as an application
// bundle on macOS and as a plain executable in a sibling directory on Linux.
// Resolution is a pure path computation; whether the file exists is only
// discovered when the client is launched.
//
//	<base>/Showviz Visualization.app/Contents/MacOS/Showviz Visualization   (macOS)
//	<base>/Showviz Visualization/visualization_client                        (Linux)
//
// where <base> is the parent of the install directory.
package client

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/matzehuels/showviz/pkg/errors"
)

const (
	// AppName is the display name of the client, used for the bundle and its directory.
	AppName = "Showviz Visualization"

	// LinuxExecutable is the client binary name on Linux.
	LinuxExecutable = "visualization_client"
)

// Platform identifies a host operating system.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformDarwin
	PlatformLinux
)

// ParsePlatform maps a GOOS value to a Platform.
func ParsePlatform(goos string) Platform {
	switch goos {
	case "darwin":
		return PlatformDarwin
	case "linux":
		return PlatformLinux
	default:
		return PlatformUnknown
	}
}

// CurrentPlatform returns the platform of the running process.
func CurrentPlatform() Platform {
	return ParsePlatform(runtime.GOOS)
}

// String returns the GOOS-style name of the platform.
func (p Platform) String() string {
	switch p {
	case PlatformDarwin:
		return "darwin"
	case PlatformLinux:
		return "linux"
	default:
		return "unknown"
	}
}

// pathFuncs maps each supported platform to its path strategy.
var pathFuncs = map[Platform]func(base string) string{
	PlatformDarwin: func(base string) string {
		return filepath.Join(base, AppName+".app", "Contents", "MacOS", AppName)
	},
	PlatformLinux: func(base string) string {
		return filepath.Join(base, AppName, LinuxExecutable)
	},
}

// Path returns the client executable path for the platform, relative to the
// parent of installDir. Unsupported platforms fail with UNSUPPORTED_PLATFORM.
func Path(p Platform, installDir string) (string, error) {
	fn, ok := pathFuncs[p]
	if !ok {
		return "", errors.New(errors.ErrCodeUnsupportedPlatform,
			"visualization is currently supported only on macOS and Linux (platform %s)", p)
	}
	return fn(filepath.Dir(installDir)), nil
}

// Locator resolves the client path for a fixed platform and install directory.
type Locator struct {
	Platform   Platform
	InstallDir string
}

// Default returns a Locator for the running process.
func Default() Locator {
	return Locator{Platform: CurrentPlatform(), InstallDir: InstallDir()}
}

// Locate returns the client path. It is recomputed on every call.
func (l Locator) Locate() (string, error) {
	return Path(l.Platform, l.InstallDir)
}

// Locate resolves the client path for the running process.
func Locate() (string, error) {
	return Default().Locate()
}

// InstallDir returns the directory containing the running executable,
// with symlinks resolved. It falls back to the working directory.
func InstallDir() string {
	exe, err := os.Executable()
	if err != nil {
		wd, _ := os.Getwd()
		return wd
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
