package client

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/showviz/pkg/errors"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		goos string
		want Platform
	}{
		{"darwin", PlatformDarwin},
		{"linux", PlatformLinux},
		{"windows", PlatformUnknown},
		{"freebsd", PlatformUnknown},
		{"", PlatformUnknown},
	}

	for _, tt := range tests {
		if got := ParsePlatform(tt.goos); got != tt.want {
			t.Errorf("ParsePlatform(%q) = %v, want %v", tt.goos, got, tt.want)
		}
	}
}

func TestPath(t *testing.T) {
	install := filepath.Join("/opt", "showviz", "bin")

	tests := []struct {
		name     string
		platform Platform
		want     string
	}{
		{
			name:     "darwin bundle",
			platform: PlatformDarwin,
			want:     filepath.Join("/opt", "showviz", "Showviz Visualization.app", "Contents", "MacOS", "Showviz Visualization"),
		},
		{
			name:     "linux sibling dir",
			platform: PlatformLinux,
			want:     filepath.Join("/opt", "showviz", "Showviz Visualization", "visualization_client"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Path(tt.platform, install)
			if err != nil {
				t.Fatalf("Path() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Path() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPathUnsupported(t *testing.T) {
	path, err := Path(PlatformUnknown, "/opt/showviz/bin")
	if err == nil {
		t.Fatal("expected error for unknown platform")
	}
	if path != "" {
		t.Errorf("path = %q, want empty", path)
	}
	if !errors.Is(err, errors.ErrCodeUnsupportedPlatform) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnsupportedPlatform)
	}
	if !strings.Contains(err.Error(), "macOS and Linux") {
		t.Errorf("error message should mention supported platforms: %v", err)
	}
	if !strings.Contains(err.Error(), "platform unknown") {
		t.Errorf("error message should name the requested platform, not the host: %v", err)
	}
}

func TestLocatorIsPure(t *testing.T) {
	l := Locator{Platform: PlatformLinux, InstallDir: "/a/b"}
	first, err := l.Locate()
	if err != nil {
		t.Fatal(err)
	}
	second, _ := l.Locate()
	if first != second {
		t.Errorf("Locate() not deterministic: %q vs %q", first, second)
	}
}

func TestInstallDir(t *testing.T) {
	if dir := InstallDir(); dir == "" {
		t.Error("InstallDir() should not be empty")
	}
}

func TestPlatformString(t *testing.T) {
	if PlatformDarwin.String() != "darwin" || PlatformLinux.String() != "linux" || PlatformUnknown.String() != "unknown" {
		t.Error("unexpected Platform.String() values")
	}
}
