package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGetInfo(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	Version, Commit, Date = "1.2.0", "abc123def456", "2026-01-01T12:00:00Z"
	defer func() { Version, Commit, Date = origVersion, origCommit, origDate }()

	info := GetInfo()

	if info.Version != "1.2.0" || info.Commit != "abc123def456" || info.Date != "2026-01-01T12:00:00Z" {
		t.Errorf("GetInfo() = %+v, want build vars echoed back", info)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GetInfo().GoVersion = %v, want %v", info.GoVersion, runtime.Version())
	}
	if want := runtime.GOOS + "/" + runtime.GOARCH; info.Platform != want {
		t.Errorf("GetInfo().Platform = %v, want %v", info.Platform, want)
	}
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "1.2.0",
		Commit:    "abc123def456",
		Date:      "2026-01-01",
		GoVersion: "go1.24.6",
		Platform:  "linux/amd64",
	}

	got := info.String()
	want := "prideconnect 1.2.0 (abc123de) built 2026-01-01 with go1.24.6 for linux/amd64"
	if got != want {
		t.Errorf("Info.String() = %q, want %q", got, want)
	}
}

func TestInfoStringKeepsShortCommit(t *testing.T) {
	info := Info{Version: "dev", Commit: "abc123", Date: "unknown"}
	if got := info.String(); !strings.Contains(got, "(abc123)") {
		t.Errorf("Info.String() = %q, want commit untruncated", got)
	}
}

func TestInfoShort(t *testing.T) {
	for _, v := range []string{"1.2.0", "dev", "1.2.0-rc1"} {
		if got := (Info{Version: v}).Short(); got != v {
			t.Errorf("Info.Short() = %q, want %q", got, v)
		}
	}
}

func TestUserAgent(t *testing.T) {
	info := Info{Version: "1.2.0", Platform: "linux/amd64"}
	if got, want := info.UserAgent(), "prideconnect-cli/1.2.0 (linux/amd64)"; got != want {
		t.Errorf("Info.UserAgent() = %q, want %q", got, want)
	}
}

func TestDefaultValuesPresent(t *testing.T) {
	info := GetInfo()
	for name, v := range map[string]string{
		"Version":   info.Version,
		"Commit":    info.Commit,
		"Date":      info.Date,
		"GoVersion": info.GoVersion,
		"Platform":  info.Platform,
	} {
		if v == "" {
			t.Errorf("GetInfo().%s should not be empty", name)
		}
	}
}
