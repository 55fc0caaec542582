// Package version reports build information for the tabclean binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

const (
	unknownValue     = "unknown"
	commitHashLength = 7

	// ArrowModule is the storage dependency reported alongside the version.
	ArrowModule = "github.com/apache/arrow-go/v18"
)

// Build-time variables set by ldflags
var (
	Version   = "dev"
	BuildDate = unknownValue
	GitCommit = unknownValue
	GoVersion = runtime.Version()
)

// BuildInfo contains build information
type BuildInfo struct {
	Version   string   `json:"version" yaml:"version"`
	BuildDate string   `json:"build_date" yaml:"build_date"`
	GitCommit string   `json:"git_commit" yaml:"git_commit"`
	GoVersion string   `json:"go_version" yaml:"go_version"`
	Dirty     bool     `json:"dirty" yaml:"dirty"`
	Module    string   `json:"module,omitempty" yaml:"module,omitempty"`
	Deps      []Module `json:"deps,omitempty" yaml:"deps,omitempty"`
}

// Module is a dependency of the binary
type Module struct {
	Path    string `json:"path" yaml:"path"`
	Version string `json:"version" yaml:"version"`
}

// Info returns the build information of the running binary
func Info() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: GoVersion,
		Dirty:     strings.HasSuffix(GitCommit, "-dirty"),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.Module = bi.Main.Path
		for _, dep := range bi.Deps {
			info.Deps = append(info.Deps, Module{Path: dep.Path, Version: dep.Version})
		}
		for _, s := range bi.Settings {
			// ldflags win over VCS stamping
			if s.Key == "vcs.revision" && info.GitCommit == unknownValue {
				info.GitCommit = s.Value
			}
			if s.Key == "vcs.modified" && s.Value == "true" {
				info.Dirty = true
			}
		}
	}

	return info
}

// Dependency returns the version of the named dependency, if linked in
func (b BuildInfo) Dependency(path string) (string, bool) {
	for _, m := range b.Deps {
		if m.Path == path {
			return m.Version, true
		}
	}
	return "", false
}

// ShortCommit returns the abbreviated commit hash
func (b BuildInfo) ShortCommit() string {
	commit := strings.TrimSuffix(b.GitCommit, "-dirty")
	if len(commit) > commitHashLength {
		commit = commit[:commitHashLength]
	}
	return commit
}

// String returns a formatted version string
func (b BuildInfo) String() string {
	var sb strings.Builder
	sb.WriteString("tabclean ")
	sb.WriteString(b.Version)
	if b.Dirty {
		sb.WriteString(" (dirty)")
	}
	sb.WriteString("\n")

	if b.GitCommit != unknownValue {
		fmt.Fprintf(&sb, "Commit: %s\n", b.ShortCommit())
	}
	if b.BuildDate != unknownValue {
		fmt.Fprintf(&sb, "Built: %s\n", b.BuildDate)
	}
	fmt.Fprintf(&sb, "Go: %s\n", b.GoVersion)
	if v, ok := b.Dependency(ArrowModule); ok {
		fmt.Fprintf(&sb, "Arrow: %s\n", v)
	}

	return sb.String()
}
