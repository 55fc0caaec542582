package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	info := Info()

	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.String(), "tabclean ")
	assert.Contains(t, info.String(), "Go: ")
}

func TestBuildInfoString(t *testing.T) {
	info := BuildInfo{
		Version:   "v1.0.0",
		BuildDate: "2024-01-01T00:00:00Z",
		GitCommit: "abc123def456",
		GoVersion: "go1.24.0",
		Deps:      []Module{{Path: ArrowModule, Version: "v18.3.1"}},
	}

	str := info.String()
	assert.Contains(t, str, "tabclean v1.0.0\n")
	assert.Contains(t, str, "Commit: abc123d\n")
	assert.Contains(t, str, "Built: 2024-01-01T00:00:00Z\n")
	assert.Contains(t, str, "Go: go1.24.0\n")
	assert.Contains(t, str, "Arrow: v18.3.1\n")
	assert.NotContains(t, str, "(dirty)")
}

func TestBuildInfoStringMinimal(t *testing.T) {
	info := BuildInfo{
		Version:   "dev",
		BuildDate: unknownValue,
		GitCommit: unknownValue,
		GoVersion: "go1.24.0",
	}

	str := info.String()
	assert.Equal(t, "tabclean dev\nGo: go1.24.0\n", str)
}

func TestBuildInfoDirty(t *testing.T) {
	info := BuildInfo{
		Version:   "v1.0.0",
		GitCommit: "abc123def-dirty",
		BuildDate: unknownValue,
		Dirty:     true,
	}

	assert.Contains(t, info.String(), "tabclean v1.0.0 (dirty)")
	assert.Equal(t, "abc123d", info.ShortCommit())
}

func TestDependency(t *testing.T) {
	info := BuildInfo{Deps: []Module{{Path: "a", Version: "v1"}}}

	v, ok := info.Dependency("a")
	assert.True(t, ok)
	assert.Equal(t, "v1", v)

	_, ok = info.Dependency("b")
	assert.False(t, ok)
}
