package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	prev := Version
	Version = v
	t.Cleanup(func() { Version = prev })
}

func TestParsed(t *testing.T) {
	tests := []struct {
		version string
		wantNil bool
	}{
		{"v1.0.0", false},
		{"1.2.3", false},
		{"v1.0.0-beta.1", false},
		{"dev", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			withVersion(t, tt.version)
			assert.Equal(t, tt.wantNil, Parsed() == nil)
		})
	}
}

func TestIsPrerelease(t *testing.T) {
	withVersion(t, "v2.0.0-beta.1")
	assert.True(t, IsPrerelease())
	assert.False(t, IsDevBuild())

	withVersion(t, "dev")
	assert.False(t, IsPrerelease())
	assert.True(t, IsDevBuild())
}

func TestChannel(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"v1.0.0", ""},
		{"v1.0.0-rc.1", "pre-release"},
		{"dev", "development"},
		{"unknown", "development"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			withVersion(t, tt.version)
			assert.Equal(t, tt.want, Channel())
		})
	}
}

func TestInfo(t *testing.T) {
	withVersion(t, "v0.3.0")
	prevCommit := Commit
	Commit = "0123456789abcdef"
	t.Cleanup(func() { Commit = prevCommit })

	info := Info()
	assert.True(t, strings.HasPrefix(info, "nexus v0.3.0 (0123456)"))
	assert.NotContains(t, info, "[")
}

func TestInfo_DevBuildTagged(t *testing.T) {
	withVersion(t, "dev")
	assert.Contains(t, Info(), "[development]")
}

func TestFull(t *testing.T) {
	withVersion(t, "v1.0.0")
	full := Full()
	assert.Contains(t, full, "Version: v1.0.0")
	assert.Contains(t, full, "OS/Arch:")
}
