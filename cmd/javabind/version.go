package main

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version resolves the string reported by the version subcommand. Builds
// installed at a tagged module version report that version; anything else
// reports the embedded base version with a -dev suffix, plus the VCS
// revision when the build info carries one.
func Version() string {
	base := strings.TrimSpace(rawVersion)

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return base
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	dev := base + "-dev"
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return dev + "+" + s.Value[:7]
		}
	}
	return dev
}
