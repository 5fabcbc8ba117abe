// Package cxxflags is a configuration for completion engines (YouCompleteMe, clangd and others)
// which need to know how to parse C++ sources of this project.
// Relative paths in the flags are resolved against the directory of this file.
package cxxflags

import (
	"path/filepath"
	"runtime"
	"sync"

	"github.com/VKCOM/cxxflags/internal/flags"
)

// template must stay bit-exact: hosts may have cached results for it.
// Note "-isystem/usr/lib/c++/v1" being a single token.
var template = [...]string{
	"-Wall",
	"-Wextra",
	"-Werror",
	"-DNDEBUG",
	"-DUSE_CLANG_COMPLETER",
	"-std=c++11",
	"-x",
	"c++",
	"-isystem/usr/lib/c++/v1",
	"-I",
	".",
}

var (
	thisConfigDir     string
	thisConfigDirOnce sync.Once

	defaultResolver     *flags.Resolver
	defaultResolverOnce sync.Once
)

// Template returns a copy of the flags as they are written, before resolving paths.
func Template() []string {
	return append([]string(nil), template[:]...)
}

// DirectoryOfThisConfig is a directory where this file lives (computed once per process).
// Empty if the location can't be determined, e.g. when built with -trimpath.
func DirectoryOfThisConfig() string {
	thisConfigDirOnce.Do(func() {
		thisConfigDir = configDirFromCaller(runtime.Caller(0))
	})
	return thisConfigDir
}

func configDirFromCaller(_ uintptr, fileName string, _ int, ok bool) string {
	if !ok || !filepath.IsAbs(fileName) {
		return ""
	}
	return filepath.Dir(fileName)
}

// MakeResolver creates a resolver over Template with extraFlags appended.
// Paths are resolved against baseDir; pass DirectoryOfThisConfig() for the default behavior.
func MakeResolver(baseDir string, extraFlags []string) *flags.Resolver {
	return flags.MakeResolver(append(Template(), extraFlags...), baseDir)
}

// FlagsForFile is an entrypoint for a completion engine.
// Flags are equal for every file, that's why DoCache is always true.
func FlagsForFile(fileName string) flags.Result {
	defaultResolverOnce.Do(func() {
		defaultResolver = MakeResolver(DirectoryOfThisConfig(), nil)
	})
	return defaultResolver.FlagsForFile(fileName)
}
