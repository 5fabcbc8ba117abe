package cxxflags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate(t *testing.T) {
	assert.Equal(t, []string{
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
	}, Template())

	tpl := Template()
	tpl[0] = "-mutated"
	assert.Equal(t, "-Wall", Template()[0])
}

func TestDirectoryOfThisConfig(t *testing.T) {
	dir := DirectoryOfThisConfig()
	if dir == "" {
		t.Skip("source location is unknown (built with -trimpath)")
	}
	assert.True(t, filepath.IsAbs(dir))
	_, err := os.Stat(filepath.Join(dir, "extra-conf.go"))
	require.NoError(t, err)
	assert.Equal(t, dir, DirectoryOfThisConfig())
}

func TestConfigDirFromCaller(t *testing.T) {
	assert.Equal(t, "/src/project", configDirFromCaller(0, "/src/project/extra-conf.go", 1, true))
	assert.Equal(t, "", configDirFromCaller(0, "github.com/VKCOM/cxxflags/extra-conf.go", 1, true))
	assert.Equal(t, "", configDirFromCaller(0, "", 0, false))
}

func TestFlagsForFile(t *testing.T) {
	dir := DirectoryOfThisConfig()
	res := FlagsForFile("main.cpp")

	assert.True(t, res.DoCache)
	require.Len(t, res.Flags, len(Template()))
	assert.Equal(t, Template()[:9], res.Flags[:9])
	assert.Equal(t, "-I", res.Flags[9])
	if dir == "" {
		assert.Equal(t, ".", res.Flags[10])
	} else {
		assert.Equal(t, dir, res.Flags[10])
	}

	assert.Equal(t, res, FlagsForFile("other/file.cc"))
}

func TestMakeResolver_ExtraFlags(t *testing.T) {
	r := MakeResolver("/home/user/project", []string{"-DFOO", "-iquote", "src"})
	res := r.FlagsForFile("a.cpp")

	require.Len(t, res.Flags, len(Template())+3)
	assert.Equal(t, "/home/user/project", res.Flags[10])
	assert.Equal(t, []string{"-DFOO", "-iquote", "/home/user/project/src"}, res.Flags[11:])
}

func TestMakeResolver_NoBaseDir(t *testing.T) {
	res := MakeResolver("", nil).FlagsForFile("a.cpp")
	assert.Equal(t, Template(), res.Flags)
	assert.True(t, res.DoCache)
}
