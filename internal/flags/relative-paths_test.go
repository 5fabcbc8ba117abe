package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseDir = "/home/user/project"

func TestMakeRelativePathsInFlagsAbsolute(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		want  []string
	}{
		{
			name:  "isystem pair",
			flags: []string{"-isystem", "vendor/include"},
			want:  []string{"-isystem", "/home/user/project/vendor/include"},
		},
		{
			name:  "current dir",
			flags: []string{"-I", "."},
			want:  []string{"-I", "/home/user/project"},
		},
		{
			name:  "iquote pair with trailing slash",
			flags: []string{"-iquote", "src/"},
			want:  []string{"-iquote", "/home/user/project/src"},
		},
		{
			name:  "sysroot glued",
			flags: []string{"--sysroot=rootfs"},
			want:  []string{"--sysroot=/home/user/project/rootfs"},
		},
		{
			name:  "I glued",
			flags: []string{"-Iinclude"},
			want:  []string{"-I/home/user/project/include"},
		},
		{
			name:  "absolute pair is untouched",
			flags: []string{"-isystem", "/usr/lib/c++/v1"},
			want:  []string{"-isystem", "/usr/lib/c++/v1"},
		},
		{
			name:  "absolute glued is untouched",
			flags: []string{"-isystem/usr/lib/c++/v1"},
			want:  []string{"-isystem/usr/lib/c++/v1"},
		},
		{
			name:  "glued with empty remainder",
			flags: []string{"--sysroot="},
			want:  []string{"--sysroot="},
		},
		{
			name:  "non path flags",
			flags: []string{"-Wall", "-DNDEBUG", "-std=c++11", "-x", "c++"},
			want:  []string{"-Wall", "-DNDEBUG", "-std=c++11", "-x", "c++"},
		},
		{
			name:  "next token is consumed even if it's a flag",
			flags: []string{"-I", "-isystem", "dir"},
			want:  []string{"-I", "/home/user/project/-isystem", "dir"},
		},
		{
			name:  "trailing path flag",
			flags: []string{"-Wall", "-I"},
			want:  []string{"-Wall", "-I"},
		},
		{
			name:  "similar but not a path flag",
			flags: []string{"-include", "pch.h"},
			want:  []string{"-include", "pch.h"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MakeRelativePathsInFlagsAbsolute(tt.flags, testBaseDir)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMakeRelativePathsInFlagsAbsolute_EmptyWorkingDir(t *testing.T) {
	in := []string{"-I", ".", "--sysroot=rootfs", "-isystem", "vendor"}

	got := MakeRelativePathsInFlagsAbsolute(in, "")
	require.Equal(t, in, got)

	got[0] = "-changed"
	assert.Equal(t, "-I", in[0], "input must not be aliased")
}

func TestMakeRelativePathsInFlagsAbsolute_KeepsLength(t *testing.T) {
	in := []string{"-I", "a", "-Ib", "-iquote", "c", "--sysroot=d", "-isystem", "/e", "-Wall"}
	got := MakeRelativePathsInFlagsAbsolute(in, testBaseDir)
	require.Len(t, got, len(in))
	assert.Equal(t, "-Wall", got[len(got)-1])
}

func TestIsPathFlag(t *testing.T) {
	for _, pathFlag := range PathFlagPrefixes {
		assert.True(t, isPathFlag(pathFlag), pathFlag)
	}
	assert.False(t, isPathFlag("-Idir"))
	assert.False(t, isPathFlag("-i"))
	assert.False(t, isPathFlag("-isysroot"))
}

func TestSplitPathFlag(t *testing.T) {
	pathFlag, path, ok := splitPathFlag("-isystemvendor")
	require.True(t, ok)
	assert.Equal(t, "-isystem", pathFlag)
	assert.Equal(t, "vendor", path)

	pathFlag, path, ok = splitPathFlag("-I")
	require.True(t, ok)
	assert.Equal(t, "-I", pathFlag)
	assert.Equal(t, "", path)

	_, _, ok = splitPathFlag("-Wall")
	assert.False(t, ok)
}
