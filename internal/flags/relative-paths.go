package flags

import "github.com/VKCOM/cxxflags/internal/common"

// MakeRelativePathsInFlagsAbsolute rewrites path arguments of flags to be absolute relative to workingDir.
// Both forms are handled: "-I dir" and "-Idir" (as well as "--sysroot=dir").
// Absolute paths and all non-path tokens are left as is, the result has the same length as flags.
// If workingDir is empty, flags are returned unmodified (as a copy).
//
// Note, that after a standalone path flag, the next token is treated as a path unconditionally:
// "-I -isystem" makes "-isystem" a relative dir, not an option.
func MakeRelativePathsInFlagsAbsolute(flags []string, workingDir string) []string {
	newFlags := make([]string, 0, len(flags))
	if workingDir == "" {
		return append(newFlags, flags...)
	}

	makeNextAbsolute := false
	for _, arg := range flags {
		if makeNextAbsolute { // "-I dir"
			makeNextAbsolute = false
			newFlags = append(newFlags, common.PathAbs(workingDir, arg))
			continue
		}

		if isPathFlag(arg) {
			makeNextAbsolute = true
			newFlags = append(newFlags, arg)
			continue
		}

		if pathFlag, path, ok := splitPathFlag(arg); ok && path != "" { // "-Idir"
			newFlags = append(newFlags, pathFlag+common.PathAbs(workingDir, path))
			continue
		}

		newFlags = append(newFlags, arg)
	}
	return newFlags
}
