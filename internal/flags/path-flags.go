package flags

import "strings"

// PathFlagPrefixes are compiler options whose value is a filesystem path.
// Either "-I dir" (the path is the next token) or "-Idir" (the path is glued to the option).
// The order is the order of matching.
var PathFlagPrefixes = [...]string{
	"-isystem",
	"-I",
	"-iquote",
	"--sysroot=",
}

// isPathFlag reports whether arg is exactly one of PathFlagPrefixes, so the next token is a path.
func isPathFlag(arg string) bool {
	for _, pathFlag := range PathFlagPrefixes {
		if arg == pathFlag {
			return true
		}
	}
	return false
}

// splitPathFlag splits "-Idir" into "-I" and "dir".
// ok is false if arg doesn't start with any of PathFlagPrefixes.
func splitPathFlag(arg string) (pathFlag string, path string, ok bool) {
	for _, pathFlag = range PathFlagPrefixes {
		if strings.HasPrefix(arg, pathFlag) {
			return pathFlag, arg[len(pathFlag):], true
		}
	}
	return "", "", false
}
