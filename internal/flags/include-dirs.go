package flags

import "slices"

// IncludeDirs represents a part of the command-line related to include dirs.
// It's filled from already resolved flags, so dirs are absolute unless a base dir was unknown.
type IncludeDirs struct {
	dirsI       []string // -I dir
	dirsIquote  []string // -iquote dir
	dirsIsystem []string // -isystem dir
	sysroot     string   // --sysroot=dir
}

func MakeIncludeDirs() IncludeDirs {
	return IncludeDirs{
		dirsI:       make([]string, 0, 2),
		dirsIquote:  make([]string, 0, 2),
		dirsIsystem: make([]string, 0, 2),
	}
}

// IncludeDirsOf extracts include dirs from flags, both "-I dir" and "-Idir" forms.
// A trailing path flag without an argument is ignored.
func IncludeDirsOf(flags []string) IncludeDirs {
	dirs := MakeIncludeDirs()

	for i := 0; i < len(flags); i++ {
		arg := flags[i]
		var pathFlag, path string
		if isPathFlag(arg) {
			if i+1 == len(flags) {
				break
			}
			i++
			pathFlag, path = arg, flags[i]
		} else if f, p, ok := splitPathFlag(arg); ok && p != "" {
			pathFlag, path = f, p
		} else {
			continue
		}

		switch pathFlag {
		case "-I":
			dirs.dirsI = append(dirs.dirsI, path)
		case "-iquote":
			dirs.dirsIquote = append(dirs.dirsIquote, path)
		case "-isystem":
			dirs.dirsIsystem = append(dirs.dirsIsystem, path)
		case "--sysroot=":
			dirs.sysroot = path
		}
	}
	return dirs
}

func (dirs *IncludeDirs) IsEmpty() bool {
	return len(dirs.dirsI) == 0 && len(dirs.dirsIquote) == 0 && len(dirs.dirsIsystem) == 0 && dirs.sysroot == ""
}

func (dirs *IncludeDirs) Count() int {
	return len(dirs.dirsI) + len(dirs.dirsIquote) + len(dirs.dirsIsystem)
}

// AsCxxArgs renders dirs back to the "-I dir" form, grouped by kind.
func (dirs *IncludeDirs) AsCxxArgs() []string {
	cxxIArgs := make([]string, 0, 2*dirs.Count()+1)

	for _, dir := range dirs.dirsI {
		cxxIArgs = append(cxxIArgs, "-I", dir)
	}
	for _, dir := range dirs.dirsIquote {
		cxxIArgs = append(cxxIArgs, "-iquote", dir)
	}
	for _, dir := range dirs.dirsIsystem {
		cxxIArgs = append(cxxIArgs, "-isystem", dir)
	}
	if dirs.sysroot != "" {
		cxxIArgs = append(cxxIArgs, "--sysroot="+dirs.sysroot)
	}

	return cxxIArgs
}

// MergeWith appends dirs of other, skipping ones already present; a non-empty sysroot of other wins.
func (dirs *IncludeDirs) MergeWith(other IncludeDirs) {
	dirs.dirsI = appendMissing(dirs.dirsI, other.dirsI)
	dirs.dirsIquote = appendMissing(dirs.dirsIquote, other.dirsIquote)
	dirs.dirsIsystem = appendMissing(dirs.dirsIsystem, other.dirsIsystem)
	if other.sysroot != "" {
		dirs.sysroot = other.sysroot
	}
}

func appendMissing(dst []string, src []string) []string {
	for _, dir := range src {
		if !slices.Contains(dst, dir) {
			dst = append(dst, dir)
		}
	}
	return dst
}
