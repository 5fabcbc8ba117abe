package flags

// Result is what a completion engine receives for a file.
// DoCache tells the caller it may reuse Flags for this file without asking again.
type Result struct {
	Flags   []string `json:"flags"`
	DoCache bool     `json:"do_cache"`
}

// Resolver maps a source file name to compiler flags.
// Flags don't depend on a file: it's a template with relative paths resolved against baseDir.
// A Resolver is immutable after creation and may be used from multiple goroutines.
type Resolver struct {
	template []string
	baseDir  string
	resolved []string
}

// MakeResolver creates a Resolver over a copy of template.
// An empty baseDir means "can't be determined": flags are served as is, without path rewriting.
func MakeResolver(template []string, baseDir string) *Resolver {
	r := &Resolver{
		template: append([]string(nil), template...),
		baseDir:  baseDir,
	}
	r.resolved = MakeRelativePathsInFlagsAbsolute(r.template, r.baseDir)
	return r
}

// FlagsForFile returns flags to parse fileName with.
// fileName isn't validated and doesn't have to exist.
func (r *Resolver) FlagsForFile(fileName string) Result {
	return Result{
		Flags:   append(make([]string, 0, len(r.resolved)), r.resolved...),
		DoCache: true,
	}
}

func (r *Resolver) BaseDir() string {
	return r.baseDir
}

func (r *Resolver) Template() []string {
	return append([]string(nil), r.template...)
}
