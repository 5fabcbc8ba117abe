package common

// version is provided by `go build -ldflags "-X ..."` (same for the cli and the daemon)
var version string

func GetVersion() string {
	if len(version) == 0 {
		return "Unknown"
	}
	return version
}
