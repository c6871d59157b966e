package buildinfo

// Release builds inject these via -ldflags. They stay empty for local
// builds, where the version command falls back to module build info.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
