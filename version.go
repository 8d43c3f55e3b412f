package mswallet

import "fmt"

// Release numbers of this build.
const (
	Maj    = 0
	Min    = 1
	Fix    = 0
	Suffix = "-dev"
)

// GitCommit is filled in by the linker on release builds.
var GitCommit = ""

// Version is "v<maj>.<min>.<fix><suffix>", followed by the commit when it is
// known.
func Version() string {
	v := fmt.Sprintf("v%d.%d.%d%s", Maj, Min, Fix, Suffix)
	if GitCommit != "" {
		return v + " " + GitCommit
	}
	return v
}
