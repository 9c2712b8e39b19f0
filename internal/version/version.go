// internal/version/version.go
package version

// Version is the released version string, overridable at link time via
// -ldflags "-X taxfilter/internal/version.Version=...".
var Version = "0.4.1"
