package version

// AppVersion is the release version, overridden at build time via
// -ldflags "-X logsurrogate/internal/version.AppVersion=...".
var AppVersion = "0.1.0"
