package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared diagnostic logger.
// It prints to stderr with timestamps so the stdout log stream stays clean
// for whatever is tailing it.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "surrogate",
})

// SetDebug switches diagnostics between debug and info level.
func SetDebug(on bool) {
	if on {
		Logger.SetLevel(clog.DebugLevel)
		return
	}
	Logger.SetLevel(clog.InfoLevel)
}
