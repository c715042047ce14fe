package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// PauseFlagName is the sentinel file the GUI creates inside the data
// directory to request a pause.
const PauseFlagName = "pause.flag"

// UnknownSelfPath is reported when the running binary cannot be located.
const UnknownSelfPath = "<unknown>"

var (
	// ErrDataDirRequired is returned when --data-dir is missing or empty.
	ErrDataDirRequired = errors.New("--data-dir argument is required")
	// ErrInvalidSpeed is returned for a negative or non-finite --speed.
	ErrInvalidSpeed = errors.New("--speed must be a finite number, zero or positive")
)

// Paths holds the resolved control locations.
type Paths struct {
	DataDir   string
	PauseFlag string
}

// Resolve turns the --data-dir value into absolute control paths.
// The directory does not have to exist yet; the GUI may create it later.
func Resolve(dataDir string) (Paths, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Paths{}, ErrDataDirRequired
	}
	abs, err := filepath.Abs(dataDir)
	if err != nil {
		return Paths{}, fmt.Errorf("resolve data dir %q: %w", dataDir, err)
	}
	return Paths{DataDir: abs, PauseFlag: filepath.Join(abs, PauseFlagName)}, nil
}

// ValidateSpeed checks the delay scale factor. Zero disables delays;
// NaN and infinities are rejected.
func ValidateSpeed(speed float64) error {
	if speed < 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidSpeed, speed)
	}
	return nil
}

// SelfPath returns the absolute path of the running binary.
// Falls back to argv[0] and finally to UnknownSelfPath; it never fails.
func SelfPath() string {
	arg0 := ""
	if len(os.Args) > 0 {
		arg0 = os.Args[0]
	}
	return selfPath(os.Executable, arg0)
}

func selfPath(executable func() (string, error), arg0 string) string {
	if p, err := executable(); err == nil && strings.TrimSpace(p) != "" {
		return p
	}
	if strings.TrimSpace(arg0) != "" {
		if p, err := filepath.Abs(arg0); err == nil {
			return p
		}
	}
	return UnknownSelfPath
}
