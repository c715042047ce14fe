package config

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
)

func TestResolve_RequiresDataDir(t *testing.T) {
	for _, in := range []string{"", "   "} {
		if _, err := Resolve(in); !errors.Is(err, ErrDataDirRequired) {
			t.Fatalf("Resolve(%q): expected ErrDataDirRequired, got %v", in, err)
		}
	}
}

func TestResolve_AbsoluteAndPauseFlag(t *testing.T) {
	tmp := t.TempDir()
	// missing directories are fine
	dir := filepath.Join(tmp, "not", "created")
	p, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if p.DataDir != dir {
		t.Fatalf("unexpected data dir: %q", p.DataDir)
	}
	if p.PauseFlag != filepath.Join(dir, "pause.flag") {
		t.Fatalf("unexpected pause flag: %q", p.PauseFlag)
	}

	rel, err := Resolve("relative/dir")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if !filepath.IsAbs(rel.DataDir) || filepath.Base(rel.DataDir) != "dir" {
		t.Fatalf("expected absolute path, got %q", rel.DataDir)
	}
}

func TestValidateSpeed(t *testing.T) {
	for _, ok := range []float64{0, 0.5, 1, 10} {
		if err := ValidateSpeed(ok); err != nil {
			t.Fatalf("ValidateSpeed(%g): %v", ok, err)
		}
	}
	for _, bad := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := ValidateSpeed(bad); !errors.Is(err, ErrInvalidSpeed) {
			t.Fatalf("ValidateSpeed(%g): expected ErrInvalidSpeed, got %v", bad, err)
		}
	}
	// tiny but positive is slow, not invalid
	if err := ValidateSpeed(1e-300); err != nil {
		t.Fatalf("ValidateSpeed(1e-300): %v", err)
	}
}

func TestSelfPath_Fallbacks(t *testing.T) {
	failing := func() (string, error) { return "", errors.New("no executable") }

	if got := selfPath(func() (string, error) { return "/opt/bin/surrogate", nil }, "ignored"); got != "/opt/bin/surrogate" {
		t.Fatalf("expected executable path, got %q", got)
	}
	got := selfPath(failing, "surrogate")
	if !filepath.IsAbs(got) || filepath.Base(got) != "surrogate" {
		t.Fatalf("expected absolute argv[0], got %q", got)
	}
	if got := selfPath(failing, ""); got != UnknownSelfPath {
		t.Fatalf("expected placeholder, got %q", got)
	}
	if got := SelfPath(); got == "" {
		t.Fatalf("SelfPath returned empty string")
	}
}
