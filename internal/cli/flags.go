package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// firstValue is a string flag that keeps its first occurrence; repeated
// flags on the command line are ignored.
type firstValue struct {
	value string
	set   bool
}

var _ pflag.Value = (*firstValue)(nil)

func (f *firstValue) String() string { return f.value }

func (f *firstValue) Set(s string) error {
	if f.set {
		return nil
	}
	f.value = s
	f.set = true
	return nil
}

func (f *firstValue) Type() string { return "string" }

// normalizeArgs accepts the single-dash -data-dir spelling of the stdlib
// flag package, which pflag would otherwise read as a cluster of unknown
// shorthands. Arguments after "--" are left alone.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--" {
			return append(out, args[i:]...)
		}
		if a == "-data-dir" || strings.HasPrefix(a, "-data-dir=") {
			a = "-" + a
		}
		out = append(out, a)
	}
	return out
}
