package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	Primary lipgloss.Color // #4d9375
	Blue    lipgloss.Color // #6394bf
	Yellow  lipgloss.Color // #e6cc77
	Magenta lipgloss.Color // #d9739f
	Cyan    lipgloss.Color // #5eaab5
	Red     lipgloss.Color // #cb7676

	Text      lipgloss.Color // #dbd7ca
	Secondary lipgloss.Color // #bfbaaa
	Muted     lipgloss.Color // #dedcd5
}

// Vitesse is the palette used for colored log lines.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Blue:    lipgloss.Color("#6394bf"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Magenta: lipgloss.Color("#d9739f"),
	Cyan:    lipgloss.Color("#5eaab5"),
	Red:     lipgloss.Color("#cb7676"),

	Text:      lipgloss.Color("#dbd7ca"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Muted:     lipgloss.Color("#dedcd5"),
}

// LevelStyles renders the timestamp and level tokens of a log line.
// Only ANSI styling is added: stripping escape sequences gives back the
// plain token.
type LevelStyles struct {
	timestamp lipgloss.Style
	fallback  lipgloss.Style
	levels    map[string]lipgloss.Style
}

// NewLevelStyles builds styles bound to w. Whether to color is decided by
// UseColor; unless mode is ColorNever the detected profile is kept but
// never drops to plain ASCII (termenv does so for non-files and under CI).
func NewLevelStyles(w io.Writer, mode ColorMode) *LevelStyles {
	r := lipgloss.NewRenderer(w)
	if mode != ColorNever && r.ColorProfile() == termenv.Ascii {
		r.SetColorProfile(termenv.ANSI256)
	}
	fg := func(c lipgloss.Color) lipgloss.Style { return r.NewStyle().Foreground(c) }
	return &LevelStyles{
		timestamp: fg(Vitesse.Muted),
		fallback:  fg(Vitesse.Text),
		levels: map[string]lipgloss.Style{
			"SYSTEM":   fg(Vitesse.Primary).Bold(true),
			"INFO":     fg(Vitesse.Primary),
			"PROGRESS": fg(Vitesse.Blue),
			"AUDIT":    fg(Vitesse.Blue),
			"THINKING": fg(Vitesse.Magenta),
			"DATA":     fg(Vitesse.Cyan),
			"TRACE":    fg(Vitesse.Muted),
			"DEBUG":    fg(Vitesse.Secondary),
			"WARNING":  fg(Vitesse.Yellow),
			"ERROR":    fg(Vitesse.Red),
			"FATAL":    fg(Vitesse.Red).Bold(true),
		},
	}
}

// Timestamp styles an already bracketed timestamp.
func (s *LevelStyles) Timestamp(ts string) string {
	return s.timestamp.Render(ts)
}

// Level renders "[LEVEL]" in the level's color. Unknown levels use the
// plain text color.
func (s *LevelStyles) Level(level string) string {
	st, ok := s.levels[strings.ToUpper(level)]
	if !ok {
		st = s.fallback
	}
	return st.Render("[" + level + "]")
}
