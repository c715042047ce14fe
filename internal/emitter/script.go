package emitter

import "time"

// Entry is one scripted log line, emitted after Delay.
type Entry struct {
	Delay   time.Duration
	Level   string
	Message string
}

// Script returns the fixed replay sequence. selfPath feeds the file-link
// line, which the GUI turns into a clickable path via the @ prefix.
func Script(selfPath string) []Entry {
	return []Entry{
		{200 * time.Millisecond, "THINKING", "Initializing cognitive matrix..."},
		{200 * time.Millisecond, "DATA", "Loading initial dataset from cache... 5.2 MB loaded."},
		{100 * time.Millisecond, "INFO", "Testing standard log levels..."},
		{100 * time.Millisecond, "TRACE", "This is a test message with level: TRACE"},
		{100 * time.Millisecond, "DEBUG", "Variable `x` is now 10."},
		{100 * time.Millisecond, "INFO", "This is a test message with level: INFO"},
		{300 * time.Millisecond, "INFO", "File link test. Click to open relative path: @" + selfPath},
		{300 * time.Millisecond, "INFO", "Web link test. For more info, visit https://www.github.com/uzuLee"},
		{300 * time.Millisecond, "THINKING", `Analyzing topic: "AI Ethics"`},
		{200 * time.Millisecond, "THINKING", "Hypothesis 1: Autonomy creates accountability gap."},
		{100 * time.Millisecond, "WARNING", "Confidence score for hypothesis 1 is low (0.65)."},
		{500 * time.Millisecond, "AUDIT", "Security check passed for model access."},
		{200 * time.Millisecond, "DATA", "Writing generated text to output buffer..."},
		{100 * time.Millisecond, "ERROR", "Failed to connect to external knowledge base."},
		{100 * time.Millisecond, "FATAL", "Critical memory integrity failure. Aborting."},
	}
}
