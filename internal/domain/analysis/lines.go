package analysis

import "strings"

// Line is one line of contract source with its 1-based position. Content is
// preserved exactly; nothing else in the analyzer touches the raw text
// line-by-line.
type Line struct {
	Num  int
	Text string
}

// SplitLines splits source into its ordered line model. Any text is
// accepted; the empty string yields zero lines.
func SplitLines(source string) []Line {
	if source == "" {
		return nil
	}
	raw := strings.Split(source, "\n")
	lines := make([]Line, len(raw))
	for i, text := range raw {
		lines[i] = Line{Num: i + 1, Text: text}
	}
	return lines
}
