package analysis

import "github.com/solaudit/solaudit/internal/domain"

// scanLimit returns the exclusive end index for a forward scan starting
// after the 0-based anchor line.
//
// Legacy mode uses the original fixed window of n lines. Scoped mode tracks
// brace depth instead: the scan may continue until the block enclosing the
// anchor line closes. Braces on the anchor line itself are ignored, so a
// balanced pair like `call{value: x}` does not end the window.
func scanLimit(src *Source, anchor, fixed int) int {
	if src.Mode != domain.WindowModeScoped {
		end := anchor + 1 + fixed
		if end > len(src.Lines) {
			end = len(src.Lines)
		}
		return end
	}

	depth := 0
	for j := anchor + 1; j < len(src.Lines); j++ {
		for _, r := range src.Lines[j].Text {
			switch r {
			case '{':
				depth++
			case '}':
				depth--
			}
			if depth < 0 {
				return j + 1
			}
		}
	}
	return len(src.Lines)
}
