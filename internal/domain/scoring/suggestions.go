package scoring

// checklist is the general remediation checklist attached to every report.
// It is deliberately constant: targeted advice already travels on each
// finding, and the checklist reads as a pre-deployment review list whether
// or not a particular detector fired.
var checklist = []string{
	"Follow the checks-effects-interactions pattern for all external calls",
	"Compile with Solidity 0.8+ or use SafeMath to guard arithmetic",
	"Protect privileged functions with access-control modifiers",
	"Minimize storage reads and writes inside loops",
	"Document public interfaces with NatSpec comments",
	"Cover failure paths and edge cases with unit tests",
	"Obtain an independent audit before deploying to mainnet",
}

// Checklist returns the advisory checklist as a fresh, deduplicated slice.
func Checklist() []string {
	return Dedupe(checklist)
}

// Dedupe removes duplicate strings while preserving first-seen order.
func Dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
