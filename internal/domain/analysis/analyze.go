package analysis

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/solaudit/solaudit/internal/domain"
	"github.com/solaudit/solaudit/internal/domain/scoring"
)

// Options control one analysis run. The zero value selects the legacy
// fixed-window mode.
type Options struct {
	WindowMode domain.WindowMode
}

// Analyze runs every detector over the source and assembles the immutable
// report: findings in detector order then line order, category scores, the
// weighted overall score, and the advisory checklist.
//
// Analyze is total and deterministic: any string input, including the empty
// string, yields a report, and identical input yields identical output.
// Detectors are independent and run concurrently; each writes into its own
// result slot, so parallelism never changes report order.
func Analyze(source string, opts Options) domain.Report {
	mode := opts.WindowMode
	if mode == "" {
		mode = domain.WindowModeLegacy
	}

	src := &Source{Raw: source, Lines: SplitLines(source), Mode: mode}

	detectors := Detectors()
	results := make([][]domain.Finding, len(detectors))
	g := new(errgroup.Group)
	for i, det := range detectors {
		g.Go(func() error {
			results[i] = det.Run(src)
			return nil
		})
	}
	_ = g.Wait() // detectors have no failure mode

	findings := make([]domain.Finding, 0)
	seen := make(map[string]int)
	for i, det := range detectors {
		for _, f := range results[i] {
			f.ID = findingID(det.Name, f.Line, seen)
			findings = append(findings, f)
		}
	}

	scores, overall := scoring.Aggregate(findings)

	return domain.Report{
		OverallScore: overall,
		Scores:       scores,
		Findings:     findings,
		Suggestions:  scoring.Checklist(),
	}
}

// findingID builds a report-unique ID from the detector name and line. A
// line that triggers the same detector more than once gets an ordinal
// suffix.
func findingID(detector string, line int, seen map[string]int) string {
	id := fmt.Sprintf("%s-%d", detector, line)
	seen[id]++
	if n := seen[id]; n > 1 {
		return fmt.Sprintf("%s-%d", id, n)
	}
	return id
}
