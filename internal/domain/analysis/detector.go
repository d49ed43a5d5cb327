package analysis

import "github.com/solaudit/solaudit/internal/domain"

// Source bundles the raw text, its line model, and the window mode for one
// analysis run. Detectors read it; nothing mutates it.
type Source struct {
	Raw   string
	Lines []Line
	Mode  domain.WindowMode
}

// Detector is one pure pattern check over the line model. Detectors never
// fail and never see each other's output.
type Detector struct {
	Name string
	Run  func(src *Source) []domain.Finding
}

// Detectors returns the detector set in report order. Findings appear in the
// final report in this declaration order, then line order within a detector.
func Detectors() []Detector {
	return []Detector{
		{Name: "reentrancy", Run: detectReentrancy},
		{Name: "arithmetic", Run: detectArithmetic},
		{Name: "gas-loop", Run: detectGasLoop},
		{Name: "access-control", Run: detectAccessControl},
		{Name: "natspec", Run: detectNatSpec},
	}
}
