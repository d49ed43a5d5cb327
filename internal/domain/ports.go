package domain

import "errors"

// ErrAnalysisRejected is returned by callers of the core when an input
// violates a hosting-level guard (e.g. the source size ceiling). The core
// analysis itself is total and never produces it.
var ErrAnalysisRejected = errors.New("analysis rejected")

// SourceFetcher retrieves verified contract source from an external origin
// (e.g. a block explorer API) by contract address.
type SourceFetcher interface {
	FetchSource(address string) (string, error)
}

// ConfigLoader loads the project-level scan configuration.
type ConfigLoader interface {
	Load(dir string) (ScanConfig, error)
}

// ReportStore persists full reports and their rendered exports.
type ReportStore interface {
	SaveJSON(report *Report) (string, error)
	SaveMarkdown(report *Report, markdown string) (string, error)
}

// ReportRenderer turns a report into a display format (terminal, Markdown).
type ReportRenderer interface {
	Render(report *Report) string
}

// ScanHistory records one entry per scan, append-only.
type ScanHistory interface {
	Save(dir string, entry ScanEntry) error
	Load(dir string) ([]ScanEntry, error)
}

// GitInfo inspects the repository containing a scanned file, if any.
type GitInfo interface {
	IsGitRepo(dir string) bool
	CommitHash(dir string) (string, error)
}
