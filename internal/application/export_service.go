package application

import (
	"fmt"

	"github.com/solaudit/solaudit/internal/domain"
)

// ExportService renders a report and persists it through the store.
type ExportService struct {
	renderer domain.ReportRenderer
	store    domain.ReportStore
}

func NewExportService(renderer domain.ReportRenderer, store domain.ReportStore) *ExportService {
	return &ExportService{renderer: renderer, store: store}
}

// ExportMarkdown renders the report to Markdown and writes it to the output
// directory, returning the written path.
func (s *ExportService) ExportMarkdown(report *domain.Report) (string, error) {
	path, err := s.store.SaveMarkdown(report, s.renderer.Render(report))
	if err != nil {
		return "", fmt.Errorf("writing markdown report: %w", err)
	}
	return path, nil
}

// ExportJSON persists the raw report as JSON, returning the written path.
func (s *ExportService) ExportJSON(report *domain.Report) (string, error) {
	path, err := s.store.SaveJSON(report)
	if err != nil {
		return "", fmt.Errorf("writing json report: %w", err)
	}
	return path, nil
}
