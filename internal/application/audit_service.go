package application

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/solaudit/solaudit/internal/domain"
	"github.com/solaudit/solaudit/internal/domain/analysis"
)

// AuditService orchestrates one scan: load config, enforce the caller-level
// input ceiling, run the core analysis. The core itself stays total and
// config-free; every guard lives here.
type AuditService struct {
	configLoader domain.ConfigLoader
}

func NewAuditService(configLoader domain.ConfigLoader) *AuditService {
	return &AuditService{configLoader: configLoader}
}

// AuditSource analyzes raw contract source. dir is where .solaudit.yaml is
// looked up; pass "." when scanning text with no file of its own.
func (s *AuditService) AuditSource(dir, source string) (*domain.Report, error) {
	cfg, err := s.configLoader.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	cfg = cfg.WithDefaults()

	if cfg.MaxSourceBytes > 0 && len(source) > cfg.MaxSourceBytes {
		return nil, fmt.Errorf("source is %d bytes, limit is %d: %w",
			len(source), cfg.MaxSourceBytes, domain.ErrAnalysisRejected)
	}

	report := analysis.Analyze(source, analysis.Options{WindowMode: cfg.WindowMode})
	return &report, nil
}

// AuditFile reads a contract file and analyzes it. Config is resolved from
// the file's directory.
func (s *AuditService) AuditFile(path string) (*domain.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading contract: %w", err)
	}
	return s.AuditSource(filepath.Dir(path), string(data))
}
