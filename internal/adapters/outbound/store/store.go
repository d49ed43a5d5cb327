package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/solaudit/solaudit/internal/domain"
)

// FileStore implements domain.ReportStore by writing timestamped report
// files under the configured output directory.
type FileStore struct {
	outputDir string
	now       func() time.Time
}

func New(outputDir string) *FileStore {
	return &FileStore{outputDir: outputDir, now: time.Now}
}

func (s *FileStore) SaveJSON(report *domain.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}
	return s.write("json", data)
}

func (s *FileStore) SaveMarkdown(report *domain.Report, markdown string) (string, error) {
	return s.write("md", []byte(markdown))
}

func (s *FileStore) write(ext string, data []byte) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	name := fmt.Sprintf("scan_report_%d.%s", s.now().Unix(), ext)
	path := filepath.Join(s.outputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing report file: %w", err)
	}
	return path, nil
}
