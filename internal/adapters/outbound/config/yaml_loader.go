package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/solaudit/solaudit/internal/domain"
)

const fileName = ".solaudit.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .solaudit.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .solaudit.yaml from dir. A missing file is not an error; the
// defaults apply.
func (l *YAMLLoader) Load(dir string) (domain.ScanConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ScanConfig{}, err
	}

	var cfg domain.ScanConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ScanConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ScanConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg.WithDefaults(), nil
}
