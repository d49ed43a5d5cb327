package domain

import "fmt"

// WindowMode selects how detectors bound their look-ahead scans.
type WindowMode string

const (
	// WindowModeLegacy uses the original fixed windows (5 lines after an
	// external call, 10 after a loop or function declaration, 3 before a
	// function for doc comments). Kept for compatibility testing.
	WindowModeLegacy WindowMode = "legacy"
	// WindowModeScoped bounds forward scans by brace depth instead of a
	// fixed line count.
	WindowModeScoped WindowMode = "scoped"
)

// DefaultMaxSourceBytes caps accepted source size. The core analysis has no
// limit of its own; this ceiling is enforced by the application layer.
const DefaultMaxSourceBytes = 1 << 20

// ScanConfig holds caller-level configuration loaded from .solaudit.yaml.
// None of it reaches the core analysis except the window mode, which is
// passed down as an explicit option.
type ScanConfig struct {
	MaxSourceBytes int             `yaml:"max_source_bytes" json:"max_source_bytes,omitempty"`
	WindowMode     WindowMode      `yaml:"window_mode"      json:"window_mode,omitempty"`
	OutputDir      string          `yaml:"output_dir"       json:"output_dir,omitempty"`
	Etherscan      EtherscanConfig `yaml:"etherscan"        json:"etherscan,omitempty"`
}

// EtherscanConfig configures the block-explorer source fetcher.
type EtherscanConfig struct {
	BaseURL string `yaml:"base_url" json:"base_url,omitempty"`
	APIKey  string `yaml:"api_key"  json:"api_key,omitempty"`
	ChainID int    `yaml:"chain_id" json:"chain_id,omitempty"`
}

// DefaultConfig returns the configuration used when no .solaudit.yaml exists.
func DefaultConfig() ScanConfig {
	return ScanConfig{
		MaxSourceBytes: DefaultMaxSourceBytes,
		WindowMode:     WindowModeLegacy,
		OutputDir:      ".solaudit/reports",
	}
}

// Validate rejects unknown window modes and nonsensical limits.
func (c ScanConfig) Validate() error {
	switch c.WindowMode {
	case "", WindowModeLegacy, WindowModeScoped:
	default:
		return fmt.Errorf("unknown window_mode %q (want %q or %q)", c.WindowMode, WindowModeLegacy, WindowModeScoped)
	}
	if c.MaxSourceBytes < 0 {
		return fmt.Errorf("max_source_bytes must be >= 0, got %d", c.MaxSourceBytes)
	}
	return nil
}

// WithDefaults fills any unset field from DefaultConfig.
func (c ScanConfig) WithDefaults() ScanConfig {
	def := DefaultConfig()
	if c.MaxSourceBytes == 0 {
		c.MaxSourceBytes = def.MaxSourceBytes
	}
	if c.WindowMode == "" {
		c.WindowMode = def.WindowMode
	}
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	return c
}
