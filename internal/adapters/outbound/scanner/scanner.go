package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"artifacts":    true,
	"cache":        true,
	"out":          true,
	"lib":          true,
}

// ContractScanner finds Solidity sources under a directory so a whole
// project can be scanned in one invocation.
type ContractScanner struct{}

func New() *ContractScanner {
	return &ContractScanner{}
}

// Scan walks dir and returns the relative paths of every .sol file, sorted
// for stable scan order. Build output and dependency directories are
// skipped.
func (s *ContractScanner) Scan(dir string) ([]string, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	var contracts []string
	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".sol") {
			rel, _ := filepath.Rel(absPath, path)
			contracts = append(contracts, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(contracts)
	return contracts, nil
}
