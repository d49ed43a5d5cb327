package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/solaudit/solaudit/internal/adapters/outbound/config"
	"github.com/solaudit/solaudit/internal/adapters/outbound/gitinfo"
	"github.com/solaudit/solaudit/internal/adapters/outbound/history"
	"github.com/solaudit/solaudit/internal/adapters/outbound/scanner"
	"github.com/solaudit/solaudit/internal/adapters/outbound/tui"
	"github.com/solaudit/solaudit/internal/application"
	"github.com/solaudit/solaudit/internal/domain"
)

func newScanCmd() *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		minScore   float64
	)

	cmd := &cobra.Command{
		Use:   "scan <contract.sol | directory>",
		Short: "Scan a contract or every contract under a directory",
		Long:  "Analyze Solidity source for reentrancy, unchecked arithmetic, gas-heavy loops, missing access control, and missing documentation.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			stat, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", path, err)
			}

			svc := application.NewAuditService(config.New())

			if stat.IsDir() {
				return runScanDir(cmd, svc, path, jsonOutput, ciMode, minScore)
			}
			return runScanFile(cmd, svc, path, jsonOutput, ciMode, minScore)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().Float64Var(&minScore, "min", 0, "Minimum overall score for CI mode")

	return cmd
}

func runScanFile(cmd *cobra.Command, svc *application.AuditService, path string, jsonOutput, ciMode bool, minScore float64) error {
	report, err := svc.AuditFile(path)
	if err != nil {
		return fmt.Errorf("scanning failed: %w", err)
	}

	saveHistory(path, report)

	if jsonOutput {
		if err := renderJSON(cmd, report); err != nil {
			return err
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
	}

	if ciMode && report.OverallScore < minScore {
		return fmt.Errorf("score %.1f is below minimum %.1f", report.OverallScore, minScore)
	}
	return nil
}

func runScanDir(cmd *cobra.Command, svc *application.AuditService, dir string, jsonOutput, ciMode bool, minScore float64) error {
	contracts, err := scanner.New().Scan(dir)
	if err != nil {
		return fmt.Errorf("walking %s: %w", dir, err)
	}
	if len(contracts) == 0 {
		return fmt.Errorf("no .sol files found under %s", dir)
	}

	reports := make(map[string]*domain.Report, len(contracts))
	for _, rel := range contracts {
		report, err := svc.AuditFile(filepath.Join(dir, rel))
		if err != nil {
			return fmt.Errorf("scanning %s: %w", rel, err)
		}
		reports[rel] = report
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	} else {
		for _, rel := range contracts {
			r := reports[rel]
			fmt.Fprintf(cmd.OutOrStdout(), "  %-40s %.1f/10  %s  %d findings\n",
				rel, r.OverallScore, r.Grade(), len(r.Findings))
		}
	}

	if ciMode {
		for _, rel := range contracts {
			if r := reports[rel]; r.OverallScore < minScore {
				return fmt.Errorf("%s scored %.1f, below minimum %.1f", rel, r.OverallScore, minScore)
			}
		}
	}
	return nil
}

// saveHistory appends a scan entry next to the contract, best-effort. The
// commit hash is attached when the contract lives in a git repo.
func saveHistory(path string, report *domain.Report) {
	dir := filepath.Dir(path)

	entry := domain.ScanEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Source:    filepath.Base(path),
		Overall:   report.OverallScore,
		Findings:  len(report.Findings),
		Grade:     report.Grade(),
	}

	gi := gitinfo.New()
	if hash, err := gi.CommitHash(dir); err == nil {
		entry.CommitHash = hash
	}

	_ = history.New().Save(dir, entry)
}

func renderJSON(cmd *cobra.Command, report *domain.Report) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
