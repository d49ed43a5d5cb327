package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/solaudit/solaudit/internal/adapters/outbound/config"
	"github.com/solaudit/solaudit/internal/adapters/outbound/markdown"
	"github.com/solaudit/solaudit/internal/adapters/outbound/store"
	"github.com/solaudit/solaudit/internal/application"
)

func newExportCmd() *cobra.Command {
	var (
		format    string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "export <contract.sol>",
		Short: "Scan a contract and export the report to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			loader := config.New()
			cfg, err := loader.Load(filepath.Dir(path))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			report, err := application.NewAuditService(loader).AuditFile(path)
			if err != nil {
				return fmt.Errorf("scanning failed: %w", err)
			}

			dir := outputDir
			if dir == "" {
				dir = cfg.OutputDir
			}
			exporter := application.NewExportService(markdown.New(), store.New(dir))

			var written string
			switch format {
			case "md", "markdown":
				written, err = exporter.ExportMarkdown(report)
			case "json":
				written, err = exporter.ExportJSON(report)
			default:
				return fmt.Errorf("unknown format %q (want md or json)", format)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", written)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "md", "Export format: md or json")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default from config)")

	return cmd
}
