package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solaudit/solaudit/internal/adapters/outbound/config"
	"github.com/solaudit/solaudit/internal/adapters/outbound/etherscan"
	"github.com/solaudit/solaudit/internal/adapters/outbound/tui"
	"github.com/solaudit/solaudit/internal/application"
)

func newFetchCmd() *cobra.Command {
	var (
		output string
		scan   bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <address>",
		Short: "Fetch verified contract source from Etherscan",
		Long:  "Download the verified source of a deployed contract by address. With --scan the source is audited immediately instead of printed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := args[0]

			loader := config.New()
			cfg, err := loader.Load(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			source, err := etherscan.New(cfg.Etherscan).FetchSource(address)
			if err != nil {
				return fmt.Errorf("fetching %s: %w", address, err)
			}

			if scan {
				report, err := application.NewAuditService(loader).AuditSource(".", source)
				if err != nil {
					return fmt.Errorf("scanning failed: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
				return nil
			}

			if output != "" {
				if err := os.WriteFile(output, []byte(source), 0644); err != nil {
					return fmt.Errorf("writing %s: %w", output, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), source)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write fetched source to a file")
	cmd.Flags().BoolVar(&scan, "scan", false, "Scan the fetched source immediately")

	return cmd
}
