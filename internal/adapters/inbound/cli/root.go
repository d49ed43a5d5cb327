package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "solaudit",
		Short:         "Scan Solidity contracts before they scan you",
		Long:          "Solaudit runs pattern detectors over Solidity source, scores the result across five categories, and reports every finding with remediation advice.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newFetchCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newChecklistCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
