package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solaudit/solaudit/internal/domain/scoring"
)

func newChecklistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checklist",
		Short: "Print the pre-deployment review checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, item := range scoring.Checklist() {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", item)
			}
			return nil
		},
	}
}
