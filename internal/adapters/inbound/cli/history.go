package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solaudit/solaudit/internal/adapters/outbound/history"
	"github.com/solaudit/solaudit/internal/adapters/outbound/tui"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [dir]",
		Short: "Show scan history recorded for a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			entries, err := history.New().Load(dir)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}
}
