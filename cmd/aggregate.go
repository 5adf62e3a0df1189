package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/covrig/internal/domain"
)

// aggregateCmd represents the aggregate command.
var aggregateCmd = newAggregateCmd()

func newAggregateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Merge captures into filtered reports",
		Long:  "Merge the configured captures and write one filtered report per request.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			wf, err := resolveWorkflow(cmd, cfg.ClassIndex)
			if err != nil {
				return err
			}

			return wf.Aggregate(cmd.Context(), domain.AggregateArgs{
				Reports:  cfg.Reports,
				Requests: cfg.Requests,
				Threads:  cfg.Threads,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(aggregateCmd)
}
