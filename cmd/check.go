package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/covrig/internal/domain"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Aggregate and verify in one batch",
		Long: `Write every configured report, then evaluate the configured rules.
Rules must reference a report written by the batch or one that already
exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			wf, err := resolveWorkflow(cmd, cfg.ClassIndex)
			if err != nil {
				return err
			}

			return wf.Check(cmd.Context(), domain.CheckArgs{
				AggregateArgs: domain.AggregateArgs{
					Reports:  cfg.Reports,
					Requests: cfg.Requests,
					Threads:  cfg.Threads,
				},
				Rules: cfg.Rules,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
