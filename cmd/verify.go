package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/covrig/internal/domain"
)

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check existing reports against coverage rules",
		Long: `Evaluate the configured rules against reports written by an earlier
aggregation. Exits with a non-zero status when any bound is violated or a
rule cannot be evaluated.`,
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

			return wf.Verify(cmd.Context(), domain.VerifyArgs{
				Rules:   cfg.Rules,
				Threads: cfg.Threads,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
