package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/covrig/internal/domain"
	m "github.com/mouse-blink/covrig/internal/model"
)

var viewTargetFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view REPORT",
		Short: "Summarize a written report",
		Long:  "Show line, branch and instruction coverage of a written report per scope.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := m.ParseTarget(viewTargetFlag)
			if err != nil {
				return err
			}

			wf, err := resolveWorkflow(cmd, "")
			if err != nil {
				return err
			}

			return wf.View(cmd.Context(), domain.ViewArgs{
				Report: m.Path(args[0]),
				Target: target,
			})
		},
	}
	cmd.Flags().StringVarP(&viewTargetFlag, "target", "t", string(m.TargetPackage), "scope granularity: ALL, PACKAGE or CLASS")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
