// Package cmd provides the root command and CLI setup for covrig.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/covrig/internal/adapter"
	"github.com/mouse-blink/covrig/internal/controller"
	"github.com/mouse-blink/covrig/internal/domain"
	m "github.com/mouse-blink/covrig/internal/model"
)

const (
	defaultConfigPath = "covrig.yaml"
	envConfig         = "COVRIG_CONFIG"
)

var configLoader adapter.ConfigLoader

// workflow is built on first use from the loaded configuration unless it
// has already been set.
var workflow domain.Workflow

func init() {
	configLoader = adapter.NewLocalConfigLoader()
}

var configFlag string
var parallelFlag int
var noTTYFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "covrig",
		Short: "Coverage report aggregation and verification",
		Long: `Covrig merges raw coverage captures into filtered reports and checks
them against coverage rules.

A batch is described by a YAML configuration file:
  - reports    raw captures to merge
  - requests   filtered reports to write
  - rules      bounds to verify against written reports`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "batch configuration file (default $"+envConfig+" or "+defaultConfigPath+")")
	cmd.PersistentFlags().IntVarP(&parallelFlag, "parallel", "p", 0, "number of parallel workers (overrides the configuration)")
	cmd.PersistentFlags().BoolVar(&noTTYFlag, "no-tty", false, "disable the interactive terminal UI")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func configPath() m.Path {
	if configFlag != "" {
		return m.Path(configFlag)
	}

	if env := os.Getenv(envConfig); env != "" {
		return m.Path(env)
	}

	return defaultConfigPath
}

func loadConfig() (m.Config, error) {
	cfg, err := configLoader.Load(configPath())
	if err != nil {
		return m.Config{}, err
	}

	if parallelFlag > 0 {
		cfg.Threads = parallelFlag
	}

	return cfg, nil
}

func resolveWorkflow(cmd *cobra.Command, classIndex m.Path) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	store, err := adapter.NewLocalCaptureStore(adapter.DefaultProjectCacheSize)
	if err != nil {
		return nil, err
	}

	index, err := adapter.LoadClassIndex(classIndex)
	if err != nil {
		return nil, fmt.Errorf("class index: %w", err)
	}

	ui := controller.NewUI(cmd, !noTTYFlag && controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(
		store,
		ui,
		domain.NewAggregator(store, index),
		domain.NewVerifier(store),
	), nil
}
