// Package controller provides output adapters for displaying aggregation and
// verification results.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/covrig/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeAggregate StartMode = iota
	ModeVerify
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithAggregateMode sets the UI to aggregation mode.
func WithAggregateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeAggregate
	}
}

// WithVerifyMode sets the UI to verification mode.
func WithVerifyMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeVerify
	}
}

// WithViewMode sets the UI to report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeAggregate}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how batch progress and results are presented.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayBatchInfo(captures, requests, rules, threads int)
	DisplayRequestResults(results []m.RequestResult)
	DisplayViolations(violations []m.RuleViolation, failures []m.RuleFailure)
	DisplaySummary(report m.Path, target m.Target, scopes []m.ScopeSummary)
	DisplayDiagnostics(diagnostics []m.Diagnostic)
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
