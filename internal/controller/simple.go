package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/covrig/internal/model"
)

// SimpleUI implements UI using plain text tables on the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// Wait returns immediately; there is nothing to wait for.
func (s *SimpleUI) Wait() {
}

// DisplayBatchInfo prints the size of the batch.
func (s *SimpleUI) DisplayBatchInfo(captures, requests, rules, threads int) {
	s.printf("Captures: %d, requests: %d, rules: %d, workers: %d\n", captures, requests, rules, threads)
}

// DisplayRequestResults prints one row per aggregation request.
func (s *SimpleUI) DisplayRequestResults(results []m.RequestResult) {
	if len(results) == 0 {
		s.printf("No requests\n")
		return
	}

	table, buf := newTable([]string{"Request", "Output", "Classes", "Lines", "Status"})

	for i, r := range results {
		status := "ok"
		classes, lines := "-", "-"

		if r.Project != nil {
			classes = fmt.Sprintf("%d", len(r.Project.Classes))
			lines = percent(summarizeLines(r.Project))
		}

		if r.Err != nil {
			status = "failed: " + r.Err.Error()
		}

		table.Append([]string{requestName(r, i), string(r.Request.Output), classes, lines, status})
	}

	table.Render()
	s.printf("\n%s", buf.String())
}

// DisplayViolations prints every violated bound, or a success line.
func (s *SimpleUI) DisplayViolations(violations []m.RuleViolation, failures []m.RuleFailure) {
	rows := flattenViolations(violations)

	if len(rows) == 0 && len(failures) == 0 {
		s.printf("All rules passed\n")
		return
	}

	if len(rows) > 0 {
		table, buf := newTable([]string{"Rule", "Bound", "Kind", "Scope", "Value"})

		for _, r := range rows {
			table.Append([]string{
				fmt.Sprintf("%d", r.rule),
				fmt.Sprintf("%d", r.bound),
				r.kind,
				r.scope,
				r.value,
			})
		}

		table.SetFooter([]string{"", "", "", "Violations", fmt.Sprintf("%d", len(rows))})
		table.Render()
		s.printf("\n%s", buf.String())
	}

	for _, f := range failures {
		s.printf("rule %d failed (%s): %v\n", f.RuleID, f.Report, f.Err)
	}
}

// DisplaySummary prints per-scope counters of a report.
func (s *SimpleUI) DisplaySummary(report m.Path, target m.Target, scopes []m.ScopeSummary) {
	s.printf("Report %s (%s)\n", report, target)

	table, buf := newTable([]string{"Scope", "Classes", "Lines", "Line %", "Branches", "Branch %", "Instructions", "Instr %"})

	for _, sc := range scopes {
		table.Append([]string{
			scopeLabel(sc.Scope),
			fmt.Sprintf("%d", sc.Classes),
			ratio(sc.Line),
			percent(sc.Line),
			ratio(sc.Branch),
			percent(sc.Branch),
			ratio(sc.Instruction),
			percent(sc.Instruction),
		})
	}

	table.Render()
	s.printf("\n%s", buf.String())
}

// DisplayDiagnostics prints recorded problems.
func (s *SimpleUI) DisplayDiagnostics(diagnostics []m.Diagnostic) {
	if len(diagnostics) == 0 {
		return
	}

	s.printf("%d problem(s) skipped:\n", len(diagnostics))

	for _, d := range diagnostics {
		s.printf("  %s\n", d)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table, &buf
}

func summarizeLines(project *m.ProjectData) m.CounterTotals {
	var t m.CounterTotals

	for _, class := range project.Classes {
		class.EachLine(func(l *m.LineData) {
			if l.Status() == m.LineNone {
				t.Missed++
			} else {
				t.Covered++
			}
		})
	}

	return t
}
