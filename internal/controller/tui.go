package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/covrig/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("ui already started")
	}

	t.program = tea.NewProgram(newReportModel(cfg.mode), tea.WithOutput(t.output), tea.WithAltScreen())
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		_, err := t.program.Run()

		t.mu.Lock()
		t.err = err
		t.mu.Unlock()
	}()

	return nil
}

// Close tells the program that no more results will arrive.
func (t *TUI) Close() {
	t.send(doneMsg{})
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Err returns the error the program exited with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// DisplayBatchInfo shows the size of the batch.
func (t *TUI) DisplayBatchInfo(captures, requests, rules, threads int) {
	t.send(batchMsg{captures: captures, requests: requests, rules: rules, threads: threads})
}

// DisplayRequestResults shows the aggregation outcome per request.
func (t *TUI) DisplayRequestResults(results []m.RequestResult) {
	t.send(newRequestsMsg(results))
}

// DisplayViolations shows violated bounds and failed rules.
func (t *TUI) DisplayViolations(violations []m.RuleViolation, failures []m.RuleFailure) {
	t.send(newViolationsMsg(violations, failures))
}

// DisplaySummary shows the per-scope counters of a report.
func (t *TUI) DisplaySummary(report m.Path, target m.Target, scopes []m.ScopeSummary) {
	t.send(newSummaryMsg(report, target, scopes))
}

// DisplayDiagnostics shows recorded problems.
func (t *TUI) DisplayDiagnostics(diagnostics []m.Diagnostic) {
	lines := make([]string, 0, len(diagnostics))
	for _, d := range diagnostics {
		lines = append(lines, d.String())
	}

	t.send(diagnosticsMsg{lines: lines})
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

func newRequestsMsg(results []m.RequestResult) requestsMsg {
	msg := requestsMsg{total: len(results)}

	for i, r := range results {
		status := "ok"
		classes, lines := "-", "-"

		if r.Project != nil {
			classes = fmt.Sprintf("%d", len(r.Project.Classes))
			lines = percent(summarizeLines(r.Project))
		}

		if r.Err != nil {
			status = "failed"
		} else {
			msg.succeeded++
		}

		msg.rows = append(msg.rows, resultItem{
			columns: []string{classes, lines, status, requestName(r, i)},
			failed:  r.Err != nil,
		})
	}

	return msg
}

func newViolationsMsg(violations []m.RuleViolation, failures []m.RuleFailure) violationsMsg {
	msg := violationsMsg{}

	for _, r := range flattenViolations(violations) {
		msg.rows = append(msg.rows, resultItem{
			columns: []string{fmt.Sprintf("%d", r.rule), fmt.Sprintf("%d", r.bound), r.kind, r.value, r.scope},
			failed:  true,
		})
	}

	for _, f := range failures {
		msg.failures = append(msg.failures, fmt.Sprintf("rule %d (%s): %v", f.RuleID, f.Report, f.Err))
	}

	return msg
}

func newSummaryMsg(report m.Path, target m.Target, scopes []m.ScopeSummary) summaryMsg {
	msg := summaryMsg{report: string(report), target: string(target)}

	var overall m.CounterTotals

	for _, sc := range scopes {
		overall.Add(sc.Line)
		msg.rows = append(msg.rows, resultItem{
			columns: []string{percent(sc.Line), percent(sc.Branch), percent(sc.Instruction), scopeLabel(sc.Scope)},
			failed:  sc.Line.Total() > 0 && sc.Line.Covered == 0,
		})
	}

	msg.overall = coveredFraction(overall)

	return msg
}
