// Package domain contains coverage aggregation, verification and the batch workflow.
package domain

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/mouse-blink/covrig/internal/adapter"
	"github.com/mouse-blink/covrig/internal/controller"
	m "github.com/mouse-blink/covrig/internal/model"
)

var (
	// ErrRulesViolated is returned when at least one bound is violated.
	ErrRulesViolated = errors.New("coverage rules violated")
	// ErrRulesFailed is returned when at least one rule could not be evaluated.
	ErrRulesFailed = errors.New("coverage rules could not be evaluated")
	// ErrRequestsFailed is returned when at least one report could not be written.
	ErrRequestsFailed = errors.New("aggregation requests failed")
	// ErrUnknownReport is returned for a rule whose report is neither produced
	// by the batch nor present on disk.
	ErrUnknownReport = errors.New("rule references unknown report")
)

// CheckArgs describes a batch that aggregates and then verifies.
type CheckArgs struct {
	AggregateArgs
	Rules []m.Rule
}

// ViewArgs selects a stored report and the granularity to summarize it at.
type ViewArgs struct {
	Report m.Path
	Target m.Target
}

// Workflow defines the coverage batch operations exposed by the CLI.
type Workflow interface {
	Aggregate(ctx context.Context, args AggregateArgs) error
	Verify(ctx context.Context, args VerifyArgs) error
	Check(ctx context.Context, args CheckArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	store      adapter.CaptureStore
	ui         controller.UI
	aggregator Aggregator
	verifier   Verifier
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	store adapter.CaptureStore,
	ui controller.UI,
	aggregator Aggregator,
	verifier Verifier,
) Workflow {
	return &workflow{
		store:      store,
		ui:         ui,
		aggregator: aggregator,
		verifier:   verifier,
	}
}

// Aggregate writes one report per request and displays the outcome.
func (w *workflow) Aggregate(ctx context.Context, args AggregateArgs) error {
	if err := validateRequests(args.Requests); err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithAggregateMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}

	defer w.stopUI()

	w.ui.DisplayBatchInfo(len(args.Reports), len(args.Requests), 0, threadCount(args.Threads))

	result, err := w.aggregator.Aggregate(ctx, args)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}

	w.ui.DisplayRequestResults(result.Results)
	w.ui.DisplayDiagnostics(result.Diagnostics.Entries())

	return requestsError(result.Results)
}

// Verify evaluates rules against existing reports.
func (w *workflow) Verify(ctx context.Context, args VerifyArgs) error {
	if err := w.ui.Start(controller.WithVerifyMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}

	defer w.stopUI()

	w.ui.DisplayBatchInfo(0, 0, len(args.Rules), threadCount(args.Threads))

	result, err := w.verifier.Verify(ctx, args)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	w.ui.DisplayViolations(result.Violations, result.Failures)
	w.ui.DisplayDiagnostics(result.Diagnostics.Entries())

	return verifyError(result)
}

// Check aggregates and then verifies. Every rule must reference a report
// produced by one of the requests or one that already exists; rules whose
// request failed are reported as failed while the others still run.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	if err := validateRequests(args.Requests); err != nil {
		return err
	}

	if err := w.validateRuleReports(args.Requests, args.Rules); err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithVerifyMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}

	defer w.stopUI()

	threads := threadCount(args.Threads)
	w.ui.DisplayBatchInfo(len(args.Reports), len(args.Requests), len(args.Rules), threads)

	aggregated, err := w.aggregator.Aggregate(ctx, args.AggregateArgs)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}

	w.ui.DisplayRequestResults(aggregated.Results)

	unavailable := make(map[m.Path]error)

	for _, r := range aggregated.Results {
		if r.Err != nil && r.Request.Output != "" {
			unavailable[r.Request.Output] = r.Err
		}
	}

	verified, err := w.verifier.Verify(ctx, VerifyArgs{
		Rules:       args.Rules,
		Threads:     threads,
		Unavailable: unavailable,
	})
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	w.ui.DisplayViolations(verified.Violations, verified.Failures)

	diagnostics := append(aggregated.Diagnostics.Entries(), verified.Diagnostics.Entries()...)
	w.ui.DisplayDiagnostics(diagnostics)

	return errors.Join(requestsError(aggregated.Results), verifyError(verified))
}

// View summarizes a stored report at the requested granularity.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := args.Target
	if target == "" {
		target = m.TargetPackage
	}

	project, err := w.store.LoadProject(args.Report)
	if err != nil {
		return fmt.Errorf("failed to load report: %w", err)
	}

	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}

	defer w.stopUI()

	w.ui.DisplaySummary(args.Report, target, Summarize(project, target))

	return nil
}

func (w *workflow) stopUI() {
	w.ui.Close()
	w.ui.Wait()
}

func (w *workflow) validateRuleReports(requests []m.Request, rules []m.Rule) error {
	produced := make(map[m.Path]bool, len(requests))
	for _, req := range requests {
		if req.Output != "" {
			produced[req.Output] = true
		}
	}

	checked := make(map[m.Path]bool)

	for _, rule := range rules {
		if produced[rule.Report] || checked[rule.Report] {
			continue
		}

		exists, err := w.store.Exists(rule.Report)
		if err != nil {
			return fmt.Errorf("rule %d: %w", rule.ID, err)
		}

		if !exists {
			return fmt.Errorf("rule %d: %w %s", rule.ID, ErrUnknownReport, rule.Report)
		}

		checked[rule.Report] = true
	}

	return nil
}

// validateRequests compiles every filter and rejects requests sharing an
// output, which would overwrite each other's report.
func validateRequests(requests []m.Request) error {
	outputs := make(map[m.Path]int, len(requests))

	for i, req := range requests {
		if _, err := NewClassFilter(req.Filters); err != nil {
			return fmt.Errorf("request %s: %w", requestLabel(req, i), err)
		}

		if req.Output == "" {
			continue
		}

		key := m.Path(filepath.Clean(string(req.Output)))
		if prev, ok := outputs[key]; ok {
			return fmt.Errorf("%w: requests %s and %s both write %s",
				adapter.ErrInvalidConfig, requestLabel(requests[prev], prev), requestLabel(req, i), req.Output)
		}

		outputs[key] = i
	}

	return nil
}

func requestsError(results []m.RequestResult) error {
	var failed []string

	for i, r := range results {
		if r.Err != nil {
			failed = append(failed, requestLabel(r.Request, i))
		}
	}

	if len(failed) == 0 {
		return nil
	}

	sort.Strings(failed)

	return fmt.Errorf("%w: %v", ErrRequestsFailed, failed)
}

func verifyError(result VerifyResult) error {
	var errs []error

	if n := countViolations(result.Violations); n > 0 {
		errs = append(errs, fmt.Errorf("%w: %d violation(s)", ErrRulesViolated, n))
	}

	if len(result.Failures) > 0 {
		errs = append(errs, fmt.Errorf("%w: %d rule(s)", ErrRulesFailed, len(result.Failures)))
	}

	return errors.Join(errs...)
}

func countViolations(violations []m.RuleViolation) int {
	n := 0

	for _, rv := range violations {
		for _, bv := range rv.Bounds {
			n += len(bv.Min) + len(bv.Max)
		}
	}

	return n
}

func threadCount(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}
