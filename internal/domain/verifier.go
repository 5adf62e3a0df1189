package domain

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/covrig/internal/adapter"
	m "github.com/mouse-blink/covrig/internal/model"
)

// VerifyArgs describes one verification batch. Unavailable lists reports
// that are known not to have been produced, mapped to the reason; rules
// referencing them fail without touching the store.
type VerifyArgs struct {
	Rules       []m.Rule
	Threads     int
	Unavailable map[m.Path]error
}

// VerifyResult holds violations and failures, both in rule order.
type VerifyResult struct {
	Violations  []m.RuleViolation
	Failures    []m.RuleFailure
	Diagnostics *m.Diagnostics
}

// Verifier evaluates coverage rules against aggregated reports.
type Verifier interface {
	Verify(ctx context.Context, args VerifyArgs) (VerifyResult, error)
}

type verifier struct {
	store adapter.CaptureStore
}

// NewVerifier constructs a Verifier loading reports from store.
func NewVerifier(store adapter.CaptureStore) Verifier {
	return &verifier{store: store}
}

type ruleOutcome struct {
	violation m.RuleViolation
	violated  bool
	err       error
}

// Verify evaluates rules concurrently. A rule whose report cannot be loaded
// is recorded as a failure; the remaining rules are still evaluated.
func (v *verifier) Verify(ctx context.Context, args VerifyArgs) (VerifyResult, error) {
	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	outcomes := make([]ruleOutcome, len(args.Rules))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, rule := range args.Rules {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if reason, ok := args.Unavailable[rule.Report]; ok {
				outcomes[i].err = fmt.Errorf("report %s was not produced: %w", rule.Report, reason)
				return nil
			}

			project, err := v.store.LoadProject(rule.Report)
			if err != nil {
				outcomes[i].err = err
				return nil
			}

			outcomes[i].violation, outcomes[i].violated = EvaluateRule(rule, project)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return VerifyResult{}, err
	}

	result := VerifyResult{Diagnostics: &m.Diagnostics{}}

	for i, o := range outcomes {
		rule := args.Rules[i]

		switch {
		case o.err != nil:
			result.Failures = append(result.Failures, m.RuleFailure{RuleID: rule.ID, Report: rule.Report, Err: o.err})
			result.Diagnostics.Add(m.DiagnosticRule, fmt.Sprintf("rule %d", rule.ID), o.err)
		case o.violated:
			result.Violations = append(result.Violations, o.violation)
		}
	}

	return result, nil
}

// EvaluateRule checks every bound of rule against every scope instance of
// project. The second result is false when nothing is violated, in which case
// the rule produces no entry at all.
func EvaluateRule(rule m.Rule, project *m.ProjectData) (m.RuleViolation, bool) {
	scopes := Summarize(project, rule.Target)
	violation := m.RuleViolation{RuleID: rule.ID}

	for _, bound := range rule.Bounds {
		if bv, ok := evaluateBound(bound, scopes); ok {
			violation.Bounds = append(violation.Bounds, bv)
		}
	}

	return violation, len(violation.Bounds) > 0
}

func evaluateBound(bound m.Bound, scopes []m.ScopeSummary) (m.BoundViolation, bool) {
	bv := m.BoundViolation{BoundID: bound.ID, ValueType: bound.ValueType}

	for _, scope := range scopes {
		value := scope.Counter(bound.Counter).Value(bound.ValueType)

		if bound.Min != nil && value.Cmp(bound.Min) < 0 {
			bv.Min = append(bv.Min, m.Violation{Scope: scope.Scope, Value: value})
		}

		if bound.Max != nil && value.Cmp(bound.Max) > 0 {
			bv.Max = append(bv.Max, m.Violation{Scope: scope.Scope, Value: value})
		}
	}

	sortViolations(bv.Min)
	sortViolations(bv.Max)

	return bv, len(bv.Min) > 0 || len(bv.Max) > 0
}

func sortViolations(vs []m.Violation) {
	sort.SliceStable(vs, func(i, j int) bool { return vs[i].Scope < vs[j].Scope })
}
