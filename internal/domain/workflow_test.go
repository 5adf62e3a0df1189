package domain_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/covrig/internal/adapter"
	adaptermocks "github.com/mouse-blink/covrig/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/covrig/internal/controller/mocks"
	"github.com/mouse-blink/covrig/internal/domain"
	domainmocks "github.com/mouse-blink/covrig/internal/domain/mocks"
	m "github.com/mouse-blink/covrig/internal/model"
)

type workflowFixture struct {
	store      *adaptermocks.MockCaptureStore
	ui         *controllermocks.MockUI
	aggregator *domainmocks.MockAggregator
	verifier   *domainmocks.MockVerifier
	wf         domain.Workflow
}

func newWorkflowFixture(t *testing.T) workflowFixture {
	f := workflowFixture{
		store:      adaptermocks.NewMockCaptureStore(t),
		ui:         controllermocks.NewMockUI(t),
		aggregator: domainmocks.NewMockAggregator(t),
		verifier:   domainmocks.NewMockVerifier(t),
	}
	f.wf = domain.NewWorkflow(f.store, f.ui, f.aggregator, f.verifier)

	return f
}

func (f workflowFixture) expectUILifecycle() {
	f.ui.EXPECT().Start(mock.Anything).Return(nil)
	f.ui.EXPECT().Close().Return()
	f.ui.EXPECT().Wait().Return()
}

func violation(ruleID int) m.RuleViolation {
	return m.RuleViolation{
		RuleID: ruleID,
		Bounds: []m.BoundViolation{{
			BoundID:   0,
			ValueType: m.ValueCoveredRate,
			Min:       []m.Violation{{Scope: "", Value: big.NewRat(3, 5)}},
		}},
	}
}

func TestWorkflow_Aggregate_DisplaysResults(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectUILifecycle()

	args := domain.AggregateArgs{
		Reports:  []m.Path{"a.yaml"},
		Requests: []m.Request{{Name: "all", Output: "out.yaml"}},
		Threads:  0,
	}

	results := []m.RequestResult{{Request: args.Requests[0], Project: m.NewProjectData(true, false)}}

	f.ui.EXPECT().DisplayBatchInfo(1, 1, 0, 1).Return()
	f.aggregator.EXPECT().Aggregate(mock.Anything, args).Return(domain.AggregateResult{
		Results:     results,
		Diagnostics: &m.Diagnostics{},
	}, nil)
	f.ui.EXPECT().DisplayRequestResults(results).Return()
	f.ui.EXPECT().DisplayDiagnostics([]m.Diagnostic(nil)).Return()

	err := f.wf.Aggregate(context.Background(), args)

	assert.NoError(t, err)
}

func TestWorkflow_Aggregate_InvalidPatternFailsBeforeUI(t *testing.T) {
	f := newWorkflowFixture(t)

	err := f.wf.Aggregate(context.Background(), domain.AggregateArgs{
		Requests: []m.Request{{Name: "bad", Filters: m.Filters{ExcludeClasses: []string{"["}}}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPattern)
}

func TestWorkflow_Aggregate_FailedRequestIsReported(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectUILifecycle()

	req := m.Request{Name: "core", Output: "core.yaml"}

	f.ui.EXPECT().DisplayBatchInfo(0, 1, 0, 2).Return()
	f.aggregator.EXPECT().Aggregate(mock.Anything, mock.Anything).Return(domain.AggregateResult{
		Results:     []m.RequestResult{{Request: req, Err: errors.New("disk full")}},
		Diagnostics: &m.Diagnostics{},
	}, nil)
	f.ui.EXPECT().DisplayRequestResults(mock.Anything).Return()
	f.ui.EXPECT().DisplayDiagnostics(mock.Anything).Return()

	err := f.wf.Aggregate(context.Background(), domain.AggregateArgs{Requests: []m.Request{req}, Threads: 2})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestsFailed)
	assert.Contains(t, err.Error(), "core")
}

func TestWorkflow_Aggregate_StartError(t *testing.T) {
	f := newWorkflowFixture(t)
	f.ui.EXPECT().Start(mock.Anything).Return(errors.New("no terminal"))

	err := f.wf.Aggregate(context.Background(), domain.AggregateArgs{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start UI")
}

func TestWorkflow_Verify_ReturnsErrRulesViolated(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectUILifecycle()

	args := domain.VerifyArgs{Rules: []m.Rule{{ID: 1, Report: "r.yaml"}}, Threads: 1}
	violations := []m.RuleViolation{violation(1)}

	f.ui.EXPECT().DisplayBatchInfo(0, 0, 1, 1).Return()
	f.verifier.EXPECT().Verify(mock.Anything, args).Return(domain.VerifyResult{
		Violations:  violations,
		Diagnostics: &m.Diagnostics{},
	}, nil)
	f.ui.EXPECT().DisplayViolations(violations, []m.RuleFailure(nil)).Return()
	f.ui.EXPECT().DisplayDiagnostics(mock.Anything).Return()

	err := f.wf.Verify(context.Background(), args)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRulesViolated)
	assert.NotErrorIs(t, err, domain.ErrRulesFailed)
}

func TestWorkflow_Verify_PassingRules(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectUILifecycle()

	f.ui.EXPECT().DisplayBatchInfo(0, 0, 0, 1).Return()
	f.verifier.EXPECT().Verify(mock.Anything, mock.Anything).Return(domain.VerifyResult{Diagnostics: &m.Diagnostics{}}, nil)
	f.ui.EXPECT().DisplayViolations([]m.RuleViolation(nil), []m.RuleFailure(nil)).Return()
	f.ui.EXPECT().DisplayDiagnostics(mock.Anything).Return()

	assert.NoError(t, f.wf.Verify(context.Background(), domain.VerifyArgs{}))
}

func TestWorkflow_DuplicateOutputsFailBeforeUI(t *testing.T) {
	requests := []m.Request{
		{Name: "a", Output: "out.yaml", Filters: m.Filters{IncludeClasses: []string{"a\\..*"}}},
		{Name: "b", Output: "./out.yaml", Filters: m.Filters{IncludeClasses: []string{"b\\..*"}}},
	}

	f := newWorkflowFixture(t)

	err := f.wf.Aggregate(context.Background(), domain.AggregateArgs{Requests: requests})
	require.ErrorIs(t, err, adapter.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "requests a and b")

	err = f.wf.Check(context.Background(), domain.CheckArgs{
		AggregateArgs: domain.AggregateArgs{Requests: requests},
		Rules:         []m.Rule{{Report: "out.yaml"}},
	})
	assert.ErrorIs(t, err, adapter.ErrInvalidConfig)
}

func TestWorkflow_Check_UnknownReportFailsFast(t *testing.T) {
	f := newWorkflowFixture(t)
	f.store.EXPECT().Exists(m.Path("elsewhere.yaml")).Return(false, nil)

	err := f.wf.Check(context.Background(), domain.CheckArgs{
		AggregateArgs: domain.AggregateArgs{Requests: []m.Request{{Output: "produced.yaml"}}},
		Rules: []m.Rule{
			{ID: 0, Report: "produced.yaml"},
			{ID: 1, Report: "elsewhere.yaml"},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownReport)
	assert.Contains(t, err.Error(), "rule 1")
}

func TestWorkflow_Check_FailedRequestMarksReportUnavailable(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectUILifecycle()

	saveErr := errors.New("disk full")
	failed := m.Request{Name: "core", Output: "core.yaml"}
	ok := m.Request{Name: "web", Output: "web.yaml"}
	rules := []m.Rule{{ID: 0, Report: "core.yaml"}, {ID: 1, Report: "web.yaml"}, {ID: 2, Report: "old.yaml"}}

	aggDiags := &m.Diagnostics{}
	aggDiags.Add(m.DiagnosticRequest, "core", saveErr)

	f.store.EXPECT().Exists(m.Path("old.yaml")).Return(true, nil)
	f.ui.EXPECT().DisplayBatchInfo(0, 2, 3, 4).Return()
	f.aggregator.EXPECT().Aggregate(mock.Anything, mock.Anything).Return(domain.AggregateResult{
		Results: []m.RequestResult{
			{Request: failed, Err: saveErr},
			{Request: ok, Project: m.NewProjectData(true, false)},
		},
		Diagnostics: aggDiags,
	}, nil)
	f.ui.EXPECT().DisplayRequestResults(mock.Anything).Return()

	failures := []m.RuleFailure{{RuleID: 0, Report: "core.yaml", Err: saveErr}}

	f.verifier.EXPECT().Verify(mock.Anything, mock.MatchedBy(func(args domain.VerifyArgs) bool {
		return len(args.Rules) == 3 &&
			args.Threads == 4 &&
			len(args.Unavailable) == 1 &&
			errors.Is(args.Unavailable["core.yaml"], saveErr)
	})).Return(domain.VerifyResult{
		Failures:    failures,
		Diagnostics: &m.Diagnostics{},
	}, nil)
	f.ui.EXPECT().DisplayViolations([]m.RuleViolation(nil), failures).Return()
	f.ui.EXPECT().DisplayDiagnostics(mock.MatchedBy(func(d []m.Diagnostic) bool {
		return len(d) == 1 && d[0].Kind == m.DiagnosticRequest
	})).Return()

	err := f.wf.Check(context.Background(), domain.CheckArgs{
		AggregateArgs: domain.AggregateArgs{Requests: []m.Request{failed, ok}, Threads: 4},
		Rules:         rules,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestsFailed)
	assert.ErrorIs(t, err, domain.ErrRulesFailed)
	assert.NotErrorIs(t, err, domain.ErrRulesViolated)
}

func TestWorkflow_View_DisplaysSummary(t *testing.T) {
	f := newWorkflowFixture(t)
	f.expectUILifecycle()

	project := m.NewProjectData(true, false)
	class := m.NewClassData("pkg.A")
	class.SetLine(&m.LineData{Line: 1, Hits: 1})
	project.AddClass(class)

	f.store.EXPECT().LoadProject(m.Path("report.yaml")).Return(project, nil)
	f.ui.EXPECT().DisplaySummary(m.Path("report.yaml"), m.TargetPackage, mock.MatchedBy(func(s []m.ScopeSummary) bool {
		return len(s) == 1 && s[0].Scope == "pkg" && s[0].Line.Covered == 1
	})).Return()

	err := f.wf.View(context.Background(), domain.ViewArgs{Report: "report.yaml"})

	assert.NoError(t, err)
}

func TestWorkflow_View_LoadError(t *testing.T) {
	f := newWorkflowFixture(t)
	f.store.EXPECT().LoadProject(m.Path("missing.yaml")).Return(nil, errors.New("not found"))

	err := f.wf.View(context.Background(), domain.ViewArgs{Report: "missing.yaml", Target: m.TargetAll})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load report")
}
