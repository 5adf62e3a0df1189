package controller

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/covrig/internal/model"
)

func newSimpleUIForTest() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func assertContains(t *testing.T, output string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func testProject(covered, missed int) *m.ProjectData {
	p := m.NewProjectData(true, false)
	c := m.NewClassData("pkg.A")

	line := 1
	for i := 0; i < covered; i++ {
		c.SetLine(&m.LineData{Line: line, Hits: 1})
		line++
	}

	for i := 0; i < missed; i++ {
		c.SetLine(&m.LineData{Line: line})
		line++
	}

	p.AddClass(c)

	return p
}

func TestSimpleUI_DisplayBatchInfo(t *testing.T) {
	ui, buf := newSimpleUIForTest()

	ui.DisplayBatchInfo(3, 2, 1, 4)

	assertContains(t, buf.String(), "Captures: 3, requests: 2, rules: 1, workers: 4")
}

func TestSimpleUI_DisplayRequestResults(t *testing.T) {
	ui, buf := newSimpleUIForTest()

	ui.DisplayRequestResults([]m.RequestResult{
		{Request: m.Request{Name: "core", Output: "out/core.yaml"}, Project: testProject(3, 1)},
		{Request: m.Request{Output: "out/web.yaml"}, Err: errors.New("disk full")},
	})

	assertContains(t, buf.String(),
		"REQUEST",
		"core",
		"out/core.yaml",
		"75.00%",
		"failed: disk full",
	)
}

func TestSimpleUI_DisplayRequestResults_Empty(t *testing.T) {
	ui, buf := newSimpleUIForTest()

	ui.DisplayRequestResults(nil)

	assertContains(t, buf.String(), "No requests")
}

func TestSimpleUI_DisplayViolations(t *testing.T) {
	ui, buf := newSimpleUIForTest()

	violations := []m.RuleViolation{{
		RuleID: 2,
		Bounds: []m.BoundViolation{{
			BoundID:   1,
			ValueType: m.ValueCoveredRate,
			Min: []m.Violation{
				{Scope: "", Value: big.NewRat(3, 5)},
				{Scope: "com.acme", Value: big.NewRat(1, 3)},
			},
		}},
	}}
	failures := []m.RuleFailure{{RuleID: 4, Report: "gone.yaml", Err: errors.New("no such file")}}

	ui.DisplayViolations(violations, failures)

	assertContains(t, buf.String(),
		"<root>",
		"0.600000",
		"com.acme",
		"0.333333",
		"min",
		"VIOLATIONS",
		"rule 4 failed (gone.yaml): no such file",
	)
}

func TestSimpleUI_DisplayViolations_ValueNotRoundedOntoBound(t *testing.T) {
	ui, buf := newSimpleUIForTest()

	ui.DisplayViolations([]m.RuleViolation{{
		RuleID: 0,
		Bounds: []m.BoundViolation{{
			ValueType: m.ValueCoveredRate,
			Min:       []m.Violation{{Scope: "pkg", Value: big.NewRat(7999996, 10000000)}},
		}},
	}}, nil)

	output := buf.String()
	assertContains(t, output, "0.799999")

	if strings.Contains(output, "0.800000") {
		t.Fatalf("violating value printed as the bound\n%s", output)
	}
}

func TestSimpleUI_DisplayViolations_AllPassed(t *testing.T) {
	ui, buf := newSimpleUIForTest()

	ui.DisplayViolations(nil, nil)

	if got := buf.String(); got != "All rules passed\n" {
		t.Fatalf("output = %q, want success line", got)
	}
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, buf := newSimpleUIForTest()

	ui.DisplaySummary("report.yaml", m.TargetPackage, []m.ScopeSummary{
		{Scope: "", Classes: 1, Line: m.CounterTotals{Covered: 1, Missed: 1}},
		{Scope: "pkg", Classes: 2, Line: m.CounterTotals{Covered: 12, Missed: 8}, Branch: m.CounterTotals{Covered: 1, Missed: 3}},
	})

	assertContains(t, buf.String(),
		"Report report.yaml (PACKAGE)",
		"<root>",
		"12/20",
		"60.00%",
		"25.00%",
		"-",
	)
}

func TestSimpleUI_DisplayDiagnostics(t *testing.T) {
	ui, buf := newSimpleUIForTest()

	ui.DisplayDiagnostics(nil)

	if buf.Len() != 0 {
		t.Fatalf("expected no output for no diagnostics, got %q", buf.String())
	}

	ui.DisplayDiagnostics([]m.Diagnostic{{Kind: m.DiagnosticCapture, Subject: "bad.yaml", Err: errors.New("parse error")}})

	assertContains(t, buf.String(), "1 problem(s) skipped:", "capture bad.yaml: parse error")
}

func TestSimpleUI_LifecycleIsNoop(t *testing.T) {
	ui, buf := newSimpleUIForTest()

	if err := ui.Start(WithVerifyMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.Close()
	ui.Wait()

	if buf.Len() != 0 {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
