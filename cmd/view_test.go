package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/covrig/internal/domain"
	m "github.com/mouse-blink/covrig/internal/model"
)

func TestViewCmd_DefaultTarget(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t)

	mockWorkflow.EXPECT().View(mock.Anything, domain.ViewArgs{Report: "report.yaml", Target: m.TargetPackage}).Return(nil)

	cmd.SetArgs([]string{"view", "report.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_TargetFlag(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t)

	mockWorkflow.EXPECT().View(mock.Anything, domain.ViewArgs{Report: "report.yaml", Target: m.TargetClass}).Return(nil)

	cmd.SetArgs([]string{"view", "--target", "class", "report.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_InvalidTarget(t *testing.T) {
	cmd, _, _ := newTestRoot(t)

	cmd.SetArgs([]string{"view", "-t", "module", "report.yaml"})
	err := cmd.Execute()

	assert.ErrorIs(t, err, m.ErrUnknownValue)
}

func TestViewCmd_RequiresReport(t *testing.T) {
	cmd, _, _ := newTestRoot(t)

	cmd.SetArgs([]string{"view"})
	assert.Error(t, cmd.Execute())
}

const endToEndCapture = `classes:
  - name: app.Main
    lines:
      - {line: 1, hits: 1}
      - {line: 2, hits: 1}
      - {line: 3, hits: 1}
      - {line: 4, hits: 0}
  - name: app.util.Strings
    lines:
      - {line: 1, hits: 0}
`

const endToEndConfig = `reports: [run.yaml]
requests:
  - name: app
    output: out/app.yaml
    filters:
      includeClasses: ["app\\..*"]
rules:
  - report: out/app.yaml
    target: PACKAGE
    bounds:
      - {counter: LINE, valueType: COVERED_RATE, min: "0.5"}
`

func TestCheckAndView_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "run.yaml"), []byte(endToEndCapture), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "covrig.yaml"), []byte(endToEndConfig), 0o600))

	originalWorkflow := workflow
	workflow = nil
	defer func() { workflow = originalWorkflow }()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd(), newViewCmd())
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--no-tty", "--config", filepath.Join(dir, "covrig.yaml"), "check"})

	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrRulesViolated)

	output := out.String()
	for _, want := range []string{"Captures: 1, requests: 1, rules: 1", "app.util", "0.000000"} {
		if !strings.Contains(output, want) {
			t.Fatalf("check output missing %q\n%s", want, output)
		}
	}

	out.Reset()

	view := newRootCmd()
	view.AddCommand(newViewCmd())
	view.SetOut(&out)
	view.SetErr(&bytes.Buffer{})
	view.SetArgs([]string{"--no-tty", "view", "-t", "ALL", filepath.Join(dir, "out", "app.yaml")})

	require.NoError(t, view.Execute())
	assert.Contains(t, out.String(), "3/5")
	assert.Contains(t, out.String(), "60.00%")
}
