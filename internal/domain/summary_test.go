package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/covrig/internal/model"
)

func summaryProject() *m.ProjectData {
	p := m.NewProjectData(true, true)

	a := testClass("com.acme.A", map[int]uint64{1: 1, 2: 0})
	a.Line(1).Branches = m.NewBranchData(4)
	a.Line(1).Branches.Hit(0)
	a.Line(1).Branches.Hit(3)
	p.AddClass(a)

	p.AddClass(testClass("com.acme.B", map[int]uint64{1: 0}))
	p.AddClass(testClass("Root", map[int]uint64{1: 2}))

	ci := m.NewClassInstructions()
	ci.Lines[1] = m.NewInstructionData(5)
	ci.Lines[1].Set(0)
	ci.Lines[1].Set(1)
	p.Instructions["com.acme.A"] = ci

	return p
}

func TestSummarize_Package(t *testing.T) {
	scopes := Summarize(summaryProject(), m.TargetPackage)
	require.Len(t, scopes, 2)

	assert.Equal(t, "", scopes[0].Scope)
	assert.Equal(t, m.CounterTotals{Covered: 1}, scopes[0].Line)

	acme := scopes[1]
	assert.Equal(t, "com.acme", acme.Scope)
	assert.Equal(t, 2, acme.Classes)
	assert.Equal(t, m.CounterTotals{Covered: 1, Missed: 2}, acme.Line)
	assert.Equal(t, m.CounterTotals{Covered: 2, Missed: 2}, acme.Branch)
	assert.Equal(t, m.CounterTotals{Covered: 2, Missed: 3}, acme.Instruction)
}

func TestSummarize_ClassAndAll(t *testing.T) {
	classes := Summarize(summaryProject(), m.TargetClass)
	require.Len(t, classes, 3)
	assert.Equal(t, []string{"Root", "com.acme.A", "com.acme.B"}, []string{classes[0].Scope, classes[1].Scope, classes[2].Scope})

	all := Summarize(summaryProject(), m.TargetAll)
	require.Len(t, all, 1)
	assert.Equal(t, "", all[0].Scope)
	assert.Equal(t, m.CounterTotals{Covered: 2, Missed: 2}, all[0].Line)
}

func TestSummarize_EmptyProjectHasOneAllScope(t *testing.T) {
	empty := m.NewProjectData(false, false)

	all := Summarize(empty, m.TargetAll)
	require.Len(t, all, 1)
	assert.Equal(t, int64(0), all[0].Line.Total())

	assert.Empty(t, Summarize(empty, m.TargetPackage))
}

func TestScopeOf(t *testing.T) {
	assert.Equal(t, "", ScopeOf("a.b.C", m.TargetAll))
	assert.Equal(t, "a.b", ScopeOf("a.b.C", m.TargetPackage))
	assert.Equal(t, "a.b.C", ScopeOf("a.b.C", m.TargetClass))
	assert.Equal(t, "", ScopeOf("C", m.TargetPackage))
}
