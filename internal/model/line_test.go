package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbes_SetHasCount(t *testing.T) {
	p := NewProbes(130)
	p.Set(0)
	p.Set(64)
	p.Set(129)
	p.Set(130)
	p.Set(-1)

	assert.Equal(t, 130, p.Len())
	assert.Equal(t, 3, p.Count())
	assert.True(t, p.Has(64))
	assert.False(t, p.Has(65))
	assert.False(t, p.Has(130))
	assert.Equal(t, []int{0, 64, 129}, p.Indices())
}

func TestProbes_UnionLargerSizeWins(t *testing.T) {
	a := NewProbes(2)
	a.Set(1)

	b := NewProbes(70)
	b.Set(69)

	u := a.Union(b)

	assert.Equal(t, 70, u.Len())
	assert.Equal(t, []int{1, 69}, u.Indices())
	assert.Equal(t, []int{1}, a.Indices(), "operands must not change")
}

func TestProbes_UnionIsIdempotentAndCommutative(t *testing.T) {
	a := NewProbes(8)
	a.Set(2)
	a.Set(5)

	b := NewProbes(8)
	b.Set(5)
	b.Set(7)

	assert.True(t, a.Union(b).equal(b.Union(a)))
	assert.True(t, a.Union(a).equal(a))
}

func TestProbes_CloneAndCleared(t *testing.T) {
	a := NewProbes(4)
	a.Set(3)

	c := a.Clone()
	c.Set(0)

	assert.Equal(t, 1, a.Count())
	assert.Equal(t, 2, c.Count())
	assert.Equal(t, 0, a.Cleared().Count())
	assert.Equal(t, 4, a.Cleared().Len())
}

func TestLineData_Status(t *testing.T) {
	tests := []struct {
		name     string
		hits     uint64
		branches *BranchData
		covered  []int
		want     LineStatus
	}{
		{name: "not executed", hits: 0, want: LineNone},
		{name: "executed without branches", hits: 3, want: LineFull},
		{name: "not executed with taken branch", hits: 0, branches: NewBranchData(2), covered: []int{0}, want: LineNone},
		{name: "some branches taken", hits: 1, branches: NewBranchData(2), covered: []int{1}, want: LinePartial},
		{name: "all branches taken", hits: 1, branches: NewBranchData(2), covered: []int{0, 1}, want: LineFull},
		{name: "no branches taken", hits: 1, branches: NewBranchData(2), want: LinePartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &LineData{Line: 1, Hits: tt.hits, Branches: tt.branches}
			for _, i := range tt.covered {
				l.Branches.Hit(i)
			}

			assert.Equal(t, tt.want, l.Status())
		})
	}
}

func TestLineStatus_String(t *testing.T) {
	assert.Equal(t, "NONE", LineNone.String())
	assert.Equal(t, "PARTIAL", LinePartial.String())
	assert.Equal(t, "FULL", LineFull.String())
}

func TestLineData_AddHitsSaturates(t *testing.T) {
	l := &LineData{Line: 1, Hits: math.MaxUint64 - 1}
	l.AddHits(5)

	assert.Equal(t, uint64(math.MaxUint64), l.Hits)
}

func TestLineData_MergeSumsHitsAndUnionsBranches(t *testing.T) {
	a := &LineData{Line: 4, Hits: 2, Branches: NewBranchData(3)}
	a.Branches.Hit(0)

	b := &LineData{Line: 4, Method: "run", Hits: 5, Branches: NewBranchData(3)}
	b.Branches.Hit(2)

	a.Merge(b)

	assert.Equal(t, uint64(7), a.Hits)
	assert.Equal(t, "run", a.Method)
	assert.Equal(t, []int{0, 2}, a.Branches.Indices())
	assert.Equal(t, []int{2}, b.Branches.Indices())
	assert.Equal(t, LinePartial, a.Status())
}

func TestLineData_MergeCopiesBranchesWhenMissing(t *testing.T) {
	a := &LineData{Line: 1, Hits: 1}
	b := &LineData{Line: 1, Branches: NewBranchData(2)}
	b.Branches.Hit(1)

	a.Merge(b)
	a.Branches.Hit(0)

	require.NotNil(t, a.Branches)
	assert.Equal(t, 1, b.Branches.Covered(), "merge must not alias the source")
}

func TestLineData_Unexecuted(t *testing.T) {
	l := &LineData{Line: 9, Method: "m", Hits: 4, Branches: NewBranchData(2)}
	l.Branches.Hit(0)

	u := l.Unexecuted()

	assert.Equal(t, LineNone, u.Status())
	assert.Equal(t, 2, u.Branches.Total())
	assert.Equal(t, 0, u.Branches.Covered())
	assert.Equal(t, uint64(4), l.Hits)
}

func TestBranchData_NilSafe(t *testing.T) {
	var b *BranchData

	assert.Equal(t, 0, b.Total())
	assert.Equal(t, 0, b.Covered())
	assert.Equal(t, 0, b.Missed())
	assert.Nil(t, b.Clone())
}
