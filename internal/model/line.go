package model

import "math"

// LineStatus is the derived coverage classification of a line.
type LineStatus int

const (
	// LineNone means the line was never executed.
	LineNone LineStatus = iota
	// LinePartial means the line was executed but some branches were not taken.
	LinePartial
	// LineFull means the line and all of its branches were executed.
	LineFull
)

func (s LineStatus) String() string {
	switch s {
	case LineNone:
		return "NONE"
	case LinePartial:
		return "PARTIAL"
	case LineFull:
		return "FULL"
	default:
		return "UNKNOWN"
	}
}

// BranchData holds the jump and switch targets attached to a line.
type BranchData struct {
	Probes
}

// NewBranchData creates branch data with total targets, none covered.
func NewBranchData(total int) *BranchData {
	return &BranchData{Probes: NewProbes(total)}
}

// Total returns the number of branch targets.
func (b *BranchData) Total() int {
	if b == nil {
		return 0
	}

	return b.Len()
}

// Covered returns the number of distinct targets taken.
func (b *BranchData) Covered() int {
	if b == nil {
		return 0
	}

	return b.Count()
}

// Missed returns the number of targets never taken.
func (b *BranchData) Missed() int {
	return b.Total() - b.Covered()
}

// Hit marks target i as covered.
func (b *BranchData) Hit(i int) {
	b.Set(i)
}

// Clone returns an independent copy, nil safe.
func (b *BranchData) Clone() *BranchData {
	if b == nil {
		return nil
	}

	return &BranchData{Probes: b.Probes.Clone()}
}

// Merge unions the covered targets of o into b.
func (b *BranchData) Merge(o *BranchData) {
	if o == nil {
		return
	}

	b.Probes = b.Union(o.Probes)
}

// LineData is one source line of one method of a class.
type LineData struct {
	Line     int
	Method   string
	Hits     uint64
	Branches *BranchData
}

// NewLineData creates an unexecuted line.
func NewLineData(line int, method string) *LineData {
	return &LineData{Line: line, Method: method}
}

// AddHits increments the hit count, saturating at the maximum value.
func (l *LineData) AddHits(n uint64) {
	if l.Hits > math.MaxUint64-n {
		l.Hits = math.MaxUint64
		return
	}

	l.Hits += n
}

// Status derives NONE, PARTIAL or FULL from hits and branches.
func (l *LineData) Status() LineStatus {
	if l.Hits == 0 {
		return LineNone
	}

	if l.Branches == nil || l.Branches.Covered() == l.Branches.Total() {
		return LineFull
	}

	return LinePartial
}

// Merge adds the hits of o and unions its branch coverage.
func (l *LineData) Merge(o *LineData) {
	if o == nil {
		return
	}

	l.AddHits(o.Hits)

	if l.Method == "" {
		l.Method = o.Method
	}

	switch {
	case o.Branches == nil:
	case l.Branches == nil:
		l.Branches = o.Branches.Clone()
	default:
		l.Branches.Merge(o.Branches)
	}
}

// Clone returns a deep copy.
func (l *LineData) Clone() *LineData {
	if l == nil {
		return nil
	}

	return &LineData{
		Line:     l.Line,
		Method:   l.Method,
		Hits:     l.Hits,
		Branches: l.Branches.Clone(),
	}
}

// Unexecuted returns a copy with hits and branch coverage cleared.
func (l *LineData) Unexecuted() *LineData {
	out := &LineData{Line: l.Line, Method: l.Method}
	if l.Branches != nil {
		out.Branches = &BranchData{Probes: l.Branches.Cleared()}
	}

	return out
}
