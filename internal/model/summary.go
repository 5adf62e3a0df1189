package model

import "math/big"

// CounterTotals is the covered and missed amount of one counter.
type CounterTotals struct {
	Covered int64
	Missed  int64
}

// Add accumulates o into t.
func (t *CounterTotals) Add(o CounterTotals) {
	t.Covered += o.Covered
	t.Missed += o.Missed
}

// Total returns covered plus missed.
func (t CounterTotals) Total() int64 {
	return t.Covered + t.Missed
}

// Value derives a value of the given type. A rate over an empty scope is 0.
func (t CounterTotals) Value(valueType ValueType) *big.Rat {
	switch valueType {
	case ValueCovered:
		return new(big.Rat).SetInt64(t.Covered)
	case ValueMissed:
		return new(big.Rat).SetInt64(t.Missed)
	case ValueCoveredRate:
		return rate(t.Covered, t.Total())
	case ValueMissedRate:
		return rate(t.Missed, t.Total())
	default:
		return new(big.Rat)
	}
}

func rate(part, total int64) *big.Rat {
	if total == 0 {
		return new(big.Rat)
	}

	return big.NewRat(part, total)
}

// ScopeSummary holds the counters of one scope instance.
type ScopeSummary struct {
	Scope       string
	Classes     int
	Line        CounterTotals
	Branch      CounterTotals
	Instruction CounterTotals
}

// Counter returns the totals of counter c.
func (s ScopeSummary) Counter(c Counter) CounterTotals {
	switch c {
	case CounterLine:
		return s.Line
	case CounterBranch:
		return s.Branch
	case CounterInstruction:
		return s.Instruction
	default:
		return CounterTotals{}
	}
}

// Add accumulates o into s.
func (s *ScopeSummary) Add(o ScopeSummary) {
	s.Classes += o.Classes
	s.Line.Add(o.Line)
	s.Branch.Add(o.Branch)
	s.Instruction.Add(o.Instruction)
}
