package controller

import (
	"fmt"
	"math/big"

	m "github.com/mouse-blink/covrig/internal/model"
)

const rootScopeLabel = "<root>"

// violationRow is one flattened violation, ready for display.
type violationRow struct {
	rule  int
	bound int
	kind  string
	scope string
	value string
}

func flattenViolations(violations []m.RuleViolation) []violationRow {
	var rows []violationRow

	for _, rv := range violations {
		for _, bv := range rv.Bounds {
			for _, v := range bv.Min {
				rows = append(rows, newViolationRow(rv.RuleID, bv, "min", v))
			}

			for _, v := range bv.Max {
				rows = append(rows, newViolationRow(rv.RuleID, bv, "max", v))
			}
		}
	}

	return rows
}

func newViolationRow(ruleID int, bv m.BoundViolation, kind string, v m.Violation) violationRow {
	return violationRow{
		rule:  ruleID,
		bound: bv.BoundID,
		kind:  kind,
		scope: scopeLabel(v.Scope),
		value: m.FormatViolation(v.Value, bv.ValueType, kind == "min"),
	}
}

func scopeLabel(scope string) string {
	if scope == "" {
		return rootScopeLabel
	}

	return scope
}

// percent renders covered/(covered+missed) as a percentage with two
// decimals; an empty counter renders as "-".
func percent(t m.CounterTotals) string {
	if t.Total() == 0 {
		return "-"
	}

	r := new(big.Rat).Mul(t.Value(m.ValueCoveredRate), big.NewRat(100, 1))

	return r.FloatString(2) + "%"
}

func ratio(t m.CounterTotals) string {
	return fmt.Sprintf("%d/%d", t.Covered, t.Total())
}

func coveredFraction(t m.CounterTotals) float64 {
	if t.Total() == 0 {
		return 0
	}

	return float64(t.Covered) / float64(t.Total())
}

func requestName(r m.RequestResult, i int) string {
	if r.Request.Name != "" {
		return r.Request.Name
	}

	if r.Request.Output != "" {
		return string(r.Request.Output)
	}

	return fmt.Sprintf("#%d", i)
}
