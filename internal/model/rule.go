package model

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Counter selects the raw metric a bound reads.
type Counter string

const (
	// CounterLine counts lines: covered when executed at least once.
	CounterLine Counter = "LINE"
	// CounterBranch counts branch targets.
	CounterBranch Counter = "BRANCH"
	// CounterInstruction counts instructions.
	CounterInstruction Counter = "INSTRUCTION"
)

// Counters lists every counter in display order.
var Counters = []Counter{CounterLine, CounterBranch, CounterInstruction}

// ValueType selects how covered and missed amounts become a value.
type ValueType string

const (
	// ValueCovered is the covered amount.
	ValueCovered ValueType = "COVERED"
	// ValueMissed is the missed amount.
	ValueMissed ValueType = "MISSED"
	// ValueCoveredRate is covered / (covered + missed).
	ValueCoveredRate ValueType = "COVERED_RATE"
	// ValueMissedRate is missed / (covered + missed).
	ValueMissedRate ValueType = "MISSED_RATE"
)

// IsRate reports whether the value type is a ratio.
func (v ValueType) IsRate() bool {
	return v == ValueCoveredRate || v == ValueMissedRate
}

// Target is the granularity a rule is evaluated at.
type Target string

const (
	// TargetAll evaluates the whole project as one scope named "".
	TargetAll Target = "ALL"
	// TargetClass evaluates every class separately.
	TargetClass Target = "CLASS"
	// TargetPackage evaluates every package separately.
	TargetPackage Target = "PACKAGE"
)

// ErrUnknownValue is returned when an enumeration name is not recognized.
var ErrUnknownValue = errors.New("unknown")

// ParseCounter parses a counter name, case-insensitively.
func ParseCounter(s string) (Counter, error) {
	c := Counter(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case CounterLine, CounterBranch, CounterInstruction:
		return c, nil
	}

	return "", fmt.Errorf("%w counter %q", ErrUnknownValue, s)
}

// ParseValueType parses a value type name, case-insensitively.
func ParseValueType(s string) (ValueType, error) {
	v := ValueType(strings.ToUpper(strings.TrimSpace(s)))
	switch v {
	case ValueCovered, ValueMissed, ValueCoveredRate, ValueMissedRate:
		return v, nil
	}

	return "", fmt.Errorf("%w value type %q", ErrUnknownValue, s)
}

// ParseTarget parses a target name, case-insensitively.
func ParseTarget(s string) (Target, error) {
	t := Target(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case TargetAll, TargetClass, TargetPackage:
		return t, nil
	}

	return "", fmt.Errorf("%w target %q", ErrUnknownValue, s)
}

// Bound constrains one value of a rule. A nil Min or Max is unconstrained.
type Bound struct {
	ID        int
	Counter   Counter
	ValueType ValueType
	Min       *big.Rat
	Max       *big.Rat
}

// Rule evaluates bounds against the report produced for one request.
type Rule struct {
	ID     int
	Report Path
	Target Target
	Bounds []Bound
}

// Violation is one scope instance whose value is out of bounds.
type Violation struct {
	Scope string
	Value *big.Rat
}

// BoundViolation groups the violations of a single bound.
type BoundViolation struct {
	BoundID   int
	ValueType ValueType
	Min       []Violation
	Max       []Violation
}

// RuleViolation groups the violated bounds of a rule.
type RuleViolation struct {
	RuleID int
	Bounds []BoundViolation
}

// RuleFailure records a rule that could not be evaluated.
type RuleFailure struct {
	RuleID int
	Report Path
	Err    error
}

// RatePrecision is the number of decimal digits used to print rates.
const RatePrecision = 6

// FormatValue renders a value with fixed precision: rates with
// RatePrecision digits, counts as integers.
func FormatValue(v *big.Rat, valueType ValueType) string {
	if v == nil {
		return ""
	}

	if valueType.IsRate() {
		return v.FloatString(RatePrecision)
	}

	return v.FloatString(0)
}

// FormatViolation renders a violating value like FormatValue, but rounds a
// rate away from the bound it crossed: down for a min violation, up for a max
// violation. A rate just under a minimum therefore never prints as the
// minimum itself.
func FormatViolation(v *big.Rat, valueType ValueType, belowMin bool) string {
	if v == nil || !valueType.IsRate() {
		return FormatValue(v, valueType)
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(RatePrecision), nil)
	scaled := new(big.Int).Mul(v.Num(), scale)

	q, r := new(big.Int).QuoRem(scaled, v.Denom(), new(big.Int))
	if r.Sign() != 0 {
		// QuoRem truncates toward zero.
		if belowMin && v.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		}

		if !belowMin && v.Sign() > 0 {
			q.Add(q, big.NewInt(1))
		}
	}

	return new(big.Rat).SetFrac(q, scale).FloatString(RatePrecision)
}
