package domain

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	m "github.com/mouse-blink/covrig/internal/model"
)

// ErrInvalidPattern is returned when a filter pattern is not a valid regular
// expression.
var ErrInvalidPattern = errors.New("invalid filter pattern")

// ClassFilter decides whether a class is observable under a request. It is a
// pure predicate over the class name, its annotations and its ancestors.
//
// A ClassFilter memoizes ancestor closures, so it must always be asked about
// the same hierarchy and must not be shared between goroutines. Compile one
// per worker.
type ClassFilter struct {
	includeClasses     []*regexp.Regexp
	excludeClasses     []*regexp.Regexp
	includeAnnotations []*regexp.Regexp
	excludeAnnotations []*regexp.Regexp
	includeInherited   []*regexp.Regexp
	excludeInherited   []*regexp.Regexp

	closures map[string][]string
	unknown  map[string]struct{}
}

// NewClassFilter compiles the patterns of f. Every pattern must match the
// whole name.
func NewClassFilter(f m.Filters) (*ClassFilter, error) {
	cf := &ClassFilter{
		closures: make(map[string][]string),
		unknown:  make(map[string]struct{}),
	}

	groups := []struct {
		dst      *[]*regexp.Regexp
		patterns []string
	}{
		{&cf.includeClasses, f.IncludeClasses},
		{&cf.excludeClasses, f.ExcludeClasses},
		{&cf.includeAnnotations, f.IncludeAnnotations},
		{&cf.excludeAnnotations, f.ExcludeAnnotations},
		{&cf.includeInherited, f.IncludeInherited},
		{&cf.excludeInherited, f.ExcludeInherited},
	}

	for _, g := range groups {
		compiled, err := compilePatterns(g.patterns)
		if err != nil {
			return nil, err
		}

		*g.dst = compiled
	}

	return cf, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))

	for _, p := range patterns {
		re, err := regexp.Compile("^(?:" + p + ")$")
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, p, err)
		}

		out = append(out, re)
	}

	return out, nil
}

// Matches reports whether the class passes the name, annotation and
// inheritance filters.
func (cf *ClassFilter) Matches(className string, h m.Hierarchy) bool {
	return cf.MatchesName(className) &&
		cf.MatchesAnnotations(h[className].Annotations) &&
		cf.MatchesInheritance(className, h)
}

// MatchesName applies the include and exclude class patterns. An empty
// include list includes everything not excluded.
func (cf *ClassFilter) MatchesName(className string) bool {
	if len(cf.includeClasses) > 0 && !anyMatch(cf.includeClasses, className) {
		return false
	}

	return !anyMatch(cf.excludeClasses, className)
}

// MatchesAnnotations applies the annotation patterns. They only narrow the
// selection: an excluded annotation always rejects, and a non-empty include
// list requires at least one matching annotation.
func (cf *ClassFilter) MatchesAnnotations(annotations []string) bool {
	for _, a := range annotations {
		if anyMatch(cf.excludeAnnotations, a) {
			return false
		}
	}

	if len(cf.includeAnnotations) == 0 {
		return true
	}

	for _, a := range annotations {
		if anyMatch(cf.includeAnnotations, a) {
			return true
		}
	}

	return false
}

// MatchesInheritance applies the inheritance patterns to the strict
// ancestors of the class: some ancestor must match an include pattern (when
// any are given) and no ancestor may match an exclude pattern. The class's
// own name takes no part.
func (cf *ClassFilter) MatchesInheritance(className string, h m.Hierarchy) bool {
	if len(cf.includeInherited) == 0 && len(cf.excludeInherited) == 0 {
		return true
	}

	ancestors := cf.ancestors(className, h)

	included := len(cf.includeInherited) == 0
	for _, a := range ancestors {
		if anyMatch(cf.excludeInherited, a) {
			return false
		}

		if !included && anyMatch(cf.includeInherited, a) {
			included = true
		}
	}

	return included
}

// Filter returns the names that match, in ascending order.
func (cf *ClassFilter) Filter(names []string, h m.Hierarchy) []string {
	var out []string

	for _, name := range names {
		if cf.Matches(name, h) {
			out = append(out, name)
		}
	}

	sort.Strings(out)

	return out
}

// UnknownAncestors lists the ancestors seen during inheritance matching that
// had no metadata.
func (cf *ClassFilter) UnknownAncestors() []string {
	out := make([]string, 0, len(cf.unknown))
	for name := range cf.unknown {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}

func (cf *ClassFilter) ancestors(className string, h m.Hierarchy) []string {
	if cached, ok := cf.closures[className]; ok {
		return cached
	}

	ancestors, unknown := AncestorClosure(className, h)
	for _, name := range unknown {
		cf.unknown[name] = struct{}{}
	}

	cf.closures[className] = ancestors

	return ancestors
}

func anyMatch(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}

	return false
}
