package domain

import (
	"sort"

	m "github.com/mouse-blink/covrig/internal/model"
)

// ScopeOf returns the name of the scope instance a class belongs to.
func ScopeOf(className string, target m.Target) string {
	switch target {
	case m.TargetClass:
		return className
	case m.TargetPackage:
		return m.PackageOf(className)
	default:
		return ""
	}
}

// Summarize partitions the project's classes into scope instances of target
// and sums every counter per instance. Scopes are sorted by name. TargetAll
// always yields exactly one scope, even for an empty project.
func Summarize(project *m.ProjectData, target m.Target) []m.ScopeSummary {
	byScope := make(map[string]*m.ScopeSummary)

	if target == m.TargetAll {
		byScope[""] = &m.ScopeSummary{}
	}

	for name, class := range project.Classes {
		scope := ScopeOf(name, target)

		summary, ok := byScope[scope]
		if !ok {
			summary = &m.ScopeSummary{Scope: scope}
			byScope[scope] = summary
		}

		summary.Add(SummarizeClass(class, project.ClassInstructions(name)))
	}

	out := make([]m.ScopeSummary, 0, len(byScope))
	for _, s := range byScope {
		out = append(out, *s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Scope < out[j].Scope })

	return out
}

// SummarizeClass counts lines, branches and instructions of one class.
func SummarizeClass(class *m.ClassData, instructions *m.ClassInstructions) m.ScopeSummary {
	s := m.ScopeSummary{Scope: class.Name, Classes: 1}

	class.EachLine(func(l *m.LineData) {
		if l.Status() == m.LineNone {
			s.Line.Missed++
		} else {
			s.Line.Covered++
		}

		s.Branch.Covered += int64(l.Branches.Covered())
		s.Branch.Missed += int64(l.Branches.Missed())
	})

	if instructions != nil {
		for _, d := range instructions.Lines {
			s.Instruction.Covered += int64(d.Executed())
			s.Instruction.Missed += int64(d.Total() - d.Executed())
		}
	}

	return s
}
