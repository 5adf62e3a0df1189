// Package model defines the coverage data structures shared by covrig.
package model

import (
	"sort"
	"strings"
)

// ClassData is the coverage of a single class.
//
// Lines is indexed by line number. Slots without a source line are nil. A
// class is Analyzed when its method bodies are known; a class only declared
// on the classpath has no lines at all.
type ClassData struct {
	Name        string
	Source      string
	Lines       []*LineData
	Annotations []string
	Supertypes  []string
	Analyzed    bool
}

// NewClassData creates an empty class entry.
func NewClassData(name string) *ClassData {
	return &ClassData{Name: name}
}

// Package returns the dotted prefix up to the last dot, or "" for the root
// package.
func (c *ClassData) Package() string {
	return PackageOf(c.Name)
}

// PackageOf returns the package part of a fully-qualified class name.
func PackageOf(className string) string {
	idx := strings.LastIndex(className, ".")
	if idx < 0 {
		return ""
	}

	return className[:idx]
}

// Line returns the data for a line number, or nil.
func (c *ClassData) Line(n int) *LineData {
	if n < 0 || n >= len(c.Lines) {
		return nil
	}

	return c.Lines[n]
}

// SetLine stores line data at its line number, growing the table as needed.
func (c *ClassData) SetLine(l *LineData) {
	if l == nil || l.Line < 0 {
		return
	}

	if l.Line >= len(c.Lines) {
		grown := make([]*LineData, l.Line+1)
		copy(grown, c.Lines)
		c.Lines = grown
	}

	c.Lines[l.Line] = l
}

// EachLine calls fn for every present line in ascending order.
func (c *ClassData) EachLine(fn func(*LineData)) {
	for _, l := range c.Lines {
		if l != nil {
			fn(l)
		}
	}
}

// Merge folds o into c: hits are summed, branches unioned and metadata
// combined. o is left untouched.
func (c *ClassData) Merge(o *ClassData) {
	if o == nil {
		return
	}

	if c.Source == "" {
		c.Source = o.Source
	}

	c.Analyzed = c.Analyzed || o.Analyzed
	c.Annotations = unionStrings(c.Annotations, o.Annotations)
	c.Supertypes = unionStrings(c.Supertypes, o.Supertypes)

	o.EachLine(func(l *LineData) {
		if existing := c.Line(l.Line); existing != nil {
			existing.Merge(l)
			return
		}

		c.SetLine(l.Clone())
	})
}

// Clone returns a deep copy.
func (c *ClassData) Clone() *ClassData {
	out := c.metadataCopy()
	c.EachLine(func(l *LineData) {
		out.SetLine(l.Clone())
	})

	return out
}

// Unexecuted returns a copy whose lines are all NONE.
func (c *ClassData) Unexecuted() *ClassData {
	out := c.metadataCopy()
	c.EachLine(func(l *LineData) {
		out.SetLine(l.Unexecuted())
	})

	return out
}

// WithoutBranches returns a copy with branch data dropped from every line.
func (c *ClassData) WithoutBranches() *ClassData {
	out := c.Clone()
	out.EachLine(func(l *LineData) {
		l.Branches = nil
	})

	return out
}

func (c *ClassData) metadataCopy() *ClassData {
	return &ClassData{
		Name:        c.Name,
		Source:      c.Source,
		Annotations: append([]string(nil), c.Annotations...),
		Supertypes:  append([]string(nil), c.Supertypes...),
		Analyzed:    c.Analyzed,
	}
}

func unionStrings(a, b []string) []string {
	if len(b) == 0 {
		return a
	}

	seen := make(map[string]struct{}, len(a)+len(b))
	for _, s := range a {
		seen[s] = struct{}{}
	}

	out := a
	for _, s := range b {
		if _, ok := seen[s]; ok {
			continue
		}

		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}

// InstructionData records which instructions of a line were executed.
type InstructionData struct {
	Probes
}

// NewInstructionData creates a line entry with total instructions.
func NewInstructionData(total int) *InstructionData {
	return &InstructionData{Probes: NewProbes(total)}
}

// Executed returns the number of executed instructions.
func (d *InstructionData) Executed() int {
	if d == nil {
		return 0
	}

	return d.Count()
}

// Total returns the number of instructions on the line.
func (d *InstructionData) Total() int {
	if d == nil {
		return 0
	}

	return d.Len()
}

// ClassInstructions is the per-line instruction side table of one class.
type ClassInstructions struct {
	Lines map[int]*InstructionData
}

// NewClassInstructions creates an empty side table.
func NewClassInstructions() *ClassInstructions {
	return &ClassInstructions{Lines: make(map[int]*InstructionData)}
}

// Merge unions executed instructions line by line.
func (ci *ClassInstructions) Merge(o *ClassInstructions) {
	if o == nil {
		return
	}

	for line, d := range o.Lines {
		if existing, ok := ci.Lines[line]; ok {
			existing.Probes = existing.Union(d.Probes)
			continue
		}

		ci.Lines[line] = &InstructionData{Probes: d.Probes.Clone()}
	}
}

// Clone returns a deep copy.
func (ci *ClassInstructions) Clone() *ClassInstructions {
	out := NewClassInstructions()
	out.Merge(ci)

	return out
}

// Unexecuted returns a copy with every instruction marked as not executed.
func (ci *ClassInstructions) Unexecuted() *ClassInstructions {
	out := NewClassInstructions()
	for line, d := range ci.Lines {
		out.Lines[line] = &InstructionData{Probes: d.Cleared()}
	}

	return out
}

// ProjectData maps class names to their coverage.
type ProjectData struct {
	Classes             map[string]*ClassData
	Instructions        map[string]*ClassInstructions
	BranchCoverage      bool
	InstructionCoverage bool
}

// NewProjectData creates an empty project.
func NewProjectData(branchCoverage, instructionCoverage bool) *ProjectData {
	return &ProjectData{
		Classes:             make(map[string]*ClassData),
		Instructions:        make(map[string]*ClassInstructions),
		BranchCoverage:      branchCoverage,
		InstructionCoverage: instructionCoverage,
	}
}

// Class returns a class by name, or nil.
func (p *ProjectData) Class(name string) *ClassData {
	return p.Classes[name]
}

// ClassNames returns the class names in ascending order.
func (p *ProjectData) ClassNames() []string {
	names := make([]string, 0, len(p.Classes))
	for name := range p.Classes {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// AddClass stores c, replacing any class of the same name.
func (p *ProjectData) AddClass(c *ClassData) {
	p.Classes[c.Name] = c
}

// MergeClass folds a copy of c into the project. c is not retained.
func (p *ProjectData) MergeClass(c *ClassData) {
	if existing, ok := p.Classes[c.Name]; ok {
		existing.Merge(c)
		return
	}

	p.Classes[c.Name] = c.Clone()
}

// MergeInstructions folds a copy of the instruction table of a class in.
func (p *ProjectData) MergeInstructions(className string, ci *ClassInstructions) {
	if ci == nil {
		return
	}

	if existing, ok := p.Instructions[className]; ok {
		existing.Merge(ci)
		return
	}

	p.Instructions[className] = ci.Clone()
}

// ClassInstructions returns the instruction table of a class, or nil.
func (p *ProjectData) ClassInstructions(className string) *ClassInstructions {
	if p.Instructions == nil {
		return nil
	}

	return p.Instructions[className]
}
