package model

// Path represents a file system path.
type Path string

// Filters holds the raw regular expressions of a class filter. All patterns
// are matched against fully-qualified, dot-separated names.
type Filters struct {
	IncludeClasses     []string `yaml:"includeClasses,omitempty"`
	ExcludeClasses     []string `yaml:"excludeClasses,omitempty"`
	IncludeAnnotations []string `yaml:"includeAnnotations,omitempty"`
	ExcludeAnnotations []string `yaml:"excludeAnnotations,omitempty"`
	IncludeInherited   []string `yaml:"includeInherited,omitempty"`
	ExcludeInherited   []string `yaml:"excludeInherited,omitempty"`
}

// Request asks the aggregator for one filtered, merged snapshot.
type Request struct {
	Name                string  `yaml:"name"`
	Filters             Filters `yaml:"filters"`
	Output              Path    `yaml:"output"`
	CalculateUnloaded   bool    `yaml:"calculateUnloaded"`
	BranchCoverage      bool    `yaml:"branchCoverage"`
	InstructionCoverage bool    `yaml:"instructionCoverage"`
}

// LineMapping remaps capture lines before merging, per class: source line to
// target line. A target of 0 drops the line.
type LineMapping map[string]map[int]int

// RawCapture is one run's collected coverage, as loaded from disk.
type RawCapture struct {
	Origin  Path
	Project *ProjectData
	Mapping LineMapping
}

// RequestResult is the outcome of one aggregation request.
type RequestResult struct {
	Request Request
	Project *ProjectData
	Err     error
}
