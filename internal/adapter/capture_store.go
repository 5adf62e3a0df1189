// Package adapter contains storage and configuration adapters for covrig.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/covrig/internal/model"
)

// DefaultProjectCacheSize bounds how many loaded reports the store keeps.
const DefaultProjectCacheSize = 64

// Limits on values read from capture files. Line tables and probe sets are
// allocated densely, so larger values are rejected as malformed.
const (
	MaxLineNumber = 1 << 20
	MaxProbes     = 1 << 16
)

var (
	// ErrEmptyCapture is returned for a capture file without a project.
	ErrEmptyCapture = errors.New("capture has no classes section")
	// ErrCaptureLimit is returned for a line number or probe total beyond
	// MaxLineNumber or MaxProbes.
	ErrCaptureLimit = errors.New("capture value out of range")
)

// CaptureStore persists and retrieves coverage data.
type CaptureStore interface {
	// LoadCapture reads a raw per-run capture.
	LoadCapture(path m.Path) (m.RawCapture, error)
	// LoadProject reads an aggregated report. The returned project may be
	// shared with other callers and must be treated as read-only.
	LoadProject(path m.Path) (*m.ProjectData, error)
	// SaveProject writes an aggregated report.
	SaveProject(path m.Path, project *m.ProjectData) error
	// Exists reports whether a report or capture file is present.
	Exists(path m.Path) (bool, error)
}

// LocalCaptureStore stores coverage data as YAML files on the local disk and
// keeps recently loaded reports in memory.
type LocalCaptureStore struct {
	cache *lru.Cache[m.Path, *m.ProjectData]
}

// NewLocalCaptureStore constructs a LocalCaptureStore caching up to size
// reports.
func NewLocalCaptureStore(size int) (*LocalCaptureStore, error) {
	if size <= 0 {
		size = DefaultProjectCacheSize
	}

	cache, err := lru.New[m.Path, *m.ProjectData](size)
	if err != nil {
		return nil, fmt.Errorf("create report cache: %w", err)
	}

	return &LocalCaptureStore{cache: cache}, nil
}

// LoadCapture reads a capture file.
func (s *LocalCaptureStore) LoadCapture(path m.Path) (m.RawCapture, error) {
	doc, err := readCaptureFile(path)
	if err != nil {
		return m.RawCapture{}, err
	}

	if doc.Classes == nil {
		return m.RawCapture{}, fmt.Errorf("%s: %w", path, ErrEmptyCapture)
	}

	project, err := doc.toProject()
	if err != nil {
		return m.RawCapture{}, fmt.Errorf("%s: %w", path, err)
	}

	mapping, err := doc.mapping()
	if err != nil {
		return m.RawCapture{}, fmt.Errorf("%s: %w", path, err)
	}

	return m.RawCapture{Origin: path, Project: project, Mapping: mapping}, nil
}

// LoadProject reads a report, serving repeated loads from the cache.
func (s *LocalCaptureStore) LoadProject(path m.Path) (*m.ProjectData, error) {
	key := cacheKey(path)
	if project, ok := s.cache.Get(key); ok {
		return project, nil
	}

	doc, err := readCaptureFile(path)
	if err != nil {
		return nil, err
	}

	project, err := doc.toProject()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s.cache.Add(key, project)

	return project, nil
}

// SaveProject writes the report through a temporary file so readers never
// observe a partial document.
func (s *LocalCaptureStore) SaveProject(path m.Path, project *m.ProjectData) error {
	if project == nil {
		return fmt.Errorf("save %s: nil project", path)
	}

	data, err := yaml.Marshal(fromProject(project))
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	dir := filepath.Dir(string(path))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".covrig-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", path, err)
	}

	if err := os.Rename(tmpName, string(path)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", path, err)
	}

	s.cache.Remove(cacheKey(path))

	return nil
}

// Exists reports whether path names a regular file.
func (s *LocalCaptureStore) Exists(path m.Path) (bool, error) {
	info, err := os.Stat(string(path))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	return !info.IsDir(), nil
}

func cacheKey(path m.Path) m.Path {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return path
	}

	return m.Path(abs)
}

func readCaptureFile(path m.Path) (captureYAML, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return captureYAML{}, fmt.Errorf("read %s: %w", path, err)
	}

	var doc captureYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return captureYAML{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return doc, nil
}

// captureYAML is the on-disk form shared by captures and reports.
type captureYAML struct {
	BranchCoverage      bool                   `yaml:"branchCoverage"`
	InstructionCoverage bool                   `yaml:"instructionCoverage"`
	Classes             []classYAML            `yaml:"classes"`
	Mapping             map[string]map[int]int `yaml:"mapping,omitempty"`
}

type classYAML struct {
	Name        string     `yaml:"name"`
	Source      string     `yaml:"source,omitempty"`
	Analyzed    bool       `yaml:"analyzed,omitempty"`
	Annotations []string   `yaml:"annotations,omitempty"`
	Supertypes  []string   `yaml:"supertypes,omitempty"`
	Lines       []lineYAML `yaml:"lines,omitempty"`
}

type lineYAML struct {
	Line         int         `yaml:"line"`
	Method       string      `yaml:"method,omitempty"`
	Hits         uint64      `yaml:"hits"`
	Branches     *probesYAML `yaml:"branches,omitempty"`
	Instructions *probesYAML `yaml:"instructions,omitempty"`
}

type probesYAML struct {
	Total int   `yaml:"total"`
	Hit   []int `yaml:"hit,omitempty"`
}

func (p *probesYAML) toProbes() (m.Probes, error) {
	if p.Total < 0 || p.Total > MaxProbes {
		return m.Probes{}, fmt.Errorf("%w: probe total %d", ErrCaptureLimit, p.Total)
	}

	probes := m.NewProbes(p.Total)

	for _, i := range p.Hit {
		if i < 0 || i >= p.Total {
			return m.Probes{}, fmt.Errorf("probe index %d out of range [0,%d)", i, p.Total)
		}

		probes.Set(i)
	}

	return probes, nil
}

func newProbesYAML(p m.Probes) *probesYAML {
	return &probesYAML{Total: p.Len(), Hit: p.Indices()}
}

func (doc captureYAML) toProject() (*m.ProjectData, error) {
	project := m.NewProjectData(doc.BranchCoverage, doc.InstructionCoverage)

	for _, cy := range doc.Classes {
		if cy.Name == "" {
			return nil, errors.New("class without name")
		}

		class, instructions, err := cy.toClass()
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", cy.Name, err)
		}

		project.MergeClass(class)
		project.MergeInstructions(cy.Name, instructions)
	}

	return project, nil
}

func (cy classYAML) toClass() (*m.ClassData, *m.ClassInstructions, error) {
	class := &m.ClassData{
		Name:        cy.Name,
		Source:      cy.Source,
		Analyzed:    cy.Analyzed,
		Annotations: cy.Annotations,
		Supertypes:  cy.Supertypes,
	}

	var instructions *m.ClassInstructions

	for _, ly := range cy.Lines {
		if ly.Line <= 0 {
			return nil, nil, fmt.Errorf("invalid line number %d", ly.Line)
		}

		if ly.Line > MaxLineNumber {
			return nil, nil, fmt.Errorf("%w: line %d", ErrCaptureLimit, ly.Line)
		}

		line := &m.LineData{Line: ly.Line, Method: ly.Method, Hits: ly.Hits}

		if ly.Branches != nil {
			probes, err := ly.Branches.toProbes()
			if err != nil {
				return nil, nil, fmt.Errorf("line %d branches: %w", ly.Line, err)
			}

			line.Branches = &m.BranchData{Probes: probes}
		}

		if ly.Instructions != nil {
			probes, err := ly.Instructions.toProbes()
			if err != nil {
				return nil, nil, fmt.Errorf("line %d instructions: %w", ly.Line, err)
			}

			if instructions == nil {
				instructions = m.NewClassInstructions()
			}

			instructions.Lines[ly.Line] = &m.InstructionData{Probes: probes}
		}

		if existing := class.Line(ly.Line); existing != nil {
			existing.Merge(line)
			continue
		}

		class.SetLine(line)
	}

	return class, instructions, nil
}

func (doc captureYAML) mapping() (m.LineMapping, error) {
	if len(doc.Mapping) == 0 {
		return nil, nil
	}

	for class, lines := range doc.Mapping {
		for from, to := range lines {
			if to > MaxLineNumber {
				return nil, fmt.Errorf("%w: mapping %s line %d to %d", ErrCaptureLimit, class, from, to)
			}
		}
	}

	return m.LineMapping(doc.Mapping), nil
}

func fromProject(project *m.ProjectData) captureYAML {
	doc := captureYAML{
		BranchCoverage:      project.BranchCoverage,
		InstructionCoverage: project.InstructionCoverage,
		Classes:             make([]classYAML, 0, len(project.Classes)),
	}

	for _, name := range project.ClassNames() {
		class := project.Class(name)
		instructions := project.ClassInstructions(name)

		cy := classYAML{
			Name:        class.Name,
			Source:      class.Source,
			Analyzed:    class.Analyzed,
			Annotations: sortedCopy(class.Annotations),
			Supertypes:  class.Supertypes,
		}

		class.EachLine(func(l *m.LineData) {
			ly := lineYAML{Line: l.Line, Method: l.Method, Hits: l.Hits}
			if l.Branches != nil {
				ly.Branches = newProbesYAML(l.Branches.Probes)
			}

			if instructions != nil {
				if d, ok := instructions.Lines[l.Line]; ok {
					ly.Instructions = newProbesYAML(d.Probes)
				}
			}

			cy.Lines = append(cy.Lines, ly)
		})

		doc.Classes = append(doc.Classes, cy)
	}

	return doc
}

func sortedCopy(in []string) []string {
	if len(in) == 0 {
		return nil
	}

	out := append([]string(nil), in...)
	sort.Strings(out)

	return out
}
