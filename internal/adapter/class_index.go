package adapter

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/covrig/internal/model"
)

// ClassIndex is the class metadata provider: it knows the classes declared
// on the classpath, their supertypes and their annotations, whether or not
// they were ever loaded.
type ClassIndex interface {
	// Classes lists declared classes in name order. Classes whose structure
	// is known carry unexecuted lines; declared-only classes have none.
	Classes() []*m.ClassData
	// Instructions returns the instruction table of an indexed class, or
	// nil when unknown.
	Instructions(className string) *m.ClassInstructions
	// Hierarchy returns the direct ancestors and annotations of every
	// indexed class.
	Hierarchy() m.Hierarchy
}

// LocalClassIndex is an in-memory ClassIndex, usually loaded from a YAML
// file produced by a classpath scan.
type LocalClassIndex struct {
	classes      []*m.ClassData
	instructions map[string]*m.ClassInstructions
}

// NewLocalClassIndex builds an index from class entries. Later duplicates
// are merged into earlier ones.
func NewLocalClassIndex(classes ...*m.ClassData) *LocalClassIndex {
	byName := make(map[string]*m.ClassData, len(classes))

	for _, c := range classes {
		if existing, ok := byName[c.Name]; ok {
			existing.Merge(c.Unexecuted())
			continue
		}

		byName[c.Name] = c.Unexecuted()
	}

	out := make([]*m.ClassData, 0, len(byName))
	for _, c := range byName {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return &LocalClassIndex{classes: out, instructions: make(map[string]*m.ClassInstructions)}
}

// LoadClassIndex reads an index file. An empty path yields an empty index.
func LoadClassIndex(path m.Path) (*LocalClassIndex, error) {
	if path == "" {
		return NewLocalClassIndex(), nil
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read class index %s: %w", path, err)
	}

	var doc struct {
		Classes []classYAML `yaml:"classes"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse class index %s: %w", path, err)
	}

	classes := make([]*m.ClassData, 0, len(doc.Classes))
	instructions := make(map[string]*m.ClassInstructions)

	for _, cy := range doc.Classes {
		if cy.Name == "" {
			return nil, fmt.Errorf("class index %s: class without name", path)
		}

		class, ci, err := cy.toClass()
		if err != nil {
			return nil, fmt.Errorf("class index %s: class %s: %w", path, cy.Name, err)
		}

		class.Analyzed = class.Analyzed || len(cy.Lines) > 0
		classes = append(classes, class)

		if ci == nil {
			continue
		}

		if existing, ok := instructions[cy.Name]; ok {
			existing.Merge(ci.Unexecuted())
		} else {
			instructions[cy.Name] = ci.Unexecuted()
		}
	}

	idx := NewLocalClassIndex(classes...)
	idx.instructions = instructions

	return idx, nil
}

// Classes returns the indexed classes.
func (idx *LocalClassIndex) Classes() []*m.ClassData {
	return idx.classes
}

// Instructions returns the unexecuted instruction table of a class.
func (idx *LocalClassIndex) Instructions(className string) *m.ClassInstructions {
	return idx.instructions[className]
}

// Hierarchy returns the metadata of every indexed class.
func (idx *LocalClassIndex) Hierarchy() m.Hierarchy {
	h := make(m.Hierarchy, len(idx.classes))
	for _, c := range idx.classes {
		h.AddClass(c)
	}

	return h
}
