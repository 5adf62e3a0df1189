package domain

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/covrig/internal/adapter"
	m "github.com/mouse-blink/covrig/internal/model"
)

// AggregateArgs describes one aggregation batch.
type AggregateArgs struct {
	Reports  []m.Path
	Requests []m.Request
	Threads  int
}

// AggregateResult holds one result per request, in request order, and the
// problems that were skipped along the way.
type AggregateResult struct {
	Results     []m.RequestResult
	Diagnostics *m.Diagnostics
}

// Aggregator turns raw captures into one filtered, merged project per
// request.
type Aggregator interface {
	Aggregate(ctx context.Context, args AggregateArgs) (AggregateResult, error)
}

type aggregator struct {
	store adapter.CaptureStore
	index adapter.ClassIndex
}

// NewAggregator constructs an Aggregator reading captures from store and
// unloaded classes from index.
func NewAggregator(store adapter.CaptureStore, index adapter.ClassIndex) Aggregator {
	return &aggregator{store: store, index: index}
}

// Aggregate validates every request filter, loads all captures and then
// processes requests concurrently. Captures are only read once loaded, so
// request workers share them without copying.
func (a *aggregator) Aggregate(ctx context.Context, args AggregateArgs) (AggregateResult, error) {
	filters := make([]*ClassFilter, len(args.Requests))

	for i, req := range args.Requests {
		filter, err := NewClassFilter(req.Filters)
		if err != nil {
			return AggregateResult{}, fmt.Errorf("request %s: %w", requestLabel(req, i), err)
		}

		filters[i] = filter
	}

	diags := &m.Diagnostics{}
	captures := a.loadCaptures(args.Reports, diags)

	hierarchy := make(m.Hierarchy)
	if a.index != nil {
		hierarchy.Merge(a.index.Hierarchy())
	}

	for _, capture := range captures {
		for _, class := range capture.Classes {
			hierarchy.AddClass(class)
		}
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	results := make([]m.RequestResult, len(args.Requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, req := range args.Requests {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			project := MergeCaptures(captures, req, filters[i], hierarchy)
			if req.CalculateUnloaded && a.index != nil {
				AddUnloaded(project, a.index, filters[i], hierarchy)
			}

			for _, name := range filters[i].UnknownAncestors() {
				diags.Add(m.DiagnosticAncestor, requestLabel(req, i)+": "+name, nil)
			}

			results[i] = m.RequestResult{Request: req, Project: project}

			if req.Output == "" {
				return nil
			}

			if err := a.store.SaveProject(req.Output, project); err != nil {
				results[i].Err = err
				diags.Add(m.DiagnosticRequest, requestLabel(req, i), err)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return AggregateResult{}, err
	}

	return AggregateResult{Results: results, Diagnostics: diags}, nil
}

func (a *aggregator) loadCaptures(paths []m.Path, diags *m.Diagnostics) []*m.ProjectData {
	captures := make([]*m.ProjectData, 0, len(paths))

	for _, path := range paths {
		capture, err := a.store.LoadCapture(path)
		if err != nil {
			diags.Add(m.DiagnosticCapture, string(path), err)
			continue
		}

		captures = append(captures, RemapCapture(capture))
	}

	return captures
}

// MergeCaptures merges every class of every capture that passes filter into
// a fresh project carrying the request's flags. Captures are not modified.
func MergeCaptures(captures []*m.ProjectData, req m.Request, filter *ClassFilter, h m.Hierarchy) *m.ProjectData {
	project := m.NewProjectData(req.BranchCoverage, req.InstructionCoverage)

	for _, capture := range captures {
		for _, name := range filter.Filter(capture.ClassNames(), h) {
			class := capture.Class(name)
			if !req.BranchCoverage {
				class = class.WithoutBranches()
			}

			project.MergeClass(class)

			if req.InstructionCoverage {
				project.MergeInstructions(name, capture.ClassInstructions(name))
			}
		}
	}

	return project
}

// AddUnloaded adds the indexed classes that no capture reported and that pass
// filter, with every line unexecuted.
func AddUnloaded(project *m.ProjectData, index adapter.ClassIndex, filter *ClassFilter, h m.Hierarchy) {
	for _, class := range index.Classes() {
		if project.Class(class.Name) != nil || !filter.Matches(class.Name, h) {
			continue
		}

		unloaded := class.Unexecuted()
		if !project.BranchCoverage {
			unloaded = unloaded.WithoutBranches()
		}

		project.AddClass(unloaded)

		if project.InstructionCoverage {
			if ci := index.Instructions(class.Name); ci != nil {
				project.Instructions[class.Name] = ci.Unexecuted()
			}
		}
	}
}

// RemapCapture applies the capture's line mapping. Without a mapping the
// capture's project is returned as is; otherwise a new project is built.
func RemapCapture(capture m.RawCapture) *m.ProjectData {
	if len(capture.Mapping) == 0 {
		return capture.Project
	}

	src := capture.Project
	out := m.NewProjectData(src.BranchCoverage, src.InstructionCoverage)

	for _, name := range src.ClassNames() {
		class := src.Class(name)
		mapping, ok := capture.Mapping[name]

		if !ok {
			out.AddClass(class)

			if ci := src.ClassInstructions(name); ci != nil {
				out.Instructions[name] = ci
			}

			continue
		}

		remapped := &m.ClassData{
			Name:        class.Name,
			Source:      class.Source,
			Annotations: class.Annotations,
			Supertypes:  class.Supertypes,
			Analyzed:    class.Analyzed,
		}

		class.EachLine(func(l *m.LineData) {
			target := remapLine(mapping, l.Line)
			if target <= 0 {
				return
			}

			line := l.Clone()
			line.Line = target

			if existing := remapped.Line(target); existing != nil {
				existing.Merge(line)
				return
			}

			remapped.SetLine(line)
		})

		out.AddClass(remapped)

		if ci := src.ClassInstructions(name); ci != nil {
			out.Instructions[name] = remapInstructions(ci, mapping)
		}
	}

	return out
}

func remapLine(mapping map[int]int, line int) int {
	if target, ok := mapping[line]; ok {
		return target
	}

	return line
}

func remapInstructions(ci *m.ClassInstructions, mapping map[int]int) *m.ClassInstructions {
	out := m.NewClassInstructions()

	for line, d := range ci.Lines {
		target := remapLine(mapping, line)
		if target <= 0 {
			continue
		}

		if existing, ok := out.Lines[target]; ok {
			existing.Probes = existing.Union(d.Probes)
			continue
		}

		out.Lines[target] = &m.InstructionData{Probes: d.Probes.Clone()}
	}

	return out
}

func requestLabel(req m.Request, i int) string {
	if req.Name != "" {
		return req.Name
	}

	if req.Output != "" {
		return string(req.Output)
	}

	return fmt.Sprintf("#%d", i)
}
