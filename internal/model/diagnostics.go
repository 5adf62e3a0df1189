package model

import (
	"fmt"
	"sort"
	"sync"
)

// DiagnosticKind classifies a recoverable problem.
type DiagnosticKind string

const (
	// DiagnosticCapture is an unreadable or malformed raw capture.
	DiagnosticCapture DiagnosticKind = "capture"
	// DiagnosticAncestor is a supertype without metadata.
	DiagnosticAncestor DiagnosticKind = "ancestor"
	// DiagnosticRequest is a request whose output could not be produced.
	DiagnosticRequest DiagnosticKind = "request"
	// DiagnosticRule is a rule that could not be evaluated.
	DiagnosticRule DiagnosticKind = "rule"
)

// Diagnostic is a problem that was recorded and skipped.
type Diagnostic struct {
	Kind    DiagnosticKind
	Subject string
	Err     error
}

func (d Diagnostic) String() string {
	if d.Err == nil {
		return fmt.Sprintf("%s %s", d.Kind, d.Subject)
	}

	return fmt.Sprintf("%s %s: %v", d.Kind, d.Subject, d.Err)
}

// Diagnostics collects recoverable problems. Safe for concurrent use.
type Diagnostics struct {
	mu      sync.Mutex
	entries []Diagnostic
}

// Add records a problem.
func (d *Diagnostics) Add(kind DiagnosticKind, subject string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.entries = append(d.entries, Diagnostic{Kind: kind, Subject: subject, Err: err})
}

// Entries returns the recorded problems ordered by kind and subject. A nil
// Diagnostics has none.
func (d *Diagnostics) Entries() []Diagnostic {
	if d == nil {
		return nil
	}

	d.mu.Lock()
	out := append([]Diagnostic(nil), d.entries...)
	d.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}

		return out[i].Subject < out[j].Subject
	})

	return out
}

// Len returns the number of recorded problems.
func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.entries)
}
