package controller

// Message types.
type batchMsg struct {
	captures int
	requests int
	rules    int
	threads  int
}

type requestsMsg struct {
	rows      []resultItem
	succeeded int
	total     int
}

type violationsMsg struct {
	rows     []resultItem
	failures []string
}

type summaryMsg struct {
	report  string
	target  string
	rows    []resultItem
	overall float64
}

type diagnosticsMsg struct {
	lines []string
}

type doneMsg struct{}

// List item types.
type resultItem struct {
	columns []string
	failed  bool
}

func (r resultItem) FilterValue() string {
	out := ""
	for i, c := range r.columns {
		if i > 0 {
			out += " "
		}

		out += c
	}

	return out
}
