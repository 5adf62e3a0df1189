package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const columnWidth = 12

// resultDelegate renders fixed-width columns followed by one free-width
// column that is truncated to fit.
type resultDelegate struct{}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(resultItem)
	if !ok || len(row.columns) == 0 {
		return
	}

	isSelected := index == m.Index()

	cellStyle := lipgloss.NewStyle().Width(columnWidth).Align(lipgloss.Left)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	switch {
	case isSelected:
		cellStyle = cellStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
		textStyle = textStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
	case row.failed:
		cellStyle = cellStyle.Foreground(lipgloss.Color("1")).Bold(true)
	default:
		cellStyle = cellStyle.Foreground(lipgloss.Color("2"))
	}

	fixed := row.columns[:len(row.columns)-1]
	free := row.columns[len(row.columns)-1]

	cells := make([]string, 0, len(row.columns))
	for _, c := range fixed {
		cells = append(cells, cellStyle.Render(truncateToWidth(c, columnWidth-1)))
	}

	width := m.Width() - len(fixed)*columnWidth
	cells = append(cells, textStyle.Render(truncateToWidth(free, width)))

	_, _ = fmt.Fprint(w, strings.Join(cells, ""))
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// reportModel displays the results of one batch: request outcomes, rule
// violations or a report summary depending on the mode.
type reportModel struct {
	mode        StartMode
	width       int
	height      int
	progressBar progress.Model
	rows        list.Model
	captures    int
	requests    int
	rules       int
	threads     int
	percent     float64
	headline    string
	failures    []string
	diagnostics []string
	rendered    bool
	finished    bool
}

func newReportModel(mode StartMode) reportModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	rows := list.New([]list.Item{}, resultDelegate{}, 80, 20)
	rows.SetShowPagination(false)
	rows.SetShowFilter(true)
	rows.SetShowHelp(false)
	rows.SetShowTitle(false)
	rows.SetShowStatusBar(false)
	rows.FilterInput.Placeholder = "Filter…"

	return reportModel{
		mode:        mode,
		progressBar: prog,
		rows:        rows,
		width:       80,
		height:      24,
	}
}

func (m reportModel) Init() tea.Cmd {
	return nil
}

func (m reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rows.SetWidth(m.width)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			m.rows, cmd = m.rows.Update(msg)
		}

	case batchMsg:
		m.captures = msg.captures
		m.requests = msg.requests
		m.rules = msg.rules
		m.threads = msg.threads
		m.rendered = true

	case requestsMsg:
		m = m.setRows(msg.rows)
		if msg.total > 0 {
			m.percent = float64(msg.succeeded) / float64(msg.total)
		}

		m.headline = fmt.Sprintf("%d of %d request(s) written", msg.succeeded, msg.total)

	case violationsMsg:
		m = m.setRows(msg.rows)
		m.failures = msg.failures

		if len(msg.rows) == 0 && len(msg.failures) == 0 {
			m.headline = "All rules passed"
			m.percent = 1
		} else {
			m.headline = fmt.Sprintf("%d violation(s), %d failed rule(s)", len(msg.rows), len(msg.failures))
		}

	case summaryMsg:
		m = m.setRows(msg.rows)
		m.percent = msg.overall
		m.headline = fmt.Sprintf("%s (%s)", msg.report, msg.target)

	case diagnosticsMsg:
		m.diagnostics = append(m.diagnostics, msg.lines...)

	case doneMsg:
		m.finished = true
		m.rendered = true
	}

	return m, cmd
}

func (m reportModel) setRows(rows []resultItem) reportModel {
	items := make([]list.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, r)
	}

	m.rows.SetItems(items)
	m.rendered = true

	return m
}

func (m reportModel) title() string {
	switch m.mode {
	case ModeVerify:
		return "Covrig Verification"
	case ModeView:
		return "Covrig Report"
	default:
		return "Covrig Aggregation"
	}
}

func (m reportModel) headers() []string {
	switch m.mode {
	case ModeVerify:
		return []string{"Rule", "Bound", "Kind", "Value", "Scope"}
	case ModeView:
		return []string{"Line %", "Branch %", "Instr %", "Scope"}
	default:
		return []string{"Classes", "Lines", "Status", "Request"}
	}
}

func (m reportModel) View() string {
	if !m.rendered {
		return "Loading coverage…\n"
	}

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	title := titleStyle.Render(m.title())

	summary := summaryStyle.Render(fmt.Sprintf(
		"Captures: %s  •  Requests: %s  •  Rules: %s  •  Workers: %s\n%s",
		accentStyle.Render(fmt.Sprintf("%d", m.captures)),
		accentStyle.Render(fmt.Sprintf("%d", m.requests)),
		accentStyle.Render(fmt.Sprintf("%d", m.rules)),
		accentStyle.Render(fmt.Sprintf("%d", m.threads)),
		m.headline,
	))

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(m.percent))

	sections := []string{title, summary, progressView, m.renderTable()}

	if notes := m.renderNotes(); notes != "" {
		sections = append(sections, notes)
	}

	footerText := "↑/k up • ↓/j down • / filter • q quit"
	if !m.finished {
		footerText = "working… • q quit"
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render(footerText)

	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m reportModel) renderTable() string {
	listHeight := m.height - 12 - len(m.failures) - len(m.diagnostics)
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := m.width - 6
	if listWidth < 20 {
		listWidth = 20
	}

	m.rows.SetHeight(listHeight)
	m.rows.SetWidth(listWidth)

	headers := m.headers()

	var header strings.Builder
	for _, h := range headers[:len(headers)-1] {
		header.WriteString(fmt.Sprintf("%-*s", columnWidth, h))
	}

	header.WriteString(headers[len(headers)-1])

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return container.Render(lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(header.String()),
		m.rows.View(),
	))
}

func (m reportModel) renderNotes() string {
	if len(m.failures) == 0 && len(m.diagnostics) == 0 {
		return ""
	}

	failureStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Padding(0, 2)
	noteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Padding(0, 2)

	lines := make([]string, 0, len(m.failures)+len(m.diagnostics))
	for _, f := range m.failures {
		lines = append(lines, failureStyle.Render("failed: "+f))
	}

	for _, d := range m.diagnostics {
		lines = append(lines, noteStyle.Render("skipped: "+d))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
