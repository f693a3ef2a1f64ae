// Package tui implements the interactive result browser behind
// `rsregions browse`: a server list with table and region totals, and a
// per-server detail view showing the histogram as text or as a bar chart.
package tui

import (
	"context"
	"fmt"

	"hbasekit/rsregions/internal/domain"
	"hbasekit/rsregions/internal/tui/components"
	"hbasekit/rsregions/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RefreshFunc re-runs the scan that produced the initial reports.
type RefreshFunc func(ctx context.Context) []domain.Report

// --- Messages ---

type reportsRefreshedMsg struct {
	reports []domain.Report
}

// --- Browser model ---

type browserModel struct {
	reports []domain.Report
	refresh RefreshFunc

	cursor int

	width  int
	height int

	loading bool
	spinner spinner.Model

	// detail is true when a single server's histogram is open.
	detail bool
	// chartMode switches the detail view between rows and a bar chart.
	chartMode bool

	status        string
	statusIsError bool
	quitting      bool
}

// RunBrowser starts the full-window interactive browser over scan results.
func RunBrowser(reports []domain.Report, refresh RefreshFunc) error {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	m := browserModel{
		reports: reports,
		refresh: refresh,
		spinner: s,
		status:  summarizeReports(reports),
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) refreshReports() tea.Cmd {
	refresh := m.refresh
	return func() tea.Msg {
		return reportsRefreshedMsg{reports: refresh(context.Background())}
	}
}

// summarizeReports builds the default status line for the server list.
func summarizeReports(reports []domain.Report) string {
	failed := 0
	for _, r := range reports {
		if r.Failed() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Sprintf("%d server(s), %d failed", len(reports), failed)
	}
	return fmt.Sprintf("%d server(s)", len(reports))
}

// --- Update ---

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case reportsRefreshedMsg:
		m.loading = false
		m.reports = msg.reports
		m.status = "refreshed: " + summarizeReports(msg.reports)
		m.statusIsError = false
		if m.cursor >= len(m.reports) {
			m.cursor = max(len(m.reports)-1, 0)
		}
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m browserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Block input while refreshing (except ctrl+c).
	if m.loading {
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "q", "esc":
		if m.detail {
			m.detail = false
			m.chartMode = false
			m.status = summarizeReports(m.reports)
			m.statusIsError = false
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if !m.detail && m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if !m.detail && m.cursor < len(m.reports)-1 {
			m.cursor++
		}

	case "g":
		if !m.detail {
			m.cursor = 0
		}

	case "G":
		if !m.detail && len(m.reports) > 0 {
			m.cursor = len(m.reports) - 1
		}

	case "enter":
		if !m.detail && len(m.reports) > 0 {
			m.detail = true
			m.chartMode = false
			r := m.reports[m.cursor]
			if r.Failed() {
				m.status = "fetch failed: " + r.Err.Error()
				m.statusIsError = true
			} else {
				m.status = fmt.Sprintf("%d region(s) across %d table(s)", r.Histogram.Total(), len(r.Histogram))
				m.statusIsError = false
			}
		}

	case "c":
		if m.detail && !m.reports[m.cursor].Failed() {
			m.chartMode = !m.chartMode
		}

	case "r":
		m.loading = true
		m.status = ""
		m.statusIsError = false
		return m, tea.Batch(m.spinner.Tick, m.refreshReports())
	}

	return m, nil
}

// --- View ---

func (m browserModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	breadcrumb := "servers"
	right := fmt.Sprintf("%d servers", len(m.reports))
	if m.detail && len(m.reports) > 0 {
		breadcrumb = m.reports[m.cursor].Target.Host
		right = m.reports[m.cursor].Target.String()
	}
	header := components.Header(m.width, breadcrumb, right)

	var footerBindings []components.KeyBinding
	switch {
	case m.loading:
		footerBindings = []components.KeyBinding{
			{Key: "ctrl+c", Desc: "quit"},
		}
	case m.detail:
		footerBindings = []components.KeyBinding{
			{Key: "c", Desc: "chart"},
			{Key: "esc", Desc: "back"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	default:
		footerBindings = []components.KeyBinding{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "show"},
			{Key: "r", Desc: "refresh"},
			{Key: "q", Desc: "quit"},
		}
	}
	footer := components.Footer(m.width, footerBindings)

	statusBar := ""
	if m.status != "" {
		statusBar = components.StatusBar(m.width, m.status, m.statusIsError)
	}

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	statusH := lipgloss.Height(statusBar)
	contentH := m.height - headerH - footerH - statusH
	if contentH < 1 {
		contentH = 1
	}

	content := m.renderContent(contentH)

	sections := []string{header, content}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m browserModel) renderContent(height int) string {
	if m.loading {
		loadingText := m.spinner.View() + "  Refreshing region metrics…"
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render(loadingText),
		)
	}

	if len(m.reports) == 0 {
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No servers scanned."),
		)
	}

	if m.detail {
		return m.renderDetail(height)
	}
	return m.renderServerTable(height)
}

// --- Server list ---

func (m browserModel) renderServerTable(height int) string {
	available := m.width - 4 // 2 padding on each side

	type column struct {
		title string
		width int
	}
	cols := []column{
		{title: "SERVER", width: 24},
		{title: "TABLES", width: 8},
		{title: "REGIONS", width: 9},
		{title: "STATUS", width: 12},
	}

	// Distribute remaining width to the SERVER column.
	total := 0
	for _, c := range cols {
		total += c.width
	}
	if available > total {
		cols[0].width += available - total
	}

	headerCells := make([]string, len(cols))
	for i, col := range cols {
		headerCells[i] = styles.TableHeader.Width(col.width).Render(col.title)
	}
	headerRow := lipgloss.JoinHorizontal(lipgloss.Top, headerCells...)

	visibleRows := height - 2 // header + bottom padding
	if visibleRows < 1 {
		visibleRows = 1
	}

	// Scrolling: keep cursor visible.
	startIdx := 0
	if m.cursor >= visibleRows {
		startIdx = m.cursor - visibleRows + 1
	}
	endIdx := min(startIdx+visibleRows, len(m.reports))

	rows := make([]string, 0, visibleRows)
	for i := startIdx; i < endIdx; i++ {
		r := m.reports[i]
		isSelected := i == m.cursor

		cellStyle := styles.TableCell
		if isSelected {
			cellStyle = styles.TableSelectedRow
		}

		tables, regions := "-", "-"
		outcome := "failed"
		if !r.Failed() {
			tables = fmt.Sprintf("%d", len(r.Histogram))
			regions = fmt.Sprintf("%d", r.Histogram.Total())
			outcome = "ok"
		}

		cells := []string{
			cellStyle.Width(cols[0].width).Render(ansi.Truncate(r.Target.Host, cols[0].width-2, "…")),
			cellStyle.Width(cols[1].width).Render(tables),
			cellStyle.Width(cols[2].width).Render(regions),
		}
		if isSelected {
			cells = append(cells, cellStyle.Width(cols[3].width).Render(outcome))
		} else {
			cells = append(cells, styles.ResultStyle(r.Failed()).Width(cols[3].width).Padding(0, 1).Render(outcome))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, append([]string{headerRow}, rows...)...)

	return lipgloss.NewStyle().Padding(0, 2).Render(table)
}

// --- Detail view ---

func (m browserModel) renderDetail(height int) string {
	r := m.reports[m.cursor]

	if r.Failed() {
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.ErrorText.Render("fetch failed: "+r.Err.Error()),
		)
	}

	if len(r.Histogram) == 0 {
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No region metrics on this server."),
		)
	}

	if m.chartMode {
		chart := components.HistogramChart(r.Histogram, m.width-4)
		return lipgloss.NewStyle().Padding(0, 2).Render(chart)
	}

	title := styles.Label.Render("REGIONS") + "  " + styles.Label.Render("TABLE")
	lines := []string{title}

	visibleRows := height - 2
	if visibleRows < 1 {
		visibleRows = 1
	}
	for i, table := range r.Histogram.Tables() {
		if i >= visibleRows {
			lines = append(lines, styles.MutedText.Render("…"))
			break
		}
		lines = append(lines, fmt.Sprintf("%7d  %s", r.Histogram[table], table))
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...),
	)
}
