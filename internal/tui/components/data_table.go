package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/nestegg/internal/output"
	"github.com/rgehrsitz/nestegg/internal/tui/tuistyles"
)

// DataTable shows an output.Table one page at a time.
type DataTable struct {
	source    *output.Table
	formatted [][]string
	table     table.Model
	paginator paginator.Model
}

// NewDataTable creates an empty table showing pageSize rows per page.
func NewDataTable(pageSize int) *DataTable {
	if pageSize < 1 {
		pageSize = 1
	}

	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = pageSize
	p.ArabicFormat = "page %d of %d"

	t := table.New(table.WithFocused(false), table.WithHeight(pageSize+1))
	styles := table.DefaultStyles()
	styles.Header = tuistyles.TableHeaderStyle
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)

	return &DataTable{table: t, paginator: p}
}

// SetTable replaces the data. format renders each cell. The current page is kept
// when it still exists.
func (d *DataTable) SetTable(src *output.Table, format func(output.Cell) string) {
	d.source = src
	d.formatted = nil

	var headers []string
	if src != nil {
		headers = src.Headers
		for _, row := range src.Rows {
			cells := make([]string, len(row))
			for i, c := range row {
				cells[i] = format(c)
			}
			d.formatted = append(d.formatted, cells)
		}
	}

	page := d.paginator.Page
	if len(d.formatted) > 0 {
		d.paginator.SetTotalPages(len(d.formatted))
	} else {
		d.paginator.TotalPages = 1
	}
	if page >= d.paginator.TotalPages {
		page = max(d.paginator.TotalPages-1, 0)
	}
	d.paginator.Page = page

	// rows must be cleared before the column count changes
	d.table.SetRows(nil)
	d.table.SetColumns(columnsFor(headers, d.formatted))
	d.refresh()
}

func columnsFor(headers []string, rows [][]string) []table.Column {
	cols := make([]table.Column, len(headers))
	for i, h := range headers {
		width := lipgloss.Width(h)
		for _, row := range rows {
			if i < len(row) {
				width = max(width, lipgloss.Width(row[i]))
			}
		}
		cols[i] = table.Column{Title: h, Width: width + 1}
	}
	return cols
}

func (d *DataTable) refresh() {
	start, end := d.paginator.GetSliceBounds(len(d.formatted))
	rows := make([]table.Row, 0, end-start)
	for _, r := range d.formatted[start:end] {
		rows = append(rows, table.Row(r))
	}
	d.table.SetRows(rows)
}

// NextPage moves forward one page.
func (d *DataTable) NextPage() {
	d.paginator.NextPage()
	d.refresh()
}

// PrevPage moves back one page.
func (d *DataTable) PrevPage() {
	d.paginator.PrevPage()
	d.refresh()
}

// Page returns the zero-based current page.
func (d *DataTable) Page() int {
	return d.paginator.Page
}

// TotalPages returns the number of pages.
func (d *DataTable) TotalPages() int {
	return d.paginator.TotalPages
}

// VisibleRows returns the formatted rows of the current page.
func (d *DataTable) VisibleRows() [][]string {
	start, end := d.paginator.GetSliceBounds(len(d.formatted))
	return d.formatted[start:end]
}

// Source returns the table being displayed.
func (d *DataTable) Source() *output.Table {
	return d.source
}

// View renders the title, the current page and the page indicator.
func (d *DataTable) View() string {
	if d.source == nil || len(d.formatted) == 0 {
		return tuistyles.InfoStyle.Render("No rows to display")
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(d.source.Title))
	b.WriteString("\n")
	b.WriteString(d.table.View())
	b.WriteString("\n")
	b.WriteString(tuistyles.SubtitleStyle.Render(d.paginator.View()))
	return b.String()
}
