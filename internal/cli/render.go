package cli

import (
	"strings"

	"github.com/theirongolddev/billdue/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorYellow    = lipgloss.Color("#D0A215")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	paidStyle    = lipgloss.NewStyle().Foreground(ColorGreen)
	overdueStyle = lipgloss.NewStyle().Foreground(ColorRed)
	dueSoonStyle = lipgloss.NewStyle().Foreground(ColorYellow)
	okStyle      = lipgloss.NewStyle().Foreground(ColorTextMuted)
)

// StatusStyle returns the foreground style for a classification badge.
func StatusStyle(s model.Status) lipgloss.Style {
	switch s {
	case model.StatusPaid:
		return paidStyle
	case model.StatusOverdue:
		return overdueStyle
	case model.StatusDueSoon:
		return dueSoonStyle
	default:
		return okStyle
	}
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string

	// CellStyle optionally overrides the style for a data cell.
	// Return ok=false to use the default value style.
	CellStyle func(row, col int) (lipgloss.Style, bool)
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
// Cell widths use display width, not byte length, so badge glyphs line up.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if w := lipgloss.Width(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			continue
		}
		for i, cell := range row {
			if i < numCols {
				if w := lipgloss.Width(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	writeBorder(&b, widths, "╭", "┬", "╮")

	// Header row
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(padCell(h, widths[i], i == 0)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")

		writeBorder(&b, widths, "├", "┼", "┤")
	}

	// Data rows
	for rowIdx, row := range t.Rows {
		if isSeparator(row) {
			writeBorder(&b, widths, "├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			style := valueStyle
			if t.CellStyle != nil {
				if s, ok := t.CellStyle(rowIdx, i); ok {
					style = s
				}
			}
			b.WriteString(style.Render(padCell(cell, widths[i], i == 0)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	writeBorder(&b, widths, "╰", "┴", "╯")

	return b.String()
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == "---"
}

// padCell pads to width by display width. First column is left-aligned,
// the rest right-aligned (numeric columns).
func padCell(cell string, width int, leftAlign bool) string {
	pad := width - lipgloss.Width(cell)
	if pad < 0 {
		pad = 0
	}
	if leftAlign {
		return " " + cell + strings.Repeat(" ", pad) + " "
	}
	return " " + strings.Repeat(" ", pad) + cell + " "
}

func writeBorder(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(dimStyle.Render(left))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < len(widths)-1 {
			b.WriteString(dimStyle.Render(mid))
		}
	}
	b.WriteString(dimStyle.Render(right))
	b.WriteString("\n")
}
