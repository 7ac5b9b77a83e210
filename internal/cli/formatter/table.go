package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// Column describes one table column.
type Column struct {
	Title string
	// Right aligns cells to the right edge of the column.
	Right bool
}

// RenderTable renders an aligned table with a dim separator under the header.
// Widths are measured on visible text, so styled cells line up. The last
// column is never padded on the right.
func RenderTable(cols []Column, rows [][]string) string {
	if len(cols) == 0 {
		return ""
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = lipgloss.Width(c.Title)
	}
	for _, row := range rows {
		for i := 0; i < len(cols) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	header := make([]string, len(cols))
	rule := make([]string, len(cols))
	for i, c := range cols {
		header[i] = StyleHeader.Render(c.Title)
		rule[i] = StyleDim.Render(strings.Repeat("─", widths[i]))
	}
	writeRow(&b, cols, widths, header)
	writeRow(&b, cols, widths, rule)
	for _, row := range rows {
		writeRow(&b, cols, widths, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cols []Column, widths []int, cells []string) {
	last := len(cols) - 1
	for i := range cols {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := max(widths[i]-lipgloss.Width(cell), 0)

		if cols[i].Right {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
		} else {
			b.WriteString(cell)
			if i < last {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		if i < last {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
}
