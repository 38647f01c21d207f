package viewer

import (
	"fmt"
	"io"
	"strings"

	"github.com/amedev/sheetscout/internal/grid"
)

// PrintPlain writes the grid as an aligned, color-free table. Used when
// stdout is not a terminal, so the output stays pipe and grep friendly.
func PrintPlain(w io.Writer, g *grid.Model) error {
	headers := g.Headers()
	rows := g.Rows()
	widths := grid.ComputeWidths(headers, rows, measure, grid.DefaultSizerOptions())

	var sb strings.Builder
	for i, h := range headers {
		sb.WriteString(padOrTruncate(h, widths[i]))
		sb.WriteString(strings.Repeat(" ", colGap))
	}
	sb.WriteString("\n")
	for i := range headers {
		sb.WriteString(strings.Repeat("-", widths[i]))
		sb.WriteString(strings.Repeat(" ", colGap))
	}
	sb.WriteString("\n")

	for _, row := range rows {
		for i := range headers {
			var val string
			if i < len(row) {
				val = flatten.Replace(row[i])
			}
			sb.WriteString(padOrTruncate(val, widths[i]))
			sb.WriteString(strings.Repeat(" ", colGap))
		}
		sb.WriteString("\n")
	}

	_, err := fmt.Fprint(w, sb.String())
	return err
}
