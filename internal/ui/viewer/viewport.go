package viewer

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// measure is the display width of a string in terminal cells. Wide (CJK)
// runes count as two cells, which matters for the column sizer and the
// horizontal viewport alike.
func measure(s string) int {
	return runewidth.StringWidth(s)
}

// padOrTruncate fits a string to exactly width terminal cells.
func padOrTruncate(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

// flatten maps embedded line breaks to spaces so a multi-line cell occupies
// one grid row. The full cell text is still available in the text view.
var flatten = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// applyViewport extracts a horizontal slice of a rendered line, preserving
// ANSI styling. It returns the portion of the string from visual column
// startX with the given width, padded with spaces when the line runs out.
func applyViewport(s string, startX, width int) string {
	if width <= 0 {
		return ""
	}
	if startX < 0 {
		startX = 0
	}

	var result strings.Builder
	result.Grow(width + 64)

	visualPos := 0
	outputCells := 0
	stylesApplied := false
	inEscape := false
	escapeSeq := strings.Builder{}

	var activeStyles []string

	runes := []rune(s)
	i := 0

	for i < len(runes) && outputCells < width {
		r := runes[i]

		if r == '\x1b' && i+1 < len(runes) && runes[i+1] == '[' {
			inEscape = true
			escapeSeq.Reset()
			escapeSeq.WriteRune(r)
			i++
			continue
		}

		if inEscape {
			escapeSeq.WriteRune(r)
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
				seq := escapeSeq.String()

				if r == 'm' {
					if seq == "\x1b[0m" || seq == "\x1b[m" {
						activeStyles = nil
					} else {
						activeStyles = append(activeStyles, seq)
					}
				}

				if visualPos >= startX {
					result.WriteString(seq)
				}
			}
			i++
			continue
		}

		rw := runewidth.RuneWidth(r)
		if visualPos >= startX {
			if !stylesApplied && len(activeStyles) > 0 {
				for _, style := range activeStyles {
					result.WriteString(style)
				}
				stylesApplied = true
			}
			result.WriteRune(r)
			outputCells += rw
		}

		visualPos += rw
		i++
	}

	if len(activeStyles) > 0 && outputCells > 0 {
		result.WriteString("\x1b[0m")
	}

	if outputCells < width {
		result.WriteString(strings.Repeat(" ", width-outputCells))
	}

	return result.String()
}
