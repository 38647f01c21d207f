package grid

// MeasureFunc reports the display width of a string. The TUI supplies a
// terminal-cell measure (go-runewidth); tests supply rune counts.
type MeasureFunc func(string) int

// SizerOptions bound the width heuristic.
type SizerOptions struct {
	Padding    int // added to every measured value
	MinWidth   int // floor for data columns
	MaxWidth   int // cap for data columns
	RowNumMin  int // floor for the row-number column
	RowNumMax  int // cap for the row-number column
	SampleRows int // how many view rows to scan
}

// DefaultSizerOptions are tuned for terminal cells.
func DefaultSizerOptions() SizerOptions {
	return SizerOptions{
		Padding:    2,
		MinWidth:   4,
		MaxWidth:   42,
		RowNumMin:  3,
		RowNumMax:  6,
		SampleRows: 300,
	}
}

// ComputeWidths returns one width per header. Each column starts at its
// measured header width plus padding and widens to fit any sampled cell.
// Only the first opts.SampleRows rows are scanned, an accuracy/performance
// tradeoff, since rows is the live view and this runs after every
// load/filter/sort. Column 0 (row numbers) clamps to its own narrow range,
// the rest to [MinWidth, MaxWidth].
func ComputeWidths(headers []string, rows [][]string, measure MeasureFunc, opts SizerOptions) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = measure(h) + opts.Padding
	}

	sample := rows
	if opts.SampleRows > 0 && len(sample) > opts.SampleRows {
		sample = sample[:opts.SampleRows]
	}
	for _, row := range sample {
		for i, val := range row {
			if i >= len(widths) {
				break
			}
			if w := measure(val) + opts.Padding; w > widths[i] {
				widths[i] = w
			}
		}
	}

	for i, w := range widths {
		if i == 0 {
			widths[i] = clamp(w, opts.RowNumMin, opts.RowNumMax)
		} else {
			widths[i] = clamp(w, opts.MinWidth, opts.MaxWidth)
		}
	}
	return widths
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
