package grid

import (
	"strings"
	"testing"
)

func runeMeasure(s string) int { return len([]rune(s)) }

func TestComputeWidthsHeaderFloor(t *testing.T) {
	opts := DefaultSizerOptions()
	headers := []string{"#", "LongHeaderName", "B"}
	rows := [][]string{{"1", "x", "y"}}

	widths := ComputeWidths(headers, rows, runeMeasure, opts)
	if want := runeMeasure("LongHeaderName") + opts.Padding; widths[1] != want {
		t.Errorf("header-driven width = %d, want %d", widths[1], want)
	}
}

func TestComputeWidthsWidensForCells(t *testing.T) {
	opts := DefaultSizerOptions()
	headers := []string{"#", "A"}
	rows := [][]string{
		{"1", "short"},
		{"2", "a noticeably longer cell value"},
	}

	widths := ComputeWidths(headers, rows, runeMeasure, opts)
	if want := runeMeasure(rows[1][1]) + opts.Padding; widths[1] != want {
		t.Errorf("cell-driven width = %d, want %d", widths[1], want)
	}
}

func TestComputeWidthsClamps(t *testing.T) {
	opts := DefaultSizerOptions()
	headers := []string{"#", "A"}
	rows := [][]string{
		{"123456789012", strings.Repeat("w", 500)},
	}

	widths := ComputeWidths(headers, rows, runeMeasure, opts)
	if widths[0] != opts.RowNumMax {
		t.Errorf("row-number width = %d, want clamped to %d", widths[0], opts.RowNumMax)
	}
	if widths[1] != opts.MaxWidth {
		t.Errorf("data width = %d, want clamped to %d", widths[1], opts.MaxWidth)
	}

	narrow := ComputeWidths([]string{"#", "A"}, nil, runeMeasure, opts)
	if narrow[0] < opts.RowNumMin {
		t.Errorf("row-number width = %d, below floor %d", narrow[0], opts.RowNumMin)
	}
	if narrow[1] < opts.MinWidth {
		t.Errorf("data width = %d, below floor %d", narrow[1], opts.MinWidth)
	}
}

func TestComputeWidthsSamplingCap(t *testing.T) {
	opts := DefaultSizerOptions()
	opts.SampleRows = 10
	opts.MaxWidth = 100

	rows := make([][]string, 20)
	for i := range rows {
		rows[i] = []string{"1", "x"}
	}
	// A wide value beyond the sample window must not influence widths.
	rows[15][1] = strings.Repeat("wide", 10)

	widths := ComputeWidths([]string{"#", "A"}, rows, runeMeasure, opts)
	if widths[1] != opts.MinWidth {
		t.Errorf("row past sample cap influenced width: %d, want %d", widths[1], opts.MinWidth)
	}
}
