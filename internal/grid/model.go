// Package grid holds the in-memory row/column model for one loaded sheet and
// the filter, sort, and column-sizing transforms applied to it. The grid is
// display-oriented: every cell is already a string, and every row carries a
// synthetic leading row-number column that survives filtering and sorting.
package grid

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// RowNumberHeader is the header label of the synthetic row-number column.
const RowNumberHeader = "#"

// Model is the canonical row set of one sheet load plus its current
// filtered/sorted projection. All mutation happens through Load, Filter and
// SortByColumn; the view is always a subset/permutation of the loaded rows.
type Model struct {
	headers  []string
	rowsAll  [][]string
	rowsView [][]string
	query    string
	sortDir  map[int]bool // column index -> direction of the next click (true = ascending)
}

// Load builds a model from raw sheet rows. Trailing columns that are empty in
// every row are trimmed (decided once, here), headers become ["#", "A", "B",
// ...] for the kept width, and each row is padded to uniform width with the
// 1-based row number prepended. The view resets to all rows; sort state and
// any caller-held selection are gone.
func Load(raw [][]string) *Model {
	maxCols := 0
	for _, r := range raw {
		if len(r) > maxCols {
			maxCols = len(r)
		}
	}

	kept := maxCols
	for kept > 0 && columnEmpty(raw, kept-1) {
		kept--
	}

	headers := make([]string, 0, kept+1)
	headers = append(headers, RowNumberHeader)
	for i := 1; i <= kept; i++ {
		headers = append(headers, columnLabel(i))
	}

	rows := make([][]string, len(raw))
	for i, r := range raw {
		row := make([]string, kept+1)
		row[0] = strconv.Itoa(i + 1)
		for c := 0; c < kept; c++ {
			if c < len(r) {
				row[c+1] = r[c]
			}
		}
		rows[i] = row
	}

	m := &Model{
		headers: headers,
		rowsAll: rows,
		sortDir: make(map[int]bool),
	}
	m.rowsView = append([][]string(nil), rows...)
	return m
}

// columnEmpty reports whether column ci is empty (or absent) in every row.
func columnEmpty(raw [][]string, ci int) bool {
	for _, r := range raw {
		if ci < len(r) && r[ci] != "" {
			return false
		}
	}
	return true
}

// columnLabel returns the spreadsheet letter label for a 1-based column.
func columnLabel(n int) string {
	name, err := excelize.ColumnNumberToName(n)
	if err != nil {
		return strconv.Itoa(n)
	}
	return name
}

// Headers returns the header row, row-number column first.
func (m *Model) Headers() []string { return m.headers }

// Rows returns the current view rows (filtered and sorted).
func (m *Model) Rows() [][]string { return m.rowsView }

// AllRows returns the full loaded row set in load order.
func (m *Model) AllRows() [][]string { return m.rowsAll }

// Query returns the filter text currently applied to the view.
func (m *Model) Query() string { return m.query }

// FindRowByNumber returns the view index of the row whose row-number column
// equals num, or -1. Callers use this to detect a stale selection after the
// view is rebuilt.
func (m *Model) FindRowByNumber(num string) int {
	for i, r := range m.rowsView {
		if r[0] == num {
			return i
		}
	}
	return -1
}
