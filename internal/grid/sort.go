package grid

import (
	"sort"
	"strconv"
	"strings"
)

// SortByColumn sorts the current view by the given column and reports the
// direction used. Each column remembers its own toggle: the first click on a
// column sorts ascending, the next descending, independent of other columns.
// Toggles reset on Load. The sort is stable, so equal keys keep their
// relative order and repeated toggles are deterministic.
//
// Column 0 compares row numbers as integers (unparseable values count as 0);
// any other column compares lower-cased strings (missing cells count as "").
func (m *Model) SortByColumn(col int) (ascending bool) {
	if col < 0 || col >= len(m.headers) || len(m.rowsView) == 0 {
		return true
	}

	ascending = true
	if next, ok := m.sortDir[col]; ok {
		ascending = next
	}
	m.sortDir[col] = !ascending

	if col == 0 {
		sort.SliceStable(m.rowsView, func(i, j int) bool {
			a, b := rowNumber(m.rowsView[i]), rowNumber(m.rowsView[j])
			if ascending {
				return a < b
			}
			return a > b
		})
		return ascending
	}

	sort.SliceStable(m.rowsView, func(i, j int) bool {
		a, b := cellKey(m.rowsView[i], col), cellKey(m.rowsView[j], col)
		if ascending {
			return a < b
		}
		return a > b
	})
	return ascending
}

func rowNumber(row []string) int {
	n, err := strconv.Atoi(row[0])
	if err != nil {
		return 0
	}
	return n
}

func cellKey(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.ToLower(row[col])
}
