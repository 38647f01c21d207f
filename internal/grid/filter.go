package grid

import "strings"

// Filter rebuilds the view from the full row set. A blank query (after
// trimming) restores all rows in load order; otherwise a row is kept iff the
// lowered query is a substring of the row's cells joined with tabs, lowered.
// Joining can in principle match across a cell boundary; that is an accepted
// limitation of the single-pass scan. Filtering discards any sort order the
// view had.
func (m *Model) Filter(query string) {
	m.query = query
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		m.rowsView = append([][]string(nil), m.rowsAll...)
		return
	}

	view := make([][]string, 0, len(m.rowsAll))
	for _, r := range m.rowsAll {
		if strings.Contains(strings.ToLower(strings.Join(r, "\t")), q) {
			view = append(view, r)
		}
	}
	m.rowsView = view
}
