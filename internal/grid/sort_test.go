package grid

import "testing"

func rowNumbers(rows [][]string) []string {
	nums := make([]string, len(rows))
	for i, r := range rows {
		nums[i] = r[0]
	}
	return nums
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortByDataColumn(t *testing.T) {
	m := Load([][]string{
		{"cherry"},
		{"Apple"},
		{"banana"},
	})

	asc := m.SortByColumn(1)
	if !asc {
		t.Fatal("first click should sort ascending")
	}
	// case-insensitive: Apple < banana < cherry
	if got := rowNumbers(m.Rows()); !equalStrings(got, []string{"2", "3", "1"}) {
		t.Errorf("ascending order = %v, want [2 3 1]", got)
	}

	asc = m.SortByColumn(1)
	if asc {
		t.Fatal("second click should sort descending")
	}
	if got := rowNumbers(m.Rows()); !equalStrings(got, []string{"1", "3", "2"}) {
		t.Errorf("descending order = %v, want [1 3 2]", got)
	}
}

func TestSortRowNumberColumnNumeric(t *testing.T) {
	rows := make([][]string, 12)
	for i := range rows {
		rows[i] = []string{"v"}
	}
	m := Load(rows)

	m.SortByColumn(0)
	m.SortByColumn(0) // descending
	got := rowNumbers(m.Rows())
	// Numeric, not lexicographic: 12 before 9, 10 before 2.
	if got[0] != "12" || got[len(got)-1] != "1" {
		t.Errorf("descending numeric sort = %v", got)
	}
	for i := 0; i < len(got)-1; i++ {
		if rowNumber(m.Rows()[i]) < rowNumber(m.Rows()[i+1]) {
			t.Fatalf("not numerically descending at %d: %v", i, got)
		}
	}
}

func TestSortStableForTies(t *testing.T) {
	m := Load([][]string{
		{"same", "first"},
		{"same", "second"},
		{"same", "third"},
	})

	m.SortByColumn(1)
	if got := rowNumbers(m.Rows()); !equalStrings(got, []string{"1", "2", "3"}) {
		t.Errorf("stable ascending tie order = %v, want [1 2 3]", got)
	}
	m.SortByColumn(1)
	if got := rowNumbers(m.Rows()); !equalStrings(got, []string{"1", "2", "3"}) {
		t.Errorf("stable descending tie order = %v, want [1 2 3]", got)
	}
}

func TestSortTogglesArePerColumn(t *testing.T) {
	m := Load([][]string{
		{"b", "y"},
		{"a", "z"},
	})

	if asc := m.SortByColumn(1); !asc {
		t.Fatal("column 1 first click not ascending")
	}
	// A different column starts its own toggle fresh.
	if asc := m.SortByColumn(2); !asc {
		t.Fatal("column 2 first click not ascending")
	}
	// Column 1 remembers: its next click is descending.
	if asc := m.SortByColumn(1); asc {
		t.Fatal("column 1 second click should be descending")
	}
}

func TestSortStateClearedOnLoad(t *testing.T) {
	m := Load([][]string{{"a"}, {"b"}})
	m.SortByColumn(1)

	m = Load([][]string{{"a"}, {"b"}})
	if asc := m.SortByColumn(1); !asc {
		t.Error("sort toggles should reset on load")
	}
}

func TestSortOutOfRangeColumnIsNoop(t *testing.T) {
	m := Load([][]string{{"b"}, {"a"}})
	before := rowNumbers(m.Rows())
	m.SortByColumn(9)
	m.SortByColumn(-1)
	if got := rowNumbers(m.Rows()); !equalStrings(got, before) {
		t.Errorf("out-of-range sort changed order: %v -> %v", before, got)
	}
}
