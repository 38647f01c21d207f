package grid

import (
	"strconv"
	"testing"
)

func TestLoadPrependsRowNumbers(t *testing.T) {
	m := Load([][]string{
		{"alpha", "one"},
		{"beta", "two"},
		{"gamma", "three"},
	})

	rows := m.AllRows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, r := range rows {
		want := strconv.Itoa(i + 1)
		if r[0] != want {
			t.Errorf("row %d: row number = %q, want %q", i, r[0], want)
		}
	}
}

func TestLoadHeaders(t *testing.T) {
	m := Load([][]string{{"a", "b", "c"}})
	want := []string{"#", "A", "B", "C"}
	got := m.Headers()
	if len(got) != len(want) {
		t.Fatalf("headers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("headers = %v, want %v", got, want)
		}
	}
}

func TestLoadTrimsTrailingEmptyColumns(t *testing.T) {
	// Columns D and E are empty in every row; C has one non-empty cell.
	m := Load([][]string{
		{"a1", "b1", "", "", ""},
		{"a2", "", "c2", "", ""},
		{"a3", "b3", "", "", ""},
	})

	headers := m.Headers()
	if len(headers) != 4 {
		t.Fatalf("expected headers # A B C, got %v", headers)
	}
	if headers[len(headers)-1] != "C" {
		t.Errorf("last header = %q, want C", headers[len(headers)-1])
	}
	for _, r := range m.AllRows() {
		if len(r) != 4 {
			t.Errorf("row %v has %d columns, want 4", r, len(r))
		}
	}
}

func TestLoadPadsShortRows(t *testing.T) {
	m := Load([][]string{
		{"a", "b", "c"},
		{"only"},
	})
	rows := m.AllRows()
	if len(rows[1]) != len(rows[0]) {
		t.Fatalf("short row not padded: %v vs %v", rows[1], rows[0])
	}
	if rows[1][2] != "" || rows[1][3] != "" {
		t.Errorf("padding cells should be empty, got %v", rows[1])
	}
}

func TestLoadEmptySheet(t *testing.T) {
	m := Load(nil)
	if len(m.Headers()) != 1 || m.Headers()[0] != RowNumberHeader {
		t.Errorf("empty sheet headers = %v, want [#]", m.Headers())
	}
	if len(m.Rows()) != 0 {
		t.Errorf("empty sheet has %d view rows", len(m.Rows()))
	}
}

func TestLoadWideSheetLettersRollOver(t *testing.T) {
	row := make([]string, 28)
	for i := range row {
		row[i] = "x"
	}
	m := Load([][]string{row})
	h := m.Headers()
	if h[26] != "Z" || h[27] != "AA" || h[28] != "AB" {
		t.Errorf("letter labels = %q %q %q, want Z AA AB", h[26], h[27], h[28])
	}
}

func TestRowNumbersSurviveFilterAndSort(t *testing.T) {
	m := Load([][]string{
		{"cherry"},
		{"apple"},
		{"banana"},
	})

	m.SortByColumn(1)
	m.Filter("an")

	seen := map[string]bool{}
	for _, r := range m.Rows() {
		if seen[r[0]] {
			t.Errorf("duplicate row number %q after filter+sort", r[0])
		}
		seen[r[0]] = true
	}
	if idx := m.FindRowByNumber("3"); idx == -1 {
		t.Error("row 3 (banana) should survive filter \"an\"")
	}
}

func TestFindRowByNumber(t *testing.T) {
	m := Load([][]string{{"a"}, {"b"}})
	if got := m.FindRowByNumber("2"); got != 1 {
		t.Errorf("FindRowByNumber(2) = %d, want 1", got)
	}
	if got := m.FindRowByNumber("9"); got != -1 {
		t.Errorf("FindRowByNumber(9) = %d, want -1", got)
	}
}
