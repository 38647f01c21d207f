package grid

import (
	"strconv"
	"testing"
)

func fiveRowSheet() *Model {
	return Load([][]string{
		{"alpha", "red", "1"},
		{"beta", "green", "2"},
		{"gamma", "needle", "3"},
		{"delta", "blue", "4"},
		{"epsilon", "red", "5"},
	})
}

func TestFilterBlankQueryPassesThrough(t *testing.T) {
	m := fiveRowSheet()
	m.Filter("")
	if len(m.Rows()) != 5 {
		t.Fatalf("blank filter kept %d rows, want all 5", len(m.Rows()))
	}
	m.Filter("   ")
	if len(m.Rows()) != 5 {
		t.Fatalf("whitespace filter kept %d rows, want all 5", len(m.Rows()))
	}
}

func TestFilterSingleMatchScenario(t *testing.T) {
	m := fiveRowSheet()

	m.Filter("needle")
	rows := m.Rows()
	if len(rows) != 1 {
		t.Fatalf("filter matched %d rows, want 1", len(rows))
	}
	if rows[0][0] != "3" {
		t.Errorf("matched row number = %q, want 3", rows[0][0])
	}

	m.Filter("")
	rows = m.Rows()
	if len(rows) != 5 {
		t.Fatalf("clearing filter restored %d rows, want 5", len(rows))
	}
	for i, r := range rows {
		if want := i + 1; r[0] != strconv.Itoa(want) {
			t.Errorf("row %d out of original order: number %q", i, r[0])
		}
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	m := fiveRowSheet()
	m.Filter("NEEDLE")
	if len(m.Rows()) != 1 {
		t.Errorf("case-insensitive filter matched %d rows, want 1", len(m.Rows()))
	}
}

func TestFilterMatchesRowNumberColumn(t *testing.T) {
	// The join includes the row-number column, as the original scan did.
	m := fiveRowSheet()
	m.Filter("5")
	found := false
	for _, r := range m.Rows() {
		if r[0] == "5" {
			found = true
		}
	}
	if !found {
		t.Error("filtering by a row number should match that row")
	}
}

func TestFilterNoMatches(t *testing.T) {
	m := fiveRowSheet()
	m.Filter("zzz-not-here")
	if len(m.Rows()) != 0 {
		t.Errorf("expected empty view, got %d rows", len(m.Rows()))
	}
	// rows_all untouched
	if len(m.AllRows()) != 5 {
		t.Errorf("rows_all mutated by filter: %d rows", len(m.AllRows()))
	}
}
