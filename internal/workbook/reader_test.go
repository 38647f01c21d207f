package workbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeFixtureXLSX(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "People"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.NewSheet("Notes"); err != nil {
		t.Fatal(err)
	}
	_ = f.SetCellValue("People", "A1", "name")
	_ = f.SetCellValue("People", "B1", "city")
	_ = f.SetCellValue("People", "A2", "ame")
	_ = f.SetCellValue("People", "B2", "osaka")
	_ = f.SetCellValue("Notes", "A1", "remember")

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenXLSX(t *testing.T) {
	path := writeFixtureXLSX(t)

	wb, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	names := wb.SheetNames()
	if len(names) != 2 || names[0] != "People" || names[1] != "Notes" {
		t.Fatalf("sheet names = %v, want [People Notes]", names)
	}

	rows, err := wb.SheetRows("People")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "ame" || rows[1][1] != "osaka" {
		t.Errorf("row 2 = %v", rows[1])
	}
}

func TestOpenCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	content := "name,city\n" + "ame,osaka\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	wb, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	names := wb.SheetNames()
	if len(names) != 1 || names[0] != "data" {
		t.Fatalf("sheet names = %v, want [data]", names)
	}

	rows, err := wb.SheetRows("data")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0][1] != "city" {
		t.Fatalf("rows = %v", rows)
	}

	if _, err := wb.SheetRows("other"); err == nil {
		t.Error("expected error for unknown sheet name")
	}
}

func TestOpenCSVLatin1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.csv")
	// "café" with a Latin-1 encoded é (0xE9), invalid as UTF-8.
	content := []byte{'c', 'a', 'f', 0xE9, ',', 'x', '\n'}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	wb, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()

	rows, err := wb.SheetRows("latin1")
	if err != nil {
		t.Fatal(err)
	}
	if rows[0][0] != "café" {
		t.Errorf("Latin-1 cell = %q, want café", rows[0][0])
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.xlsx")); err == nil {
		t.Error("expected error for missing file")
	}
}
