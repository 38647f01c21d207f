// Package workbook opens spreadsheet files and hands out display-ready
// string rows, one sheet at a time. Excel workbooks are read through
// excelize; CSV files are wrapped as a single-sheet workbook so the rest of
// the program never cares which it got.
package workbook

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/amedev/sheetscout/internal/util"
)

// Workbook is an open spreadsheet file. Close it when done; for CSV-backed
// workbooks Close is a no-op.
type Workbook struct {
	path string

	xlsx *excelize.File

	csvSheet string
	csvRows  [][]string
}

// Open reads the file at path. .xlsx/.xlsm/.xltx/.xltm go through excelize
// (cell values arrive as their formatted display strings, so dates come back
// as date strings); anything else is parsed as CSV.
func Open(path string) (*Workbook, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open workbook %s: %w", path, err)
		}
		return &Workbook{path: path, xlsx: f}, nil
	default:
		return openCSV(path)
	}
}

func openCSV(path string) (*Workbook, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}

	r := csv.NewReader(strings.NewReader(string(util.ToValidUTF8Bytes(raw))))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if name == "" {
		name = "Sheet1"
	}
	return &Workbook{path: path, csvSheet: name, csvRows: rows}, nil
}

// Path returns the file path the workbook was opened from.
func (w *Workbook) Path() string { return w.path }

// SheetNames lists sheets in workbook order. CSV workbooks have exactly one.
func (w *Workbook) SheetNames() []string {
	if w.xlsx != nil {
		return w.xlsx.GetSheetList()
	}
	return []string{w.csvSheet}
}

// SheetRows returns the 2-D display strings of the named sheet.
func (w *Workbook) SheetRows(name string) ([][]string, error) {
	if w.xlsx != nil {
		rows, err := w.xlsx.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		return rows, nil
	}
	if name != w.csvSheet {
		return nil, fmt.Errorf("read sheet %q: no such sheet", name)
	}
	return w.csvRows, nil
}

// Close releases the underlying file handle.
func (w *Workbook) Close() error {
	if w.xlsx != nil {
		return w.xlsx.Close()
	}
	return nil
}
