// Package xlsxtest builds small workbooks for tests.
package xlsxtest

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet of a fixture; Rows[r][c] lands in row r+1, column c+1.
// nil values leave the cell empty; a []excelize.RichTextRun value is written
// as a rich text cell.
type Sheet struct {
	Name string
	Rows [][]any
}

// Write saves the sheets, in order, to name inside t.TempDir() and returns the path.
func Write(t testing.TB, name string, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.Name); err != nil {
				t.Fatal(err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			t.Fatal(err)
		}
		for r, row := range s.Rows {
			for c, v := range row {
				if v == nil {
					continue
				}
				cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
				var err error
				if runs, ok := v.([]excelize.RichTextRun); ok {
					err = f.SetCellRichText(s.Name, cell, runs)
				} else {
					err = f.SetCellValue(s.Name, cell, v)
				}
				if err != nil {
					t.Fatal(err)
				}
			}
		}
	}

	out := filepath.Join(t.TempDir(), name)
	if err := f.SaveAs(out); err != nil {
		t.Fatal(err)
	}
	return out
}

// Pad returns a row of n empty cells with the given 1-based columns set.
func Pad(n int, cols map[int]any) []any {
	row := make([]any, n)
	for col, v := range cols {
		if col >= 1 && col <= n {
			row[col-1] = v
		}
	}
	return row
}

// ReplacePart rewrites one part of the package at path, e.g. "xl/styles.xml",
// leaving every other part intact.
func ReplacePart(t testing.TB, path, part string, content []byte) {
	t.Helper()

	src, err := zip.OpenReader(path)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	tmp := path + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(out)
	for _, f := range src.File {
		w, err := zw.Create(f.Name)
		if err != nil {
			t.Fatal(err)
		}
		if f.Name == part {
			if _, err := w.Write(content); err != nil {
				t.Fatal(err)
			}
			continue
		}
		r, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		_, err = io.Copy(w, r)
		r.Close()
		if err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := out.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
}
