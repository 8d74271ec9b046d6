package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook is an open spreadsheet. Callers must Close it.
type Workbook interface {
	SheetNames() []string
	// EachRow calls fn for every row inside bounds, in sheet order.
	EachRow(sheet string, bounds Bounds, fn func(Row) error) error
	Close() error
}

type excelWorkbook struct {
	path string
	f    *excelize.File
}

// Open opens an .xlsx workbook with excelize. Cell values are read raw, so
// numbers and date serials arrive unformatted.
func Open(path string) (Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &excelWorkbook{path: path, f: f}, nil
}

func (w *excelWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

func (w *excelWorkbook) EachRow(sheet string, bounds Bounds, fn func(Row) error) error {
	if idx, err := w.f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return fmt.Errorf("sheet %q not found in %s", sheet, w.path)
	}

	rows, err := w.f.Rows(sheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	defer rows.Close()

	rowNumber := 0
	for rows.Next() {
		rowNumber++
		if bounds.past(rowNumber) {
			break
		}
		if !bounds.contains(rowNumber) {
			continue
		}
		cols, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			// Unreadable rows carry no retrievable values.
			cols = nil
		}
		if err := fn(NewRow(rowNumber, cols, bounds.MaxCol)); err != nil {
			return err
		}
	}
	return rows.Error()
}

func (w *excelWorkbook) Close() error {
	return w.f.Close()
}

// FirstSheet returns the first worksheet name, or an error for an empty workbook.
func FirstSheet(wb Workbook) (string, error) {
	names := wb.SheetNames()
	if len(names) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	return names[0], nil
}
