package sheet

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// rawWorkbook reads worksheet XML straight from the package, skipping styles
// entirely. It exists for workbooks whose stylesheet excelize rejects.
type rawWorkbook struct {
	path    string
	zr      *zip.ReadCloser
	sheets  []rawSheetRef
	strings []string
}

type rawSheetRef struct {
	Name string
	Part string
}

type xlsxWorkbook struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
		RID  string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sheets>sheet"`
}

type xlsxRelationships struct {
	Items []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

type xlsxText struct {
	T string `xml:"t"`
	R []struct {
		T string `xml:"t"`
	} `xml:"r"`
}

func (t xlsxText) String() string {
	if len(t.R) == 0 {
		return t.T
	}
	var b strings.Builder
	b.WriteString(t.T)
	for _, r := range t.R {
		b.WriteString(r.T)
	}
	return b.String()
}

type xlsxSST struct {
	Items []xlsxText `xml:"si"`
}

type xlsxWorksheet struct {
	Rows []struct {
		R     int `xml:"r,attr"`
		Cells []struct {
			Ref    string    `xml:"r,attr"`
			Type   string    `xml:"t,attr"`
			V      *string   `xml:"v"`
			Inline *xlsxText `xml:"is"`
		} `xml:"c"`
	} `xml:"sheetData>row"`
}

// OpenRaw opens an .xlsx package without going through excelize.OpenFile.
func OpenRaw(filePath string) (Workbook, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", filePath, err)
	}
	wb := &rawWorkbook{path: filePath, zr: zr}
	if err := wb.load(); err != nil {
		_ = zr.Close()
		return nil, fmt.Errorf("read workbook %s: %w", filePath, err)
	}
	return wb, nil
}

func (w *rawWorkbook) load() error {
	var book xlsxWorkbook
	if err := w.decode("xl/workbook.xml", &book); err != nil {
		return err
	}
	var rels xlsxRelationships
	if err := w.decode("xl/_rels/workbook.xml.rels", &rels); err != nil {
		return err
	}
	targets := make(map[string]string, len(rels.Items))
	for _, rel := range rels.Items {
		targets[rel.ID] = resolvePart(rel.Target)
	}
	for i, s := range book.Sheets {
		part, ok := targets[s.RID]
		if !ok {
			part = fmt.Sprintf("xl/worksheets/sheet%d.xml", i+1)
		}
		w.sheets = append(w.sheets, rawSheetRef{Name: s.Name, Part: part})
	}

	if w.file("xl/sharedStrings.xml") == nil {
		return nil
	}
	var sst xlsxSST
	if err := w.decode("xl/sharedStrings.xml", &sst); err != nil {
		return err
	}
	w.strings = make([]string, len(sst.Items))
	for i, si := range sst.Items {
		w.strings[i] = si.String()
	}
	return nil
}

func resolvePart(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join("xl", target)
}

func (w *rawWorkbook) file(name string) *zip.File {
	for _, f := range w.zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (w *rawWorkbook) decode(name string, v any) error {
	f := w.file(name)
	if f == nil {
		return fmt.Errorf("missing part %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	blob, err := io.ReadAll(rc)
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(blob, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (w *rawWorkbook) SheetNames() []string {
	out := make([]string, 0, len(w.sheets))
	for _, s := range w.sheets {
		out = append(out, s.Name)
	}
	return out
}

func (w *rawWorkbook) EachRow(sheet string, bounds Bounds, fn func(Row) error) error {
	part := ""
	for _, s := range w.sheets {
		if s.Name == sheet {
			part = s.Part
			break
		}
	}
	if part == "" {
		return fmt.Errorf("sheet %q not found in %s", sheet, w.path)
	}

	var ws xlsxWorksheet
	if err := w.decode(part, &ws); err != nil {
		return err
	}

	lastRow := 0
	for _, xr := range ws.Rows {
		rowNumber := xr.R
		if rowNumber <= 0 {
			rowNumber = lastRow + 1
		}
		lastRow = rowNumber
		if bounds.past(rowNumber) {
			break
		}
		if !bounds.contains(rowNumber) {
			continue
		}

		row := Row{Number: rowNumber, Cells: map[int]Cell{}}
		lastCol := 0
		for _, xc := range xr.Cells {
			col := columnIndex(xc.Ref)
			if col <= 0 {
				col = lastCol + 1
			}
			lastCol = col
			if bounds.MaxCol > 0 && col > bounds.MaxCol {
				continue
			}
			if cell := w.cellValue(xc.Type, xc.V, xc.Inline); cell.Present {
				row.Cells[col] = cell
			}
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}

func (w *rawWorkbook) cellValue(typ string, v *string, inline *xlsxText) Cell {
	switch typ {
	case "inlineStr":
		if inline == nil {
			return Absent
		}
		return Text(inline.String())
	case "s":
		if v == nil {
			return Absent
		}
		idx, err := strconv.Atoi(strings.TrimSpace(*v))
		if err != nil || idx < 0 || idx >= len(w.strings) {
			return Absent
		}
		return Text(w.strings[idx])
	default:
		if v == nil {
			return Absent
		}
		return Text(*v)
	}
}

func (w *rawWorkbook) Close() error {
	return w.zr.Close()
}

// columnIndex returns the 1-based column of a cell reference ("AD12"), or 0
// when ref is not a valid reference.
func columnIndex(ref string) int {
	name, _, err := excelize.SplitCellName(ref)
	if err != nil {
		return 0
	}
	col, err := excelize.ColumnNameToNumber(name)
	if err != nil {
		return 0
	}
	return col
}
