// Package sheet reads worksheet rows as typed, optional cell values.
package sheet

import "strings"

// Cell is a single cell value. Present is false when the cell is missing or
// carries no retrievable value.
type Cell struct {
	Value   string
	Present bool
}

// Absent is the zero Cell.
var Absent = Cell{}

func Text(v string) Cell {
	return Cell{Value: v, Present: true}
}

// Row holds the cells of one worksheet row keyed by 1-based column index.
type Row struct {
	Number int
	Cells  map[int]Cell
}

func NewRow(number int, values []string, maxCol int) Row {
	row := Row{Number: number, Cells: make(map[int]Cell, len(values))}
	for i, v := range values {
		col := i + 1
		if maxCol > 0 && col > maxCol {
			break
		}
		if v == "" {
			continue
		}
		row.Cells[col] = Text(v)
	}
	return row
}

// Cell returns the cell at the 1-based column, or Absent.
func (r Row) Cell(col int) Cell {
	if r.Cells == nil {
		return Absent
	}
	c, ok := r.Cells[col]
	if !ok {
		return Absent
	}
	return c
}

func (r Row) Empty() bool {
	for _, c := range r.Cells {
		if c.Present && strings.TrimSpace(c.Value) != "" {
			return false
		}
	}
	return true
}

// Bounds limits iteration to the known sheet extent. Zero LastRow or MaxCol
// means unbounded.
type Bounds struct {
	FirstRow int
	LastRow  int
	MaxCol   int
}

func (b Bounds) contains(rowNumber int) bool {
	if rowNumber < b.FirstRow {
		return false
	}
	return b.LastRow <= 0 || rowNumber <= b.LastRow
}

func (b Bounds) past(rowNumber int) bool {
	return b.LastRow > 0 && rowNumber > b.LastRow
}
