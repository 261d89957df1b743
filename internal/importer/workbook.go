package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellKind tags a cell value so row processors never re-interpret raw
// strings.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is a tagged spreadsheet value: empty, text, or numeric.
type Cell struct {
	Kind CellKind
	text string
	num  float64
}

func EmptyCell() Cell { return Cell{Kind: CellEmpty} }

func TextCell(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return EmptyCell()
	}
	return Cell{Kind: CellText, text: s}
}

func NumberCell(v float64) Cell { return Cell{Kind: CellNumber, num: v} }

// parseCell converts a raw string cell, tagging numerics eagerly.
func parseCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return EmptyCell()
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return NumberCell(v)
	}
	return Cell{Kind: CellText, text: raw}
}

// Text returns the trimmed string form of the cell ("" for empty).
func (c Cell) Text() string {
	switch c.Kind {
	case CellText:
		return strings.TrimSpace(c.text)
	case CellNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Number returns the numeric value and whether the cell holds one.
func (c Cell) Number() (float64, bool) {
	if c.Kind == CellNumber {
		return c.num, true
	}
	return 0, false
}

func (c Cell) IsEmpty() bool { return c.Kind == CellEmpty }

// Sheet is one workbook tab as a dense 2-D grid.
type Sheet struct {
	Name string
	Rows [][]Cell
}

// cellAt tolerates ragged rows; anything out of range is empty.
func (s Sheet) cellAt(row, col int) Cell {
	if row < 0 || row >= len(s.Rows) {
		return EmptyCell()
	}
	r := s.Rows[row]
	if col < 0 || col >= len(r) {
		return EmptyCell()
	}
	return r[col]
}

// Workbook preserves sheet order; each sheet becomes one category unless its
// name matches an auxiliary sheet keyword.
type Workbook struct {
	Sheets []Sheet
}

// LoadWorkbook parses an XLSX stream into the tagged cell grid.
func LoadWorkbook(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		rawRows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		rows := make([][]Cell, len(rawRows))
		for i, rawRow := range rawRows {
			row := make([]Cell, len(rawRow))
			for j, raw := range rawRow {
				row[j] = parseCell(raw)
			}
			rows[i] = row
		}
		wb.Sheets = append(wb.Sheets, Sheet{Name: name, Rows: rows})
	}
	return wb, nil
}
