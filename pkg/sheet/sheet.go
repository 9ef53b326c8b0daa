// Package sheet reads tabular bird data from spreadsheets. The first row is
// the header; columns are addressed by exact header name.
package sheet

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/agentstation/birdmap/pkg/birds"
	"github.com/agentstation/birdmap/pkg/errors"
)

// Table is one worksheet held in memory.
type Table struct {
	Source  string
	Sheet   string
	Headers []string
	Rows    [][]string
}

type options struct {
	sheet string
}

// Option configures Open.
type Option func(*options)

// WithSheet selects a worksheet by name instead of the first one.
func WithSheet(name string) Option {
	return func(o *options) {
		o.sheet = name
	}
}

// Open reads a .xlsx/.xlsm workbook or a .csv file.
func Open(path string, opts ...Option) (*Table, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return openWorkbook(path, o)
	case ".csv":
		return openCSV(path)
	default:
		return nil, errors.NewValidationError("path", path, "unsupported spreadsheet type, want .xlsx or .csv")
	}
}

func openWorkbook(path string, o *options) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	defer func() { _ = f.Close() }()

	name := o.sheet
	if name == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, errors.NewParseError("xlsx", path, "workbook has no sheets", nil)
		}
		name = list[0]
	} else if idx, err := f.GetSheetIndex(name); err != nil || idx < 0 {
		return nil, errors.NewNotFoundError("sheet", name)
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	return fromRows(path, name, rows), nil
}

func openCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return fromRows(path, filepath.Base(path), rows), nil
}

func fromRows(source, sheetName string, rows [][]string) *Table {
	t := &Table{Source: source, Sheet: sheetName}
	if len(rows) == 0 {
		return t
	}
	t.Headers = rows[0]
	t.Rows = rows[1:]
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the header, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	for i, h := range t.Headers {
		if strings.TrimSpace(h) == strings.TrimSpace(name) {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the header exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Value returns the cell at row/column. ok is false for a missing column,
// a short row, an empty cell or a NaN marker.
func (t *Table) Value(row int, column string) (string, bool) {
	col := t.ColumnIndex(column)
	if col < 0 || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	cells := t.Rows[row]
	if col >= len(cells) {
		return "", false
	}
	return cell(cells[col])
}

// Lookup maps the key column to the value column for every row where both
// cells are present. Keys are normalized with birds.Key; a later row wins
// over an earlier one with the same key.
func (t *Table) Lookup(keyColumn, valueColumn string) (map[string]string, error) {
	if !t.HasColumn(keyColumn) {
		return nil, errors.NewNotFoundError("column", keyColumn)
	}
	if !t.HasColumn(valueColumn) {
		return nil, errors.NewNotFoundError("column", valueColumn)
	}

	out := make(map[string]string)
	for i := range t.Rows {
		name, ok := t.Value(i, keyColumn)
		if !ok {
			continue
		}
		value, ok := t.Value(i, valueColumn)
		if !ok {
			continue
		}
		out[birds.Key(name)] = value
	}
	return out, nil
}

// Pair is one name/value row used by previews.
type Pair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Head returns up to n name/value pairs in row order, keeping rows whose
// value is missing so previews show gaps.
func (t *Table) Head(n int, keyColumn, valueColumn string) []Pair {
	var out []Pair
	for i := 0; i < len(t.Rows) && len(out) < n; i++ {
		name, _ := t.Value(i, keyColumn)
		value, _ := t.Value(i, valueColumn)
		out = append(out, Pair{Name: name, Value: value})
	}
	return out
}

func cell(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	if v == "" || strings.EqualFold(v, "nan") {
		return "", false
	}
	return v, true
}
