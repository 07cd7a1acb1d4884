package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// EntityColumn is the categorical column identifying the country, region or
// aggregate a row belongs to. Every grapher CSV carries it.
const EntityColumn = "Entity"

// Table is an in-memory tabular dataset parsed from CSV. Column order and row
// order follow the source exactly; the table is read-only after parsing.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// ParseError reports input that cannot be parsed as delimited tabular text.
type ParseError struct {
	Line int // 1-based line of the offending record, 0 if unknown
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("csv parse error on line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("csv parse error: %s", e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(err error) *ParseError {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Msg: csvErr.Err.Error(), Err: err}
	}
	return &ParseError{Msg: err.Error(), Err: err}
}

// ParseCSV reads delimited text into a Table. The first record is the header;
// every following record must have the same number of fields, so a body with
// mismatched column counts fails instead of producing a partial table.
func ParseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ParseError{Msg: "empty input, expected a header row"}
	}
	if err != nil {
		return nil, newParseError(err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newParseError(err)
		}
		rows = append(rows, record)
	}

	return &Table{columns: header, index: index, rows: rows}, nil
}

// Columns returns the column names in header order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// NumRows returns the number of data rows (the header is not counted).
func (t *Table) NumRows() int {
	return len(t.rows)
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Value returns the cell at the given row for the named column.
func (t *Table) Value(row int, column string) (string, error) {
	if row < 0 || row >= len(t.rows) {
		return "", fmt.Errorf("row index %d out of range [0,%d)", row, len(t.rows))
	}
	idx, ok := t.index[column]
	if !ok {
		return "", &UnknownColumnError{Column: column}
	}
	return t.rows[row][idx], nil
}

// Int returns the cell at the given row for the named column as an integer.
func (t *Table) Int(row int, column string) (int, error) {
	raw, err := t.Value(row, column)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("column %q row %d: %q is not an integer: %w", column, row, raw, err)
	}
	return v, nil
}

// Float returns the cell at the given row for the named column as a float64.
func (t *Table) Float(row int, column string) (float64, error) {
	raw, err := t.Value(row, column)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q row %d: %q is not a number: %w", column, row, raw, err)
	}
	return v, nil
}
