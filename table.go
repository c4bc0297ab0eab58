package vanguard

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrMissingColumn is returned when a declared column is absent from the header.
	ErrMissingColumn = errors.New("missing column")
	// ErrFieldCount is returned when a row has more fields than the header.
	ErrFieldCount = errors.New("wrong number of fields")
)

// Row holds one value per declared column, indexed by ColumnID.
type Row [numColumns]string

// Get returns the value of column id.
func (r Row) Get(id ColumnID) string { return r[id] }

// Table is the normalized transaction history: rows in file order, columns in [Columns] order.
type Table struct {
	Rows []Row
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// ParseTable parses TAB separated text whose first line is the header.
//
// Header cells are matched to [Columns] by exact name; every declared column
// must be present, others are ignored. Missing or empty cells receive the
// column default, then every value is coerced to the column type.
func ParseTable(text string) (*Table, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = '\t'
	r.LazyQuotes = true
	return readTable(r)
}

// readTable reads a header and rows from r, shared by ParseTable and DecodeTable.
func readTable(r *csv.Reader) (*Table, error) {
	r.FieldsPerRecord = -1 // counts are checked against the header below.

	header, err := r.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header: %w", err)
	}

	index, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	t := &Table{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read row %d: %w", len(t.Rows)+1, err)
		}
		line, _ := r.FieldPos(0)
		if len(record) > len(header) {
			return nil, fmt.Errorf("line %d: %w: expected %d fields, saw %d", line, ErrFieldCount, len(header), len(record))
		}
		row, err := buildRow(record, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// headerIndex maps each declared column to its position in header.
func headerIndex(header []string) ([numColumns]int, error) {
	var index [numColumns]int
	positions := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := positions[h]; !dup {
			positions[h] = i
		}
	}

	var missing []string
	for id, c := range Columns {
		pos, ok := positions[c.Name]
		if !ok {
			missing = append(missing, fmt.Sprintf("%q", c.Name))
			continue
		}
		index[id] = pos
	}
	if len(missing) > 0 {
		return index, fmt.Errorf("%w in header: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return index, nil
}

// buildRow picks the declared columns from record, applying defaults and coercion.
func buildRow(record []string, index [numColumns]int) (Row, error) {
	var row Row
	for id, c := range Columns {
		value := ""
		if pos := index[id]; pos < len(record) {
			value = record[pos]
		}
		if value == "" {
			value = c.Default
		}
		v, err := c.Type.Coerce(value)
		if err != nil {
			return Row{}, fmt.Errorf("column %q: %w", c.Name, err)
		}
		row[id] = v
	}
	return row, nil
}
