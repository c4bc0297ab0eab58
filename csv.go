package vanguard

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// this file contains the converted CSV format: comma separated, one header row
// with the Columns names in order, no index column.

// EncodeTable writes t to w as CSV, header first.
func EncodeTable(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for i, row := range t.Rows {
		if err := cw.Write(row[:]); err != nil {
			return fmt.Errorf("cannot write CSV row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable writes t as CSV to the file at path, replacing any existing file.
func WriteTable(path string, t *Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cannot close CSV file %q: %w", path, cerr)
		}
	}()

	if err := EncodeTable(f, t); err != nil {
		return fmt.Errorf("cannot write CSV file %q: %w", path, err)
	}
	return nil
}

// DecodeTable reads a CSV previously written by [EncodeTable].
// Header validation and defaults are the same as [ParseTable].
func DecodeTable(r io.Reader) (*Table, error) {
	return readTable(csv.NewReader(r))
}

// ReadTable reads the converted CSV file at path, see [DecodeTable].
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open CSV file: %w", err)
	}
	defer f.Close()

	t, err := DecodeTable(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV file %q: %w", path, err)
	}
	return t, nil
}
