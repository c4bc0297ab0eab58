package vanguard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// RecordPeriod is the number of physical lines holding one transaction in the raw export.
const RecordPeriod = 4

// ErrNoHeader is returned when the raw export does not even contain a header line.
var ErrNoHeader = errors.New("missing header line")

// ReadRawText reads the raw export at path and reassembles it, see [Reassemble].
func ReadRawText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("cannot open raw export: %w", err)
	}
	defer f.Close()

	text, err := Reassemble(f)
	if err != nil {
		return "", fmt.Errorf("cannot read raw export %q: %w", path, err)
	}
	return text, nil
}

// Reassemble rebuilds one line per transaction from the raw export in r.
//
// The first line is the header and is kept as is (trimmed). Following lines
// are trimmed and grouped by [RecordPeriod]: a group in progress is flushed
// when the physical line index modulo RecordPeriod is 1. Each group is joined
// with TABs. A trailing group that is not complete is dropped.
//
// The result is the header and the groups joined by "\n".
func Reassemble(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		header  string
		records []string
		group   []string
		row     int
	)
	for ; scanner.Scan(); row++ {
		line := strings.TrimSpace(scanner.Text())
		if row == 0 {
			header = line
			continue
		}
		if row%RecordPeriod == 1 && len(group) > 0 {
			records = append(records, strings.Join(group, "\t"))
			group = group[:0]
		}
		group = append(group, line)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	if row == 0 {
		return "", ErrNoHeader
	}
	// Only a complete group reaches the flush condition.
	// TODO: confirm with a real export whether an incomplete last group is a truncated record worth reporting.
	if len(group) == RecordPeriod {
		records = append(records, strings.Join(group, "\t"))
	}

	return strings.Join(append([]string{header}, records...), "\n"), nil
}
