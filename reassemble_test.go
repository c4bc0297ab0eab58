package vanguard

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
)

func TestReassemble(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "header only",
			raw:  "  H1\tH2  \n",
			want: "H1\tH2",
		},
		{
			name: "one record",
			raw:  "H\na\nb\nc\nd\n",
			want: "H\na\tb\tc\td",
		},
		{
			name: "two records, lines trimmed",
			raw:  "H\r\n a \r\nb\r\nc\r\nd\r\n\te\nf\ng \nh",
			want: "H\na\tb\tc\td\ne\tf\tg\th",
		},
		{
			name: "blank lines count as fields",
			raw:  "H\na\n\nc\nd\n",
			want: "H\na\t\tc\td",
		},
		{
			name: "incomplete trailing group is dropped",
			raw:  "H\na\nb\nc\nd\ne\nf\n",
			want: "H\na\tb\tc\td",
		},
		{
			name: "single incomplete group is dropped",
			raw:  "H\na\nb\n",
			want: "H",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reassemble(strings.NewReader(tt.raw))
			if err != nil {
				t.Fatalf("Reassemble() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Reassemble() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestReassembleLineCount checks that 1+4k physical lines give 1+k lines.
func TestReassembleLineCount(t *testing.T) {
	for k := 0; k < 6; k++ {
		for extra := 0; extra < RecordPeriod; extra++ {
			var lines []string
			for i := 0; i < 1+RecordPeriod*k+extra; i++ {
				lines = append(lines, fmt.Sprintf("line%d", i))
			}
			got, err := Reassemble(strings.NewReader(strings.Join(lines, "\n")))
			if err != nil {
				t.Fatalf("k=%d extra=%d: Reassemble() error = %v", k, extra, err)
			}
			if n := len(strings.Split(got, "\n")); n != 1+k {
				t.Errorf("k=%d extra=%d: got %d lines, want %d", k, extra, n, 1+k)
			}
		}
	}
}

func TestReassembleEmpty(t *testing.T) {
	_, err := Reassemble(strings.NewReader(""))
	if !errors.Is(err, ErrNoHeader) {
		t.Errorf("Reassemble(\"\") error = %v, want %v", err, ErrNoHeader)
	}
}

func TestReadRawTextMissingFile(t *testing.T) {
	_, err := ReadRawText(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadRawText() error = %v, want fs.ErrNotExist", err)
	}
}
