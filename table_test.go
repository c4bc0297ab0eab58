package vanguard

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// tsv joins cells with TABs and lines with "\n".
func tsv(lines ...[]string) string {
	var rows []string
	for _, l := range lines {
		rows = append(rows, strings.Join(l, "\t"))
	}
	return strings.Join(rows, "\n")
}

func TestParseTable(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Row
	}{
		{
			name: "no rows",
			text: tsv(Header()),
			want: nil,
		},
		{
			name: "full row",
			text: tsv(Header(),
				[]string{"02/01/2024", "01/31/2024", "VTI", "VANGUARD TOTAL STOCK MARKET ETF", "Buy", "2.5", "200.00", "0.00", "-500.00"}),
			want: []Row{
				{"02/01/2024", "01/31/2024", "VTI", "VANGUARD TOTAL STOCK MARKET ETF", "Buy", "2.5", "200.00", "0.00", "-500.00"},
			},
		},
		{
			name: "empty cells take defaults",
			text: tsv(Header(),
				[]string{"02/01/2024", "01/31/2024", "", "", "Funds Received", "", "", "", "1,000.00"}),
			want: []Row{
				{"02/01/2024", "01/31/2024", "", "", "Funds Received", "0", "0", "0", "1,000.00"},
			},
		},
		{
			name: "short row is padded with defaults",
			text: tsv(Header(),
				[]string{"02/01/2024", "01/31/2024", "VTI", "Name", "Dividend"}),
			want: []Row{
				{"02/01/2024", "01/31/2024", "VTI", "Name", "Dividend", "0", "0", "0", "0"},
			},
		},
		{
			name: "columns matched by name",
			text: tsv(
				[]string{"Amount", "Extra", "Symbol", "Name", "Transaction type", "Quantity", "Price", "Commissions & fees", "Trade date", "Settlement date"},
				[]string{"12.34", "ignored", "VXUS", "Intl", "Dividend", "", "", "", "03/01/2024", "03/04/2024"}),
			want: []Row{
				{"03/04/2024", "03/01/2024", "VXUS", "Intl", "Dividend", "0", "0", "0", "12.34"},
			},
		},
		{
			name: "blank lines are skipped",
			text: tsv(Header(), nil,
				[]string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}, nil),
			want: []Row{
				{"a", "b", "c", "d", "e", "f", "g", "h", "i"},
			},
		},
		{
			name: "lazy quotes",
			text: tsv(Header(),
				[]string{"", "", "BND", `Total "Bond" Market`, "Buy", "1", "2", "3", "4"}),
			want: []Row{
				{"", "", "BND", `Total "Bond" Market`, "Buy", "1", "2", "3", "4"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTable(tt.text)
			if err != nil {
				t.Fatalf("ParseTable() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Rows); diff != "" {
				t.Errorf("ParseTable() rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseTableErrors(t *testing.T) {
	withoutPrice := []string{"Settlement date", "Trade date", "Symbol", "Name", "Transaction type", "Quantity", "Commissions & fees", "Amount"}
	tests := []struct {
		name string
		text string
		want error
	}{
		{
			name: "empty text",
			text: "",
			want: ErrNoHeader,
		},
		{
			name: "header misses a column",
			text: tsv(withoutPrice, []string{"a", "b", "c", "d", "e", "f", "g", "h"}),
			want: ErrMissingColumn,
		},
		{
			name: "header names are exact",
			text: strings.Replace(tsv(Header()), "Symbol", "symbol", 1),
			want: ErrMissingColumn,
		},
		{
			name: "row longer than header",
			text: tsv(Header(), []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}),
			want: ErrFieldCount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable(tt.text)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseTable() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestColumnTypeCoerce(t *testing.T) {
	tests := []struct {
		typ     ColumnType
		in      string
		want    string
		wantErr bool
	}{
		{typ: Text, in: " as is ", want: " as is "},
		{typ: Number, in: "1,234.50", want: "1234.5"},
		{typ: Number, in: "-0.0100", want: "-0.01"},
		{typ: Number, in: " 42 ", want: "42"},
		{typ: Number, in: "abc", wantErr: true},
		{typ: Number, in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := tt.typ.Coerce(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%v.Coerce(%q) error = %v, wantErr %v", tt.typ, tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("%v.Coerce(%q) = %q, want %q", tt.typ, tt.in, got, tt.want)
		}
	}
}

func TestColumnsDeclaration(t *testing.T) {
	want := []string{"Settlement date", "Trade date", "Symbol", "Name", "Transaction type", "Quantity", "Price", "Commissions & fees", "Amount"}
	if diff := cmp.Diff(want, Header()); diff != "" {
		t.Errorf("Header() mismatch (-want +got):\n%s", diff)
	}
	for _, id := range []ColumnID{ColQuantity, ColPrice, ColCommissions, ColAmount} {
		if got := id.Column().Default; got != "0" {
			t.Errorf("%v default = %q, want %q", id, got, "0")
		}
	}
	for _, id := range []ColumnID{ColSettlementDate, ColTradeDate, ColSymbol, ColName, ColTransactionType} {
		if got := id.Column().Default; got != "" {
			t.Errorf("%v default = %q, want empty", id, got)
		}
	}
}
