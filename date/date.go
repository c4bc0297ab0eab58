// Package date provides a day granularity Date, as found in brokerage exports.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layouts of a Date.
const (
	ISO = "2006-01-02" // written and read back in JSON
	US  = "1/2/2006"   // month first, as in the "Trade date" column
)

// Date is a calendar day. The zero Date stands for an absent date.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns the Date for year, month and day, normalized like time.Date.
func New(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{y, m, d}
}

// midnight is the start of d in UTC.
func (d Date) midnight() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) Before(x Date) bool { return d.midnight().Before(x.midnight()) }
func (d Date) After(x Date) bool  { return d.midnight().After(x.midnight()) }
func (d Date) Year() int          { return d.y }
func (d Date) Month() time.Month  { return d.m }
func (d Date) Day() int           { return d.d }

// String formats d in ISO layout, or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.midnight().Format(ISO)
}

func parse(layout, name, str string) (Date, error) {
	t, err := time.Parse(layout, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %s: %w", str, name, err)
	}
	return New(t.Date()), nil
}

// Parse parses an ISO date like "2024-01-31".
func Parse(str string) (Date, error) { return parse(ISO, "YYYY-MM-DD", str) }

// ParseUS parses a month first date like "01/31/2024" or "1/31/2024".
func ParseUS(str string) (Date, error) { return parse(US, "MM/DD/YYYY", str) }

func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

// UnmarshalJSON reads an ISO date string. An empty string is the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str == "" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
