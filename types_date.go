package finassist

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the ISO-8601 day format used everywhere on the wire.
const DateFormat = "2006-01-02"

// Date is a day-granularity date, the resolution of journal entries.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date in local time.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date{y, m, d}
}

// ParseDate reads an ISO-8601 day string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	y, m, d := t.Date()
	return Date{y, m, d}, nil
}

func (d Date) time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }
func (d Date) IsZero() bool      { return d.y == 0 && d.m == 0 && d.d == 0 }
func (d Date) String() string    { return d.time().Format(DateFormat) }

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool { return d.time().Before(o.time()) }

// Compare orders two dates chronologically.
func (d Date) Compare(o Date) int { return d.time().Compare(o.time()) }

// MarshalJSON emits the ISO day string, or null for the zero Date: a zero
// value would otherwise normalize through time.Date into a nonsense year.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
