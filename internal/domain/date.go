package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the ISO-8601 calendar date layout used on the wire and in logs.
const DateFormat = "2006-01-02"

// Date is a calendar day with no time-of-day or zone. Every constructor
// normalizes to the UTC day, so two Dates for the same day always compare equal
// regardless of where the input time came from.
type Date struct {
	y int
	m time.Month
	d int
}

func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	y, m, d := t.Date()
	return Date{y, m, d}
}

// DateOf returns the UTC day containing t.
func DateOf(t time.Time) Date {
	return NewDate(t.UTC().Date())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", s, DateFormat, err)
	}
	return DateOf(t), nil
}

// MustDate is ParseDate for literals; it panics on malformed input.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) IsZero() bool { return d == Date{} }

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

func (d Date) AddDays(n int) Date { return NewDate(d.y, d.m, d.d+n) }

// AddMonths moves by whole months, clamping to the last day of the target
// month (Jan 31 + 1 month is Feb 28/29, not Mar 3).
func (d Date) AddMonths(n int) Date {
	first := NewDate(d.y, d.m+time.Month(n), 1)
	last := NewDate(first.y, first.m+1, 0).d
	day := d.d
	if day > last {
		day = last
	}
	return NewDate(first.y, first.m, day)
}

func (d Date) Before(x Date) bool { return d.Time().Before(x.Time()) }
func (d Date) After(x Date) bool  { return d.Time().After(x.Time()) }
func (d Date) Equal(x Date) bool  { return d == x }

// DaysSince returns the number of days from x to d (negative if d is earlier).
func (d Date) DaysSince(x Date) int {
	return int(d.Time().Sub(x.Time()).Hours() / 24)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateFormat)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var _ json.Marshaler = Date{}
var _ json.Unmarshaler = (*Date)(nil)

// Clock is the engine's source of "now".
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }

func Today(c Clock) Date {
	return DateOf(c.Now())
}
