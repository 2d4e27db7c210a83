package v1

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
// The zero Date means "not set".
type Date struct {
	time.Time
}

// NewDate returns the UTC calendar date y-m-d.
func NewDate(y int, m time.Month, d int) Date {
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string. RFC3339 timestamps are accepted and truncated.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }
func (d Date) After(o Date) bool  { return d.Time.After(o.Time) }
func (d Date) Equal(o Date) bool  { return d.Time.Equal(o.Time) }

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
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

// Scan accepts TEXT dates (SQLite) as well as DATE columns (Postgres).
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v.UTC())
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value binds dates as YYYY-MM-DD text so the same argument works for TEXT and DATE columns.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Complaint is one row of the complaints table. Records are immutable; the dashboard never writes them.
type Complaint struct {
	ID       string          `json:"id"`
	Date     Date            `json:"date"`
	Country  string          `json:"country"`
	Channel  string          `json:"channel"`
	Category string          `json:"category"`
	Status   string          `json:"status"`
	Value    decimal.Decimal `json:"value"`

	// SLAHours is nil when the store has no resolution time for the record.
	SLAHours *float64 `json:"sla_hours"`
}

// Attribute returns the record's value for a categorical dimension.
func (c Complaint) Attribute(d Dimension) string {
	switch d {
	case DimensionCountry:
		return c.Country
	case DimensionChannel:
		return c.Channel
	case DimensionCategory:
		return c.Category
	case DimensionStatus:
		return c.Status
	default:
		return ""
	}
}

// Dimension names a categorical column that can be filtered and grouped on.
type Dimension string

const (
	DimensionCountry  Dimension = "country"
	DimensionChannel  Dimension = "channel"
	DimensionCategory Dimension = "category"
	DimensionStatus   Dimension = "status"
)

// Dimensions lists every categorical dimension in display order.
var Dimensions = []Dimension{DimensionCountry, DimensionChannel, DimensionCategory, DimensionStatus}

// ParseDimension validates a dimension name. Matching is case-insensitive.
func ParseDimension(s string) (Dimension, error) {
	d := Dimension(strings.ToLower(strings.TrimSpace(s)))
	if d.Valid() {
		return d, nil
	}
	return "", fmt.Errorf("unknown dimension %q (must be country, channel, category or status)", s)
}

func (d Dimension) Valid() bool {
	switch d {
	case DimensionCountry, DimensionChannel, DimensionCategory, DimensionStatus:
		return true
	}
	return false
}

// Label is the human-readable axis title.
func (d Dimension) Label() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}
