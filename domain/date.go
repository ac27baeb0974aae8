package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar day in YYYY-MM-DD form. Values that are not valid dates
// are passed to the store untouched so the engine decides whether to accept them.
type Date string

func NewDate(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = NewDate(v)
	case []byte:
		*d = normalizeDate(string(v))
	case string:
		*d = normalizeDate(v)
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	*d = normalizeDate(raw)
	return nil
}

// normalizeDate trims a timestamp ("2000-01-01T00:00:00Z", "2000-01-01 00:00:00")
// down to its day.
func normalizeDate(raw string) Date {
	if len(raw) > len(DateLayout) {
		if _, err := time.Parse(DateLayout, raw[:len(DateLayout)]); err == nil {
			return Date(raw[:len(DateLayout)])
		}
	}
	return Date(raw)
}
