package utils

import (
	"fmt"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// DateOnly is a calendar date without a time component, serialized as
// "2006-01-02". Task due dates use it on the wire.
type DateOnly struct {
	time.Time
}

func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{Time: t.Truncate(24 * time.Hour)}
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateOnlyLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s, expected \"%s\"", s, dateOnlyLayout)
	}
	t, err := time.Parse(dateOnlyLayout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("invalid date %s: %w", s, err)
	}
	d.Time = t
	return nil
}
