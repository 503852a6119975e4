package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ID identifies a catalog resource.
//
// The API may emit ids either as JSON numbers or as numeric strings
// (json-server does both depending on version), so ID accepts both forms.
// It always encodes as a number.
type ID int

// UnmarshalJSON accepts 7 and "7".
func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*id = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = str
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", string(data), err)
	}
	*id = ID(n)
	return nil
}

// String returns the decimal form used in routes and query strings.
func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// ParseID parses a route parameter into an ID.
func ParseID(s string) (ID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return ID(n), nil
}

// Timestamp is an ISO 8601 instant as exchanged with the API.
//
// Decoding accepts RFC 3339 with or without fractional seconds and treats ""
// and null as the zero time. Encoding produces the millisecond UTC form
// "2006-01-02T15:04:05.000Z".
type Timestamp struct {
	time.Time
}

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// NewTimestamp truncates t to milliseconds, the precision the API stores.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

// UnmarshalJSON parses the API's timestamp formats.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		ts.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		ts.Time = time.Time{}
		return nil
	}

	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			ts.Time = t
			return nil
		}
	}

	return fmt.Errorf("unable to parse timestamp: %s", s)
}

// MarshalJSON encodes the timestamp in UTC with millisecond precision.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(ts.UTC().Format(timestampLayout))
}
