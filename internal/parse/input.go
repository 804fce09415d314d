package parse

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format stored for bookings and blackouts.
const DateLayout = "2006-01-02"

var unsafeNameRe = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Date normalises a calendar date. It accepts a plain YYYY-MM-DD date or an
// RFC 3339 timestamp; timestamps are reduced to their UTC calendar date, the
// way browsers serialise a picked date.
func Date(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("date is empty")
	}

	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.Format(DateLayout), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC().Format(DateLayout), nil
	}
	return "", fmt.Errorf("unable to parse date: %q", raw)
}

// Hours parses the requested performance length. The booking form posts it as
// a string, API clients as a number; both arrive here as text. A fractional
// value is truncated to whole hours.
func Hours(raw string) (int, error) {
	s := strings.Trim(strings.TrimSpace(raw), `"`)
	if s == "" {
		return 0, fmt.Errorf("hours is empty")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
			return 0, fmt.Errorf("unable to parse hours: %q", raw)
		}
		n = int(f)
	}
	if n <= 0 {
		return 0, fmt.Errorf("hours must be positive, got %q", raw)
	}
	return n, nil
}

// FileName replaces every character outside [a-zA-Z0-9.-] with an underscore
// so the name is safe to use as an object key segment.
func FileName(raw string) string {
	name := unsafeNameRe.ReplaceAllString(strings.TrimSpace(raw), "_")
	if name == "" {
		return "upload"
	}
	return name
}
