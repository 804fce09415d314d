package availability

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used on the wire and in storage.
const DateLayout = "2006-01-02"

// Day is one materialised calendar tile.
type Day struct {
	Date       string `json:"date"`
	Status     Status `json:"status"`
	Selectable bool   `json:"selectable"`
	TileClass  string `json:"tileClass,omitempty"`
}

// Selectable reports whether a client may pick date on the calendar. Past
// dates and UNAVAILABLE dates are disabled; PENDING and CONFIRMED dates stay
// open for further requests. Dates compare lexically in DateLayout.
func Selectable(date, today string, st Status) bool {
	return date >= today && st != Unavailable
}

// TileClass maps a status to the CSS class of its calendar tile. Unavailable
// tiles are disabled and carry no class.
func TileClass(st Status) string {
	switch st {
	case Pending:
		return "pending-date"
	case Confirmed:
		return "confirmed-date"
	case Unavailable:
		return ""
	default:
		return "available-date"
	}
}

// ParseMonth parses a YYYY-MM month.
func ParseMonth(raw string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: expected YYYY-MM", raw)
	}
	return t.Year(), t.Month(), nil
}

// Month materialises every day of the given month.
func Month(year int, month time.Month, statuses map[string]Status, today string) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := make([]Day, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		date := d.Format(DateLayout)
		st := Lookup(statuses, date)
		days = append(days, Day{
			Date:       date,
			Status:     st,
			Selectable: Selectable(date, today, st),
			TileClass:  TileClass(st),
		})
	}
	return days
}
