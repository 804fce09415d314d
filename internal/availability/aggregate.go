// Package availability derives the per-date demand status of an artist's
// calendar from blackout dates and active bookings.
package availability

import (
	"sort"

	"artist-booking-backend/internal/model"
)

// Status is the demand classification of one calendar date.
type Status string

const (
	Available   Status = "AVAILABLE"
	Pending     Status = "PENDING"
	Confirmed   Status = "CONFIRMED"
	Unavailable Status = "UNAVAILABLE"
)

// Mark is a booking projected onto the calendar.
type Mark struct {
	Date   string
	Status model.BookingStatus
}

// Entry is one element of the availability response.
type Entry struct {
	Date   string `json:"date"`
	Status Status `json:"status"`
}

type dayState struct {
	count  int
	status Status
}

// Aggregate classifies every date that has a blackout or at least one active
// booking. Dates missing from the result are AVAILABLE.
//
// A blackout is sticky: the date stays UNAVAILABLE whatever its bookings are.
// Two or more active bookings on a date make it UNAVAILABLE. With exactly one,
// the date takes that booking's status. The result depends only on the
// multiset of marks per date, never on their order.
func Aggregate(blackoutDates []string, bookings []Mark) map[string]Status {
	days := make(map[string]dayState, len(blackoutDates)+len(bookings))
	for _, d := range blackoutDates {
		days[d] = dayState{status: Unavailable}
	}

	for _, b := range bookings {
		if !b.Status.Active() {
			continue
		}
		cur, ok := days[b.Date]
		if !ok {
			cur = dayState{status: Available}
		}
		if cur.status == Unavailable {
			continue
		}

		cur.count++
		switch {
		case cur.count >= 2:
			cur.status = Unavailable
		case b.Status == model.BookingConfirmed:
			cur.status = Confirmed
		case b.Status == model.BookingPending && cur.status != Confirmed:
			cur.status = Pending
		}
		days[b.Date] = cur
	}

	result := make(map[string]Status, len(days))
	for date, st := range days {
		result[date] = st.status
	}
	return result
}

// Lookup returns the status of date, treating absent dates as AVAILABLE.
func Lookup(statuses map[string]Status, date string) Status {
	if st, ok := statuses[date]; ok {
		return st
	}
	return Available
}

// Entries flattens statuses into a date-ordered slice.
func Entries(statuses map[string]Status) []Entry {
	entries := make([]Entry, 0, len(statuses))
	for date, st := range statuses {
		entries = append(entries, Entry{Date: date, Status: st})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries
}
