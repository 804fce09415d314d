package availability

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"artist-booking-backend/internal/model"
)

func TestAggregate(t *testing.T) {
	testCases := []struct {
		name      string
		blackouts []string
		bookings  []Mark
		expected  map[string]Status
	}{
		{
			name:     "No bookings and no blackouts",
			expected: map[string]Status{},
		},
		{
			name:     "Single pending booking",
			bookings: []Mark{{Date: "2024-06-01", Status: model.BookingPending}},
			expected: map[string]Status{"2024-06-01": Pending},
		},
		{
			name:     "Single confirmed booking",
			bookings: []Mark{{Date: "2024-06-01", Status: model.BookingConfirmed}},
			expected: map[string]Status{"2024-06-01": Confirmed},
		},
		{
			name: "Pending then confirmed on the same date",
			bookings: []Mark{
				{Date: "2024-06-01", Status: model.BookingPending},
				{Date: "2024-06-01", Status: model.BookingConfirmed},
			},
			expected: map[string]Status{"2024-06-01": Unavailable},
		},
		{
			name: "Confirmed then pending on the same date",
			bookings: []Mark{
				{Date: "2024-06-01", Status: model.BookingConfirmed},
				{Date: "2024-06-01", Status: model.BookingPending},
			},
			expected: map[string]Status{"2024-06-01": Unavailable},
		},
		{
			name: "Two pending bookings",
			bookings: []Mark{
				{Date: "2024-06-01", Status: model.BookingPending},
				{Date: "2024-06-01", Status: model.BookingPending},
			},
			expected: map[string]Status{"2024-06-01": Unavailable},
		},
		{
			name:      "Blackout wins over a confirmed booking",
			blackouts: []string{"2024-06-02"},
			bookings:  []Mark{{Date: "2024-06-02", Status: model.BookingConfirmed}},
			expected:  map[string]Status{"2024-06-02": Unavailable},
		},
		{
			name:      "Blackout without bookings",
			blackouts: []string{"2024-06-03"},
			expected:  map[string]Status{"2024-06-03": Unavailable},
		},
		{
			name: "Rejected bookings are ignored",
			bookings: []Mark{
				{Date: "2024-06-04", Status: model.BookingRejected},
				{Date: "2024-06-04", Status: model.BookingPending},
				{Date: "2024-06-05", Status: model.BookingRejected},
			},
			expected: map[string]Status{"2024-06-04": Pending},
		},
		{
			name:      "Independent dates",
			blackouts: []string{"2024-06-10"},
			bookings: []Mark{
				{Date: "2024-06-11", Status: model.BookingPending},
				{Date: "2024-06-12", Status: model.BookingConfirmed},
				{Date: "2024-06-13", Status: model.BookingConfirmed},
				{Date: "2024-06-13", Status: model.BookingConfirmed},
			},
			expected: map[string]Status{
				"2024-06-10": Unavailable,
				"2024-06-11": Pending,
				"2024-06-12": Confirmed,
				"2024-06-13": Unavailable,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Aggregate(tc.blackouts, tc.bookings))
		})
	}
}

func TestAggregate_PermutationInvariance(t *testing.T) {
	statuses := []model.BookingStatus{model.BookingPending, model.BookingConfirmed, model.BookingRejected}
	dates := []string{"2024-07-01", "2024-07-02", "2024-07-03", "2024-07-04", "2024-07-05"}
	blackouts := []string{"2024-07-05"}

	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		n := rng.Intn(12)
		marks := make([]Mark, n)
		for i := range marks {
			marks[i] = Mark{Date: dates[rng.Intn(len(dates))], Status: statuses[rng.Intn(len(statuses))]}
		}

		want := Aggregate(blackouts, marks)
		for shuffle := 0; shuffle < 10; shuffle++ {
			shuffled := append([]Mark(nil), marks...)
			rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
			assert.Equal(t, want, Aggregate(blackouts, shuffled), "round %d shuffle %d", round, shuffle)
		}
	}
}

func TestAggregate_BlackoutIsMonotonic(t *testing.T) {
	marks := []Mark{
		{Date: "2024-08-01", Status: model.BookingConfirmed},
		{Date: "2024-08-01", Status: model.BookingPending},
		{Date: "2024-08-02", Status: model.BookingPending},
	}
	got := Aggregate([]string{"2024-08-01", "2024-08-02"}, marks)
	assert.Equal(t, Unavailable, got["2024-08-01"])
	assert.Equal(t, Unavailable, got["2024-08-02"])
}

func TestEntries(t *testing.T) {
	entries := Entries(map[string]Status{
		"2024-06-03": Pending,
		"2024-06-01": Unavailable,
		"2024-06-02": Confirmed,
	})
	assert.Equal(t, []Entry{
		{Date: "2024-06-01", Status: Unavailable},
		{Date: "2024-06-02", Status: Confirmed},
		{Date: "2024-06-03", Status: Pending},
	}, entries)

	assert.NotNil(t, Entries(nil))
	assert.Empty(t, Entries(nil))
}

func TestLookup(t *testing.T) {
	statuses := map[string]Status{"2024-06-01": Pending}
	assert.Equal(t, Pending, Lookup(statuses, "2024-06-01"))
	assert.Equal(t, Available, Lookup(statuses, "2024-06-02"))
}
