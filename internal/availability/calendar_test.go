package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectable(t *testing.T) {
	testCases := []struct {
		name     string
		date     string
		status   Status
		expected bool
	}{
		{"Future available", "2024-06-10", Available, true},
		{"Future pending stays open", "2024-06-10", Pending, true},
		{"Future confirmed stays open", "2024-06-10", Confirmed, true},
		{"Future unavailable", "2024-06-10", Unavailable, false},
		{"Today", "2024-06-05", Available, true},
		{"Past date", "2024-06-04", Available, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Selectable(tc.date, "2024-06-05", tc.status))
		})
	}
}

func TestTileClass(t *testing.T) {
	assert.Equal(t, "pending-date", TileClass(Pending))
	assert.Equal(t, "confirmed-date", TileClass(Confirmed))
	assert.Equal(t, "available-date", TileClass(Available))
	assert.Equal(t, "", TileClass(Unavailable))
}

func TestMonth(t *testing.T) {
	statuses := map[string]Status{
		"2024-02-10": Pending,
		"2024-02-29": Unavailable,
	}

	days := Month(2024, time.February, statuses, "2024-02-05")
	require.Len(t, days, 29)

	assert.Equal(t, Day{Date: "2024-02-01", Status: Available, Selectable: false, TileClass: "available-date"}, days[0])
	assert.Equal(t, Day{Date: "2024-02-10", Status: Pending, Selectable: true, TileClass: "pending-date"}, days[9])
	assert.Equal(t, Day{Date: "2024-02-29", Status: Unavailable, Selectable: false}, days[28])
}

func TestParseMonth(t *testing.T) {
	year, month, err := ParseMonth("2024-06")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.June, month)

	_, _, err = ParseMonth("June 2024")
	assert.Error(t, err)
}
