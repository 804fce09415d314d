package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  string
		expectErr bool
	}{
		{name: "Plain date", raw: "2024-06-01", expected: "2024-06-01"},
		{name: "Surrounding spaces", raw: "  2024-06-01 ", expected: "2024-06-01"},
		{name: "UTC timestamp", raw: "2024-06-01T00:00:00.000Z", expected: "2024-06-01"},
		{name: "Offset timestamp rolls to UTC date", raw: "2024-06-01T20:00:00-06:00", expected: "2024-06-02"},
		{name: "Empty", raw: "", expectErr: true},
		{name: "Garbage", raw: "next friday", expectErr: true},
		{name: "Impossible day", raw: "2024-02-30", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Date(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestHours(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  int
		expectErr bool
	}{
		{name: "Number", raw: "3", expected: 3},
		{name: "Quoted number", raw: `"4"`, expected: 4},
		{name: "Zero", raw: "0", expectErr: true},
		{name: "Negative", raw: "-2", expectErr: true},
		{name: "Fraction truncates", raw: "2.5", expected: 2},
		{name: "Quoted fraction", raw: `"3.9"`, expected: 3},
		{name: "Fraction below one", raw: "0.5", expectErr: true},
		{name: "Not a number", raw: "two", expectErr: true},
		{name: "Infinity", raw: "Inf", expectErr: true},
		{name: "Empty", raw: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Hours(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "band_photo_2024.jpg", FileName("band photo 2024.jpg"))
	assert.Equal(t, "m_sica.mp4", FileName("música.mp4"))
	assert.Equal(t, "upload", FileName("   "))
}
