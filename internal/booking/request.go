package booking

import (
	"bytes"
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"artist-booking-backend/internal/parse"
)

// Request is a booking form submission.
type Request struct {
	ArtistID    string `json:"artistId" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Hours       Hours  `json:"hours" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state" validate:"required"`
	ClientName  string `json:"clientName" validate:"required"`
	ClientEmail string `json:"clientEmail" validate:"omitempty,email"`
	Cellphone   string `json:"cellphone" validate:"required"`
	HasWhatsapp bool   `json:"hasWhatsapp"`
	BookingType string `json:"bookingType" validate:"omitempty,oneof=personal business"`
	Venue       string `json:"venue"`
}

// Hours accepts the performance length as a JSON number or a numeric string.
type Hours string

func (h *Hours) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*h = ""
		return nil
	}
	*h = Hours(strings.Trim(string(b), `"`))
	return nil
}

// ValidationError lists the request fields that are missing or malformed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// normalise validates r and returns its date and hours in stored form.
// Every bad field is reported in a single ValidationError.
func (r Request) normalise(v *validator.Validate) (date string, hours int, err error) {
	var fields []string
	if err := v.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return "", 0, err
		}
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
	}

	if r.Date != "" {
		if date, err = parse.Date(r.Date); err != nil {
			fields = append(fields, "date")
		}
	}
	if r.Hours != "" {
		if hours, err = parse.Hours(string(r.Hours)); err != nil {
			fields = append(fields, "hours")
		}
	}

	if len(fields) > 0 {
		sort.Strings(fields)
		return "", 0, &ValidationError{Fields: fields}
	}
	return date, hours, nil
}
