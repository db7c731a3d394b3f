package kernel

import (
	"errors"
	"fmt"
	"time"

	"orderdesk/internal/pkg/errs"
)

// DateLayout is the ISO calendar date format used at every boundary.
const DateLayout = "2006-01-02"

// ErrDateIsNotConstructed is returned when validating a zero-value Date.
var ErrDateIsNotConstructed = errors.New("Date must be created via ParseDate or DateFromTime")

// Date is a calendar date without a time component, such as an order deadline.
type Date struct {
	t time.Time
}

// ParseDate accepts exactly YYYY-MM-DD and rejects impossible days like 2025-02-30.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || len(s) != len(DateLayout) {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%q is not a YYYY-MM-DD date", s))
	}
	return Date{t: t}, nil
}

// DateFromTime keeps the calendar date of t as seen in t's location.
func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

func (d Date) Validate() error {
	if d.t.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}
