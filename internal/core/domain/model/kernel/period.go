package kernel

import (
	"errors"
	"fmt"
	"time"

	"travelorder/internal/pkg/errs"
	"travelorder/internal/pkg/guard"
)

// ErrPeriodIsNotConstructed is returned when attempting to use an improperly initialized Period.
// Periods must be created using the NewPeriod constructor to ensure validity.
var ErrPeriodIsNotConstructed = errs.NewValueIsRequiredError(
	"period must be created via NewPeriod constructor")

// Period represents a travel window with a start date and an end date.
// Period is an immutable value object; dates are truncated to day precision
// in UTC, and the end date is never before the start date. The zero value of
// Period is invalid and will fail validation - use the constructor to create
// instances.
//
// Example:
//
//	period, err := kernel.NewPeriod(start, end)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Travel from %s to %s", period.Start(), period.End())
type Period struct { //nolint:recvcheck //using for validation
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

// NewPeriod creates a new Period from a start and an end date.
// Both dates are required and are truncated to day precision in UTC.
// Returns an error if either date is the zero time or if the end date
// is before the start date.
func NewPeriod(start time.Time, end time.Time) (Period, error) {
	period := Period{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(period.setStart(start), period.setEnd(end)); err != nil {
		return Period{}, err
	}

	if period.end.Before(period.start) {
		return Period{}, errs.NewValueIsInvalidErrorWithCause("period",
			fmt.Errorf("end date %s is before start date %s",
				period.end.Format(time.DateOnly), period.start.Format(time.DateOnly)))
	}

	return period, nil
}

// Start returns the first day of the travel window.
func (p Period) Start() time.Time {
	return p.start
}

// End returns the last day of the travel window.
func (p Period) End() time.Time {
	return p.end
}

// StartsBefore reports whether the travel window begins strictly before the
// given moment, compared at day precision. Used to detect past-dated travel
// at creation time and stale requests in the expiry job.
func (p Period) StartsBefore(t time.Time) bool {
	return p.start.Before(StartOfDay(t))
}

// IsEqual compares two periods by their start and end dates.
func (p Period) IsEqual(other Period) bool {
	return p.start.Equal(other.start) && p.end.Equal(other.end)
}

// String returns the period formatted as "YYYY-MM-DD..YYYY-MM-DD".
func (p Period) String() string {
	return p.start.Format(time.DateOnly) + ".." + p.end.Format(time.DateOnly)
}

// Validate checks if the Period is properly constructed.
// Returns ErrPeriodIsNotConstructed if the Period is a zero value.
func (p Period) Validate() error {
	return p.guard.Validate(ErrPeriodIsNotConstructed)
}

func (p *Period) setStart(start time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("start date")
	}
	p.start = StartOfDay(start)
	return nil
}

func (p *Period) setEnd(end time.Time) error {
	if end.IsZero() {
		return errs.NewValueIsRequiredError("end date")
	}
	p.end = StartOfDay(end)
	return nil
}

// StartOfDay truncates a moment to its day boundary in UTC.
// Travel windows are compared at day precision everywhere, so any cutoff
// derived from a clock reading must pass through this truncation before it
// is compared against a stored date.
func StartOfDay(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
