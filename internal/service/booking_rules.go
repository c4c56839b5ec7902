package service

import (
	"errors"
	"time"

	"patient-booking-api/internal/domain/entity"
)

var (
	// ErrPastDate is returned when a booking's start time is before now
	ErrPastDate = errors.New("cannot book past date")

	// ErrDoctorBusy is returned when a booking overlaps one of the doctor's
	// existing orders
	ErrDoctorBusy = errors.New("doctor is busy")

	// ErrInvalidInterval is returned when a booking's end does not follow its start
	ErrInvalidInterval = errors.New("end time must be after start time")
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) conflict. Boundaries are exclusive: an interval starting
// exactly when another ends does NOT conflict, so back-to-back bookings are
// allowed. Identical intervals always conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	if aStart.Equal(bStart) && aEnd.Equal(bEnd) {
		return true
	}
	if strictlyInside(aStart, bStart, bEnd) || strictlyInside(aEnd, bStart, bEnd) {
		return true
	}
	if strictlyInside(bStart, aStart, aEnd) || strictlyInside(bEnd, aStart, aEnd) {
		return true
	}
	// one interval strictly contains the other
	if aStart.Before(bStart) && aEnd.After(bEnd) {
		return true
	}
	if bStart.Before(aStart) && bEnd.After(aEnd) {
		return true
	}
	return false
}

func strictlyInside(t, start, end time.Time) bool {
	return t.After(start) && t.Before(end)
}

// ValidateNewBooking decides whether a candidate order may be created given
// the doctor's existing orders. Pure predicate, no side effects.
func ValidateNewBooking(candidate *entity.Order, existing []entity.Order, now time.Time) error {
	if !candidate.EndTime.After(candidate.StartTime) {
		return ErrInvalidInterval
	}
	if candidate.StartTime.Before(now) {
		return ErrPastDate
	}
	for i := range existing {
		if Overlaps(candidate.StartTime, candidate.EndTime, existing[i].StartTime, existing[i].EndTime) {
			return ErrDoctorBusy
		}
	}
	return nil
}

// NextAppointment returns the order with the smallest start time strictly
// after the reference time, or nil when none exists. Orders sharing a start
// time are tie-broken by smallest ID so the result is deterministic.
func NextAppointment(orders []entity.Order, after time.Time) *entity.Order {
	var next *entity.Order
	for i := range orders {
		o := &orders[i]
		if !o.StartTime.After(after) {
			continue
		}
		if next == nil || o.StartTime.Before(next.StartTime) || sameStartLowerID(o, next) {
			next = o
		}
	}
	return next
}

// LatestAppointment returns the order with the maximum start time, or nil for
// an empty list. No sentinel seed: the first order is the initial candidate.
func LatestAppointment(orders []entity.Order) *entity.Order {
	var latest *entity.Order
	for i := range orders {
		o := &orders[i]
		if latest == nil || o.StartTime.After(latest.StartTime) || sameStartLowerID(o, latest) {
			latest = o
		}
	}
	return latest
}

func sameStartLowerID(a, b *entity.Order) bool {
	return a.StartTime.Equal(b.StartTime) && a.ID.String() < b.ID.String()
}
