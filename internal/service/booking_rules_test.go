package service

import (
	"errors"
	"testing"
	"time"

	"patient-booking-api/internal/domain/entity"

	"github.com/google/uuid"
)

var day = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func order(id string, start, end time.Time) entity.Order {
	return entity.Order{
		ID:        uuid.MustParse(id),
		StartTime: start,
		EndTime:   end,
	}
}

const (
	idA = "11111111-1111-1111-1111-111111111111"
	idB = "22222222-2222-2222-2222-222222222222"
	idC = "33333333-3333-3333-3333-333333333333"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"disjoint before", at(8, 0), at(8, 30), at(9, 0), at(9, 30), false},
		{"disjoint after", at(10, 0), at(10, 30), at(9, 0), at(9, 30), false},
		{"back to back, a ends at b start", at(8, 30), at(9, 0), at(9, 0), at(9, 30), false},
		{"back to back, a starts at b end", at(9, 30), at(10, 0), at(9, 0), at(9, 30), false},
		{"identical", at(9, 0), at(9, 30), at(9, 0), at(9, 30), true},
		{"a starts inside b", at(9, 15), at(9, 45), at(9, 0), at(9, 30), true},
		{"a ends inside b", at(8, 45), at(9, 15), at(9, 0), at(9, 30), true},
		{"a contains b", at(8, 0), at(10, 0), at(9, 0), at(9, 30), true},
		{"b contains a", at(9, 10), at(9, 20), at(9, 0), at(9, 30), true},
		{"same start, a shorter", at(9, 0), at(9, 15), at(9, 0), at(9, 30), true},
		{"same start, a longer", at(9, 0), at(10, 0), at(9, 0), at(9, 30), true},
		{"same end, a starts inside b", at(9, 15), at(9, 30), at(9, 0), at(9, 30), true},
		{"same end, a starts before b", at(8, 30), at(9, 30), at(9, 0), at(9, 30), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// the relation is symmetric
			if got := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateNewBooking(t *testing.T) {
	now := at(12, 0)
	existing := []entity.Order{order(idA, at(13, 0), at(13, 30))}

	tests := []struct {
		name      string
		candidate entity.Order
		existing  []entity.Order
		wantErr   error
	}{
		{"ok, no existing orders", order(idB, at(14, 0), at(14, 30)), nil, nil},
		{"ok, no conflict", order(idB, at(15, 0), at(15, 30)), existing, nil},
		{"ok, back to back", order(idB, at(13, 30), at(14, 0)), existing, nil},
		{"past date", order(idB, at(11, 0), at(11, 30)), nil, ErrPastDate},
		{"conflict", order(idB, at(13, 15), at(13, 45)), existing, ErrDoctorBusy},
		{"identical interval", order(idB, at(13, 0), at(13, 30)), existing, ErrDoctorBusy},
		{"end before start", order(idB, at(14, 30), at(14, 0)), nil, ErrInvalidInterval},
		{"zero length", order(idB, at(14, 0), at(14, 0)), nil, ErrInvalidInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNewBooking(&tt.candidate, tt.existing, now)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateNewBooking() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNewBookingDoctorScenario(t *testing.T) {
	// doctor has 09:00-09:30 booked; a same-day 08:00 "now" keeps both
	// candidates in the future
	now := at(8, 0)
	existing := []entity.Order{order(idA, at(9, 0), at(9, 30))}

	boundary := order(idB, at(9, 30), at(10, 0))
	if err := ValidateNewBooking(&boundary, existing, now); err != nil {
		t.Errorf("boundary-touching booking rejected: %v", err)
	}

	conflicting := order(idC, at(9, 15), at(9, 45))
	if err := ValidateNewBooking(&conflicting, existing, now); !errors.Is(err, ErrDoctorBusy) {
		t.Errorf("overlapping booking accepted, err = %v", err)
	}
}

func TestNextAppointment(t *testing.T) {
	noon := at(12, 0)

	t.Run("empty list", func(t *testing.T) {
		if got := NextAppointment(nil, noon); got != nil {
			t.Errorf("NextAppointment() = %v, want nil", got)
		}
	})

	t.Run("all past", func(t *testing.T) {
		orders := []entity.Order{
			order(idA, at(9, 0), at(9, 30)),
			order(idB, at(10, 0), at(10, 30)),
		}
		if got := NextAppointment(orders, noon); got != nil {
			t.Errorf("NextAppointment() = %v, want nil", got)
		}
	})

	t.Run("booking starting exactly at reference is excluded", func(t *testing.T) {
		orders := []entity.Order{order(idA, noon, at(12, 30))}
		if got := NextAppointment(orders, noon); got != nil {
			t.Errorf("NextAppointment() = %v, want nil", got)
		}
	})

	t.Run("past and future mixed", func(t *testing.T) {
		orders := []entity.Order{
			order(idA, at(10, 0), at(10, 30)),
			order(idB, at(14, 0), at(14, 30)),
		}
		got := NextAppointment(orders, noon)
		if got == nil || got.ID != uuid.MustParse(idB) {
			t.Errorf("NextAppointment() = %v, want the 14:00 booking", got)
		}
	})

	t.Run("soonest of several future bookings", func(t *testing.T) {
		orders := []entity.Order{
			order(idA, at(16, 0), at(16, 30)),
			order(idB, at(13, 0), at(13, 30)),
			order(idC, at(14, 0), at(14, 30)),
		}
		got := NextAppointment(orders, noon)
		if got == nil || got.ID != uuid.MustParse(idB) {
			t.Errorf("NextAppointment() = %v, want the 13:00 booking", got)
		}
	})

	t.Run("equal start times tie-break on lowest id", func(t *testing.T) {
		orders := []entity.Order{
			order(idB, at(13, 0), at(13, 30)),
			order(idA, at(13, 0), at(13, 45)),
		}
		got := NextAppointment(orders, noon)
		if got == nil || got.ID != uuid.MustParse(idA) {
			t.Errorf("NextAppointment() = %v, want the lowest-id booking", got)
		}
	})
}

func TestLatestAppointment(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		if got := LatestAppointment(nil); got != nil {
			t.Errorf("LatestAppointment() = %v, want nil", got)
		}
	})

	t.Run("single booking", func(t *testing.T) {
		orders := []entity.Order{order(idA, at(9, 0), at(9, 30))}
		got := LatestAppointment(orders)
		if got == nil || got.ID != uuid.MustParse(idA) {
			t.Errorf("LatestAppointment() = %v, want the only booking", got)
		}
	})

	t.Run("insensitive to input order", func(t *testing.T) {
		a := order(idA, at(9, 0), at(9, 30))
		b := order(idB, at(15, 0), at(15, 30))
		c := order(idC, at(12, 0), at(12, 30))

		permutations := [][]entity.Order{
			{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
		}
		for _, orders := range permutations {
			got := LatestAppointment(orders)
			if got == nil || got.ID != uuid.MustParse(idB) {
				t.Errorf("LatestAppointment(%v) = %v, want the 15:00 booking", orders, got)
			}
		}
	})

	t.Run("past bookings count", func(t *testing.T) {
		// no reference-time filter: a doctor whose only bookings are in the
		// past still has a latest appointment
		orders := []entity.Order{
			order(idA, at(9, 0), at(9, 30)),
			order(idB, at(10, 0), at(10, 30)),
		}
		got := LatestAppointment(orders)
		if got == nil || got.ID != uuid.MustParse(idB) {
			t.Errorf("LatestAppointment() = %v, want the 10:00 booking", got)
		}
	})
}
