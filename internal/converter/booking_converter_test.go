package converter

import (
	"testing"
	"time"

	"patient-booking-api/internal/domain/entity"

	"github.com/google/uuid"
)

func TestOrderToResponse(t *testing.T) {
	if got := OrderToResponse(nil); got != nil {
		t.Errorf("OrderToResponse(nil) = %v, want nil", got)
	}

	order := &entity.Order{
		ID:          uuid.New(),
		StartTime:   time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
		PatientID:   1,
		DoctorID:    2,
		SurgeryType: entity.SurgeryTypeDental,
	}

	got := OrderToResponse(order)
	if got.ID != order.ID || got.PatientID != 1 || got.DoctorID != 2 {
		t.Errorf("OrderToResponse() = %+v", got)
	}
	if !got.StartTime.Equal(order.StartTime) || !got.EndTime.Equal(order.EndTime) {
		t.Errorf("interval not preserved: %+v", got)
	}
	if got.SurgeryType != "dental" {
		t.Errorf("surgery type = %q, want dental", got.SurgeryType)
	}
}

func TestOrdersToResponses(t *testing.T) {
	orders := []entity.Order{
		{ID: uuid.New(), PatientID: 1, DoctorID: 2},
		{ID: uuid.New(), PatientID: 3, DoctorID: 4},
	}

	got := OrdersToResponses(orders)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for i := range orders {
		if got[i].ID != orders[i].ID {
			t.Errorf("response %d id = %s, want %s", i, got[i].ID, orders[i].ID)
		}
	}
}
