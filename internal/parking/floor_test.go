package parking

import (
	"testing"
	"time"
)

func TestNewFloorLayout(t *testing.T) {
	floor := NewFloor(1, 3, 2)

	if floor.TotalCount() != 5 {
		t.Errorf("Expected 5 slots, got %d", floor.TotalCount())
	}

	if floor.OccupiedCount() != 0 {
		t.Errorf("Expected 0 occupied slots, got %d", floor.OccupiedCount())
	}

	// Car slots come first, then bike slots, ids sequential from 1.
	for i, slot := range floor.slots {
		if slot.ID != i+1 {
			t.Errorf("Expected slot id %d, got %d", i+1, slot.ID)
		}
		want := Car
		if i >= 3 {
			want = Bike
		}
		if slot.AllowedType != want {
			t.Errorf("Expected slot %d to allow %s, got %s", slot.ID, want, slot.AllowedType)
		}
	}
}

func TestFloorFindAvailableSlot(t *testing.T) {
	floor := NewFloor(1, 2, 1)

	slot := floor.FindAvailableSlot(Car)
	if slot == nil || slot.ID != 1 {
		t.Fatalf("Expected car slot 1, got %v", slot)
	}

	if err := floor.AssignVehicle(1, NewVehicle("KA01HH1234", Car), time.Now()); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	slot = floor.FindAvailableSlot(Car)
	if slot == nil || slot.ID != 2 {
		t.Fatalf("Expected car slot 2 after slot 1 filled, got %v", slot)
	}

	slot = floor.FindAvailableSlot(Bike)
	if slot == nil || slot.ID != 3 {
		t.Fatalf("Expected bike slot 3, got %v", slot)
	}

	floor.AssignVehicle(2, NewVehicle("KA01HH9999", Car), time.Now())
	if floor.FindAvailableSlot(Car) != nil {
		t.Error("Expected no free car slot")
	}
}

func TestFloorAssignAndRelease(t *testing.T) {
	floor := NewFloor(1, 2, 1)

	if err := floor.AssignVehicle(1, NewVehicle("KA01HH1234", Car), time.Now()); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	if floor.OccupiedCount() != 1 {
		t.Errorf("Expected 1 occupied slot, got %d", floor.OccupiedCount())
	}

	vehicle, err := floor.ReleaseSlot(1)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	if vehicle.Registration != "KA01HH1234" {
		t.Errorf("Expected released vehicle KA01HH1234, got %s", vehicle.Registration)
	}

	if floor.OccupiedCount() != 0 {
		t.Errorf("Expected 0 occupied slots after release, got %d", floor.OccupiedCount())
	}
}

func TestFloorReleaseErrors(t *testing.T) {
	floor := NewFloor(1, 1, 0)

	if _, err := floor.ReleaseSlot(1); err == nil {
		t.Error("Expected error releasing an unoccupied slot")
	}

	if _, err := floor.ReleaseSlot(99); err == nil {
		t.Error("Expected error releasing an unknown slot id")
	}
}

func TestFloorAssignUnknownSlot(t *testing.T) {
	floor := NewFloor(1, 1, 0)

	if err := floor.AssignVehicle(42, NewVehicle("KA01HH1234", Car), time.Now()); err == nil {
		t.Error("Expected error assigning to an unknown slot id")
	}
}
