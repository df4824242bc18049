package parking

import (
	"fmt"
	"time"
)

// Floor is a fixed collection of slots: car slots first, then bike slots,
// ids assigned sequentially from 1.
type Floor struct {
	Number   int
	slots    []*Slot
	occupied int
}

func NewFloor(number, carSlots, bikeSlots int) *Floor {
	slots := make([]*Slot, 0, carSlots+bikeSlots)
	id := 1
	for i := 0; i < carSlots; i++ {
		slots = append(slots, NewSlot(id, number, Car))
		id++
	}
	for i := 0; i < bikeSlots; i++ {
		slots = append(slots, NewSlot(id, number, Bike))
		id++
	}
	return &Floor{
		Number: number,
		slots:  slots,
	}
}

// FindAvailableSlot scans slots in id order and returns the first free slot
// compatible with the category, or nil. Lowest id wins, which keeps
// allocation deterministic.
func (f *Floor) FindAvailableSlot(category VehicleCategory) *Slot {
	for _, slot := range f.slots {
		if slot.IsCompatible(category) {
			return slot
		}
	}
	return nil
}

// AssignVehicle parks the vehicle into the slot with the given id and bumps
// the occupied counter.
func (f *Floor) AssignVehicle(slotID int, vehicle *Vehicle, at time.Time) error {
	for _, slot := range f.slots {
		if slot.ID == slotID {
			if err := slot.Assign(vehicle, at); err != nil {
				return err
			}
			f.occupied++
			return nil
		}
	}
	return fmt.Errorf("no slot %d on floor %d", slotID, f.Number)
}

// ReleaseSlot vacates the occupied slot with the given id and returns the
// vehicle that was parked there.
func (f *Floor) ReleaseSlot(slotID int) (*Vehicle, error) {
	for _, slot := range f.slots {
		if slot.ID == slotID && slot.Status == Occupied {
			vehicle, err := slot.Release()
			if err != nil {
				return nil, err
			}
			f.occupied--
			return vehicle, nil
		}
	}
	return nil, fmt.Errorf("no occupied slot %d on floor %d", slotID, f.Number)
}

func (f *Floor) OccupiedCount() int {
	return f.occupied
}

func (f *Floor) TotalCount() int {
	return len(f.slots)
}
