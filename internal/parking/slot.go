package parking

import (
	"fmt"
	"time"
)

// SlotStatus tracks the lifecycle of a parking slot. Only Free and Occupied
// have transition rules; Reserved and Maintenance are declared for future
// workflows and never entered.
type SlotStatus int

const (
	Free SlotStatus = iota
	Occupied
	Reserved
	Maintenance
)

func (s SlotStatus) String() string {
	switch s {
	case Free:
		return "Free"
	case Occupied:
		return "Occupied"
	case Reserved:
		return "Reserved"
	case Maintenance:
		return "Maintenance"
	}
	return "Unknown"
}

// Slot is a single parking space. IDs are 1-based and unique only within a
// floor; (Floor, ID) is the real key.
type Slot struct {
	ID            int
	Floor         int
	AllowedType   VehicleCategory
	Status        SlotStatus
	Vehicle       *Vehicle
	OccupiedSince time.Time
}

func NewSlot(id, floor int, allowed VehicleCategory) *Slot {
	return &Slot{
		ID:          id,
		Floor:       floor,
		AllowedType: allowed,
		Status:      Free,
	}
}

// IsCompatible reports whether the slot is free and can hold a vehicle of
// the given category.
func (s *Slot) IsCompatible(category VehicleCategory) bool {
	return s.Status == Free && s.AllowedType == category.SlotCategory()
}

// Assign places the vehicle into the slot, moving Free to Occupied.
func (s *Slot) Assign(vehicle *Vehicle, at time.Time) error {
	if !s.IsCompatible(vehicle.Category) {
		return fmt.Errorf("slot %d on floor %d cannot take a %s", s.ID, s.Floor, vehicle.Category)
	}
	s.Vehicle = vehicle
	s.Status = Occupied
	s.OccupiedSince = at
	return nil
}

// Release removes and returns the held vehicle, moving Occupied to Free.
// Releasing an unoccupied slot is an error; callers check occupancy first.
func (s *Slot) Release() (*Vehicle, error) {
	if s.Status != Occupied {
		return nil, fmt.Errorf("slot %d on floor %d is not occupied", s.ID, s.Floor)
	}
	vehicle := s.Vehicle
	s.Vehicle = nil
	s.Status = Free
	s.OccupiedSince = time.Time{}
	return vehicle, nil
}
