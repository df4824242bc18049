package parking

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrNoSlotAvailable reports that no floor has a compatible free slot.
	ErrNoSlotAvailable = errors.New("no slots available")
	// ErrTicketNotFound reports an unpark for a registration with no active ticket.
	ErrTicketNotFound = errors.New("vehicle not found")
	// ErrAlreadyParked rejects a second park for a registration that still
	// holds an active ticket.
	ErrAlreadyParked = errors.New("vehicle already parked")
)

const firstTicketID = 1000 // counter is pre-incremented, so the first issued id is 1001

// Facility owns all floors, the active-ticket index, and the revenue total.
// At most one active ticket exists per registration at any time.
type Facility struct {
	floors        []*Floor
	activeTickets map[string]*Ticket
	ticketCounter int
	totalRevenue  float64
	now           func() time.Time
	log           zerolog.Logger
}

func NewFacility(numFloors, carsPerFloor, bikesPerFloor int, log zerolog.Logger) *Facility {
	floors := make([]*Floor, 0, numFloors)
	for i := 1; i <= numFloors; i++ {
		floors = append(floors, NewFloor(i, carsPerFloor, bikesPerFloor))
	}
	return &Facility{
		floors:        floors,
		activeTickets: make(map[string]*Ticket),
		ticketCounter: firstTicketID,
		now:           time.Now,
		log:           log,
	}
}

// WithClock overrides the facility's time source.
func (f *Facility) WithClock(now func() time.Time) *Facility {
	f.now = now
	return f
}

// Park admits a vehicle into the first compatible free slot, scanning floors
// in order: lowest floor number wins, then lowest slot id within the floor.
// It returns the minted ticket.
func (f *Facility) Park(category VehicleCategory, registration string) (*Ticket, error) {
	if _, exists := f.activeTickets[registration]; exists {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyParked, registration)
	}

	vehicle := NewVehicle(registration, category)
	entry := f.now()

	for _, floor := range f.floors {
		slot := floor.FindAvailableSlot(category)
		if slot == nil {
			continue
		}
		if err := floor.AssignVehicle(slot.ID, vehicle, entry); err != nil {
			continue
		}

		f.ticketCounter++
		ticket := NewTicket(f.ticketCounter, registration, category, floor.Number, slot.ID, entry)
		f.activeTickets[registration] = ticket

		f.log.Info().
			Int("ticket_id", ticket.ID).
			Str("registration", registration).
			Str("category", category.String()).
			Int("floor", floor.Number).
			Int("slot", slot.ID).
			Msg("vehicle parked")
		return ticket, nil
	}

	f.log.Info().
		Str("registration", registration).
		Str("category", category.String()).
		Msg("no compatible slot available")
	return nil, ErrNoSlotAvailable
}

// Unpark closes the active ticket for the registration, bills the session,
// and frees the slot. The charge is ceil-hours times the category's own
// hourly rate, capped at DailyMax.
func (f *Facility) Unpark(registration string) (float64, error) {
	ticket, ok := f.activeTickets[registration]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrTicketNotFound, registration)
	}

	exit := f.now()
	ticket.Close(exit)

	hours := ticket.BillableHours(exit)
	charge := hours * ticket.Category.HourlyRate()
	if charge > DailyMax {
		charge = DailyMax
	}
	f.totalRevenue += charge

	if _, err := f.floors[ticket.Floor-1].ReleaseSlot(ticket.SlotID); err != nil {
		// The ticket always names an occupied slot; a failure here means the
		// index and the floors disagree.
		f.log.Error().
			Err(err).
			Int("ticket_id", ticket.ID).
			Int("floor", ticket.Floor).
			Int("slot", ticket.SlotID).
			Msg("ticket referenced a slot that could not be released")
	}
	delete(f.activeTickets, registration)

	f.log.Info().
		Int("ticket_id", ticket.ID).
		Str("registration", registration).
		Float64("hours", hours).
		Float64("charge", charge).
		Msg("vehicle unparked")
	return charge, nil
}

// FacilityStatus summarizes occupancy across all floors.
type FacilityStatus struct {
	TotalSlots int
	Occupied   int
	Available  int
}

// Status sums slot totals across floors. It has no error cases.
func (f *Facility) Status() FacilityStatus {
	var total, occupied int
	for _, floor := range f.floors {
		total += floor.TotalCount()
		occupied += floor.OccupiedCount()
	}
	return FacilityStatus{
		TotalSlots: total,
		Occupied:   occupied,
		Available:  total - occupied,
	}
}

// FindTicket returns the active ticket for a registration, if any.
func (f *Facility) FindTicket(registration string) (*Ticket, bool) {
	ticket, ok := f.activeTickets[registration]
	return ticket, ok
}

// Revenue is the running total of all collected charges.
func (f *Facility) Revenue() float64 {
	return f.totalRevenue
}

// Now exposes the facility clock so wrappers report durations consistently.
func (f *Facility) Now() time.Time {
	return f.now()
}
