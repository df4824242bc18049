package parking

import (
	"math"
	"time"
)

// Ticket records one parking session from entry to billed exit. Tickets are
// minted by the facility together with a successful slot assignment and are
// dropped from the active index once billed; no historical ledger is kept.
type Ticket struct {
	ID           int
	Registration string
	Category     VehicleCategory
	Floor        int
	SlotID       int
	EntryTime    time.Time
	ExitTime     time.Time
	Active       bool
}

func NewTicket(id int, registration string, category VehicleCategory, floor, slotID int, entry time.Time) *Ticket {
	return &Ticket{
		ID:           id,
		Registration: registration,
		Category:     category,
		Floor:        floor,
		SlotID:       slotID,
		EntryTime:    entry,
		Active:       true,
	}
}

// Close marks the exit time and deactivates the ticket. Closing twice keeps
// the first exit time.
func (t *Ticket) Close(at time.Time) {
	if !t.Active {
		return
	}
	t.ExitTime = at
	t.Active = false
}

// Duration is the elapsed parking time: entry to now while the ticket is
// active, entry to exit once closed.
func (t *Ticket) Duration(now time.Time) time.Duration {
	end := t.ExitTime
	if t.Active {
		end = now
	}
	return end.Sub(t.EntryTime)
}

// BillableHours rounds the session duration up to whole hours. Any stay,
// however short, bills at least one hour.
func (t *Ticket) BillableHours(now time.Time) float64 {
	hours := math.Ceil(t.Duration(now).Hours())
	if hours < 1 {
		hours = 1
	}
	return hours
}

// FormattedEntryTime renders the entry timestamp for display.
func (t *Ticket) FormattedEntryTime() string {
	return t.EntryTime.Format("2006-01-02 15:04:05")
}
