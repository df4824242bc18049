package parking

import (
	"testing"
	"time"
)

var testEntry = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func TestNewTicket(t *testing.T) {
	ticket := NewTicket(1001, "KA01HH1234", Car, 1, 3, testEntry)

	if ticket.ID != 1001 {
		t.Errorf("Expected ticket id 1001, got %d", ticket.ID)
	}

	if !ticket.Active {
		t.Error("Expected new ticket to be active")
	}

	if ticket.Floor != 1 || ticket.SlotID != 3 {
		t.Errorf("Expected slot (1, 3), got (%d, %d)", ticket.Floor, ticket.SlotID)
	}
}

func TestTicketClose(t *testing.T) {
	ticket := NewTicket(1001, "KA01HH1234", Car, 1, 1, testEntry)

	exit := testEntry.Add(90 * time.Minute)
	ticket.Close(exit)

	if ticket.Active {
		t.Error("Expected closed ticket to be inactive")
	}

	if !ticket.ExitTime.Equal(exit) {
		t.Error("Expected exit time to be recorded")
	}

	// Closing again keeps the first exit time.
	ticket.Close(exit.Add(time.Hour))
	if !ticket.ExitTime.Equal(exit) {
		t.Error("Expected second close to be a no-op")
	}
}

func TestTicketDuration(t *testing.T) {
	ticket := NewTicket(1001, "KA01HH1234", Car, 1, 1, testEntry)

	now := testEntry.Add(30 * time.Minute)
	if got := ticket.Duration(now); got != 30*time.Minute {
		t.Errorf("Expected running duration 30m, got %s", got)
	}

	ticket.Close(testEntry.Add(2 * time.Hour))
	if got := ticket.Duration(testEntry.Add(10 * time.Hour)); got != 2*time.Hour {
		t.Errorf("Expected closed duration 2h, got %s", got)
	}
}

func TestTicketBillableHours(t *testing.T) {
	cases := []struct {
		elapsed time.Duration
		want    float64
	}{
		{10 * time.Second, 1},
		{59 * time.Minute, 1},
		{60 * time.Minute, 1},
		{60*time.Minute + time.Second, 2},
		{150 * time.Minute, 3},
	}

	for _, tc := range cases {
		ticket := NewTicket(1001, "KA01HH1234", Car, 1, 1, testEntry)
		ticket.Close(testEntry.Add(tc.elapsed))
		if got := ticket.BillableHours(testEntry.Add(tc.elapsed)); got != tc.want {
			t.Errorf("Expected %v billable hours for %s, got %v", tc.want, tc.elapsed, got)
		}
	}
}

func TestTicketFormattedEntryTime(t *testing.T) {
	ticket := NewTicket(1001, "KA01HH1234", Car, 1, 1, testEntry)

	if got := ticket.FormattedEntryTime(); got != "2024-05-01 08:00:00" {
		t.Errorf("Unexpected entry time format: %s", got)
	}
}
