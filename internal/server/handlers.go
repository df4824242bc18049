package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"parking-facility/internal/parking"
)

// Handler exposes the facility over HTTP. The facility itself is
// single-threaded, so a mutex serializes all operations against it.
type Handler struct {
	facility    *parking.InstrumentedFacility
	serviceName string
	mu          sync.Mutex
}

func NewHandler(facility *parking.InstrumentedFacility, serviceName string) *Handler {
	return &Handler{
		facility:    facility,
		serviceName: serviceName,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": h.serviceName,
		"meta":    extractMeta(r.Context()),
	})
}

func (h *Handler) ParkVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ParkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Registration == "" {
		WriteError(ctx, w, http.StatusBadRequest, "Registration is required")
		return
	}

	category, ok := parking.ParseCategory(req.Category)
	if !ok {
		WriteError(ctx, w, http.StatusBadRequest, "Unknown vehicle category")
		return
	}

	h.mu.Lock()
	ticket, err := h.facility.Park(ctx, category, req.Registration)
	h.mu.Unlock()

	switch {
	case errors.Is(err, parking.ErrAlreadyParked):
		WriteError(ctx, w, http.StatusConflict, "Vehicle already parked")
		return
	case errors.Is(err, parking.ErrNoSlotAvailable):
		WriteError(ctx, w, http.StatusConflict, "No slots available")
		return
	case err != nil:
		WriteError(ctx, w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteSuccess(ctx, w, "Vehicle parked", TicketResponse{
		TicketID:     ticket.ID,
		Registration: ticket.Registration,
		Category:     ticket.Category.APIName(),
		Floor:        ticket.Floor,
		SlotID:       ticket.SlotID,
		EntryTime:    ticket.FormattedEntryTime(),
		HourlyRate:   ticket.Category.HourlyRate(),
	})
}

func (h *Handler) UnparkVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UnparkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Registration == "" {
		WriteError(ctx, w, http.StatusBadRequest, "Registration is required")
		return
	}

	h.mu.Lock()
	charge, err := h.facility.Unpark(ctx, req.Registration)
	h.mu.Unlock()

	if err != nil {
		WriteError(ctx, w, http.StatusNotFound, "Vehicle not found")
		return
	}

	WriteSuccess(ctx, w, "Vehicle unparked", UnparkResponse{
		Registration: req.Registration,
		Charge:       charge,
	})
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.mu.Lock()
	status := h.facility.Status(ctx)
	h.mu.Unlock()

	WriteSuccess(ctx, w, "Status retrieved", StatusResponse{
		TotalSlots: status.TotalSlots,
		Occupied:   status.Occupied,
		Available:  status.Available,
	})
}

func (h *Handler) GetTicket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	registration := chi.URLParam(r, "registration")
	if registration == "" {
		WriteError(ctx, w, http.StatusBadRequest, "Registration is required")
		return
	}

	h.mu.Lock()
	ticket, ok := h.facility.FindTicket(ctx, registration)
	var duration float64
	if ok {
		duration = ticket.Duration(h.facility.Now()).Hours()
	}
	h.mu.Unlock()

	if !ok {
		WriteError(ctx, w, http.StatusNotFound, "Vehicle not found")
		return
	}

	WriteSuccess(ctx, w, "Ticket found", TicketResponse{
		TicketID:     ticket.ID,
		Registration: ticket.Registration,
		Category:     ticket.Category.APIName(),
		Floor:        ticket.Floor,
		SlotID:       ticket.SlotID,
		EntryTime:    ticket.FormattedEntryTime(),
		HourlyRate:   ticket.Category.HourlyRate(),
		DurationHrs:  duration,
	})
}
