package server

import (
	"context"
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

type Meta struct {
	TraceID   string `json:"trace_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

type ParkRequest struct {
	Category     string `json:"category"`
	Registration string `json:"registration"`
}

type UnparkRequest struct {
	Registration string `json:"registration"`
}

type TicketResponse struct {
	TicketID     int     `json:"ticket_id"`
	Registration string  `json:"registration"`
	Category     string  `json:"category"`
	Floor        int     `json:"floor"`
	SlotID       int     `json:"slot_id"`
	EntryTime    string  `json:"entry_time"`
	HourlyRate   float64 `json:"hourly_rate"`
	DurationHrs  float64 `json:"duration_hours,omitempty"`
}

type UnparkResponse struct {
	Registration string  `json:"registration"`
	Charge       float64 `json:"charge"`
}

type StatusResponse struct {
	TotalSlots int `json:"total_slots"`
	Occupied   int `json:"occupied"`
	Available  int `json:"available"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func extractMeta(ctx context.Context) *Meta {
	meta := &Meta{}

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().HasTraceID() {
		meta.TraceID = span.SpanContext().TraceID().String()
	}

	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		meta.RequestID = reqID
	}

	return meta
}

func WriteSuccess(ctx context.Context, w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    extractMeta(ctx),
	})
}

func WriteError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Response{
		Success: false,
		Error:   message,
		Meta:    extractMeta(ctx),
	})
}
