package parking

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Shell drives the facility through an interactive numbered menu. Every
// command runs to completion before the next prompt; any menu choice other
// than 1/2/3 exits cleanly.
type Shell struct {
	facility  *InstrumentedFacility
	scanner   *bufio.Scanner
	out       io.Writer
	telemetry *TelemetryProvider
}

func NewShell(facility *InstrumentedFacility, in io.Reader, out io.Writer, telemetry *TelemetryProvider) *Shell {
	return &Shell{
		facility:  facility,
		scanner:   bufio.NewScanner(in),
		out:       out,
		telemetry: telemetry,
	}
}

func (s *Shell) Run(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.run")
	defer span.End()

	fmt.Fprintln(s.out, "Welcome to Smart Parking System")

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fmt.Fprintln(s.out, "\n===== SMART PARKING SYSTEM =====")
		fmt.Fprintln(s.out, "1. Park Vehicle")
		fmt.Fprintln(s.out, "2. Unpark Vehicle")
		fmt.Fprintln(s.out, "3. View Status")
		fmt.Fprintln(s.out, "4. Exit")
		fmt.Fprint(s.out, "Select option: ")

		input, ok := s.readLine()
		if !ok {
			return
		}

		// Non-numeric input exits, like any out-of-range choice.
		choice, err := strconv.Atoi(input)
		if err != nil {
			return
		}

		cmdCtx, cmdSpan := tracer.Start(ctx, "shell.process_command",
			trace.WithAttributes(attribute.Int("command.choice", choice)))

		switch choice {
		case 1:
			s.handlePark(cmdCtx)
		case 2:
			s.handleUnpark(cmdCtx)
		case 3:
			s.handleStatus(cmdCtx)
		default:
			cmdSpan.End()
			return
		}
		cmdSpan.End()
	}
}

func (s *Shell) handlePark(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.park_command")
	defer span.End()

	fmt.Fprintln(s.out, "\n--- PARK VEHICLE ---")
	fmt.Fprint(s.out, "1. Car ($20/hr)\n2. Bike ($10/hr)\nSelect type: ")
	typeInput, ok := s.readLine()
	if !ok {
		return
	}

	// The menu only reaches car and bike; 1 selects car, anything else bike.
	category := Bike
	if typeInput == "1" {
		category = Car
	}

	fmt.Fprint(s.out, "Enter Registration Number: ")
	registration, ok := s.readLine()
	if !ok {
		return
	}

	span.SetAttributes(
		attribute.String("vehicle.registration", registration),
		attribute.String("vehicle.category", category.String()),
	)

	ticket, err := s.facility.Park(ctx, category, registration)
	switch {
	case errors.Is(err, ErrAlreadyParked):
		span.AddEvent("already_parked")
		fmt.Fprintln(s.out, "Vehicle already parked.")
	case err != nil:
		span.AddEvent("parking_failed")
		fmt.Fprintln(s.out, "No slots available.")
	default:
		span.AddEvent("parking_successful", trace.WithAttributes(
			attribute.Int("ticket.id", ticket.ID),
		))
		fmt.Fprintf(s.out, "Vehicle parked. Ticket ID: %d\n", ticket.ID)
	}
}

func (s *Shell) handleUnpark(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.unpark_command")
	defer span.End()

	fmt.Fprintln(s.out, "\n--- UNPARK VEHICLE ---")
	fmt.Fprint(s.out, "Enter Registration Number: ")
	registration, ok := s.readLine()
	if !ok {
		return
	}

	span.SetAttributes(attribute.String("vehicle.registration", registration))

	charge, err := s.facility.Unpark(ctx, registration)
	if err != nil {
		span.AddEvent("vehicle_not_found")
		fmt.Fprintln(s.out, "Vehicle not found.")
		return
	}

	span.AddEvent("vehicle_unparked", trace.WithAttributes(
		attribute.Float64("charge", charge),
	))
	fmt.Fprintf(s.out, "Parking charge: $%.2f\n", charge)
}

func (s *Shell) handleStatus(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.status_command")
	defer span.End()

	status := s.facility.Status(ctx)

	span.SetAttributes(
		attribute.Int("slots.total", status.TotalSlots),
		attribute.Int("slots.occupied", status.Occupied),
	)

	fmt.Fprintf(s.out, "\nTotal Slots: %d\nOccupied: %d\nAvailable: %d\n",
		status.TotalSlots, status.Occupied, status.Available)
}

func (s *Shell) readLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}
