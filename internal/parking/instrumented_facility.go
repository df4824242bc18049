package parking

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentedFacility wraps a Facility with OpenTelemetry spans and metrics
// around every operation.
type InstrumentedFacility struct {
	*Facility
	telemetry *TelemetryProvider

	parkOperations    metric.Int64Counter
	unparkOperations  metric.Int64Counter
	occupancyGauge    metric.Int64UpDownCounter
	revenueCollected  metric.Float64Counter
	operationDuration metric.Float64Histogram
	totalSlotsGauge   metric.Int64UpDownCounter
}

func NewInstrumentedFacility(facility *Facility, telemetry *TelemetryProvider) (*InstrumentedFacility, error) {
	meter := telemetry.Meter()

	parkOperations, err := meter.Int64Counter("facility_park_operations_total",
		metric.WithDescription("Total number of park operations"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	unparkOperations, err := meter.Int64Counter("facility_unpark_operations_total",
		metric.WithDescription("Total number of unpark operations"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	occupancyGauge, err := meter.Int64UpDownCounter("facility_occupancy",
		metric.WithDescription("Current number of occupied slots"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	revenueCollected, err := meter.Float64Counter("facility_revenue_collected_total",
		metric.WithDescription("Total revenue collected from parking charges"),
		metric.WithUnit("{dollar}"))
	if err != nil {
		return nil, err
	}

	operationDuration, err := meter.Float64Histogram("facility_operation_duration_seconds",
		metric.WithDescription("Duration of facility operations"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	totalSlotsGauge, err := meter.Int64UpDownCounter("facility_total_slots",
		metric.WithDescription("Total number of parking slots"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	ifc := &InstrumentedFacility{
		Facility:          facility,
		telemetry:         telemetry,
		parkOperations:    parkOperations,
		unparkOperations:  unparkOperations,
		occupancyGauge:    occupancyGauge,
		revenueCollected:  revenueCollected,
		operationDuration: operationDuration,
		totalSlotsGauge:   totalSlotsGauge,
	}

	totalSlotsGauge.Add(context.Background(), int64(facility.Status().TotalSlots))

	return ifc, nil
}

func (ifc *InstrumentedFacility) Park(ctx context.Context, category VehicleCategory, registration string) (*Ticket, error) {
	tracer := ifc.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "facility.park",
		trace.WithAttributes(
			attribute.String("vehicle.registration", registration),
			attribute.String("vehicle.category", category.String()),
		))
	defer span.End()

	start := time.Now()

	span.AddEvent("finding_available_slot")

	ticket, err := ifc.Facility.Park(category, registration)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "park"),
		attribute.String("vehicle_category", category.String()),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
		ifc.parkOperations.Add(ctx, 1, metric.WithAttributes(labels...))
	} else {
		labels = append(labels,
			attribute.String("status", "success"),
			attribute.Int("floor", ticket.Floor),
			attribute.Int("slot", ticket.SlotID),
		)
		span.SetAttributes(
			attribute.Int("ticket.id", ticket.ID),
			attribute.Int("allocated.floor", ticket.Floor),
			attribute.Int("allocated.slot", ticket.SlotID),
		)
		span.AddEvent("slot_allocated", trace.WithAttributes(
			attribute.Int("floor", ticket.Floor),
			attribute.Int("slot", ticket.SlotID),
		))

		ifc.parkOperations.Add(ctx, 1, metric.WithAttributes(labels...))
		ifc.occupancyGauge.Add(ctx, 1)
	}

	ifc.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return ticket, err
}

func (ifc *InstrumentedFacility) Unpark(ctx context.Context, registration string) (float64, error) {
	tracer := ifc.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "facility.unpark",
		trace.WithAttributes(
			attribute.String("vehicle.registration", registration),
		))
	defer span.End()

	start := time.Now()

	span.AddEvent("billing_session")

	charge, err := ifc.Facility.Unpark(registration)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "unpark"),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		labels = append(labels, attribute.String("status", "success"))
		span.SetAttributes(attribute.Float64("charge", charge))
		span.AddEvent("slot_released")
		ifc.occupancyGauge.Add(ctx, -1)
		ifc.revenueCollected.Add(ctx, charge)
	}

	ifc.unparkOperations.Add(ctx, 1, metric.WithAttributes(labels...))
	ifc.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return charge, err
}

func (ifc *InstrumentedFacility) Status(ctx context.Context) FacilityStatus {
	tracer := ifc.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "facility.status")
	defer span.End()

	start := time.Now()

	status := ifc.Facility.Status()

	duration := time.Since(start).Seconds()

	span.SetAttributes(
		attribute.Int("slots.total", status.TotalSlots),
		attribute.Int("slots.occupied", status.Occupied),
		attribute.Int("slots.available", status.Available),
	)

	labels := []attribute.KeyValue{
		attribute.String("operation", "status"),
		attribute.String("status", "success"),
	}

	ifc.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return status
}

func (ifc *InstrumentedFacility) FindTicket(ctx context.Context, registration string) (*Ticket, bool) {
	tracer := ifc.telemetry.Tracer()
	_, span := tracer.Start(ctx, "facility.find_ticket",
		trace.WithAttributes(
			attribute.String("vehicle.registration", registration),
		))
	defer span.End()

	ticket, ok := ifc.Facility.FindTicket(registration)
	if !ok {
		span.AddEvent("ticket_not_found")
		return nil, false
	}

	span.SetAttributes(attribute.Int("ticket.id", ticket.ID))
	return ticket, true
}
