package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port              string
	Floors            int
	CarSlotsPerFloor  int
	BikeSlotsPerFloor int
	OTelServiceName   string
	OTelEndpoint      string
	Environment       string
}

func Load() *Config {
	return &Config{
		Port:              envOr("APP_PORT", "8080"),
		Floors:            envOrInt("FACILITY_FLOORS", 3),
		CarSlotsPerFloor:  envOrInt("FACILITY_CAR_SLOTS_PER_FLOOR", 10),
		BikeSlotsPerFloor: envOrInt("FACILITY_BIKE_SLOTS_PER_FLOOR", 5),
		OTelServiceName:   envOr("OTEL_SERVICE_NAME", "parking-facility"),
		OTelEndpoint:      envOr("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318"),
		Environment:       envOr("APP_ENV", "development"),
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
