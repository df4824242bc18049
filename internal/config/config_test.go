package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	os.Clearenv()
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 3, cfg.Floors)
	assert.Equal(t, 10, cfg.CarSlotsPerFloor)
	assert.Equal(t, 5, cfg.BikeSlotsPerFloor)
	assert.Equal(t, "parking-facility", cfg.OTelServiceName)
	assert.Equal(t, "http://localhost:4318", cfg.OTelEndpoint)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("FACILITY_FLOORS", "5")
	t.Setenv("FACILITY_CAR_SLOTS_PER_FLOOR", "20")
	t.Setenv("FACILITY_BIKE_SLOTS_PER_FLOOR", "8")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5, cfg.Floors)
	assert.Equal(t, 20, cfg.CarSlotsPerFloor)
	assert.Equal(t, 8, cfg.BikeSlotsPerFloor)
	assert.Equal(t, "production", cfg.Environment)
}

func TestInvalidNumericFallsBackToDefault(t *testing.T) {
	t.Setenv("FACILITY_FLOORS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 3, cfg.Floors)
}
