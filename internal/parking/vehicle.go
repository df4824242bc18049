package parking

// VehicleCategory is the closed set of vehicle kinds the facility admits.
// Rates and labels are total functions of the category; there is no open
// extension point.
type VehicleCategory int

const (
	Car VehicleCategory = iota
	Bike
	ElectricCar
	HandicappedCar
	HandicappedBike
)

const (
	carHourlyRate  = 20.0
	bikeHourlyRate = 10.0

	// DailyMax caps any single session's charge.
	DailyMax = 200.0
)

// HourlyRate returns the per-hour parking rate for a category.
func (c VehicleCategory) HourlyRate() float64 {
	switch c {
	case Car:
		return carHourlyRate
	case Bike:
		return bikeHourlyRate
	case ElectricCar:
		return carHourlyRate * 0.8
	case HandicappedCar:
		return carHourlyRate * 0.5
	case HandicappedBike:
		return bikeHourlyRate * 0.5
	}
	return 0
}

func (c VehicleCategory) String() string {
	switch c {
	case Car:
		return "Car"
	case Bike:
		return "Bike"
	case ElectricCar:
		return "Electric Car"
	case HandicappedCar:
		return "Handicapped Car"
	case HandicappedBike:
		return "Handicapped Bike"
	}
	return "Unknown"
}

// SlotCategory maps a vehicle category onto the slot type that holds it.
// Electric and handicapped cars park in car slots, handicapped bikes in bike
// slots. Rates stay category specific.
func (c VehicleCategory) SlotCategory() VehicleCategory {
	switch c {
	case Car, ElectricCar, HandicappedCar:
		return Car
	case Bike, HandicappedBike:
		return Bike
	}
	return c
}

// ParseCategory resolves a wire-format category name. Unknown names report false.
func ParseCategory(s string) (VehicleCategory, bool) {
	switch s {
	case "car":
		return Car, true
	case "bike":
		return Bike, true
	case "electric_car":
		return ElectricCar, true
	case "handicapped_car":
		return HandicappedCar, true
	case "handicapped_bike":
		return HandicappedBike, true
	}
	return 0, false
}

// APIName is the wire name of a category, the inverse of ParseCategory.
func (c VehicleCategory) APIName() string {
	switch c {
	case Car:
		return "car"
	case Bike:
		return "bike"
	case ElectricCar:
		return "electric_car"
	case HandicappedCar:
		return "handicapped_car"
	case HandicappedBike:
		return "handicapped_bike"
	}
	return "unknown"
}

// Vehicle is an immutable registration and category pair.
type Vehicle struct {
	Registration string
	Category     VehicleCategory
}

func NewVehicle(registration string, category VehicleCategory) *Vehicle {
	return &Vehicle{
		Registration: registration,
		Category:     category,
	}
}
