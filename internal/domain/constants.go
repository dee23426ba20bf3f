package domain

// Default configuration values
const (
	DefaultMinRoomBookingMinutes    = 30
	DefaultMinVehicleBookingMinutes = 30
	DefaultUpcomingWindowHours      = 48
	MaxUpcomingWindowHours          = 240
)

// Business validation constants
const (
	MaxPurposeLength             = 500
	MaxCancellationReasonLength  = 500
	MaxOutOfOrderReasonLength    = 500
	DefaultBookedBy              = "Dispatcher"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DurationPresets пресеты длительности бронирования из диспетчерского UI.
// Используются, когда в запросе вместо явного end передан пресет.
var DurationPresets = map[string]int{
	"1h":       60,
	"2h":       120,
	"3h":       180,
	"half_day": 240,
	"full_day": 480,
	"night":    720,
}

// RollupPeriods допустимые периоды для свертки выручки
var RollupPeriods = map[string]bool{
	"day":   true,
	"week":  true,
	"month": true,
	"year":  true,
}
