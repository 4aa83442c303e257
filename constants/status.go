package constants

// Room day status
const (
	RoomStatusEmpty    = "empty"
	RoomStatusCheckIn  = "check-in"
	RoomStatusOccupied = "occupied"
	RoomStatusDirty    = "dirty"
)

// Payment methods
const (
	PaymentMethodCredit   = "credit"
	PaymentMethodCash     = "cash"
	PaymentMethodHapoalim = "hapoalim"
	PaymentMethodMizrahi  = "mizrahi"
)

// Locations
const (
	LocationAirport    = "airport"
	LocationRothschild = "rothschild"
)

// Cell edit fields
const (
	FieldGuestName     = "guestName"
	FieldStatus        = "status"
	FieldOccupiedUntil = "occupiedUntil"
)

const (
	// DefaultVatRate is the single VAT rate applied to non-tourist stays.
	DefaultVatRate = 0.18

	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"

	BoardDaysBefore = 30
	BoardDaysAfter  = 30
	NextDaysCount   = 7

	// MaxPageSize caps the limit of paginated lists.
	MaxPageSize = 100
	// MaxStayDays caps how far one board edit may fill or clear.
	MaxStayDays = 366

	CurrencySymbol = "₪"
)

// Storage keys, shared by the file and redis snapshot stores.
const (
	RoomsStorageKey    = "rental-manager-data"
	BookingsStorageKey = "bookings"
)

// Broadcast event types
const (
	EventBoardUpdated    = "board.updated"
	EventBookingsUpdated = "bookings.updated"
	EventDayRollover     = "day.rollover"
)
