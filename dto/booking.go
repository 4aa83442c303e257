package dto

import "frontdesk/models"

// BookingRequest is the booking form, validated before any price is computed.
type BookingRequest struct {
	BookingNumber    string     `json:"bookingNumber" validate:"omitempty,max=20"`
	GuestName        string     `json:"guestName" validate:"required,max=120"`
	Location         string     `json:"location"`
	RoomNumber       FlexString `json:"roomNumber" validate:"required"`
	StartDate        FlexDate   `json:"startDate"`
	EndDate          FlexDate   `json:"endDate"`
	PricePerNight    float64    `json:"pricePerNight" validate:"gte=0"`
	AdditionalAmount float64    `json:"additionalAmount" validate:"gte=0"`
	PaymentMethod    string     `json:"paymentMethod" validate:"required,oneof=credit cash hapoalim mizrahi"`
	IsPaid           bool       `json:"isPaid"`
	Notes            string     `json:"notes" validate:"max=2000"`
	IsTourist        bool       `json:"isTourist"`
}

// QuoteRequest asks for a price without saving anything.
type QuoteRequest struct {
	StartDate        FlexDate `json:"startDate"`
	EndDate          FlexDate `json:"endDate"`
	PricePerNight    float64  `json:"pricePerNight" validate:"gte=0"`
	AdditionalAmount float64  `json:"additionalAmount" validate:"gte=0"`
	IsTourist        bool     `json:"isTourist"`
}

// QuoteResponse is the price breakdown of a stay.
type QuoteResponse struct {
	Nights   int     `json:"nights"`
	Subtotal float64 `json:"subtotal"`
	VatRate  float64 `json:"vatRate"`
	Vat      float64 `json:"vat"`
	Total    float64 `json:"total"`
}

// BookingCellResponse is the booking covering one calendar cell.
type BookingCellResponse struct {
	Booking *models.Booking `json:"booking"`
	IsStart bool            `json:"isStart"`
	IsEnd   bool            `json:"isEnd"`
}

// GridCell is one day of one room in the month grid.
type GridCell struct {
	Date      string `json:"date"`
	BookingID string `json:"bookingId,omitempty"`
	GuestName string `json:"guestName,omitempty"`
	IsStart   bool   `json:"isStart"`
	IsEnd     bool   `json:"isEnd"`
}

// GridRow is one room of the month grid.
type GridRow struct {
	Room  string     `json:"room"`
	Cells []GridCell `json:"cells"`
}

// MonthGridResponse is the bookings calendar of one month.
type MonthGridResponse struct {
	Location string    `json:"location"`
	Month    string    `json:"month"`
	Rows     []GridRow `json:"rows"`
}

// ScoredBooking is a search hit.
type ScoredBooking struct {
	Booking models.Booking `json:"booking"`
	Score   float64        `json:"score"`
}

// BookingSearchResponse carries the hits and a closest-name suggestion.
type BookingSearchResponse struct {
	Results    []ScoredBooking `json:"results"`
	Suggestion string          `json:"suggestion,omitempty"`
}
