package models

import (
	"time"

	"frontdesk/constants"

	"gorm.io/datatypes"
)

// Booking is one stay in a room.
type Booking struct {
	ID               string     `json:"id"`
	BookingNumber    string     `json:"bookingNumber"`
	GuestName        string     `json:"guestName"`
	Location         string     `json:"location"`
	RoomNumber       string     `json:"roomNumber"`
	StartDate        time.Time  `json:"startDate"`
	EndDate          time.Time  `json:"endDate"`
	PricePerNight    float64    `json:"pricePerNight"`
	AdditionalAmount float64    `json:"additionalAmount"`
	PaymentMethod    string     `json:"paymentMethod"`
	IsPaid           bool       `json:"isPaid"`
	PaidAt           *time.Time `json:"paidAt,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	Price            float64    `json:"price"`
	IsTourist        bool       `json:"isTourist"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// Covers reports whether the booking spans the day, both ends included.
func (b *Booking) Covers(day time.Time) bool {
	return !day.Before(b.StartDate) && !day.After(b.EndDate)
}

// MarkPaid records the payment time the first time a booking becomes paid.
func (b *Booking) MarkPaid(at time.Time) {
	b.IsPaid = true
	if b.PaidAt == nil {
		b.PaidAt = &at
	}
}

func (b *Booking) MarkUnpaid() {
	b.IsPaid = false
	b.PaidAt = nil
}

func ValidPaymentMethod(method string) bool {
	switch method {
	case constants.PaymentMethodCredit, constants.PaymentMethodCash,
		constants.PaymentMethodHapoalim, constants.PaymentMethodMizrahi:
		return true
	}
	return false
}

// BookingRow is the SQL form of a Booking.
type BookingRow struct {
	ID               string `gorm:"primaryKey;size:36"`
	Position         int    `gorm:"index"`
	BookingNumber    string `gorm:"size:20;index"`
	GuestName        string
	Location         string `gorm:"size:32"`
	RoomNumber       string `gorm:"size:16"`
	StartDate        datatypes.Date
	EndDate          datatypes.Date
	PricePerNight    float64
	AdditionalAmount float64
	PaymentMethod    string `gorm:"size:16"`
	IsPaid           bool
	PaidAt           *time.Time
	Notes            string
	Price            float64
	IsTourist        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (BookingRow) TableName() string {
	return "bookings"
}

func NewBookingRow(b Booking, position int) BookingRow {
	return BookingRow{
		ID:               b.ID,
		Position:         position,
		BookingNumber:    b.BookingNumber,
		GuestName:        b.GuestName,
		Location:         b.Location,
		RoomNumber:       b.RoomNumber,
		StartDate:        datatypes.Date(b.StartDate),
		EndDate:          datatypes.Date(b.EndDate),
		PricePerNight:    b.PricePerNight,
		AdditionalAmount: b.AdditionalAmount,
		PaymentMethod:    b.PaymentMethod,
		IsPaid:           b.IsPaid,
		PaidAt:           b.PaidAt,
		Notes:            b.Notes,
		Price:            b.Price,
		IsTourist:        b.IsTourist,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func (r BookingRow) Booking() Booking {
	return Booking{
		ID:               r.ID,
		BookingNumber:    r.BookingNumber,
		GuestName:        r.GuestName,
		Location:         r.Location,
		RoomNumber:       r.RoomNumber,
		StartDate:        dayOf(time.Time(r.StartDate)),
		EndDate:          dayOf(time.Time(r.EndDate)),
		PricePerNight:    r.PricePerNight,
		AdditionalAmount: r.AdditionalAmount,
		PaymentMethod:    r.PaymentMethod,
		IsPaid:           r.IsPaid,
		PaidAt:           r.PaidAt,
		Notes:            r.Notes,
		Price:            r.Price,
		IsTourist:        r.IsTourist,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
