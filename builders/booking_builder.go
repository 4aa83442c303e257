package builders

import (
	"time"

	"frontdesk/models"
	"frontdesk/utils"
)

// BookingBuilder assembles a booking step by step.
type BookingBuilder struct {
	booking *models.Booking
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// FromBooking starts from a copy of an existing booking, for edits.
func FromBooking(b models.Booking) *BookingBuilder {
	return &BookingBuilder{booking: &b}
}

func (b *BookingBuilder) WithID(id string) *BookingBuilder {
	b.booking.ID = id
	return b
}

// WithBookingNumber keeps the current number when number is empty.
func (b *BookingBuilder) WithBookingNumber(number string) *BookingBuilder {
	if number != "" {
		b.booking.BookingNumber = number
	}
	return b
}

func (b *BookingBuilder) WithGuest(name string) *BookingBuilder {
	b.booking.GuestName = name
	return b
}

func (b *BookingBuilder) WithRoom(location, room string) *BookingBuilder {
	b.booking.Location = location
	b.booking.RoomNumber = room
	return b
}

// WithStay sets the first and last day of the stay, dropping the time of day.
func (b *BookingBuilder) WithStay(start, end time.Time) *BookingBuilder {
	b.booking.StartDate = utils.Day(start)
	b.booking.EndDate = utils.Day(end)
	return b
}

func (b *BookingBuilder) WithRates(pricePerNight, additional float64, tourist bool) *BookingBuilder {
	b.booking.PricePerNight = pricePerNight
	b.booking.AdditionalAmount = additional
	b.booking.IsTourist = tourist
	return b
}

// WithPayment sets the method and the paid flag. paidAt is kept while the booking stays paid.
func (b *BookingBuilder) WithPayment(method string, paid bool, at time.Time) *BookingBuilder {
	b.booking.PaymentMethod = method
	if paid {
		b.booking.MarkPaid(at)
	} else {
		b.booking.MarkUnpaid()
	}
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.booking.Notes = notes
	return b
}

func (b *BookingBuilder) WithPrice(price float64) *BookingBuilder {
	b.booking.Price = price
	return b
}

// WithTimestamps sets UpdatedAt, and CreatedAt when it is still zero.
func (b *BookingBuilder) WithTimestamps(at time.Time) *BookingBuilder {
	if b.booking.CreatedAt.IsZero() {
		b.booking.CreatedAt = at
	}
	b.booking.UpdatedAt = at
	return b
}

func (b *BookingBuilder) Build() models.Booking {
	return *b.booking
}
