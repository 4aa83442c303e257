package dto

import "frontdesk/models"

// InvoiceBooking is the booking part of an invoice request. It mirrors the booking
// payload the desk posts, where dates may carry a time and room numbers may be numeric.
type InvoiceBooking struct {
	BookingNumber string     `json:"bookingNumber"`
	GuestName     string     `json:"guestName"`
	StartDate     FlexDate   `json:"startDate"`
	EndDate       FlexDate   `json:"endDate"`
	RoomNumber    FlexString `json:"roomNumber"`
	Price         float64    `json:"price"`
	PaymentMethod string     `json:"paymentMethod"`
}

// GenerateInvoiceRequest is the body of POST /api/generate-invoice.
type GenerateInvoiceRequest struct {
	Booking        *InvoiceBooking        `json:"booking"`
	InvoiceDetails *models.InvoiceDetails `json:"invoiceDetails"`
}

// ToBooking converts the payload to the model the invoice renderer reads.
func (b InvoiceBooking) ToBooking() models.Booking {
	return models.Booking{
		BookingNumber: b.BookingNumber,
		GuestName:     b.GuestName,
		StartDate:     b.StartDate.Time,
		EndDate:       b.EndDate.Time,
		RoomNumber:    string(b.RoomNumber),
		Price:         b.Price,
		PaymentMethod: b.PaymentMethod,
	}
}

// EchoResponse is the answer of the stateless booking and payment endpoints.
type EchoResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the failure body of the stateless endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
