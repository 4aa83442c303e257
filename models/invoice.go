package models

import (
	"fmt"
	"time"
)

// InvoiceDetails carries the issuer header and the invoice number.
type InvoiceDetails struct {
	InvoiceNumber      string `json:"invoiceNumber"`
	BusinessName       string `json:"businessName"`
	BusinessID         string `json:"businessId"`
	BusinessAddress    string `json:"businessAddress"`
	CustomerName       string `json:"customerName"`
	CustomerAddress    string `json:"customerAddress,omitempty"`
	CustomerBusinessID string `json:"customerBusinessId,omitempty"`
}

// Invoice is a rendered invoice ready to be served as a text attachment.
type Invoice struct {
	FileName string
	Body     string
}

// ContentDisposition is the attachment header for downloading the invoice.
func (inv Invoice) ContentDisposition() string {
	return "attachment; filename=" + inv.FileName
}

// NewInvoiceNumber builds INV plus the last six digits of the millisecond clock.
func NewInvoiceNumber(now time.Time) string {
	return "INV" + lastSixDigits(now)
}

// NewBookingNumber builds BK plus the last six digits of the millisecond clock.
func NewBookingNumber(now time.Time) string {
	return "BK" + lastSixDigits(now)
}

func lastSixDigits(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) <= 6 {
		return ms
	}
	return ms[len(ms)-6:]
}
