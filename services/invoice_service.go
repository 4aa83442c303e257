package services

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"frontdesk/constants"
	"frontdesk/models"
	"frontdesk/services/logger"
	"frontdesk/utils"
)

const invoiceTemplate = `חשבונית מס
==========
{{.Details.BusinessName}}
ע.מ/ח.פ: {{.Details.BusinessID}}
{{.Details.BusinessAddress}}

מספר חשבונית: {{.Details.InvoiceNumber}}
תאריך: {{.IssueDate}}

פרטי לקוח:
שם: {{.Details.CustomerName}}
{{- if .Details.CustomerBusinessID}}
ע.מ/ח.פ לקוח: {{.Details.CustomerBusinessID}}
{{- end}}
{{- if .Details.CustomerAddress}}
כתובת: {{.Details.CustomerAddress}}
{{- end}}

פרטי ההזמנה:
מספר הזמנה: {{.Booking.BookingNumber}}
תאריכי שהייה: {{.StartDate}} - {{.EndDate}}
מספר חדר: {{.Booking.RoomNumber}}

סה"כ לתשלום: {{.Total}}
אמצעי תשלום: {{.Booking.PaymentMethod}}`

type InvoiceServiceOptions struct {
	// Business fills the issuer fields an invoice request leaves empty.
	Business models.InvoiceDetails
	Logger   logger.Logger
	Clock    func() time.Time
}

// InvoiceService renders plain-text tax invoices.
type InvoiceService struct {
	tmpl     *template.Template
	business models.InvoiceDetails
	logger   logger.Logger
	now      func() time.Time
}

func NewInvoiceService(opts InvoiceServiceOptions) *InvoiceService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &InvoiceService{
		tmpl:     template.Must(template.New("invoice").Parse(invoiceTemplate)),
		business: opts.Business,
		logger:   opts.Logger,
		now:      opts.Clock,
	}
}

type invoiceView struct {
	Details   models.InvoiceDetails
	Booking   models.Booking
	IssueDate string
	StartDate string
	EndDate   string
	Total     string
}

// Generate renders the invoice of a booking. Missing issuer fields come from the
// configured business and a missing invoice number is generated from the clock.
func (s *InvoiceService) Generate(booking models.Booking, details models.InvoiceDetails) (models.Invoice, error) {
	now := s.now()
	details = s.withDefaults(details, booking, now)

	var buf bytes.Buffer
	err := s.tmpl.Execute(&buf, invoiceView{
		Details:   details,
		Booking:   booking,
		IssueDate: utils.HebrewDate(now),
		StartDate: utils.HebrewDate(booking.StartDate),
		EndDate:   utils.HebrewDate(booking.EndDate),
		Total:     FormatShekel(booking.Price),
	})
	if err != nil {
		s.logger.Error("rendering invoice %s: %v", details.InvoiceNumber, err)
		return models.Invoice{}, fmt.Errorf("render invoice: %w", err)
	}

	s.logger.Debug("generated invoice %s for booking %s", details.InvoiceNumber, booking.BookingNumber)
	return models.Invoice{
		FileName: fmt.Sprintf("invoice-%s.txt", booking.BookingNumber),
		Body:     strings.TrimSpace(buf.String()),
	}, nil
}

func (s *InvoiceService) withDefaults(details models.InvoiceDetails, booking models.Booking, now time.Time) models.InvoiceDetails {
	if details.BusinessName == "" {
		details.BusinessName = s.business.BusinessName
	}
	if details.BusinessID == "" {
		details.BusinessID = s.business.BusinessID
	}
	if details.BusinessAddress == "" {
		details.BusinessAddress = s.business.BusinessAddress
	}
	if details.InvoiceNumber == "" {
		details.InvoiceNumber = models.NewInvoiceNumber(now)
	}
	if details.CustomerName == "" {
		details.CustomerName = booking.GuestName
	}
	return details
}

// FormatShekel renders an amount as ₪ with two decimals.
func FormatShekel(amount float64) string {
	return fmt.Sprintf("%s%.2f", constants.CurrencySymbol, amount)
}
