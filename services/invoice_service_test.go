package services

import (
	"strings"
	"testing"
	"time"

	"frontdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvoiceService() *InvoiceService {
	return NewInvoiceService(InvoiceServiceOptions{
		Business: models.InvoiceDetails{
			BusinessName:    "Airport Guest House",
			BusinessID:      "515151515",
			BusinessAddress: "Or Yehuda",
		},
		Logger: quietLogger(),
		Clock:  fixedClock(time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)),
	})
}

func TestGenerateInvoice(t *testing.T) {
	booking := models.Booking{
		BookingNumber: "BK123456",
		GuestName:     "Dana Levi",
		RoomNumber:    "5",
		StartDate:     day("2025-03-10"),
		EndDate:       day("2025-03-12"),
		Price:         236,
		PaymentMethod: "cash",
	}

	inv, err := newInvoiceService().Generate(booking, models.InvoiceDetails{InvoiceNumber: "INV000001"})
	require.NoError(t, err)

	assert.Equal(t, "invoice-BK123456.txt", inv.FileName)
	assert.Equal(t, "attachment; filename=invoice-BK123456.txt", inv.ContentDisposition())
	assert.True(t, strings.HasPrefix(inv.Body, "חשבונית מס"))
	for _, want := range []string{
		"Airport Guest House",
		"ע.מ/ח.פ: 515151515",
		"מספר חשבונית: INV000001",
		"תאריך: 5.3.2025",
		"שם: Dana Levi",
		"מספר הזמנה: BK123456",
		"תאריכי שהייה: 10.3.2025 - 12.3.2025",
		"מספר חדר: 5",
		"סה\"כ לתשלום: ₪236.00",
		"אמצעי תשלום: cash",
	} {
		assert.Contains(t, inv.Body, want)
	}
	assert.NotContains(t, inv.Body, "כתובת:")
}

func TestGenerateInvoiceNumbersItself(t *testing.T) {
	inv, err := newInvoiceService().Generate(models.Booking{BookingNumber: "BK1", Price: 10.5}, models.InvoiceDetails{
		BusinessName:    "Rothschild 79",
		CustomerAddress: "Tel Aviv",
	})
	require.NoError(t, err)
	assert.Regexp(t, `מספר חשבונית: INV\d{6}`, inv.Body)
	assert.Contains(t, inv.Body, "Rothschild 79")
	assert.NotContains(t, inv.Body, "Airport Guest House")
	assert.Contains(t, inv.Body, "כתובת: Tel Aviv")
	assert.Contains(t, inv.Body, "₪10.50")
}

func TestGenerateInvoiceBillsCustomerName(t *testing.T) {
	booking := models.Booking{BookingNumber: "BK2", GuestName: "Dana Levi", Price: 100}

	inv, err := newInvoiceService().Generate(booking, models.InvoiceDetails{CustomerName: "Levi Holdings Ltd"})
	require.NoError(t, err)
	assert.Contains(t, inv.Body, "שם: Levi Holdings Ltd")
	assert.NotContains(t, inv.Body, "שם: Dana Levi")
}

func TestFormatShekel(t *testing.T) {
	assert.Equal(t, "₪1234.50", FormatShekel(1234.5))
}
