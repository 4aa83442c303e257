package controllers

import (
	"fmt"
	"net/http"

	"frontdesk/dto"
	"frontdesk/models"
	"frontdesk/services"
	"frontdesk/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

// CompatController serves the stateless endpoints the desk pages already call.
// They answer with bare JSON, not the envelope.
type CompatController struct {
	invoices *services.InvoiceService
	logger   logger.Logger
}

func NewCompatController(invoices *services.InvoiceService, log logger.Logger) CompatController {
	return CompatController{invoices: invoices, logger: log}
}

// SaveBooking godoc
// @Summary  Acknowledge a booking
// @Tags     compat
// @Accept   json
// @Produce  json
// @Success  200 {object} dto.EchoResponse
// @Failure  500 {object} dto.ErrorResponse
// @Router   /api/bookings [post]
func (cc CompatController) SaveBooking(c *gin.Context) {
	cc.echo(c, "booking", "Failed to save booking")
}

// SavePayment godoc
// @Summary  Acknowledge a payment
// @Tags     compat
// @Accept   json
// @Produce  json
// @Success  200 {object} dto.EchoResponse
// @Failure  500 {object} dto.ErrorResponse
// @Router   /api/payments [post]
func (cc CompatController) SavePayment(c *gin.Context) {
	cc.echo(c, "payment", "Failed to save payment")
}

func (cc CompatController) echo(c *gin.Context, what, failure string) {
	body, err := c.GetRawData()
	if err != nil || !json.Valid(body) {
		cc.logger.Error("error saving %s: malformed body", what)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: failure})
		return
	}
	c.JSON(http.StatusOK, dto.EchoResponse{Success: true})
}

// GenerateInvoice godoc
// @Summary  Render a plain-text invoice
// @Tags     compat
// @Accept   json
// @Produce  plain
// @Param    body body dto.GenerateInvoiceRequest true "booking and invoice details"
// @Success  200 {string} string
// @Failure  500 {object} dto.ErrorResponse
// @Router   /api/generate-invoice [post]
func (cc CompatController) GenerateInvoice(c *gin.Context) {
	var req dto.GenerateInvoiceRequest
	body, err := c.GetRawData()
	if err == nil {
		err = json.Unmarshal(body, &req)
	}
	if err == nil && (req.Booking == nil || req.InvoiceDetails == nil) {
		err = fmt.Errorf("booking and invoiceDetails are required")
	}
	if err != nil {
		cc.logger.Error("error generating invoice: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate invoice"})
		return
	}

	inv, err := cc.invoices.Generate(req.Booking.ToBooking(), *req.InvoiceDetails)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate invoice"})
		return
	}
	writeInvoice(c, inv)
}

func writeInvoice(c *gin.Context, inv models.Invoice) {
	c.Header("Content-Disposition", inv.ContentDisposition())
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(inv.Body))
}
