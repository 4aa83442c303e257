package controllers

import (
	"strconv"
	"time"

	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/models"
	"frontdesk/response"
	"frontdesk/services"
	"frontdesk/utils"
	"frontdesk/validator"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	bookings *services.BookingService
	invoices *services.InvoiceService
	now      func() time.Time
}

func NewBookingController(bookings *services.BookingService, invoices *services.InvoiceService, clock func() time.Time) BookingController {
	if clock == nil {
		clock = time.Now
	}
	return BookingController{bookings: bookings, invoices: invoices, now: clock}
}

// GetBookings godoc
// @Summary  List bookings
// @Tags     bookings
// @Produce  json
// @Param    location query string false "filter by location"
// @Param    page     query int    false "page, from 1"
// @Param    limit    query int    false "page size up to 100, 0 for all"
// @Success  200 {object} response.Response{data=[]models.Booking}
// @Router   /api/v1/bookings [get]
func (bc BookingController) GetBookings(c *gin.Context) {
	all := bc.bookings.List()

	location := c.Query("location")
	filtered := make([]models.Booking, 0, len(all))
	for _, b := range all {
		if location == "" || b.Location == location {
			filtered = append(filtered, b)
		}
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if limit <= 0 {
		response.Success(c, filtered)
		return
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(filtered)
	if page-1 > total/limit {
		response.SuccessWithPagination(c, []models.Booking{}, page, limit, total)
		return
	}
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	response.SuccessWithPagination(c, filtered[start:end], page, limit, total)
}

func (bc BookingController) GetBooking(c *gin.Context) {
	b, err := bc.bookings.Get(c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, b)
}

// CreateBooking godoc
// @Summary  Create a booking
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    body body dto.BookingRequest true "booking form"
// @Success  201 {object} response.Response{data=models.Booking}
// @Router   /api/v1/bookings [post]
func (bc BookingController) CreateBooking(c *gin.Context) {
	req, ok := bindBooking(c)
	if !ok {
		return
	}
	b, err := bc.bookings.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, b)
}

func (bc BookingController) UpdateBooking(c *gin.Context) {
	req, ok := bindBooking(c)
	if !ok {
		return
	}
	b, err := bc.bookings.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, b)
}

// DeleteBooking godoc
// @Summary  Delete a booking
// @Tags     bookings
// @Param    id      path  string true "booking id"
// @Param    confirm query bool   true "must be true"
// @Success  200 {object} response.Response
// @Failure  409 {object} response.Response
// @Router   /api/v1/bookings/{id} [delete]
func (bc BookingController) DeleteBooking(c *gin.Context) {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))
	if err := bc.bookings.Delete(c.Request.Context(), c.Param("id"), confirmed); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, nil)
}

func (bc BookingController) SearchBookings(c *gin.Context) {
	response.Success(c, bc.bookings.Search(c.Query("q")))
}

// GetCellBooking returns the booking covering one room on one day.
func (bc BookingController) GetCellBooking(c *gin.Context) {
	loc, err := validator.ValidateRoom(c.Query("location"), c.Query("room"))
	if err != nil {
		handleError(c, err)
		return
	}
	date, err := validator.ValidateDay(c.Query("date"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, bc.bookings.ForCell(loc.ID, c.Query("room"), date))
}

// GetMonthGrid godoc
// @Summary  Bookings calendar of one month
// @Tags     bookings
// @Produce  json
// @Param    location query string true  "location id"
// @Param    month    query string false "YYYY-MM, default this month"
// @Success  200 {object} response.Response{data=dto.MonthGridResponse}
// @Router   /api/v1/bookings/grid [get]
func (bc BookingController) GetMonthGrid(c *gin.Context) {
	loc, err := validator.ValidateLocation(c.Query("location"))
	if err != nil {
		handleError(c, err)
		return
	}

	now := utils.Day(bc.now())
	year, month := now.Year(), now.Month()
	if raw := c.Query("month"); raw != "" {
		year, month, err = dto.ParseMonth(raw)
		if err != nil {
			response.BadRequest(c, "month must be YYYY-MM")
			return
		}
	}

	grid, err := bc.bookings.MonthGrid(loc, year, month)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, grid)
}

// GetBookingInvoice renders the invoice of a stored booking as a text attachment.
func (bc BookingController) GetBookingInvoice(c *gin.Context) {
	b, err := bc.bookings.Get(c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	inv, err := bc.invoices.Generate(b, models.InvoiceDetails{
		InvoiceNumber:      c.Query("invoiceNumber"),
		CustomerName:       c.Query("customerName"),
		CustomerAddress:    c.Query("customerAddress"),
		CustomerBusinessID: c.Query("customerBusinessId"),
	})
	if err != nil {
		handleError(c, err)
		return
	}
	writeInvoice(c, inv)
}

func bindBooking(c *gin.Context) (dto.BookingRequest, bool) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid booking: "+err.Error())
		return req, false
	}
	if err := validator.ValidateBooking(&req); err != nil {
		handleError(c, err)
		return req, false
	}
	return req, true
}
