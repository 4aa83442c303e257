package controllers

import (
	"time"

	"frontdesk/dto"
	"frontdesk/response"
	"frontdesk/services"
	"frontdesk/validator"

	"github.com/gin-gonic/gin"
)

// RevenueController serves the price calculator and the income report.
type RevenueController struct {
	revenue *services.RevenueService
	pricing *services.PricingService
	now     func() time.Time
}

func NewRevenueController(revenue *services.RevenueService, pricing *services.PricingService, clock func() time.Time) RevenueController {
	if clock == nil {
		clock = time.Now
	}
	return RevenueController{revenue: revenue, pricing: pricing, now: clock}
}

// Quote godoc
// @Summary  Price a stay
// @Tags     revenue
// @Accept   json
// @Produce  json
// @Param    body body dto.QuoteRequest true "stay"
// @Success  200 {object} response.Response{data=dto.QuoteResponse}
// @Router   /api/v1/quote [post]
func (rc RevenueController) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid quote: "+err.Error())
		return
	}
	if err := validator.ValidateQuote(&req); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, rc.pricing.Quote(req))
}

// GetRevenue godoc
// @Summary  Monthly income summary
// @Tags     revenue
// @Produce  json
// @Param    year  query int false "default this year"
// @Param    month query int false "1-12, default this month"
// @Success  200 {object} response.Response{data=dto.RevenueResponse}
// @Router   /api/v1/revenue [get]
func (rc RevenueController) GetRevenue(c *gin.Context) {
	year, month, err := dto.ParseYearMonth(c.Query("year"), c.Query("month"), rc.now())
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	response.Success(c, rc.revenue.Report(c.Request.Context(), year, month))
}
