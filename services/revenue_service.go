package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/models"
	"frontdesk/services/logger"
	"frontdesk/utils"
)

const revenueCachePattern = "revenue:*"

// BookingLister is the read side of the booking service.
type BookingLister interface {
	List() []models.Booking
}

type RevenueServiceOptions struct {
	Bookings BookingLister
	Pricing  *PricingService
	Cache    Cache
	Logger   logger.Logger
}

// RevenueService builds the monthly income report from paid bookings.
type RevenueService struct {
	bookings BookingLister
	pricing  *PricingService
	cache    Cache
	logger   logger.Logger
}

func NewRevenueService(opts RevenueServiceOptions) *RevenueService {
	if opts.Pricing == nil {
		opts.Pricing = NewPricingService(constants.DefaultVatRate)
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RevenueService{
		bookings: opts.Bookings,
		pricing:  opts.Pricing,
		cache:    opts.Cache,
		logger:   opts.Logger,
	}
}

// Report returns the summary of one month and the per-month breakdown of its year.
func (s *RevenueService) Report(ctx context.Context, year int, month time.Month) dto.RevenueResponse {
	key := revenueCacheKey(year, month)
	if s.cache != nil {
		var cached dto.RevenueResponse
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.logger.Error("reading %s from cache: %v", key, err)
		} else if found {
			return cached
		}
	}

	bookings := s.bookings.List()
	resp := dto.RevenueResponse{
		Summary: s.Summary(bookings, year, month),
		Yearly:  s.Yearly(bookings, year),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, resp); err != nil {
			s.logger.Error("writing %s to cache: %v", key, err)
		}
	}
	return resp
}

// Summary covers paid bookings whose stay starts in the month.
func (s *RevenueService) Summary(bookings []models.Booking, year int, month time.Month) models.MonthlySummary {
	summary := models.MonthlySummary{
		Year:            year,
		Month:           int(month),
		ByPaymentMethod: map[string]float64{},
		DaysInMonth:     utils.DaysInMonth(year, month),
		Bookings:        []models.Booking{},
	}

	var vat float64
	for _, b := range paidInMonth(bookings, year, month) {
		summary.Bookings = append(summary.Bookings, b)
		summary.ByPaymentMethod[b.PaymentMethod] += b.Price
		summary.TotalIncome += b.Price
		summary.BookedNights += utils.RoundedDays(b.StartDate, b.EndDate)
		if !b.IsTourist {
			vat += s.pricing.VatIncluded(b.Price)
		}
	}

	for method, amount := range summary.ByPaymentMethod {
		summary.ByPaymentMethod[method] = roundMoney(amount)
	}
	summary.TotalIncome = roundMoney(summary.TotalIncome)
	summary.VatCollected = roundMoney(vat)
	summary.OccupancyRate = int(roundHalfUp(float64(summary.BookedNights) / float64(summary.DaysInMonth) * 100))
	return summary
}

// Yearly returns revenue and booking count for each month of the year.
func (s *RevenueService) Yearly(bookings []models.Booking, year int) []models.MonthRevenue {
	out := make([]models.MonthRevenue, 0, 12)
	for m := time.January; m <= time.December; m++ {
		entry := models.MonthRevenue{Month: int(m)}
		for _, b := range paidInMonth(bookings, year, m) {
			entry.Revenue += b.Price
			entry.BookingCount++
		}
		entry.Revenue = roundMoney(entry.Revenue)
		out = append(out, entry)
	}
	return out
}

func paidInMonth(bookings []models.Booking, year int, month time.Month) []models.Booking {
	var out []models.Booking
	for _, b := range bookings {
		if b.IsPaid && b.StartDate.Year() == year && b.StartDate.Month() == month {
			out = append(out, b)
		}
	}
	return out
}

func revenueCacheKey(year int, month time.Month) string {
	return fmt.Sprintf("revenue:%04d-%02d", year, int(month))
}

// roundHalfUp rounds halves up.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
