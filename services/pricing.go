package services

import (
	"math"
	"time"

	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/utils"
)

// PricingService prices stays: nights times the nightly rate plus extras, with VAT for residents.
type PricingService struct {
	vatRate float64
}

// NewPricingService uses the default rate when vatRate is not positive.
func NewPricingService(vatRate float64) *PricingService {
	if vatRate <= 0 {
		vatRate = constants.DefaultVatRate
	}
	return &PricingService{vatRate: vatRate}
}

func (s *PricingService) VatRate() float64 {
	return s.vatRate
}

// Quote prices a stay. Inputs are expected to be validated already.
func (s *PricingService) Quote(req dto.QuoteRequest) dto.QuoteResponse {
	return s.quote(req.StartDate.Time, req.EndDate.Time, req.PricePerNight, req.AdditionalAmount, req.IsTourist)
}

func (s *PricingService) quote(start, end time.Time, pricePerNight, additional float64, tourist bool) dto.QuoteResponse {
	nights := utils.Nights(start, end)
	subtotal := float64(nights)*pricePerNight + additional

	rate := s.vatRate
	if tourist {
		rate = 0
	}
	vat := subtotal * rate

	return dto.QuoteResponse{
		Nights:   nights,
		Subtotal: roundMoney(subtotal),
		VatRate:  rate,
		Vat:      roundMoney(vat),
		Total:    roundMoney(subtotal + vat),
	}
}

// VatIncluded is the VAT part of a VAT-inclusive total.
func (s *PricingService) VatIncluded(total float64) float64 {
	return roundMoney(total - total/(1+s.vatRate))
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
