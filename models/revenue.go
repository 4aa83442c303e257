package models

// MonthlySummary is the income report for one calendar month.
type MonthlySummary struct {
	Year            int                `json:"year"`
	Month           int                `json:"month"`
	TotalIncome     float64            `json:"totalIncome"`
	VatCollected    float64            `json:"vatCollected"`
	ByPaymentMethod map[string]float64 `json:"byPaymentMethod"`
	OccupancyRate   int                `json:"occupancyRate"`
	BookedNights    int                `json:"bookedNights"`
	DaysInMonth     int                `json:"daysInMonth"`
	Bookings        []Booking          `json:"bookings"`
}

// MonthRevenue is one entry of the yearly breakdown.
type MonthRevenue struct {
	Month        int     `json:"month"`
	Revenue      float64 `json:"revenue"`
	BookingCount int     `json:"bookingCount"`
}
