package dto

import "frontdesk/models"

type RevenueResponse struct {
	Summary models.MonthlySummary `json:"summary"`
	Yearly  []models.MonthRevenue `json:"yearly"`
}
