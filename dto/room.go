package dto

import "frontdesk/models"

// CellUpdateRequest edits one field of one room on one day.
type CellUpdateRequest struct {
	Field string `json:"field" binding:"required,oneof=guestName status occupiedUntil"`
	Value string `json:"value"`
}

// BoardRow is one room line of the daily board.
type BoardRow struct {
	Room          string            `json:"room"`
	Key           string            `json:"key"`
	GuestName     string            `json:"guestName"`
	Status        models.RoomStatus `json:"status"`
	OccupiedUntil *string           `json:"occupiedUntil,omitempty"`
	Flagged       bool              `json:"flagged"`
}

// BoardDayResponse is the board of one location for one date.
type BoardDayResponse struct {
	Location string            `json:"location"`
	Date     string            `json:"date"`
	Label    string            `json:"label"`
	IsToday  bool              `json:"isToday"`
	Rows     []BoardRow        `json:"rows"`
	Summary  models.DaySummary `json:"summary"`
}

// CellUpdateResponse lists every key the edit touched.
type CellUpdateResponse struct {
	Updated map[string]models.RoomDayRecord `json:"updated"`
	Cleared []string                        `json:"cleared"`
}

// LocationResponse describes a guesthouse.
type LocationResponse struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Rooms []string `json:"rooms"`
}
