package models

import (
	"time"

	"gorm.io/datatypes"
)

// RoomDayRow is the SQL form of one RoomBoard entry.
type RoomDayRow struct {
	ID            uint           `gorm:"primaryKey"`
	Location      string         `gorm:"size:32;uniqueIndex:idx_room_day"`
	Date          datatypes.Date `gorm:"uniqueIndex:idx_room_day"`
	Room          string         `gorm:"size:16;uniqueIndex:idx_room_day"`
	GuestName     string
	Status        string  `gorm:"size:16"`
	OccupiedUntil *string `gorm:"size:10"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (RoomDayRow) TableName() string {
	return "room_days"
}
