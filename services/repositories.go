package services

import (
	"context"

	"frontdesk/models"
)

// RoomStateRepository persists the whole room board at once.
// Load returns an empty board when nothing was stored yet or the stored content is unreadable.
type RoomStateRepository interface {
	Load(ctx context.Context) (models.RoomBoard, error)
	Save(ctx context.Context, board models.RoomBoard) error
}

// BookingRepository persists the whole booking list at once, in order.
type BookingRepository interface {
	Load(ctx context.Context) ([]models.Booking, error)
	Save(ctx context.Context, bookings []models.Booking) error
}
