package repository

import (
	"context"
	"time"

	"frontdesk/models"
	"frontdesk/services/logger"
	"frontdesk/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Migrate creates the room_days and bookings tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.RoomDayRow{}, &models.BookingRow{})
}

// GormRoomStateRepository stores one row per non-default room day.
// Save replaces the whole table inside a transaction.
type GormRoomStateRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewGormRoomStateRepository(db *gorm.DB, log logger.Logger) *GormRoomStateRepository {
	return &GormRoomStateRepository{db: db, logger: log}
}

func (r *GormRoomStateRepository) Load(ctx context.Context) (models.RoomBoard, error) {
	var rows []models.RoomDayRow
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	board := make(models.RoomBoard, len(rows))
	for _, row := range rows {
		rec := models.RoomDayRecord{
			GuestName:     row.GuestName,
			Status:        models.RoomStatus(row.Status),
			OccupiedUntil: row.OccupiedUntil,
		}
		if err := rec.ValidateStatus(); err != nil {
			r.logger.Error("skipping room day %d: %v", row.ID, err)
			continue
		}
		key := models.NewRoomKey(row.Location, time.Time(row.Date), row.Room)
		board[key.String()] = rec
	}
	return board, nil
}

func (r *GormRoomStateRepository) Save(ctx context.Context, board models.RoomBoard) error {
	rows := make([]models.RoomDayRow, 0, len(board))
	for k, rec := range board {
		key, err := models.ParseRoomKey(k)
		if err != nil {
			return err
		}
		d, err := utils.ParseDay(key.Date)
		if err != nil {
			return err
		}
		rows = append(rows, models.RoomDayRow{
			Location:      key.Location,
			Date:          datatypes.Date(d),
			Room:          key.Room,
			GuestName:     rec.GuestName,
			Status:        string(rec.Status),
			OccupiedUntil: rec.OccupiedUntil,
		})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.RoomDayRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 200).Error
	})
}

// GormBookingRepository stores bookings with their list position.
type GormBookingRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewGormBookingRepository(db *gorm.DB, log logger.Logger) *GormBookingRepository {
	return &GormBookingRepository{db: db, logger: log}
}

func (r *GormBookingRepository) Load(ctx context.Context) ([]models.Booking, error) {
	var rows []models.BookingRow
	if err := r.db.WithContext(ctx).Order("position asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	bookings := make([]models.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, row.Booking())
	}
	return bookings, nil
}

func (r *GormBookingRepository) Save(ctx context.Context, bookings []models.Booking) error {
	rows := make([]models.BookingRow, 0, len(bookings))
	for i, b := range bookings {
		rows = append(rows, models.NewBookingRow(b, i))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.BookingRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 200).Error
	})
}
