package commands

import (
	"strings"
	"time"

	"frontdesk/constants"
	"frontdesk/errors"
	"frontdesk/models"
	"frontdesk/utils"
)

// Batch maps room keys to their new records. A default record means the key is removed.
type Batch map[string]models.RoomDayRecord

// CellCommand computes the records a single cell edit writes.
type CellCommand interface {
	Execute(board models.RoomBoard) (Batch, error)
}

// NewCellCommand picks the command for an edited field.
func NewCellCommand(key models.RoomKey, field, value string) (CellCommand, error) {
	switch field {
	case constants.FieldGuestName:
		return NewSetGuestNameCommand(key, value), nil
	case constants.FieldStatus:
		status := models.RoomStatus(value)
		if !status.Valid() {
			return nil, errors.ErrInvalidStatus
		}
		return NewSetStatusCommand(key, status), nil
	case constants.FieldOccupiedUntil:
		return NewSetOccupiedUntilCommand(key, value), nil
	default:
		return nil, errors.ErrInvalidField
	}
}

// SetGuestNameCommand writes a guest name. Naming a guest in an empty room checks them in.
type SetGuestNameCommand struct {
	key  models.RoomKey
	name string
}

func NewSetGuestNameCommand(key models.RoomKey, name string) *SetGuestNameCommand {
	return &SetGuestNameCommand{key: key, name: name}
}

func (c *SetGuestNameCommand) Execute(board models.RoomBoard) (Batch, error) {
	rec := board.Get(c.key)
	if (rec.Status == models.RoomStatusEmpty || rec.Status == "") && strings.TrimSpace(c.name) != "" {
		rec.Status = models.RoomStatusCheckIn
	}
	rec.GuestName = c.name
	return Batch{c.key.String(): rec}, nil
}

// SetStatusCommand changes a room status and carries it across the occupied range.
type SetStatusCommand struct {
	key    models.RoomKey
	status models.RoomStatus
}

func NewSetStatusCommand(key models.RoomKey, status models.RoomStatus) *SetStatusCommand {
	return &SetStatusCommand{key: key, status: status}
}

func (c *SetStatusCommand) Execute(board models.RoomBoard) (Batch, error) {
	rec := board.Get(c.key)
	batch := Batch{}

	switch c.status {
	case models.RoomStatusOccupied:
		rec.Status = models.RoomStatusOccupied
		batch[c.key.String()] = rec
		if rec.OccupiedUntil != nil {
			if err := fillOccupied(batch, c.key, rec.GuestName, *rec.OccupiedUntil); err != nil {
				return nil, err
			}
		}
	case models.RoomStatusEmpty:
		if rec.OccupiedUntil != nil {
			if err := clearRange(batch, c.key, *rec.OccupiedUntil); err != nil {
				return nil, err
			}
			batch[c.key.String()] = models.EmptyRecord()
			break
		}
		rec.Status = models.RoomStatusEmpty
		batch[c.key.String()] = rec
	default:
		rec.Status = c.status
		batch[c.key.String()] = rec
	}
	return batch, nil
}

// SetOccupiedUntilCommand sets the last occupied day and fills the days up to it.
type SetOccupiedUntilCommand struct {
	key   models.RoomKey
	until string
}

func NewSetOccupiedUntilCommand(key models.RoomKey, until string) *SetOccupiedUntilCommand {
	return &SetOccupiedUntilCommand{key: key, until: strings.TrimSpace(until)}
}

func (c *SetOccupiedUntilCommand) Execute(board models.RoomBoard) (Batch, error) {
	rec := board.Get(c.key)
	if c.until == "" {
		rec.OccupiedUntil = nil
		return Batch{c.key.String(): rec}, nil
	}

	untilDay, err := utils.ParseDay(c.until)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "occupiedUntil must be YYYY-MM-DD", err)
	}
	start, err := utils.ParseDay(c.key.Date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "date must be YYYY-MM-DD", err)
	}

	if utils.Nights(start, untilDay) > constants.MaxStayDays {
		return nil, errors.ErrStayTooLong
	}

	until := c.until
	rec.OccupiedUntil = &until
	batch := Batch{c.key.String(): rec}
	if untilDay.After(start) {
		if err := fillOccupied(batch, c.key, rec.GuestName, c.until); err != nil {
			return nil, err
		}
	}
	return batch, nil
}

// fillOccupied marks every day from key's date through until as occupied by guestName.
func fillOccupied(batch Batch, key models.RoomKey, guestName, until string) error {
	return eachDay(key, until, func(k models.RoomKey) {
		u := until
		batch[k.String()] = models.RoomDayRecord{
			GuestName:     guestName,
			Status:        models.RoomStatusOccupied,
			OccupiedUntil: &u,
		}
	})
}

// clearRange resets every day from key's date through until to the default record.
func clearRange(batch Batch, key models.RoomKey, until string) error {
	return eachDay(key, until, func(k models.RoomKey) {
		batch[k.String()] = models.EmptyRecord()
	})
}

func eachDay(key models.RoomKey, until string, fn func(models.RoomKey)) error {
	start, err := utils.ParseDay(key.Date)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "date must be YYYY-MM-DD", err)
	}
	end, err := utils.ParseDay(until)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "occupiedUntil must be YYYY-MM-DD", err)
	}
	if utils.Nights(start, end) > constants.MaxStayDays {
		return errors.ErrStayTooLong
	}
	for _, d := range utils.DaysInclusive(start, end) {
		fn(dayKey(key, d))
	}
	return nil
}

func dayKey(key models.RoomKey, d time.Time) models.RoomKey {
	return models.NewRoomKey(key.Location, d, key.Room)
}
