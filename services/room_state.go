package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"frontdesk/commands"
	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"
	"frontdesk/services/logger"
	"frontdesk/services/notification"
	"frontdesk/utils"
)

type RoomStateServiceOptions struct {
	Repo     RoomStateRepository
	Notifier notification.Service
	Logger   logger.Logger
	Clock    func() time.Time
}

// RoomStateService holds the room board in memory and writes it through to the repository.
type RoomStateService struct {
	mu       sync.RWMutex
	board    models.RoomBoard
	repo     RoomStateRepository
	notifier notification.Service
	logger   logger.Logger
	now      func() time.Time
}

func NewRoomStateService(opts RoomStateServiceOptions) *RoomStateService {
	if opts.Notifier == nil {
		opts.Notifier = notification.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &RoomStateService{
		board:    models.RoomBoard{},
		repo:     opts.Repo,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		now:      opts.Clock,
	}
}

// Load replaces the in-memory board with the stored one.
func (s *RoomStateService) Load(ctx context.Context) error {
	board, err := s.repo.Load(ctx)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeStoreLoad, "failed to load room board", err)
	}
	if board == nil {
		board = models.RoomBoard{}
	}

	s.mu.Lock()
	s.board = board
	s.mu.Unlock()

	s.logger.Info("loaded %d room records", len(board))
	return nil
}

// Get returns the record for a room on a day, or the empty default.
func (s *RoomStateService) Get(location string, date time.Time, room string) models.RoomDayRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Get(models.NewRoomKey(location, date, room))
}

// Apply merges a batch into the board and saves it. Nothing changes if the save fails.
func (s *RoomStateService) Apply(ctx context.Context, batch commands.Batch) (dto.CellUpdateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(ctx, batch)
}

// Execute runs a cell command against the current board and applies its batch.
// The command sees the board under the write lock, so edits never interleave.
func (s *RoomStateService) Execute(ctx context.Context, cmd commands.CellCommand) (dto.CellUpdateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := cmd.Execute(s.board)
	if err != nil {
		return dto.CellUpdateResponse{}, err
	}
	return s.applyLocked(ctx, batch)
}

func (s *RoomStateService) applyLocked(ctx context.Context, batch commands.Batch) (dto.CellUpdateResponse, error) {
	next := s.board.Clone()
	resp := dto.CellUpdateResponse{
		Updated: map[string]models.RoomDayRecord{},
		Cleared: []string{},
	}
	for k, rec := range batch {
		if rec.IsDefault() {
			delete(next, k)
			resp.Cleared = append(resp.Cleared, k)
			continue
		}
		next[k] = rec
		resp.Updated[k] = rec
	}
	sort.Strings(resp.Cleared)

	if err := s.repo.Save(ctx, next); err != nil {
		s.logger.Error("saving room board: %v", err)
		return dto.CellUpdateResponse{}, errors.NewAppError(errors.ErrCodeStoreSave, "failed to save room board", err)
	}
	s.board = next

	s.publish(batch)
	return resp, nil
}

// UpdateCell edits one field of one room on one day.
func (s *RoomStateService) UpdateCell(ctx context.Context, key models.RoomKey, field, value string) (dto.CellUpdateResponse, error) {
	cmd, err := commands.NewCellCommand(key, field, value)
	if err != nil {
		return dto.CellUpdateResponse{}, err
	}
	return s.Execute(ctx, cmd)
}

// Day returns every room of the location for one date, with the status counts.
func (s *RoomStateService) Day(loc models.Location, date time.Time) dto.BoardDayResponse {
	date = utils.Day(date)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dayLocked(loc, date, utils.Day(s.now()))
}

// Window returns the board from 30 days before today to 30 days after.
func (s *RoomStateService) Window(loc models.Location, today time.Time) []dto.BoardDayResponse {
	days := utils.CalendarWindow(today, constants.BoardDaysBefore, constants.BoardDaysAfter)
	current := utils.Day(s.now())

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]dto.BoardDayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, s.dayLocked(loc, d, current))
	}
	return out
}

func (s *RoomStateService) dayLocked(loc models.Location, date, today time.Time) dto.BoardDayResponse {
	resp := dto.BoardDayResponse{
		Location: loc.ID,
		Date:     utils.FormatDay(date),
		Label:    utils.DayLabel(date),
		IsToday:  date.Equal(today),
		Rows:     make([]dto.BoardRow, 0, len(loc.Rooms)),
	}
	for _, room := range loc.Rooms {
		key := models.NewRoomKey(loc.ID, date, room)
		rec := s.board.Get(key)
		resp.Rows = append(resp.Rows, dto.BoardRow{
			Room:          room,
			Key:           key.String(),
			GuestName:     rec.GuestName,
			Status:        rec.Status,
			OccupiedUntil: rec.OccupiedUntil,
			Flagged:       rec.Flagged(),
		})
		resp.Summary.Add(rec.Status)
	}
	return resp
}

func (s *RoomStateService) publish(batch commands.Batch) {
	keys := make([]string, 0, len(batch))
	for k := range batch {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	payload := map[string]interface{}{"keys": keys}
	if len(keys) > 0 {
		// one edit touches one room, so the first key carries the earliest date
		if first, err := models.ParseRoomKey(keys[0]); err == nil {
			payload["location"] = first.Location
			payload["date"] = first.Date
		}
	}

	err := s.notifier.Publish(notification.Event{
		Type:    constants.EventBoardUpdated,
		At:      s.now(),
		Payload: payload,
	})
	if err != nil {
		s.logger.Error("broadcasting board update: %v", err)
	}
}
