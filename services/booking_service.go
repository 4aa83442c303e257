package services

import (
	"context"
	"sync"
	"time"

	"frontdesk/builders"
	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"
	"frontdesk/services/logger"
	"frontdesk/services/notification"
	"frontdesk/utils"

	"github.com/google/uuid"
)

// firstGridMonth is the earliest month the bookings calendar opens.
var firstGridMonth = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

type BookingServiceOptions struct {
	Repo     BookingRepository
	Pricing  *PricingService
	Cache    Cache
	Notifier notification.Service
	Logger   logger.Logger
	Clock    func() time.Time
	NewID    func() string
}

// BookingService keeps the booking list in memory and saves it wholesale on every change.
type BookingService struct {
	mu       sync.RWMutex
	bookings []models.Booking
	repo     BookingRepository
	pricing  *PricingService
	cache    Cache
	notifier notification.Service
	logger   logger.Logger
	now      func() time.Time
	newID    func() string
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	if opts.Pricing == nil {
		opts.Pricing = NewPricingService(constants.DefaultVatRate)
	}
	if opts.Notifier == nil {
		opts.Notifier = notification.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &BookingService{
		repo:     opts.Repo,
		pricing:  opts.Pricing,
		cache:    opts.Cache,
		notifier: opts.Notifier,
		logger:   opts.Logger,
		now:      opts.Clock,
		newID:    opts.NewID,
	}
}

// Load replaces the in-memory list with the stored one.
func (s *BookingService) Load(ctx context.Context) error {
	bookings, err := s.repo.Load(ctx)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeStoreLoad, "failed to load bookings", err)
	}

	s.mu.Lock()
	s.bookings = bookings
	s.mu.Unlock()

	s.logger.Info("loaded %d bookings", len(bookings))
	return nil
}

// List returns a copy of every booking in insertion order.
func (s *BookingService) List() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *BookingService) Get(id string) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.Booking{}, errors.ErrBookingNotFound
	}
	return s.bookings[i], nil
}

// Create prices and stores a new booking. The request must already be validated.
func (s *BookingService) Create(ctx context.Context, req dto.BookingRequest) (models.Booking, error) {
	now := s.now()
	number := req.BookingNumber
	if number == "" {
		number = models.NewBookingNumber(now)
	}

	booking := s.fill(builders.NewBookingBuilder().WithID(s.newID()).WithBookingNumber(number), req, now)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(s.snapshotLocked(), booking)
	if err := s.commitLocked(ctx, next); err != nil {
		return models.Booking{}, err
	}
	s.publish(booking.ID, "created")
	return booking, nil
}

// Update replaces the editable fields of a booking and reprices it.
func (s *BookingService) Update(ctx context.Context, id string, req dto.BookingRequest) (models.Booking, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Booking{}, errors.ErrBookingNotFound
	}
	booking := s.fill(builders.FromBooking(s.bookings[i]).WithBookingNumber(req.BookingNumber), req, now)

	next := s.snapshotLocked()
	next[i] = booking
	if err := s.commitLocked(ctx, next); err != nil {
		return models.Booking{}, err
	}
	s.publish(booking.ID, "updated")
	return booking, nil
}

// Delete removes a booking. Without confirmation nothing is removed.
func (s *BookingService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return errors.ErrConfirmationRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return errors.ErrBookingNotFound
	}
	next := s.snapshotLocked()
	next = append(next[:i], next[i+1:]...)
	if err := s.commitLocked(ctx, next); err != nil {
		return err
	}
	s.publish(id, "deleted")
	return nil
}

// ForCell returns the first booking of the room covering the day.
func (s *BookingService) ForCell(location, room string, day time.Time) dto.BookingCellResponse {
	day = utils.Day(day)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.Location == location && b.RoomNumber == room && b.Covers(day) {
			found := b
			return dto.BookingCellResponse{
				Booking: &found,
				IsStart: day.Equal(b.StartDate),
				IsEnd:   day.Equal(b.EndDate),
			}
		}
	}
	return dto.BookingCellResponse{}
}

// MonthGrid lays the bookings of a location out as rooms by days.
func (s *BookingService) MonthGrid(loc models.Location, year int, month time.Month) (dto.MonthGridResponse, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	if first.Before(firstGridMonth) {
		return dto.MonthGridResponse{}, errors.ErrMonthOutOfRange
	}
	days := utils.MonthDays(year, month)

	s.mu.RLock()
	defer s.mu.RUnlock()

	resp := dto.MonthGridResponse{
		Location: loc.ID,
		Month:    first.Format(constants.MonthLayout),
		Rows:     make([]dto.GridRow, 0, len(loc.Rooms)),
	}
	for _, room := range loc.Rooms {
		row := dto.GridRow{Room: room, Cells: make([]dto.GridCell, 0, len(days))}
		for _, d := range days {
			cell := dto.GridCell{Date: utils.FormatDay(d)}
			for _, b := range s.bookings {
				if b.Location == loc.ID && b.RoomNumber == room && b.Covers(d) {
					cell.BookingID = b.ID
					cell.GuestName = b.GuestName
					cell.IsStart = d.Equal(b.StartDate)
					cell.IsEnd = d.Equal(b.EndDate)
					break
				}
			}
			row.Cells = append(row.Cells, cell)
		}
		resp.Rows = append(resp.Rows, row)
	}
	return resp, nil
}

// Search finds bookings by guest name, tolerating typos and transliteration.
func (s *BookingService) Search(query string) dto.BookingSearchResponse {
	return searchGuests(query, s.List())
}

func (s *BookingService) fill(b *builders.BookingBuilder, req dto.BookingRequest, now time.Time) models.Booking {
	quote := s.pricing.quote(req.StartDate.Time, req.EndDate.Time, req.PricePerNight, req.AdditionalAmount, req.IsTourist)
	return b.
		WithGuest(req.GuestName).
		WithRoom(req.Location, string(req.RoomNumber)).
		WithStay(req.StartDate.Time, req.EndDate.Time).
		WithRates(req.PricePerNight, req.AdditionalAmount, req.IsTourist).
		WithPayment(req.PaymentMethod, req.IsPaid, now).
		WithNotes(req.Notes).
		WithPrice(quote.Total).
		WithTimestamps(now).
		Build()
}

func (s *BookingService) indexOf(id string) int {
	for i, b := range s.bookings {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func (s *BookingService) snapshotLocked() []models.Booking {
	next := make([]models.Booking, len(s.bookings), len(s.bookings)+1)
	copy(next, s.bookings)
	return next
}

// commitLocked saves next and only then makes it current.
func (s *BookingService) commitLocked(ctx context.Context, next []models.Booking) error {
	if err := s.repo.Save(ctx, next); err != nil {
		s.logger.Error("saving bookings: %v", err)
		return errors.NewAppError(errors.ErrCodeStoreSave, "failed to save bookings", err)
	}
	s.bookings = next

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, revenueCachePattern); err != nil {
			s.logger.Error("invalidating revenue cache: %v", err)
		}
	}
	return nil
}

func (s *BookingService) publish(id, action string) {
	err := s.notifier.Publish(notification.Event{
		Type:    constants.EventBookingsUpdated,
		At:      s.now(),
		Payload: map[string]string{"id": id, "action": action},
	})
	if err != nil {
		s.logger.Error("broadcasting booking %s %s: %v", action, id, err)
	}
}
