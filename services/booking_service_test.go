package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"frontdesk/constants"
	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/services/notification/notificationtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	svc   *BookingService
	repo  *memBookingRepo
	rec   *notificationtest.Recorder
	cache *memCache
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		repo:  &memBookingRepo{},
		rec:   &notificationtest.Recorder{},
		cache: newMemCache(),
	}
	n := 0
	f.svc = NewBookingService(BookingServiceOptions{
		Repo:     f.repo,
		Pricing:  NewPricingService(0.18),
		Cache:    f.cache,
		Notifier: f.rec,
		Logger:   quietLogger(),
		Clock:    fixedClock(time.Date(2025, 3, 1, 9, 0, 0, 123_000_000, time.UTC)),
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	})
	require.NoError(t, f.svc.Load(context.Background()))
	return f
}

func bookingRequest(guest, room, start, end string) dto.BookingRequest {
	return dto.BookingRequest{
		GuestName:     guest,
		Location:      constants.LocationAirport,
		RoomNumber:    dto.FlexString(room),
		StartDate:     dto.FlexDate{Time: day(start)},
		EndDate:       dto.FlexDate{Time: day(end)},
		PricePerNight: 100,
		PaymentMethod: constants.PaymentMethodCash,
	}
}

func TestCreateBooking(t *testing.T) {
	f := newBookingFixture(t)
	req := bookingRequest("Dana", "5", "2025-03-10", "2025-03-12")
	req.IsPaid = true

	b, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "id-1", b.ID)
	assert.Regexp(t, `^BK\d{6}$`, b.BookingNumber)
	assert.Equal(t, 236.0, b.Price)
	require.NotNil(t, b.PaidAt)
	assert.Len(t, f.repo.bookings, 1)
	assert.Equal(t, []string{constants.EventBookingsUpdated}, f.rec.Types())
	assert.Equal(t, 1, f.cache.invalidated)
}

func TestCreateKeepsGivenBookingNumber(t *testing.T) {
	f := newBookingFixture(t)
	req := bookingRequest("Dana", "5", "2025-03-10", "2025-03-12")
	req.BookingNumber = "BK000042"

	b, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "BK000042", b.BookingNumber)
}

func TestUpdateBookingPaidAt(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	b, err := f.svc.Create(ctx, bookingRequest("Dana", "5", "2025-03-10", "2025-03-12"))
	require.NoError(t, err)
	assert.Nil(t, b.PaidAt)

	req := bookingRequest("Dana Levi", "5", "2025-03-10", "2025-03-13")
	req.IsPaid = true
	updated, err := f.svc.Update(ctx, b.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Dana Levi", updated.GuestName)
	assert.Equal(t, b.BookingNumber, updated.BookingNumber)
	assert.Equal(t, 354.0, updated.Price)
	require.NotNil(t, updated.PaidAt)

	req.IsPaid = false
	updated, err = f.svc.Update(ctx, b.ID, req)
	require.NoError(t, err)
	assert.Nil(t, updated.PaidAt)
	assert.False(t, updated.IsPaid)
}

func TestUpdateMissingBooking(t *testing.T) {
	f := newBookingFixture(t)
	_, err := f.svc.Update(context.Background(), "nope", bookingRequest("Dana", "5", "2025-03-10", "2025-03-12"))
	assert.ErrorIs(t, err, errors.ErrBookingNotFound)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	b, err := f.svc.Create(ctx, bookingRequest("Dana", "5", "2025-03-10", "2025-03-12"))
	require.NoError(t, err)

	err = f.svc.Delete(ctx, b.ID, false)
	assert.ErrorIs(t, err, errors.ErrConfirmationRequired)
	assert.Len(t, f.svc.List(), 1)
	assert.Len(t, f.repo.bookings, 1)

	require.NoError(t, f.svc.Delete(ctx, b.ID, true))
	assert.Empty(t, f.svc.List())
	assert.Empty(t, f.repo.bookings)

	assert.ErrorIs(t, f.svc.Delete(ctx, b.ID, true), errors.ErrBookingNotFound)
}

func TestCreateRollsBackOnSaveFailure(t *testing.T) {
	f := newBookingFixture(t)
	f.repo.failSave = true

	_, err := f.svc.Create(context.Background(), bookingRequest("Dana", "5", "2025-03-10", "2025-03-12"))
	assert.True(t, errors.HasCode(err, errors.ErrCodeStoreSave))
	assert.Empty(t, f.svc.List())
	assert.Empty(t, f.rec.Events)
}

func TestForCell(t *testing.T) {
	f := newBookingFixture(t)
	b, err := f.svc.Create(context.Background(), bookingRequest("Dana", "5", "2025-03-10", "2025-03-12"))
	require.NoError(t, err)

	cell := f.svc.ForCell("airport", "5", day("2025-03-10"))
	require.NotNil(t, cell.Booking)
	assert.Equal(t, b.ID, cell.Booking.ID)
	assert.True(t, cell.IsStart)
	assert.False(t, cell.IsEnd)

	cell = f.svc.ForCell("airport", "5", day("2025-03-12"))
	assert.True(t, cell.IsEnd)

	assert.Nil(t, f.svc.ForCell("airport", "5", day("2025-03-13")).Booking)
	assert.Nil(t, f.svc.ForCell("airport", "6", day("2025-03-11")).Booking)
}

func TestMonthGrid(t *testing.T) {
	f := newBookingFixture(t)
	b, err := f.svc.Create(context.Background(), bookingRequest("Dana", "2", "2025-02-27", "2025-03-02"))
	require.NoError(t, err)

	grid, err := f.svc.MonthGrid(airport(t), 2025, time.March)
	require.NoError(t, err)
	assert.Equal(t, "2025-03", grid.Month)
	require.Len(t, grid.Rows, 8)

	row := grid.Rows[1]
	assert.Equal(t, "2", row.Room)
	require.Len(t, row.Cells, 31)
	assert.Equal(t, b.ID, row.Cells[0].BookingID)
	assert.False(t, row.Cells[0].IsStart)
	assert.True(t, row.Cells[1].IsEnd)
	assert.Empty(t, row.Cells[2].BookingID)
}

func TestMonthGridFloor(t *testing.T) {
	f := newBookingFixture(t)
	_, err := f.svc.MonthGrid(airport(t), 2024, time.December)
	assert.ErrorIs(t, err, errors.ErrMonthOutOfRange)
}

func TestSearchBookings(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	for _, name := range []string{"Dana Levi", "Avi Cohen", "Moshe Peretz"} {
		_, err := f.svc.Create(ctx, bookingRequest(name, "5", "2025-03-10", "2025-03-12"))
		require.NoError(t, err)
	}

	resp := f.svc.Search("levi")
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, "Dana Levi", resp.Results[0].Booking.GuestName)
	assert.Equal(t, 1.0, resp.Results[0].Score)

	resp = f.svc.Search("Cohn")
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, "Avi Cohen", resp.Results[0].Booking.GuestName)

	assert.Empty(t, f.svc.Search("  ").Results)
}
