package services

import (
	"context"
	"testing"

	"frontdesk/commands"
	"frontdesk/constants"
	"frontdesk/errors"
	"frontdesk/models"
	"frontdesk/services/notification/notificationtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoomState(t *testing.T, repo *memRoomRepo, rec *notificationtest.Recorder) *RoomStateService {
	t.Helper()
	svc := NewRoomStateService(RoomStateServiceOptions{
		Repo:     repo,
		Notifier: rec,
		Logger:   quietLogger(),
		Clock:    fixedClock(day("2025-03-10")),
	})
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func airport(t *testing.T) models.Location {
	t.Helper()
	loc, ok := models.FindLocation(constants.LocationAirport)
	require.True(t, ok)
	return loc
}

func TestRoomStateGetDefaultsToEmpty(t *testing.T) {
	svc := newRoomState(t, &memRoomRepo{}, &notificationtest.Recorder{})
	assert.Equal(t, models.EmptyRecord(), svc.Get("airport", day("2025-03-10"), "5"))
}

func TestRoomStateOccupiedRangeIsPersisted(t *testing.T) {
	repo := &memRoomRepo{}
	rec := &notificationtest.Recorder{}
	svc := newRoomState(t, repo, rec)
	ctx := context.Background()
	k := models.NewRoomKey("airport", day("2025-03-10"), "5")

	_, err := svc.UpdateCell(ctx, k, constants.FieldGuestName, "Dana")
	require.NoError(t, err)
	resp, err := svc.UpdateCell(ctx, k, constants.FieldOccupiedUntil, "2025-03-13")
	require.NoError(t, err)
	assert.Len(t, resp.Updated, 4)

	until := "2025-03-13"
	want := models.RoomDayRecord{GuestName: "Dana", Status: models.RoomStatusOccupied, OccupiedUntil: &until}
	for _, d := range []string{"2025-03-10", "2025-03-11", "2025-03-12", "2025-03-13"} {
		assert.Equal(t, want, svc.Get("airport", day(d), "5"), d)
		assert.Equal(t, want, repo.board[models.NewRoomKey("airport", day(d), "5").String()], d)
	}
	assert.Equal(t, []string{constants.EventBoardUpdated, constants.EventBoardUpdated}, rec.Types())
}

func TestRoomStateEmptyDeletesRange(t *testing.T) {
	repo := &memRoomRepo{}
	svc := newRoomState(t, repo, &notificationtest.Recorder{})
	ctx := context.Background()
	k := models.NewRoomKey("airport", day("2025-03-10"), "5")

	_, err := svc.UpdateCell(ctx, k, constants.FieldGuestName, "Dana")
	require.NoError(t, err)
	_, err = svc.UpdateCell(ctx, k, constants.FieldOccupiedUntil, "2025-03-12")
	require.NoError(t, err)

	resp, err := svc.UpdateCell(ctx, k, constants.FieldStatus, "empty")
	require.NoError(t, err)
	assert.Len(t, resp.Cleared, 3)
	assert.Empty(t, repo.board)
	for _, d := range []string{"2025-03-10", "2025-03-11", "2025-03-12"} {
		assert.Nil(t, svc.Get("airport", day(d), "5").OccupiedUntil)
	}
}

func TestRoomStateRollsBackOnSaveFailure(t *testing.T) {
	repo := &memRoomRepo{}
	rec := &notificationtest.Recorder{}
	svc := newRoomState(t, repo, rec)
	ctx := context.Background()
	k := models.NewRoomKey("airport", day("2025-03-10"), "5")

	_, err := svc.UpdateCell(ctx, k, constants.FieldStatus, "dirty")
	require.NoError(t, err)

	repo.failSave = true
	_, err = svc.UpdateCell(ctx, k, constants.FieldStatus, "check-in")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeStoreSave))
	assert.Equal(t, models.RoomStatusDirty, svc.Get("airport", day("2025-03-10"), "5").Status)
	assert.Len(t, rec.Events, 1)
}

func TestRoomStateApplyDropsDefaults(t *testing.T) {
	k := models.NewRoomKey("airport", day("2025-03-10"), "5").String()
	repo := &memRoomRepo{board: models.RoomBoard{k: {GuestName: "Dana", Status: models.RoomStatusDirty}}}
	svc := newRoomState(t, repo, &notificationtest.Recorder{})

	resp, err := svc.Apply(context.Background(), commands.Batch{k: {Status: models.RoomStatusEmpty}})
	require.NoError(t, err)
	assert.Equal(t, []string{k}, resp.Cleared)
	_, stored := repo.board[k]
	assert.False(t, stored)
}

func TestRoomStateDaySummary(t *testing.T) {
	loc := airport(t)
	board := models.RoomBoard{
		models.NewRoomKey("airport", day("2025-03-10"), "1").String(): {GuestName: "A", Status: models.RoomStatusOccupied},
		models.NewRoomKey("airport", day("2025-03-10"), "2").String(): {GuestName: "B!", Status: models.RoomStatusCheckIn},
		models.NewRoomKey("airport", day("2025-03-10"), "3").String(): {Status: models.RoomStatusDirty},
		models.NewRoomKey("airport", day("2025-03-11"), "5").String(): {Status: models.RoomStatusDirty},
	}
	svc := newRoomState(t, &memRoomRepo{board: board}, &notificationtest.Recorder{})

	resp := svc.Day(loc, day("2025-03-10"))
	assert.True(t, resp.IsToday)
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Len(t, resp.Rows, len(loc.Rooms))
	assert.Equal(t, models.DaySummary{Empty: 5, Occupied: 1, CheckIn: 1, Dirty: 1}, resp.Summary)
	assert.True(t, resp.Rows[1].Flagged)
	assert.False(t, resp.Rows[0].Flagged)
}

func TestRoomStateWindow(t *testing.T) {
	svc := newRoomState(t, &memRoomRepo{}, &notificationtest.Recorder{})
	days := svc.Window(airport(t), day("2025-03-10"))
	require.Len(t, days, 61)
	assert.Equal(t, "2025-02-08", days[0].Date)
	assert.Equal(t, "2025-04-09", days[60].Date)
	assert.True(t, days[30].IsToday)
}
