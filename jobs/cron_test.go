package jobs

import (
	"io"
	"testing"
	"time"

	"frontdesk/constants"
	"frontdesk/services/logger"
	"frontdesk/services/notification"
	"frontdesk/services/notification/notificationtest"
	"frontdesk/utils"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayRolloverPublishesNextDays(t *testing.T) {
	rec := &notificationtest.Recorder{}
	now := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC) // Sunday
	r := NewDayRollover(rec, logger.NewLogger(io.Discard, logger.SilentLevel), func() time.Time { return now })

	r.Run()

	require.Len(t, rec.Events, 1)
	ev := rec.Events[0]
	assert.Equal(t, constants.EventDayRollover, ev.Type)

	payload := ev.Payload.(map[string]interface{})
	assert.Equal(t, "2025-03-09", payload["today"])
	days := payload["nextDays"].([]utils.NextDay)
	require.Len(t, days, 7)
	assert.Equal(t, utils.NextDay{Date: "2025-03-10", DayLetter: "ב", FullDayName: "שני"}, days[0])
	assert.Equal(t, "2025-03-16", days[6].Date)
}

func TestInitCronJobsSchedulesMidnight(t *testing.T) {
	c := cron.New()
	defer c.Stop()
	r := NewDayRollover(notification.Nop{}, logger.NewLogger(io.Discard, logger.SilentLevel), nil)

	require.NoError(t, InitCronJobs(c, r, logger.NewLogger(io.Discard, logger.SilentLevel)))
	entries := c.Entries()
	require.Len(t, entries, 1)

	from := time.Date(2025, 3, 9, 15, 30, 0, 0, time.Local)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local), entries[0].Schedule.Next(from))
}
