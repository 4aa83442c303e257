package jobs

import (
	"time"

	"frontdesk/constants"
	"frontdesk/services/logger"
	"frontdesk/services/notification"
	"frontdesk/utils"

	"github.com/robfig/cron/v3"
)

// MidnightSpec fires at 00:00 every day.
const MidnightSpec = "0 0 * * *"

// DayRollover recomputes the upcoming-days strip and pushes it to the desk.
type DayRollover struct {
	notifier notification.Service
	logger   logger.Logger
	now      func() time.Time
}

func NewDayRollover(notifier notification.Service, log logger.Logger, clock func() time.Time) *DayRollover {
	if clock == nil {
		clock = time.Now
	}
	return &DayRollover{notifier: notifier, logger: log, now: clock}
}

// Run publishes the next seven days. Broadcast errors are logged only.
func (r *DayRollover) Run() {
	now := r.now()
	days := utils.NextDays(now, constants.NextDaysCount)
	r.logger.Info("day rollover at %s", now.Format(time.RFC3339))

	err := r.notifier.Publish(notification.Event{
		Type: constants.EventDayRollover,
		At:   now,
		Payload: map[string]interface{}{
			"today":    utils.FormatDay(now),
			"nextDays": days,
		},
	})
	if err != nil {
		r.logger.Error("broadcasting day rollover: %v", err)
	}
}

// InitCronJobs registers the midnight rollover and starts the scheduler.
func InitCronJobs(c *cron.Cron, rollover *DayRollover, log logger.Logger) error {
	if _, err := c.AddFunc(MidnightSpec, rollover.Run); err != nil {
		return err
	}

	c.Start()
	log.Info("Cron jobs initialized successfully")
	return nil
}
