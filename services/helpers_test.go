package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"sync"
	"time"

	"frontdesk/models"
	"frontdesk/services/logger"

	"github.com/goccy/go-json"
)

var errSaveFailed = fmt.Errorf("disk full")

type memRoomRepo struct {
	board    models.RoomBoard
	saves    int
	failSave bool
}

func (r *memRoomRepo) Load(context.Context) (models.RoomBoard, error) {
	if r.board == nil {
		return models.RoomBoard{}, nil
	}
	return r.board.Clone(), nil
}

func (r *memRoomRepo) Save(_ context.Context, board models.RoomBoard) error {
	if r.failSave {
		return errSaveFailed
	}
	r.saves++
	r.board = board.Clone()
	return nil
}

type memBookingRepo struct {
	bookings []models.Booking
	failSave bool
}

func (r *memBookingRepo) Load(context.Context) ([]models.Booking, error) {
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *memBookingRepo) Save(_ context.Context, bookings []models.Booking) error {
	if r.failSave {
		return errSaveFailed
	}
	r.bookings = make([]models.Booking, len(bookings))
	copy(r.bookings, bookings)
	return nil
}

// memCache stores JSON like RedisCache does.
type memCache struct {
	mu          sync.Mutex
	data        map[string][]byte
	invalidated int
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string, target interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, target)
}

func (c *memCache) Set(_ context.Context, key string, value interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memCache) Invalidate(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
	for k := range c.data {
		if ok, _ := path.Match(pattern, k); ok {
			delete(c.data, k)
		}
	}
	return nil
}

func quietLogger() logger.Logger {
	return logger.NewLogger(io.Discard, logger.SilentLevel)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
