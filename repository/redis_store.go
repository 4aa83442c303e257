package repository

import (
	"context"
	"errors"

	"frontdesk/constants"
	"frontdesk/models"
	"frontdesk/services"
	"frontdesk/services/logger"

	"github.com/redis/go-redis/v9"
)

var errCorrupt = errors.New("corrupt snapshot")

// redisSnapshot stores one JSON document under a fixed key, without expiry.
type redisSnapshot struct {
	rdb    *redis.Client
	key    string
	logger logger.Logger
}

func (s *redisSnapshot) load(ctx context.Context, target interface{}) error {
	found, err := services.GetFromRedis(ctx, s.rdb, s.key, target)
	if err != nil && found {
		s.logger.Error("discarding corrupt snapshot %s: %v", s.key, err)
		return errCorrupt
	}
	return err
}

func (s *redisSnapshot) save(ctx context.Context, value interface{}) error {
	return services.SetToRedis(ctx, s.rdb, s.key, value, 0)
}

// RedisRoomStateRepository keeps the room board under the rental-manager-data key.
type RedisRoomStateRepository struct {
	snap *redisSnapshot
}

func NewRedisRoomStateRepository(rdb *redis.Client, log logger.Logger) *RedisRoomStateRepository {
	return &RedisRoomStateRepository{snap: &redisSnapshot{rdb: rdb, key: constants.RoomsStorageKey, logger: log}}
}

func (r *RedisRoomStateRepository) Load(ctx context.Context) (models.RoomBoard, error) {
	board := models.RoomBoard{}
	if err := r.snap.load(ctx, &board); err != nil {
		if err == errCorrupt {
			return models.RoomBoard{}, nil
		}
		return nil, err
	}
	return board, nil
}

func (r *RedisRoomStateRepository) Save(ctx context.Context, board models.RoomBoard) error {
	return r.snap.save(ctx, board)
}

// RedisBookingRepository keeps the booking list under the bookings key.
type RedisBookingRepository struct {
	snap *redisSnapshot
}

func NewRedisBookingRepository(rdb *redis.Client, log logger.Logger) *RedisBookingRepository {
	return &RedisBookingRepository{snap: &redisSnapshot{rdb: rdb, key: constants.BookingsStorageKey, logger: log}}
}

func (r *RedisBookingRepository) Load(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.snap.load(ctx, &bookings); err != nil {
		if err == errCorrupt {
			return []models.Booking{}, nil
		}
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (r *RedisBookingRepository) Save(ctx context.Context, bookings []models.Booking) error {
	return r.snap.save(ctx, bookings)
}
