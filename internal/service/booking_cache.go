package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"patient-booking-api/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefix for the per-doctor latest-appointment cache
	RedisLatestKeyPrefix = "booking:latest:"

	// Cached entries expire even without invalidation; the DB stays the
	// source of truth
	latestCacheTTL = 5 * time.Minute

	// Timeout for individual Redis operations
	redisOpTimeout = 2 * time.Second
)

// BookingCache is a read-through Redis cache for the doctor latest-appointment
// lookup. Only this lookup is cached: its answer does not depend on the clock,
// so an entry stays correct until the doctor's orders change. Entries are
// invalidated whenever a booking for the doctor is created or cancelled.
//
// Cache failures are never fatal; callers fall back to the database.
type BookingCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewBookingCache(redisClient *redis.Client, log *logrus.Logger) *BookingCache {
	return &BookingCache{
		redisClient: redisClient,
		log:         log,
	}
}

// GetLatest returns the cached latest order for a doctor, or nil on miss.
func (c *BookingCache) GetLatest(ctx context.Context, doctorID int64) *entity.Order {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	data, err := c.redisClient.Get(ctx, latestKey(doctorID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read latest-booking cache for doctor %d: %+v", doctorID, err)
		}
		return nil
	}

	var order entity.Order
	if err := json.Unmarshal(data, &order); err != nil {
		c.log.Warnf("Corrupt latest-booking cache entry for doctor %d: %+v", doctorID, err)
		return nil
	}
	return &order
}

// SetLatest stores the latest order for a doctor.
func (c *BookingCache) SetLatest(ctx context.Context, doctorID int64, order *entity.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		c.log.Warnf("Failed to marshal latest-booking cache entry for doctor %d: %+v", doctorID, err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	if err := c.redisClient.Set(ctx, latestKey(doctorID), data, latestCacheTTL).Err(); err != nil {
		c.log.Warnf("Failed to write latest-booking cache for doctor %d: %+v", doctorID, err)
	}
}

// InvalidateDoctor drops the cached entry after the doctor's orders changed.
func (c *BookingCache) InvalidateDoctor(ctx context.Context, doctorID int64) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	if err := c.redisClient.Del(ctx, latestKey(doctorID)).Err(); err != nil {
		c.log.Warnf("Failed to invalidate latest-booking cache for doctor %d (non-fatal): %+v", doctorID, err)
	}
}

func latestKey(doctorID int64) string {
	return fmt.Sprintf("%s%d", RedisLatestKeyPrefix, doctorID)
}
