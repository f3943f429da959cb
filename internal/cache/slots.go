package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/sharpfade/barber-booking/internal/schedule"
)

// SlotCache segura por alguns segundos o resultado do cálculo de
// horários da rota pública. TTL curto de propósito: o snapshot de
// agendamentos precisa ficar fresco, e toda escrita invalida o dia.
type SlotCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewSlotCache(rdb *redis.Client, logger *zap.Logger) *SlotCache {
	return &SlotCache{
		rdb:    rdb,
		ttl:    30 * time.Second,
		logger: logger,
	}
}

func key(barberID uint, date string) string {
	return fmt.Sprintf("slots:%d:%s", barberID, date)
}

func (c *SlotCache) Get(ctx context.Context, barberID uint, date string) ([]schedule.Slot, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(barberID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("slot cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var slots []schedule.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *SlotCache) Set(ctx context.Context, barberID uint, date string, slots []schedule.Slot) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(barberID, date), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("slot cache write failed", zap.Error(err))
	}
}

func (c *SlotCache) Invalidate(ctx context.Context, barberID uint, date string) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, key(barberID, date)).Err(); err != nil {
		c.logger.Warn("slot cache invalidation failed", zap.Error(err))
	}
}
