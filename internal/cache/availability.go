package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const availabilityTTL = 60 * time.Second

// Availability guarda a grade de horários livres por (médico, data).
// O TTL é curto e toda escrita de agendamento invalida a chave,
// então o cache nunca segura um slot já ocupado por muito tempo.
type Availability struct {
	rdb *redis.Client
}

func NewAvailability(rdb *redis.Client) *Availability {
	return &Availability{rdb: rdb}
}

func key(doctorID, date string) string {
	return fmt.Sprintf("availability:%s:%s", doctorID, date)
}

func (c *Availability) Get(ctx context.Context, doctorID, date string) ([]string, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(doctorID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *Availability) Set(ctx context.Context, doctorID, date string, slots []string) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	// cache é best-effort: erro de redis nunca quebra a API
	c.rdb.Set(ctx, key(doctorID, date), raw, availabilityTTL)
}

func (c *Availability) Invalidate(ctx context.Context, doctorID, date string) {
	if c == nil || c.rdb == nil {
		return
	}

	c.rdb.Del(ctx, key(doctorID, date))
}
