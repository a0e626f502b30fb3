package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/metinatakli/airline-reservation-system/internal/allocator"
	"github.com/metinatakli/airline-reservation-system/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyKeyPrefix    = "idempotency:reservation:"
	maxIdempotencyKeyLength = 255
	idempotencyWriteTimeout = 5 * time.Second
)

// idempotentResponse is what Redis remembers about a booking request. A record
// without a status belongs to a request that is still being processed.
type idempotentResponse struct {
	Fingerprint string          `json:"fingerprint"`
	Status      int             `json:"status,omitempty"`
	Body        json.RawMessage `json:"body,omitempty"`
}

func (r idempotentResponse) completed() bool {
	return r.Status != 0
}

var claimIdempotencyKeyScript = redis.NewScript(`
	-- KEYS[1] = idempotency key
	-- ARGV = [pending record, ttl in seconds]

	local existing = redis.call("GET", KEYS[1])
	if existing then
		return existing
	end

	redis.call("SET", KEYS[1], ARGV[1], "EX", ARGV[2])

	return false
`)

func idempotencyRedisKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return idempotencyKeyPrefix + hex.EncodeToString(sum[:])
}

func bookingFingerprint(req allocator.BookingRequest) string {
	status := req.Status
	if status == "" {
		status = domain.ReservationStatusPending
	}

	sum := sha256.Sum256([]byte(fmt.Sprintf("%d:%d:%d:%s", req.FlightID, req.SeatID, req.PassengerID, status)))
	return hex.EncodeToString(sum[:])
}

// claimIdempotencyKey atomically takes ownership of key. It returns nil when the
// caller now owns the key, or the record left by an earlier request otherwise.
func (app *Application) claimIdempotencyKey(ctx context.Context, key, fingerprint string) (*idempotentResponse, error) {
	pending, err := json.Marshal(idempotentResponse{Fingerprint: fingerprint})
	if err != nil {
		return nil, err
	}

	ttl := int(app.config.Booking.IdempotencyTTL.Seconds())

	stored, err := claimIdempotencyKeyScript.Run(ctx, app.redis, []string{key}, string(pending), ttl).Text()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to claim idempotency key: %w", err)
	}

	var record idempotentResponse

	err = json.Unmarshal([]byte(stored), &record)
	if err != nil {
		return nil, fmt.Errorf("corrupt idempotency record: %w", err)
	}

	return &record, nil
}

// storeIdempotentResponse and releaseIdempotencyKey finalize a claimed key. They
// keep running after the request context is canceled, bounded by
// idempotencyWriteTimeout, so a key is never left pending for its whole TTL.
func (app *Application) storeIdempotentResponse(ctx context.Context, key string, record idempotentResponse) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), idempotencyWriteTimeout)
	defer cancel()

	return app.redis.Set(ctx, key, data, app.config.Booking.IdempotencyTTL).Err()
}

func (app *Application) releaseIdempotencyKey(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), idempotencyWriteTimeout)
	defer cancel()

	return app.redis.Del(ctx, key).Err()
}
