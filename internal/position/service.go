package position

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"backend-walkloop/internal/shared/geo"

	"github.com/redis/go-redis/v9"
)

const positionTTL = 24 * time.Hour

// Service keeps the last device-reported coordinate per user in redis so
// route generation can fall back to it when a request omits the start point.
type Service struct {
	redis *redis.Client
}

func NewService(redisClient *redis.Client) *Service {
	return &Service{redis: redisClient}
}

func (s *Service) Update(ctx context.Context, userID string, p geo.Point) error {
	if s.redis == nil {
		return errors.New("position store unavailable")
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, positionKey(userID), payload, positionTTL).Err()
}

// Last returns the stored coordinate and whether one exists. A missing or
// unavailable store is not an error; the caller simply has no fallback.
func (s *Service) Last(ctx context.Context, userID string) (geo.Point, bool, error) {
	if s.redis == nil {
		return geo.Point{}, false, nil
	}
	raw, err := s.redis.Get(ctx, positionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return geo.Point{}, false, nil
	}
	if err != nil {
		return geo.Point{}, false, err
	}
	var p geo.Point
	if err := json.Unmarshal(raw, &p); err != nil {
		return geo.Point{}, false, err
	}
	return p, true, nil
}

func positionKey(userID string) string {
	return "position:" + userID
}
