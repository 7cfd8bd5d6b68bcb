package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"backend-walkloop/internal/db"
	"backend-walkloop/internal/stream"
)

type Service struct {
	db  db.Querier
	hub *stream.Hub
}

func NewService(db db.Querier, hub *stream.Hub) *Service {
	return &Service{db: db, hub: hub}
}

func (s *Service) AddSample(ctx context.Context, input Sample) (Sample, error) {
	if !input.Type.Known() {
		return Sample{}, errors.New("unknown metric type")
	}
	if input.RecordedAt.IsZero() {
		input.RecordedAt = time.Now()
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO metric_samples (user_id, type, value, recorded_at)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at
	`, input.UserID, input.Type, input.Value, input.RecordedAt)
	if err := row.Scan(&input.ID, &input.CreatedAt); err != nil {
		return Sample{}, err
	}

	if s.hub != nil {
		payload, _ := json.Marshal(input)
		s.hub.Broadcast(input.UserID, payload)
	}
	return input, nil
}

// CumulativeSum totals a metric over [start, end). No samples means zero.
func (s *Service) CumulativeSum(ctx context.Context, userID string, metric MetricType, start, end time.Time) (WindowStat, error) {
	return s.window(ctx, userID, metric, start, end, `COALESCE(SUM(value), 0)`)
}

// Average reports the mean of a metric over [start, end). No samples means zero.
func (s *Service) Average(ctx context.Context, userID string, metric MetricType, start, end time.Time) (WindowStat, error) {
	return s.window(ctx, userID, metric, start, end, `COALESCE(AVG(value), 0)`)
}

func (s *Service) window(ctx context.Context, userID string, metric MetricType, start, end time.Time, aggregate string) (WindowStat, error) {
	stat := WindowStat{UserID: userID, Type: metric, Start: start, End: end}
	row := s.db.QueryRow(ctx, `
		SELECT `+aggregate+`, COUNT(*)
		FROM metric_samples
		WHERE user_id=$1 AND type=$2 AND recorded_at >= $3 AND recorded_at < $4
	`, userID, metric, start, end)
	if err := row.Scan(&stat.Value, &stat.SampleCount); err != nil {
		return WindowStat{}, err
	}
	return stat, nil
}
