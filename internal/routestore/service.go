package routestore

import (
	"context"
	"encoding/json"
	"errors"

	"backend-walkloop/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) Save(ctx context.Context, input SavedRoute) (SavedRoute, error) {
	if len(input.Points) < 2 {
		return SavedRoute{}, errors.New("route needs at least two points")
	}
	if input.ID == "" {
		input.ID = uuid.NewString()
	}

	payload, err := json.Marshal(input.Points)
	if err != nil {
		return SavedRoute{}, err
	}
	anchor := input.Points[0]

	row := s.db.QueryRow(ctx, `
		INSERT INTO saved_routes (id, user_id, name, points, anchor, estimated_distance_m, estimated_steps, estimated_duration_sec, difficulty, terrain)
		VALUES ($1,$2,$3,$4, ST_SetSRID(ST_MakePoint($5,$6), 4326)::geography, $7,$8,$9,$10,$11)
		RETURNING created_at
	`, input.ID, input.UserID, input.Name, payload, anchor.Lng, anchor.Lat,
		input.EstimatedDistanceM, input.EstimatedSteps, input.EstimatedDurationSec, input.Difficulty, input.Terrain)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return SavedRoute{}, err
	}
	return input, nil
}

func (s *Service) Get(ctx context.Context, id string) (SavedRoute, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, name, points, estimated_distance_m, estimated_steps, estimated_duration_sec, difficulty, terrain, created_at
		FROM saved_routes WHERE id=$1
	`, id)
	return scanSavedRoute(row)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM saved_routes WHERE id=$1`, id)
	return err
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]SavedRoute, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, name, points, estimated_distance_m, estimated_steps, estimated_duration_sec, difficulty, terrain, created_at
		FROM saved_routes WHERE user_id=$1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SavedRoute
	for rows.Next() {
		saved, err := scanSavedRoute(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, saved)
	}
	return results, nil
}

// Search finds saved routes anchored within radiusKm of a point.
func (s *Service) Search(ctx context.Context, lat, lng, radiusKm float64) ([]SavedRoute, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, name, points, estimated_distance_m, estimated_steps, estimated_duration_sec, difficulty, terrain, created_at
		FROM saved_routes
		WHERE ST_DWithin(anchor, ST_SetSRID(ST_MakePoint($1,$2), 4326)::geography, $3)
		ORDER BY created_at DESC
	`, lng, lat, radiusKm*1000)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SavedRoute
	for rows.Next() {
		saved, err := scanSavedRoute(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, saved)
	}
	return results, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSavedRoute(row rowScanner) (SavedRoute, error) {
	var saved SavedRoute
	var payload []byte
	if err := row.Scan(&saved.ID, &saved.UserID, &saved.Name, &payload,
		&saved.EstimatedDistanceM, &saved.EstimatedSteps, &saved.EstimatedDurationSec,
		&saved.Difficulty, &saved.Terrain, &saved.CreatedAt); err != nil {
		return SavedRoute{}, err
	}
	if err := json.Unmarshal(payload, &saved.Points); err != nil {
		return SavedRoute{}, err
	}
	return saved, nil
}
