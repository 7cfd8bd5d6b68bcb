package plan

import (
	"context"
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

func (s *Service) Create(ctx context.Context, input Plan) (Plan, error) {
	if !input.Goal.Valid() {
		return Plan{}, errors.New("plan needs a valid goal")
	}
	input.ID = uuid.NewString()
	row := s.db.QueryRow(ctx, `
		INSERT INTO walk_plans (id, user_id, route_id, goal_kind, goal_value, scheduled_for, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at
	`, input.ID, input.UserID, input.RouteID, input.Goal.Kind, input.Goal.Value, input.ScheduledFor, input.Notes)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Plan{}, err
	}
	return input, nil
}

func (s *Service) Get(ctx context.Context, id string) (Plan, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, route_id, goal_kind, goal_value, scheduled_for, notes, created_at
		FROM walk_plans WHERE id=$1
	`, id)
	var p Plan
	if err := row.Scan(&p.ID, &p.UserID, &p.RouteID, &p.Goal.Kind, &p.Goal.Value, &p.ScheduledFor, &p.Notes, &p.CreatedAt); err != nil {
		return Plan{}, err
	}
	return p, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Plan, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, route_id, goal_kind, goal_value, scheduled_for, notes, created_at
		FROM walk_plans WHERE user_id=$1
		ORDER BY scheduled_for
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []Plan
	for rows.Next() {
		var p Plan
		if err := rows.Scan(&p.ID, &p.UserID, &p.RouteID, &p.Goal.Kind, &p.Goal.Value, &p.ScheduledFor, &p.Notes, &p.CreatedAt); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM walk_plans WHERE id=$1`, id)
	return err
}
