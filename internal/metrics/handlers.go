package metrics

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

type windowQuery func(ctx context.Context, userID string, metric MetricType, start, end time.Time) (WindowStat, error)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/samples", authMiddleware, func(c *fiber.Ctx) error {
		var req Sample
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.UserID == "" || !req.Type.Known() {
			return fiber.NewError(fiber.StatusBadRequest, "user_id and a known type required")
		}
		sample, err := svc.AddSample(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(sample)
	})

	r.Get("/sum", func(c *fiber.Ctx) error {
		return windowHandler(c, svc.CumulativeSum)
	})

	r.Get("/avg", func(c *fiber.Ctx) error {
		return windowHandler(c, svc.Average)
	})
}

func windowHandler(c *fiber.Ctx, query windowQuery) error {
	userID := c.Query("user_id")
	metric := MetricType(c.Query("type"))
	if userID == "" || !metric.Known() {
		return fiber.NewError(fiber.StatusBadRequest, "user_id and a known type required")
	}

	end := time.Now()
	start := end.Add(-24 * time.Hour)
	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "start must be RFC3339")
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "end must be RFC3339")
		}
		end = parsed
	}

	stat, err := query(c.Context(), userID, metric, start, end)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(stat)
}
