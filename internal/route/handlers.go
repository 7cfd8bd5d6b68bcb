package route

import (
	"backend-walkloop/internal/goal"
	"backend-walkloop/internal/position"
	"backend-walkloop/internal/shared/geo"

	"github.com/gofiber/fiber/v2"
)

type generateRequest struct {
	UserID string     `json:"user_id"`
	Start  *geo.Point `json:"start"`
	Goal   goal.Goal  `json:"goal"`
}

func RegisterRoutes(r fiber.Router, gen *Generator, positions *position.Service, authMiddleware fiber.Handler) {
	r.Post("/generate", authMiddleware, func(c *fiber.Ctx) error {
		var req generateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if !req.Goal.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "goal kind and positive value required")
		}

		var start geo.Point
		switch {
		case req.Start != nil:
			start = *req.Start
		case req.UserID != "" && positions != nil:
			p, ok, err := positions.Last(c.Context(), req.UserID)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "start required: no known position for user")
			}
			start = p
		default:
			return fiber.NewError(fiber.StatusBadRequest, "start or user_id required")
		}
		if !start.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "coordinate out of range")
		}

		routes := gen.Generate(c.Context(), start, req.Goal)
		return c.JSON(fiber.Map{"routes": routes})
	})
}
