package position

import (
	"backend-walkloop/internal/shared/geo"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Put("/:userID", authMiddleware, func(c *fiber.Ctx) error {
		var req geo.Point
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if !req.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "coordinate out of range")
		}
		if err := svc.Update(c.Context(), c.Params("userID"), req); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(req)
	})

	r.Get("/:userID", func(c *fiber.Ctx) error {
		p, ok, err := svc.Last(c.Context(), c.Params("userID"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "no known position")
		}
		return c.JSON(p)
	})
}
