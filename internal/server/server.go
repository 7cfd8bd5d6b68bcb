package server

import (
	"log"
	"time"

	"backend-walkloop/internal/auth"
	"backend-walkloop/internal/config"
	"backend-walkloop/internal/directions"
	"backend-walkloop/internal/metrics"
	"backend-walkloop/internal/plan"
	"backend-walkloop/internal/position"
	"backend-walkloop/internal/route"
	"backend-walkloop/internal/routestore"
	"backend-walkloop/internal/stream"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Stream: stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	positions := position.NewService(s.Redis)
	generator := route.NewGenerator(route.NewGeometricBuilder(nil), newStreetBuilder(s))

	// generation and persistence share the /routes group; /generate and
	// /search are registered before the /:id routes so they match first
	routes := s.App.Group("/routes")
	route.RegisterRoutes(routes, generator, positions, jwtMiddleware)
	routestore.RegisterRoutes(routes, routestore.NewService(s.DB), jwtMiddleware)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB))
	metrics.RegisterRoutes(s.App.Group("/metrics"), metrics.NewService(s.DB, s.Stream), jwtMiddleware)
	plan.RegisterRoutes(s.App.Group("/plans"), plan.NewService(s.DB), jwtMiddleware)
	position.RegisterRoutes(s.App.Group("/position"), positions, jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}

// newStreetBuilder returns nil when no Google Maps key is configured, in
// which case only geometric route variants are generated.
func newStreetBuilder(s *Server) *route.StreetBuilder {
	if s.Cfg.GoogleMapsAPIKey == "" {
		return nil
	}
	google, err := directions.NewGoogleProvider(s.Cfg.GoogleMapsAPIKey)
	if err != nil {
		log.Printf("google maps client init failed: %v", err)
		return nil
	}
	ttl := time.Duration(s.Cfg.RouteCacheTTLSec) * time.Second
	return route.NewStreetBuilder(directions.NewCachedProvider(google, s.Redis, ttl))
}
