package middleware

import (
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/identity"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func CORS(cfg *config.Config) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, " + identity.Header,
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: false,
	})
}
